package mediainfo

import (
	"errors"
	"testing"

	"github.com/wnielson/go-mediaprobe/internal/mediatest"
)

const fuzzParserMaxBytes = 1 << 20 // 1 MiB

func fuzzLimit(data []byte) []byte {
	if len(data) > fuzzParserMaxBytes {
		return data[:fuzzParserMaxBytes]
	}
	return data
}

func FuzzProbeSlice(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("OggS"))
	f.Add(vorbisOgg(1))
	f.Add(avcMP4())
	f.Add(mediatest.MP3Frames(3))

	f.Fuzz(func(t *testing.T, data []byte) {
		data = fuzzLimit(data)
		meta, err := ProbeSlice(data)
		switch {
		case err != nil:
			if meta != nil {
				t.Fatalf("meta=%+v with err=%v", meta, err)
			}
			if !errors.Is(err, ErrUnknownFormat) {
				t.Fatalf("err=%v, want UnknownFormat", err)
			}
		case meta == nil:
			t.Fatalf("nil meta without error")
		default:
			if video, ok := meta.(VideoMetadata); ok && !video.HasVideo() {
				t.Fatalf("video metadata without a video codec: %+v", video)
			}
			_ = RenderText([]Report{BuildReport("fuzz", meta)})
		}
	})
}
