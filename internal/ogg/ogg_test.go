package ogg

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/wnielson/go-mediaprobe/internal/mediatest"
)

func TestReadTheoraVorbis(t *testing.T) {
	data := mediatest.OggFile{
		Headers:     [][]byte{mediatest.TheoraHeader(560, 320), mediatest.VorbisHeader(2, 44100)},
		DataPages:   10,
		PacketSize:  100,
		GranuleStep: 44100,
	}.Bytes()

	streams, err := Read(data)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(streams) != 2 {
		t.Fatalf("streams=%d, want 2", len(streams))
	}
	if streams[0].Kind != KindTheora || streams[0].Width != 560 || streams[0].Height != 320 {
		t.Fatalf("theora=%+v", streams[0])
	}
	if streams[1].Kind != KindVorbis || streams[1].SampleRate != 44100 || streams[1].Channels != 2 {
		t.Fatalf("vorbis=%+v", streams[1])
	}
	if got := streams[1].Duration(); got != 10*time.Second {
		t.Fatalf("duration=%v, want 10s", got)
	}
	if streams[0].Duration() != 0 {
		t.Fatalf("theora duration=%v, want 0", streams[0].Duration())
	}
}

func TestReadOpusPreSkip(t *testing.T) {
	data := mediatest.OggFile{
		Headers:     [][]byte{mediatest.OpusHeader(2, 312)},
		DataPages:   4,
		PacketSize:  60,
		GranuleStep: 48000,
	}.Bytes()

	streams, err := Read(data)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(streams) != 1 || streams[0].Kind != KindOpus {
		t.Fatalf("streams=%+v", streams)
	}
	want := 4*time.Second - 312*time.Second/48000
	if got := streams[0].Duration(); got != want {
		t.Fatalf("duration=%v, want %v", got, want)
	}
}

func TestReadStreamKinds(t *testing.T) {
	cases := []struct {
		name   string
		header []byte
		want   Kind
	}{
		{name: "speex", header: mediatest.SpeexHeader(), want: KindSpeex},
		{name: "skeleton", header: mediatest.SkeletonHeader(), want: KindSkeleton},
		{name: "flac", header: []byte("\x7fFLAC\x01\x00\x00\x01fLaC"), want: KindUnknown},
		{name: "short theora", header: []byte("\x80theora\x03\x02"), want: KindUnknown},
		{name: "short vorbis", header: []byte("\x01vorbis\x00"), want: KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			streams, err := Read(mediatest.OggPage(7, 0, mediatest.OggBOS, 0, tc.header))
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if len(streams) != 1 || streams[0].Kind != tc.want {
				t.Fatalf("streams=%+v, want kind %v", streams, tc.want)
			}
			if streams[0].Serial != 7 {
				t.Fatalf("serial=%d, want 7", streams[0].Serial)
			}
		})
	}
}

func TestReadStreamWithoutBOSIsUnknown(t *testing.T) {
	data := mediatest.OggPage(3, 5, 0, 1000, mediatest.VorbisHeader(2, 44100))
	streams, err := Read(data)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(streams) != 1 || streams[0].Kind != KindUnknown {
		t.Fatalf("streams=%+v", streams)
	}
}

func TestReadTruncatedPrefix(t *testing.T) {
	data := mediatest.OggFile{
		Headers:     [][]byte{mediatest.TheoraHeader(560, 320), mediatest.VorbisHeader(2, 44100)},
		DataPages:   40,
		PacketSize:  200,
		GranuleStep: 1024,
	}.Bytes()

	streams, err := Read(data[:len(data)/5])
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(streams) != 2 || streams[0].Kind != KindTheora || streams[1].Kind != KindVorbis {
		t.Fatalf("streams=%+v", streams)
	}
}

func TestReadGarbageAfterPages(t *testing.T) {
	data := mediatest.OggPage(1, 0, mediatest.OggBOS, 0, mediatest.VorbisHeader(1, 8000))
	data = append(data, []byte("this is not a page, just trailing bytes")...)
	streams, err := Read(data)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(streams) != 1 {
		t.Fatalf("streams=%d, want 1", len(streams))
	}
}

func TestReadErrors(t *testing.T) {
	badVersion := mediatest.OggPage(1, 0, mediatest.OggBOS, 0, mediatest.VorbisHeader(1, 8000))
	badVersion[4] = 1

	cases := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty", data: nil, want: ErrNoCapture},
		{name: "five bytes", data: []byte("OggS\x00"), want: ErrTruncated},
		{name: "text", data: []byte("package ogg\n\nfunc main() {}\n"), want: ErrNoCapture},
		{name: "version", data: badVersion, want: ErrVersion},
		{name: "cut body", data: mediatest.OggPage(1, 0, mediatest.OggBOS, 0, bytes.Repeat([]byte{1}, 300))[:40], want: ErrTruncated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(tc.data)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
}

func FuzzRead(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("OggS"))
	f.Add(mediatest.OggPage(1, 0, mediatest.OggBOS, 0, mediatest.TheoraHeader(16, 16)))
	f.Add(mediatest.OggPage(1, 0, mediatest.OggBOS, 0, mediatest.OpusHeader(2, 0)))

	f.Fuzz(func(t *testing.T, data []byte) {
		streams, err := Read(data)
		if err == nil && len(streams) == 0 {
			t.Fatalf("no streams without error")
		}
		for _, s := range streams {
			_ = s.Duration()
		}
	})
}
