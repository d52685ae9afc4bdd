package mp3

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/wnielson/go-mediaprobe/internal/mediatest"
)

func TestReadFrames(t *testing.T) {
	meta, err := Read(mediatest.MP3Frames(125))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if meta.Frames != 125 {
		t.Fatalf("frames=%d, want 125", meta.Frames)
	}
	if meta.Duration != 3*time.Second {
		t.Fatalf("duration=%v, want 3s", meta.Duration)
	}
	if meta.Version != MPEG1 || meta.Layer != Layer3 || meta.SampleRate != 48000 || meta.Bitrate != 128000 {
		t.Fatalf("meta=%+v", meta)
	}
}

func TestReadSkipsTags(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(mediatest.ID3v2(2048))
	buf.Write(mediatest.MP3Frames(50))
	buf.Write(mediatest.ID3v1("a title"))

	meta, err := Read(buf.Bytes())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if meta.Frames != 50 || meta.Duration != 1200*time.Millisecond {
		t.Fatalf("meta=%+v", meta)
	}
}

func TestReadResyncsAfterGarbage(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0xFF, 0x12, 0x34, 0xFF})
	buf.Write(mediatest.MP3Frames(10))
	buf.Write([]byte("junk between frames"))
	buf.Write(mediatest.MP3Frames(10))

	meta, err := Read(buf.Bytes())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if meta.Frames != 20 {
		t.Fatalf("frames=%d, want 20", meta.Frames)
	}
	if meta.Duration != 480*time.Millisecond {
		t.Fatalf("duration=%v", meta.Duration)
	}
}

func frames44k(n int) []byte {
	frame := make([]byte, 417)
	copy(frame, []byte{0xFF, 0xFB, 0x90, 0x40})
	return bytes.Repeat(frame, n)
}

func TestReadTruncatesFrameDurations(t *testing.T) {
	cases := []struct {
		frames int
		want   time.Duration
	}{
		{frames: 1, want: 26 * time.Millisecond},
		{frames: 39, want: 1014 * time.Millisecond},
		{frames: 476, want: 12376 * time.Millisecond},
	}
	for _, tc := range cases {
		meta, err := Read(frames44k(tc.frames))
		if err != nil {
			t.Fatalf("read %d frames: %v", tc.frames, err)
		}
		if meta.Frames != tc.frames || meta.Duration != tc.want {
			t.Fatalf("frames=%d duration=%v, want %d/%v", meta.Frames, meta.Duration, tc.frames, tc.want)
		}
		if meta.SampleRate != 44100 || meta.Bitrate != 128000 {
			t.Fatalf("meta=%+v", meta)
		}
	}
}

func TestReadMixedSampleRates(t *testing.T) {
	data := append(mediatest.MP3Frames(2), frames44k(2)...)

	meta, err := Read(data)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := 48*time.Millisecond + 52*time.Millisecond
	if meta.Frames != 4 || meta.Duration != want {
		t.Fatalf("meta=%+v, want duration %v", meta, want)
	}
}

func TestReadIgnoresTrailingPartialFrame(t *testing.T) {
	data := mediatest.MP3Frames(5)
	data = data[:len(data)-100]
	meta, err := Read(data)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if meta.Frames != 4 {
		t.Fatalf("frames=%d, want 4", meta.Frames)
	}
}

func TestReadErrors(t *testing.T) {
	lone := make([]byte, 1000)
	copy(lone[10:], mediatest.MP3FrameHeader)

	cases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "five bytes", data: []byte{0xFF, 0xFB, 0x94, 0x40, 0x00}},
		{name: "text", data: []byte("package mp3\n\nfunc Read() {}\n")},
		{name: "tag only", data: mediatest.ID3v2(64)},
		{name: "unchained header", data: lone},
		{name: "free format", data: bytes.Repeat([]byte{0xFF, 0xFB, 0x04, 0x40}, 64)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Read(tc.data); !errors.Is(err, ErrNoFrames) {
				t.Fatalf("err=%v, want ErrNoFrames", err)
			}
		})
	}
}

func TestParseHeaderFrameLengths(t *testing.T) {
	cases := []struct {
		name    string
		header  []byte
		length  int
		samples int
	}{
		{name: "mpeg1 layer3 128k 44.1k", header: []byte{0xFF, 0xFB, 0x90, 0x00}, length: 417, samples: 1152},
		{name: "mpeg1 layer3 padded", header: []byte{0xFF, 0xFB, 0x92, 0x00}, length: 418, samples: 1152},
		{name: "mpeg2 layer3 64k 22.05k", header: []byte{0xFF, 0xF3, 0x80, 0x00}, length: 208, samples: 576},
		{name: "mpeg1 layer2 192k 48k", header: []byte{0xFF, 0xFD, 0xA4, 0x00}, length: 576, samples: 1152},
		{name: "mpeg1 layer1 384k 48k", header: []byte{0xFF, 0xFF, 0xC4, 0x00}, length: 384, samples: 384},
		{name: "mpeg2.5 layer3 8k 8k", header: []byte{0xFF, 0xE3, 0x18, 0x00}, length: 72, samples: 576},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, ok := parseHeader(tc.header)
			if !ok {
				t.Fatalf("header rejected")
			}
			if h.frameLength != tc.length || h.samples != tc.samples {
				t.Fatalf("length=%d samples=%d, want %d/%d", h.frameLength, h.samples, tc.length, tc.samples)
			}
		})
	}
}

func FuzzRead(f *testing.F) {
	f.Add([]byte{})
	f.Add(mediatest.MP3Frames(3))
	f.Add(mediatest.ID3v2(16))

	f.Fuzz(func(t *testing.T, data []byte) {
		meta, err := Read(data)
		if err == nil && meta.Frames == 0 {
			t.Fatalf("no frames without error")
		}
	})
}
