// Package mp3 scans an MPEG audio elementary stream frame by frame and
// totals its playing time.
package mp3

import (
	"errors"
	"time"
)

var ErrNoFrames = errors.New("mp3: no MPEG audio frames found")

// Metadata summarizes the frames found. Version, Layer, SampleRate and
// Bitrate describe the first frame.
type Metadata struct {
	Duration   time.Duration
	Frames     int
	Version    Version
	Layer      Layer
	SampleRate int
	Bitrate    int
}

// Read skips a leading ID3v2 tag and a trailing ID3v1 tag, then walks the
// frames between them. A candidate first frame is accepted only when
// another frame header, or the end of the data, follows it. After a lost
// sync the scan resumes at the next accepted frame.
func Read(data []byte) (Metadata, error) {
	start := id3v2Size(data)
	end := len(data)
	if hasID3v1(data[min(start, end):]) {
		end -= 128
	}
	if start >= end {
		return Metadata{}, ErrNoFrames
	}
	body := data[start:end]

	var meta Metadata
	pos := 0
	for pos < len(body) {
		h, ok := parseHeader(body[pos:])
		if !ok || pos+h.frameLength > len(body) || (meta.Frames == 0 && !chained(body, pos, h)) {
			next, found := resync(body, pos+1)
			if !found {
				break
			}
			pos = next
			continue
		}
		if meta.Frames == 0 {
			meta.Version = h.version
			meta.Layer = h.layer
			meta.SampleRate = h.sampleRate
			meta.Bitrate = h.bitrate
		}
		meta.Duration += frameDuration(h)
		meta.Frames++
		pos += h.frameLength
	}

	if meta.Frames == 0 {
		return Metadata{}, ErrNoFrames
	}
	return meta, nil
}

// chained reports whether the frame at pos is followed by the end of data
// or by another valid header.
func chained(body []byte, pos int, h header) bool {
	next := pos + h.frameLength
	if next == len(body) {
		return true
	}
	_, ok := parseHeader(body[next:])
	return ok
}

// resync finds the next offset at or after from holding a complete frame
// that chains to a following one.
func resync(body []byte, from int) (int, bool) {
	for i := from; i+4 <= len(body); i++ {
		if body[i] != 0xFF {
			continue
		}
		h, ok := parseHeader(body[i:])
		if !ok || i+h.frameLength > len(body) {
			continue
		}
		if chained(body, i, h) {
			return i, true
		}
	}
	return 0, false
}

// frameDuration is the playing time of one frame, truncated to whole
// milliseconds. File durations are the sum of these truncated values.
func frameDuration(h header) time.Duration {
	return time.Duration(h.samples*1000/h.sampleRate) * time.Millisecond
}

func id3v2Size(data []byte) int {
	if len(data) < 10 || data[0] != 'I' || data[1] != 'D' || data[2] != '3' {
		return 0
	}
	size := int(data[6]&0x7F)<<21 | int(data[7]&0x7F)<<14 | int(data[8]&0x7F)<<7 | int(data[9]&0x7F)
	size += 10
	if data[5]&0x10 != 0 {
		size += 10
	}
	return size
}

func hasID3v1(data []byte) bool {
	if len(data) < 128 {
		return false
	}
	tag := data[len(data)-128:]
	return tag[0] == 'T' && tag[1] == 'A' && tag[2] == 'G'
}
