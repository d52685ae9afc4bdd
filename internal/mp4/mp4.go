// Package mp4 reads the track layout of an ISO base media (MP4) file.
//
// Read walks the top-level boxes until it finds moov and records, for each
// trak, its handler type, timing and first sample description. Media data
// is never touched, so a file whose moov precedes mdat can be read from a
// prefix.
package mp4

import (
	"encoding/binary"
)

type TrackKind int

const (
	TrackUnknown TrackKind = iota
	TrackVideo
	TrackAudio
)

func (k TrackKind) String() string {
	switch k {
	case TrackVideo:
		return "Video"
	case TrackAudio:
		return "Audio"
	default:
		return "Unknown"
	}
}

// Track is one trak box. Data is nil when the track has no sample
// description.
type Track struct {
	ID        uint32
	Kind      TrackKind
	Timescale uint32
	Duration  uint64
	Data      SampleEntry
}

// Context collects what Read found.
type Context struct {
	Timescale uint32
	Duration  uint64
	Tracks    []Track
}

func NewContext() *Context {
	return &Context{}
}

// Read parses data into ctx. It fails when the box structure before moov
// is malformed or when no moov box is present.
func Read(data []byte, ctx *Context) error {
	rest := data
	for len(rest) > 0 {
		b, next, err := nextBox(rest)
		if err != nil {
			return err
		}
		if b.typ == "moov" {
			return readMoov(b.body, ctx)
		}
		rest = next
	}
	return ErrNoMoov
}

func readMoov(buf []byte, ctx *Context) error {
	return forEachBox(buf, func(b box) error {
		switch b.typ {
		case "mvhd":
			ctx.Timescale, ctx.Duration = readTimes(b.body)
		case "trak":
			track, err := readTrak(b.body)
			if err != nil {
				return err
			}
			ctx.Tracks = append(ctx.Tracks, track)
		}
		return nil
	})
}

func readTrak(buf []byte) (Track, error) {
	var track Track
	err := forEachBox(buf, func(b box) error {
		switch b.typ {
		case "tkhd":
			track.ID = readTrackID(b.body)
		case "mdia":
			return readMdia(b.body, &track)
		}
		return nil
	})
	return track, err
}

func readMdia(buf []byte, track *Track) error {
	var stsd []byte
	err := forEachBox(buf, func(b box) error {
		switch b.typ {
		case "mdhd":
			track.Timescale, track.Duration = readTimes(b.body)
		case "hdlr":
			track.Kind = handlerKind(b.body)
		case "minf":
			stbl, ok := findBox(b.body, "stbl")
			if !ok {
				return nil
			}
			if desc, ok := findBox(stbl.body, "stsd"); ok {
				stsd = desc.body
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if stsd != nil {
		track.Data = readStsd(stsd, track.Kind)
	}
	return nil
}

// readTimes decodes the timescale and duration shared by mvhd and mdhd.
func readTimes(payload []byte) (uint32, uint64) {
	if len(payload) < 4 {
		return 0, 0
	}
	switch payload[0] {
	case 0:
		if len(payload) < 20 {
			return 0, 0
		}
		return binary.BigEndian.Uint32(payload[12:16]), uint64(binary.BigEndian.Uint32(payload[16:20]))
	case 1:
		if len(payload) < 32 {
			return 0, 0
		}
		return binary.BigEndian.Uint32(payload[20:24]), binary.BigEndian.Uint64(payload[24:32])
	}
	return 0, 0
}

func readTrackID(payload []byte) uint32 {
	if len(payload) < 4 {
		return 0
	}
	switch payload[0] {
	case 0:
		if len(payload) >= 16 {
			return binary.BigEndian.Uint32(payload[12:16])
		}
	case 1:
		if len(payload) >= 24 {
			return binary.BigEndian.Uint32(payload[20:24])
		}
	}
	return 0
}

func handlerKind(payload []byte) TrackKind {
	if len(payload) < 12 {
		return TrackUnknown
	}
	switch string(payload[8:12]) {
	case "vide":
		return TrackVideo
	case "soun":
		return TrackAudio
	default:
		return TrackUnknown
	}
}

// readStsd interprets the first sample description according to the
// track's handler type.
func readStsd(payload []byte, kind TrackKind) SampleEntry {
	if len(payload) < 8 || binary.BigEndian.Uint32(payload[4:8]) == 0 {
		return nil
	}
	entry, _, err := nextBox(payload[8:])
	if err != nil {
		return nil
	}
	switch kind {
	case TrackVideo:
		return readVideoSampleEntry(entry)
	case TrackAudio:
		return readAudioSampleEntry(entry)
	default:
		return UnknownSampleEntry{Type: entry.typ}
	}
}
