package ogg

import (
	"bytes"
	"encoding/binary"
	"time"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindTheora
	KindVorbis
	KindOpus
	KindSpeex
	KindSkeleton
)

func (k Kind) String() string {
	switch k {
	case KindTheora:
		return "Theora"
	case KindVorbis:
		return "Vorbis"
	case KindOpus:
		return "Opus"
	case KindSpeex:
		return "Speex"
	case KindSkeleton:
		return "Skeleton"
	default:
		return "Unknown"
	}
}

const opusSampleRate = 48000

// Stream describes one logical stream. Width and Height are the Theora
// picture size; SampleRate, Channels and PreSkip come from the Vorbis or
// Opus identification header.
type Stream struct {
	Kind       Kind
	Serial     uint32
	Width      uint32
	Height     uint32
	SampleRate uint32
	Channels   uint8
	PreSkip    uint16

	granule    uint64
	hasGranule bool
}

// Duration is the playback time up to the last granule position seen for
// the stream. It is zero for streams without a sample clock.
func (s Stream) Duration() time.Duration {
	if !s.hasGranule {
		return 0
	}
	switch s.Kind {
	case KindVorbis:
		return samplesToDuration(s.granule, uint64(s.SampleRate))
	case KindOpus:
		if s.granule <= uint64(s.PreSkip) {
			return 0
		}
		return samplesToDuration(s.granule-uint64(s.PreSkip), opusSampleRate)
	default:
		return 0
	}
}

func samplesToDuration(samples, rate uint64) time.Duration {
	if rate == 0 {
		return 0
	}
	whole := samples / rate
	frac := samples % rate
	return time.Duration(whole)*time.Second + time.Duration(frac*uint64(time.Second)/rate)
}

var (
	theoraMagic   = []byte("\x80theora")
	vorbisMagic   = []byte("\x01vorbis")
	opusMagic     = []byte("OpusHead")
	speexMagic    = []byte("Speex   ")
	skeletonMagic = []byte("fishead\x00")
)

// identify names the codec from the first packet of a logical stream.
// Headers too short to carry their fixed fields are left unknown.
func identify(packet []byte) Stream {
	switch {
	case bytes.HasPrefix(packet, theoraMagic):
		if len(packet) < 20 {
			break
		}
		return Stream{
			Kind:   KindTheora,
			Width:  uint24(packet[14:17]),
			Height: uint24(packet[17:20]),
		}
	case bytes.HasPrefix(packet, vorbisMagic):
		if len(packet) < 16 {
			break
		}
		return Stream{
			Kind:       KindVorbis,
			Channels:   packet[11],
			SampleRate: binary.LittleEndian.Uint32(packet[12:16]),
		}
	case bytes.HasPrefix(packet, opusMagic):
		if len(packet) < 19 {
			break
		}
		return Stream{
			Kind:       KindOpus,
			Channels:   packet[9],
			PreSkip:    binary.LittleEndian.Uint16(packet[10:12]),
			SampleRate: binary.LittleEndian.Uint32(packet[12:16]),
		}
	case bytes.HasPrefix(packet, speexMagic):
		return Stream{Kind: KindSpeex}
	case bytes.HasPrefix(packet, skeletonMagic):
		return Stream{Kind: KindSkeleton}
	}
	return Stream{Kind: KindUnknown}
}

func uint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}
