package mp4

import (
	"encoding/binary"
	"math"
)

// SampleEntry is one of VideoSampleEntry, AudioSampleEntry or
// UnknownSampleEntry.
type SampleEntry interface {
	sampleEntry()
}

type VideoCodec int

const (
	AVCConfig VideoCodec = iota + 1
	VPxConfig
)

type AudioCodec int

const (
	ESDescriptor AudioCodec = iota + 1
	FLACSpecificBox
	OpusSpecificBox
	MP3
)

// VideoSampleEntry is a visual sample description. Config holds the body
// of the codec configuration box (avcC or vpcC).
type VideoSampleEntry struct {
	Type   string
	Width  uint16
	Height uint16
	Codec  VideoCodec
	Config []byte
}

// AudioSampleEntry is a sound sample description. Config holds the body of
// the codec configuration box (esds, dfLa or dOps); it is empty for MP3.
type AudioSampleEntry struct {
	Type       string
	Channels   uint16
	SampleSize uint16
	SampleRate uint32
	Codec      AudioCodec
	Config     []byte
}

// UnknownSampleEntry is a sample description this package does not
// interpret.
type UnknownSampleEntry struct {
	Type string
}

func (VideoSampleEntry) sampleEntry()   {}
func (AudioSampleEntry) sampleEntry()   {}
func (UnknownSampleEntry) sampleEntry() {}

const (
	visualEntrySize = 78
	audioEntrySize  = 28
)

func readVideoSampleEntry(entry box) SampleEntry {
	body := entry.body
	if len(body) < visualEntrySize {
		return UnknownSampleEntry{Type: entry.typ}
	}
	children := body[visualEntrySize:]
	typ := originalFormat(entry.typ, children)

	v := VideoSampleEntry{
		Type:   typ,
		Width:  binary.BigEndian.Uint16(body[24:26]),
		Height: binary.BigEndian.Uint16(body[26:28]),
	}
	var config string
	switch typ {
	case "avc1", "avc3":
		v.Codec, config = AVCConfig, "avcC"
	case "vp08", "vp09":
		v.Codec, config = VPxConfig, "vpcC"
	default:
		return UnknownSampleEntry{Type: typ}
	}
	b, ok := findBox(children, config)
	if !ok {
		return UnknownSampleEntry{Type: typ}
	}
	v.Config = b.body
	return v
}

func readAudioSampleEntry(entry box) SampleEntry {
	body := entry.body
	if len(body) < audioEntrySize {
		return UnknownSampleEntry{Type: entry.typ}
	}
	a := AudioSampleEntry{
		Channels:   binary.BigEndian.Uint16(body[16:18]),
		SampleSize: binary.BigEndian.Uint16(body[18:20]),
		SampleRate: binary.BigEndian.Uint32(body[24:28]) >> 16,
	}

	childOffset := audioEntrySize
	switch binary.BigEndian.Uint16(body[8:10]) {
	case 1:
		childOffset += 16
	case 2:
		childOffset += 36
		if len(body) >= 44 {
			a.SampleRate = uint32(math.Float64frombits(binary.BigEndian.Uint64(body[32:40])))
			a.Channels = uint16(binary.BigEndian.Uint32(body[40:44]))
		}
	}
	if len(body) < childOffset {
		return UnknownSampleEntry{Type: entry.typ}
	}
	children := body[childOffset:]
	a.Type = originalFormat(entry.typ, children)

	var config string
	switch a.Type {
	case "mp4a":
		a.Codec, config = ESDescriptor, "esds"
	case "fLaC":
		a.Codec, config = FLACSpecificBox, "dfLa"
	case "Opus":
		a.Codec, config = OpusSpecificBox, "dOps"
	case ".mp3":
		a.Codec = MP3
		return a
	default:
		return UnknownSampleEntry{Type: a.Type}
	}
	b, ok := findBox(children, config)
	if !ok {
		return UnknownSampleEntry{Type: a.Type}
	}
	a.Config = b.body
	return a
}

// originalFormat resolves protected entries (encv, enca) to the format
// recorded in sinf/frma.
func originalFormat(typ string, children []byte) string {
	if typ != "encv" && typ != "enca" {
		return typ
	}
	sinf, ok := findBox(children, "sinf")
	if !ok {
		return typ
	}
	frma, ok := findBox(sinf.body, "frma")
	if !ok || len(frma.body) < 4 {
		return typ
	}
	return string(frma.body[0:4])
}

// ObjectType returns the MPEG-4 object type indication from an ES
// descriptor config (0x40 for AAC, 0x6B for MP3).
func (a AudioSampleEntry) ObjectType() (byte, bool) {
	if a.Codec != ESDescriptor || len(a.Config) < 4 {
		return 0, false
	}
	data := a.Config[4:]
	if len(data) < 1 || data[0] != 0x03 {
		return 0, false
	}
	ptr := skipDescriptorLength(data, 1)
	if ptr < 0 || ptr+3 > len(data) {
		return 0, false
	}
	flags := data[ptr+2]
	ptr += 3
	if flags&0x80 != 0 {
		ptr += 2
	}
	if flags&0x40 != 0 {
		if ptr >= len(data) {
			return 0, false
		}
		ptr += 1 + int(data[ptr])
	}
	if flags&0x20 != 0 {
		ptr += 2
	}
	if ptr >= len(data) || data[ptr] != 0x04 {
		return 0, false
	}
	ptr = skipDescriptorLength(data, ptr+1)
	if ptr < 0 || ptr >= len(data) {
		return 0, false
	}
	return data[ptr], true
}

// skipDescriptorLength steps over an expandable descriptor size field and
// returns the offset of the descriptor payload, or -1.
func skipDescriptorLength(data []byte, ptr int) int {
	for i := 0; i < 4; i++ {
		if ptr >= len(data) {
			return -1
		}
		b := data[ptr]
		ptr++
		if b&0x80 == 0 {
			return ptr
		}
	}
	return ptr
}
