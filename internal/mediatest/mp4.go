package mediatest

import (
	"bytes"
	"encoding/binary"
)

// Box encodes an MP4 box with a 32-bit size.
func Box(typ string, payloads ...[]byte) []byte {
	size := 8
	for _, p := range payloads {
		size += len(p)
	}
	out := make([]byte, 8, size)
	binary.BigEndian.PutUint32(out[0:4], uint32(size))
	copy(out[4:8], typ)
	for _, p := range payloads {
		out = append(out, p...)
	}
	return out
}

// FullBox prefixes payload with a zero version and flags field.
func FullBox(typ string, payload ...[]byte) []byte {
	return Box(typ, append([][]byte{{0, 0, 0, 0}}, payload...)...)
}

// MP4Track describes one trak for MP4File.
type MP4Track struct {
	ID      uint32
	Handler string
	// Entry is a complete sample entry box, or nil for an empty stsd.
	Entry []byte
}

// MP4File assembles ftyp, moov and an mdat of MdatSize zero bytes. When
// MoovLast is set the moov box follows mdat.
type MP4File struct {
	Tracks   []MP4Track
	MdatSize int
	MoovLast bool
}

func (f MP4File) Bytes() []byte {
	ftyp := Box("ftyp", []byte("isom"), []byte{0, 0, 2, 0}, []byte("isomiso2avc1mp41"))

	mvhd := make([]byte, 96)
	binary.BigEndian.PutUint32(mvhd[12:16], 1000)
	binary.BigEndian.PutUint32(mvhd[16:20], 10000)
	moovParts := [][]byte{Box("mvhd", mvhd)}
	for _, t := range f.Tracks {
		moovParts = append(moovParts, Trak(t))
	}
	moov := Box("moov", moovParts...)
	mdat := Box("mdat", make([]byte, f.MdatSize))

	var buf bytes.Buffer
	buf.Write(ftyp)
	if f.MoovLast {
		buf.Write(mdat)
		buf.Write(moov)
	} else {
		buf.Write(moov)
		buf.Write(mdat)
	}
	return buf.Bytes()
}

// Trak encodes a trak box with tkhd, mdhd, hdlr and an stsd holding the
// track's sample entry.
func Trak(t MP4Track) []byte {
	tkhd := make([]byte, 84)
	binary.BigEndian.PutUint32(tkhd[12:16], t.ID)

	mdhd := make([]byte, 24)
	binary.BigEndian.PutUint32(mdhd[12:16], 90000)
	binary.BigEndian.PutUint32(mdhd[16:20], 900000)

	hdlr := make([]byte, 25)
	copy(hdlr[8:12], t.Handler)

	stsdBody := make([]byte, 8)
	if t.Entry != nil {
		binary.BigEndian.PutUint32(stsdBody[4:8], 1)
		stsdBody = append(stsdBody, t.Entry...)
	}
	stbl := Box("stbl", Box("stsd", stsdBody), FullBox("stts", []byte{0, 0, 0, 0}))
	minf := Box("minf", FullBox("vmhd", make([]byte, 8)), stbl)
	mdia := Box("mdia", Box("mdhd", mdhd), Box("hdlr", hdlr), minf)
	return Box("trak", Box("tkhd", tkhd), mdia)
}

// VisualSampleEntry encodes a visual sample entry of type typ with the
// given child boxes.
func VisualSampleEntry(typ string, width, height uint16, children ...[]byte) []byte {
	body := make([]byte, 78)
	binary.BigEndian.PutUint16(body[6:8], 1)
	binary.BigEndian.PutUint16(body[24:26], width)
	binary.BigEndian.PutUint16(body[26:28], height)
	binary.BigEndian.PutUint32(body[28:32], 0x00480000)
	binary.BigEndian.PutUint32(body[32:36], 0x00480000)
	binary.BigEndian.PutUint16(body[40:42], 1)
	binary.BigEndian.PutUint16(body[74:76], 0x0018)
	binary.BigEndian.PutUint16(body[76:78], 0xFFFF)
	return Box(typ, append([][]byte{body}, children...)...)
}

// AudioSampleEntry encodes a version 0 sound sample entry of type typ.
func AudioSampleEntry(typ string, channels uint16, sampleRate uint32, children ...[]byte) []byte {
	body := make([]byte, 28)
	binary.BigEndian.PutUint16(body[6:8], 1)
	binary.BigEndian.PutUint16(body[16:18], channels)
	binary.BigEndian.PutUint16(body[18:20], 16)
	binary.BigEndian.PutUint32(body[24:28], sampleRate<<16)
	return Box(typ, append([][]byte{body}, children...)...)
}

// AVCC is a minimal avcC box.
func AVCC() []byte {
	return Box("avcC", []byte{1, 0x64, 0, 0x1F, 0xFF, 0xE0, 0x00})
}

// VPCC is a minimal vpcC box.
func VPCC() []byte {
	return FullBox("vpcC", []byte{0, 10, 0x80, 2, 2, 2, 0, 0})
}

// ESDS is an esds box declaring the given MPEG-4 object type.
func ESDS(objectType byte) []byte {
	decoderConfig := []byte{0x04, 13, objectType, 0x15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	es := append([]byte{0x03, byte(3 + len(decoderConfig)), 0, 1, 0}, decoderConfig...)
	return FullBox("esds", es)
}

// DFLA is a dfLa box with an empty metadata block list.
func DFLA() []byte {
	return FullBox("dfLa")
}

// DOPS is a minimal dOps box.
func DOPS() []byte {
	return Box("dOps", []byte{0, 2, 0x01, 0x38, 0, 0, 0xBB, 0x80, 0, 0, 0})
}

// Sinf is a protection scheme box whose frma declares original.
func Sinf(original string) []byte {
	return Box("sinf", Box("frma", []byte(original)))
}
