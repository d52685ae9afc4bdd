// Package mediatest builds small synthetic Ogg, MP4 and MP3 byte streams
// for tests. The output is structurally valid for the readers in this
// module; codec payloads are zero filled.
package mediatest

import (
	"bytes"
	"encoding/binary"
)

const (
	OggContinued byte = 0x01
	OggBOS       byte = 0x02
	OggEOS       byte = 0x04
)

// OggPage encodes a single page holding the given packets. CRC is left
// zero.
func OggPage(serial, seq uint32, headerType byte, granule uint64, packets ...[]byte) []byte {
	var lacing []byte
	var body bytes.Buffer
	for _, packet := range packets {
		n := len(packet)
		for n >= 255 {
			lacing = append(lacing, 255)
			n -= 255
		}
		lacing = append(lacing, byte(n))
		body.Write(packet)
	}

	header := make([]byte, 27)
	copy(header[0:4], "OggS")
	header[5] = headerType
	binary.LittleEndian.PutUint64(header[6:14], granule)
	binary.LittleEndian.PutUint32(header[14:18], serial)
	binary.LittleEndian.PutUint32(header[18:22], seq)
	header[26] = byte(len(lacing))

	out := append(header, lacing...)
	return append(out, body.Bytes()...)
}

// TheoraHeader is a Theora identification header for a picture of the
// given size.
func TheoraHeader(width, height uint32) []byte {
	packet := make([]byte, 42)
	copy(packet, "\x80theora")
	packet[7], packet[8], packet[9] = 3, 2, 1
	binary.BigEndian.PutUint16(packet[10:12], uint16((width+15)/16))
	binary.BigEndian.PutUint16(packet[12:14], uint16((height+15)/16))
	putUint24(packet[14:17], width)
	putUint24(packet[17:20], height)
	return packet
}

// VorbisHeader is a Vorbis identification header.
func VorbisHeader(channels uint8, sampleRate uint32) []byte {
	packet := make([]byte, 30)
	copy(packet, "\x01vorbis")
	packet[11] = channels
	binary.LittleEndian.PutUint32(packet[12:16], sampleRate)
	packet[29] = 1
	return packet
}

// OpusHeader is an OpusHead packet.
func OpusHeader(channels uint8, preSkip uint16) []byte {
	packet := make([]byte, 19)
	copy(packet, "OpusHead")
	packet[8] = 1
	packet[9] = channels
	binary.LittleEndian.PutUint16(packet[10:12], preSkip)
	binary.LittleEndian.PutUint32(packet[12:16], 48000)
	return packet
}

// SpeexHeader is the start of a Speex header packet.
func SpeexHeader() []byte {
	packet := make([]byte, 80)
	copy(packet, "Speex   ")
	return packet
}

// SkeletonHeader is the start of a Skeleton fishead packet.
func SkeletonHeader() []byte {
	packet := make([]byte, 64)
	copy(packet, "fishead\x00")
	return packet
}

// OggFile describes a multiplexed Ogg file: one BOS page per stream,
// followed by DataPages pages per stream carrying PacketSize bytes each.
// Granule positions advance by GranuleStep per data page.
type OggFile struct {
	Headers     [][]byte
	DataPages   int
	PacketSize  int
	GranuleStep uint64
}

// Bytes encodes the file. Stream serials are 1..len(Headers).
func (f OggFile) Bytes() []byte {
	var buf bytes.Buffer
	seqs := make([]uint32, len(f.Headers))
	for i, header := range f.Headers {
		buf.Write(OggPage(uint32(i+1), 0, OggBOS, 0, header))
		seqs[i]++
	}
	for n := 1; n <= f.DataPages; n++ {
		for i := range f.Headers {
			headerType := byte(0)
			if n == f.DataPages {
				headerType = OggEOS
			}
			packet := make([]byte, f.PacketSize)
			buf.Write(OggPage(uint32(i+1), seqs[i], headerType, uint64(n)*f.GranuleStep, packet))
			seqs[i]++
		}
	}
	return buf.Bytes()
}

func putUint24(b []byte, v uint32) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}
