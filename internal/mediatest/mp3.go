package mediatest

import "bytes"

// MP3FrameHeader is MPEG-1 Layer III, 128 kb/s, 48 kHz, no padding. Its
// frames are MP3FrameSize bytes and last 24 ms.
var MP3FrameHeader = []byte{0xFF, 0xFB, 0x94, 0x40}

const MP3FrameSize = 384

// MP3Frames encodes n consecutive frames with zero filled payloads.
func MP3Frames(n int) []byte {
	frame := make([]byte, MP3FrameSize)
	copy(frame, MP3FrameHeader)
	return bytes.Repeat(frame, n)
}

// ID3v2 is an empty ID3v2.4 tag padded to size bytes of payload.
func ID3v2(size int) []byte {
	tag := []byte{'I', 'D', '3', 4, 0, 0,
		byte(size >> 21 & 0x7F), byte(size >> 14 & 0x7F), byte(size >> 7 & 0x7F), byte(size & 0x7F)}
	return append(tag, make([]byte, size)...)
}

// ID3v1 is a 128 byte ID3v1 trailer carrying title.
func ID3v1(title string) []byte {
	tag := make([]byte, 128)
	copy(tag, "TAG")
	copy(tag[3:33], title)
	return tag
}
