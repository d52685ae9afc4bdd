package mp4

import (
	"encoding/binary"
	"errors"
)

var (
	ErrInvalidBox = errors.New("mp4: invalid box header")
	ErrTruncated  = errors.New("mp4: box extends past end of data")
	ErrNoMoov     = errors.New("mp4: no moov box")
)

type box struct {
	typ  string
	body []byte
}

// nextBox splits the box at the start of buf from the bytes that follow
// it. A size field of zero extends the box to the end of buf.
func nextBox(buf []byte) (box, []byte, error) {
	if len(buf) < 8 {
		return box{}, nil, ErrTruncated
	}
	size := uint64(binary.BigEndian.Uint32(buf[0:4]))
	typ := buf[4:8]
	if !validType(typ) {
		return box{}, nil, ErrInvalidBox
	}
	headerSize := uint64(8)
	switch size {
	case 0:
		size = uint64(len(buf))
	case 1:
		if len(buf) < 16 {
			return box{}, nil, ErrTruncated
		}
		size = binary.BigEndian.Uint64(buf[8:16])
		headerSize = 16
	}
	if size < headerSize {
		return box{}, nil, ErrInvalidBox
	}
	if size > uint64(len(buf)) {
		return box{}, nil, ErrTruncated
	}
	return box{typ: string(typ), body: buf[headerSize:size]}, buf[size:], nil
}

// forEachBox calls fn for every box packed in buf.
func forEachBox(buf []byte, fn func(b box) error) error {
	for len(buf) > 0 {
		b, rest, err := nextBox(buf)
		if err != nil {
			return err
		}
		if err := fn(b); err != nil {
			return err
		}
		buf = rest
	}
	return nil
}

// findBox returns the first child of buf with the given type.
func findBox(buf []byte, typ string) (box, bool) {
	for len(buf) > 0 {
		b, rest, err := nextBox(buf)
		if err != nil {
			return box{}, false
		}
		if b.typ == typ {
			return b, true
		}
		buf = rest
	}
	return box{}, false
}

// validType accepts four characters of printable ASCII. Apple uses 0xA9
// as the first byte of metadata atoms.
func validType(typ []byte) bool {
	for i, c := range typ {
		if c == 0xA9 && i == 0 {
			continue
		}
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}
