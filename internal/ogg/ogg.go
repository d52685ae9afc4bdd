// Package ogg reads the logical stream layout of an Ogg container.
//
// Only page headers and the first packet of each logical stream are
// interpreted: enough to name the codec of every stream, report Theora
// picture dimensions, and derive Vorbis/Opus durations from the last
// granule position seen. Reading stops quietly at the first incomplete
// page so a truncated prefix of a file still yields its streams.
package ogg

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	pageHeaderSize = 27

	flagBOS = 0x02

	noGranule = ^uint64(0)
)

var capturePattern = []byte("OggS")

var (
	ErrNoCapture = errors.New("ogg: missing capture pattern")
	ErrVersion   = errors.New("ogg: unsupported stream structure version")
	ErrTruncated = errors.New("ogg: no complete page")
)

type page struct {
	headerType byte
	granule    uint64
	serial     uint32
	body       []byte
}

// Read walks the pages in data and returns one Stream per logical
// stream, in order of first appearance.
func Read(data []byte) ([]Stream, error) {
	if !bytes.HasPrefix(data, capturePattern) {
		return nil, ErrNoCapture
	}

	var (
		streams []Stream
		index   = map[uint32]int{}
		pages   int
		offset  int
	)
	for {
		p, next, err := readPage(data, offset)
		if err != nil {
			if pages == 0 {
				return nil, err
			}
			break
		}
		if p == nil {
			break
		}
		pages++
		offset = next

		i, seen := index[p.serial]
		if !seen {
			s := Stream{Kind: KindUnknown}
			if p.headerType&flagBOS != 0 {
				s = identify(p.body)
			}
			s.Serial = p.serial
			streams = append(streams, s)
			i = len(streams) - 1
			index[p.serial] = i
		}
		if p.granule != noGranule && (!streams[i].hasGranule || p.granule > streams[i].granule) {
			streams[i].granule = p.granule
			streams[i].hasGranule = true
		}
	}

	if pages == 0 {
		return nil, ErrTruncated
	}
	return streams, nil
}

// readPage returns the page at offset, or a nil page when the remaining
// bytes do not hold a complete one.
func readPage(data []byte, offset int) (*page, int, error) {
	if offset+pageHeaderSize > len(data) {
		return nil, offset, nil
	}
	header := data[offset : offset+pageHeaderSize]
	if !bytes.Equal(header[0:4], capturePattern) {
		return nil, offset, ErrNoCapture
	}
	if header[4] != 0 {
		return nil, offset, ErrVersion
	}
	segCount := int(header[26])
	lacingEnd := offset + pageHeaderSize + segCount
	if lacingEnd > len(data) {
		return nil, offset, nil
	}
	bodyLen := 0
	for _, seg := range data[offset+pageHeaderSize : lacingEnd] {
		bodyLen += int(seg)
	}
	end := lacingEnd + bodyLen
	if end > len(data) {
		return nil, offset, nil
	}
	return &page{
		headerType: header[5],
		granule:    binary.LittleEndian.Uint64(header[6:14]),
		serial:     binary.LittleEndian.Uint32(header[14:18]),
		body:       data[lacingEnd:end],
	}, end, nil
}
