package mp3

type Version byte

const (
	MPEG25 Version = 0x00
	MPEG2  Version = 0x02
	MPEG1  Version = 0x03
)

func (v Version) String() string {
	switch v {
	case MPEG1:
		return "MPEG-1"
	case MPEG2:
		return "MPEG-2"
	case MPEG25:
		return "MPEG-2.5"
	default:
		return "reserved"
	}
}

type Layer byte

const (
	Layer3 Layer = 0x01
	Layer2 Layer = 0x02
	Layer1 Layer = 0x03
)

func (l Layer) String() string {
	switch l {
	case Layer1:
		return "Layer I"
	case Layer2:
		return "Layer II"
	case Layer3:
		return "Layer III"
	default:
		return "reserved"
	}
}

type header struct {
	version     Version
	layer       Layer
	bitrate     int
	sampleRate  int
	samples     int
	frameLength int
}

var bitrates = map[Version]map[Layer][15]int{
	MPEG1: {
		Layer1: {0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448},
		Layer2: {0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},
		Layer3: {0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},
	},
	MPEG2: {
		Layer1: {0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},
		Layer2: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
		Layer3: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
	},
}

var sampleRates = map[Version][3]int{
	MPEG1:  {44100, 48000, 32000},
	MPEG2:  {22050, 24000, 16000},
	MPEG25: {11025, 12000, 8000},
}

// parseHeader decodes the four byte frame header at the start of b.
// Free-format frames are rejected since their length is not declared.
func parseHeader(b []byte) (header, bool) {
	if len(b) < 4 {
		return header{}, false
	}
	if b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
		return header{}, false
	}
	version := Version((b[1] >> 3) & 0x03)
	layer := Layer((b[1] >> 1) & 0x03)
	if version == 0x01 || layer == 0x00 {
		return header{}, false
	}
	bitrateIndex := (b[2] >> 4) & 0x0F
	rateIndex := (b[2] >> 2) & 0x03
	if bitrateIndex == 0x00 || bitrateIndex == 0x0F || rateIndex == 0x03 {
		return header{}, false
	}
	padding := int((b[2] >> 1) & 0x01)

	table := version
	if table == MPEG25 {
		table = MPEG2
	}
	h := header{
		version:    version,
		layer:      layer,
		bitrate:    bitrates[table][layer][bitrateIndex] * 1000,
		sampleRate: sampleRates[version][rateIndex],
	}

	switch {
	case layer == Layer1:
		h.samples = 384
		h.frameLength = (12*h.bitrate/h.sampleRate + padding) * 4
	case layer == Layer2 || version == MPEG1:
		h.samples = 1152
		h.frameLength = 144*h.bitrate/h.sampleRate + padding
	default:
		h.samples = 576
		h.frameLength = 72*h.bitrate/h.sampleRate + padding
	}
	if h.frameLength < 4 {
		return header{}, false
	}
	return h, true
}
