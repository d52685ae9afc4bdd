package mediainfo

import "strings"

type AudioType int

const (
	AudioUnknown AudioType = iota
	AudioMP3
	AudioOgg
)

func (t AudioType) String() string {
	switch t {
	case AudioMP3:
		return "MP3"
	case AudioOgg:
		return "Ogg"
	default:
		return "Unknown"
	}
}

type VideoType int

const (
	VideoUnknown VideoType = iota
	VideoWebM
	VideoMP4
	VideoOgg
)

func (t VideoType) String() string {
	switch t {
	case VideoWebM:
		return "WebM"
	case VideoMP4:
		return "MP4"
	case VideoOgg:
		return "Ogg"
	default:
		return "Unknown"
	}
}

type keyword[T any] struct {
	key  string
	kind T
}

// Classifier tables. The first keyword contained in the hint wins, so new
// rows go at the end unless they must shadow an existing one.
var (
	audioKeywords = []keyword[AudioType]{
		{key: "mp3", kind: AudioMP3},
		{key: "ogg", kind: AudioOgg},
	}
	videoKeywords = []keyword[VideoType]{
		{key: "webm", kind: VideoWebM},
		{key: "mp4", kind: VideoMP4},
		{key: "ogg", kind: VideoOgg},
	}
)

// ClassifyAudio maps a format name or file name hint to an AudioType.
func ClassifyAudio(hint string) AudioType {
	return classify(hint, audioKeywords, AudioUnknown)
}

// ClassifyVideo maps a format name or file name hint to a VideoType.
func ClassifyVideo(hint string) VideoType {
	return classify(hint, videoKeywords, VideoUnknown)
}

func classify[T any](hint string, table []keyword[T], unknown T) T {
	hint = strings.ToLower(hint)
	for _, row := range table {
		if strings.Contains(hint, row.key) {
			return row.kind
		}
	}
	return unknown
}
