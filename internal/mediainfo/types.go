package mediainfo

import (
	"fmt"
	"time"
)

// Size is a picture size in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// AudioMetadata describes audio content. A zero Duration means the
// duration is not known and an empty Audio means no codec was identified.
// CodecID is the container's codec identifier, such as "mp4a-40", and is
// only filled in for MP4 tracks.
type AudioMetadata struct {
	Format   AudioType
	Duration time.Duration
	Audio    string
	CodecID  string
}

func (m AudioMetadata) HasDuration() bool {
	return m.Duration > 0
}

func (m AudioMetadata) HasAudio() bool {
	return m.Audio != ""
}

// VideoMetadata describes video content and the audio multiplexed with it.
// Probes only return it when Video is set.
type VideoMetadata struct {
	Audio      AudioMetadata
	Dimensions Size
	Format     VideoType
	Video      string
}

func (m VideoMetadata) HasVideo() bool {
	return m.Video != ""
}

// Metadata is the result of a successful probe: either AudioMetadata or
// VideoMetadata.
//
//	switch m := meta.(type) {
//	case mediainfo.AudioMetadata:
//	case mediainfo.VideoMetadata:
//	}
type Metadata interface {
	metadata()
}

func (AudioMetadata) metadata() {}
func (VideoMetadata) metadata() {}

// Codec labels reported in AudioMetadata.Audio and VideoMetadata.Video.
const (
	CodecTheora   = "Theora"
	CodecVorbis   = "Vorbis"
	CodecOpus     = "Opus"
	CodecSpeex    = "Speex"
	CodecSkeleton = "Skeleton"
	CodecAVC      = "AVC"
	CodecVPx      = "VPx"
	CodecES       = "ES"
	CodecFLAC     = "FLAC"
	CodecMP3      = "MP3"
)
