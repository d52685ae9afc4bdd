package mediainfo

import (
	"errors"
	"fmt"

	"github.com/wnielson/go-mediaprobe/internal/mp3"
	"github.com/wnielson/go-mediaprobe/internal/mp4"
	"github.com/wnielson/go-mediaprobe/internal/ogg"
)

var errNoStreams = errors.New("no recognized stream or track")

// probeOgg folds every logical stream into one VideoMetadata. Content
// without a Theora stream is returned as its audio part only.
func probeOgg(data []byte) (Metadata, error) {
	streams, err := ogg.Read(data)
	if err != nil {
		return nil, unknownFormat(err)
	}

	meta := VideoMetadata{Format: VideoOgg}
	meta.Audio.Format = AudioOgg
	for _, s := range streams {
		switch s.Kind {
		case ogg.KindTheora:
			meta.Dimensions = Size{Width: s.Width, Height: s.Height}
			meta.Video = CodecTheora
		case ogg.KindVorbis:
			meta.Audio.Audio = CodecVorbis
			meta.Audio.Duration = s.Duration()
		case ogg.KindOpus:
			meta.Audio.Audio = CodecOpus
			meta.Audio.Duration = s.Duration()
		case ogg.KindSpeex:
			meta.Audio.Audio = CodecSpeex
		case ogg.KindSkeleton:
			meta.Audio.Audio = CodecSkeleton
		}
	}

	switch {
	case meta.HasVideo():
		return meta, nil
	case meta.Audio.HasAudio():
		return meta.Audio, nil
	default:
		return nil, unknownFormat(errNoStreams)
	}
}

// probeMP4 reports MP4 content as video. A file with no video track is
// rejected, not demoted to audio as in probeOgg.
func probeMP4(data []byte) (Metadata, error) {
	ctx := mp4.NewContext()
	if err := mp4.Read(data, ctx); err != nil {
		return nil, unknownFormat(err)
	}

	meta := VideoMetadata{Format: VideoMP4}
	for _, track := range ctx.Tracks {
		switch entry := track.Data.(type) {
		case mp4.VideoSampleEntry:
			meta.Dimensions = Size{Width: uint32(entry.Width), Height: uint32(entry.Height)}
			meta.Video = videoCodecLabel(entry.Codec)
		case mp4.AudioSampleEntry:
			meta.Audio.Audio = audioCodecLabel(entry.Codec)
			meta.Audio.CodecID = audioCodecID(entry)
		}
	}

	if !meta.HasVideo() {
		return nil, unknownFormat(errNoStreams)
	}
	return meta, nil
}

// Labels name the codec configuration family, not the exact profile.
func videoCodecLabel(codec mp4.VideoCodec) string {
	switch codec {
	case mp4.AVCConfig:
		return CodecAVC
	case mp4.VPxConfig:
		return CodecVPx
	default:
		return ""
	}
}

func audioCodecLabel(codec mp4.AudioCodec) string {
	switch codec {
	case mp4.ESDescriptor:
		return CodecES
	case mp4.FLACSpecificBox:
		return CodecFLAC
	case mp4.OpusSpecificBox:
		return CodecOpus
	case mp4.MP3:
		return CodecMP3
	default:
		return ""
	}
}

// audioCodecID is the sample entry type, qualified with the object type
// indication for ES descriptors ("mp4a-40", "mp4a-6B").
func audioCodecID(entry mp4.AudioSampleEntry) string {
	if oti, ok := entry.ObjectType(); ok {
		return fmt.Sprintf("%s-%02X", entry.Type, oti)
	}
	return entry.Type
}

func probeMP3(data []byte) (Metadata, error) {
	parsed, err := mp3.Read(data)
	if err != nil {
		return nil, unknownFormat(err)
	}
	return AudioMetadata{
		Format:   AudioMP3,
		Duration: parsed.Duration,
		Audio:    CodecMP3,
	}, nil
}
