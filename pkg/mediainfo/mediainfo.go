// Package mediainfo identifies Ogg, MP4 and MP3 content and reports its
// codecs, picture size and duration.
package mediainfo

import (
	"io"

	"github.com/wnielson/go-mediaprobe/internal/mediainfo"
)

// Types
type (
	Metadata      = mediainfo.Metadata
	AudioMetadata = mediainfo.AudioMetadata
	VideoMetadata = mediainfo.VideoMetadata
	Size          = mediainfo.Size
	AudioType     = mediainfo.AudioType
	VideoType     = mediainfo.VideoType
	Error         = mediainfo.Error
	ErrorKind     = mediainfo.ErrorKind
	Prober        = mediainfo.Prober
	Option        = mediainfo.Option
	StreamKind    = mediainfo.StreamKind
	Field         = mediainfo.Field
	Stream        = mediainfo.Stream
	Report        = mediainfo.Report
)

// Constants
const (
	AudioUnknown = mediainfo.AudioUnknown
	AudioMP3     = mediainfo.AudioMP3
	AudioOgg     = mediainfo.AudioOgg

	VideoUnknown = mediainfo.VideoUnknown
	VideoWebM    = mediainfo.VideoWebM
	VideoMP4     = mediainfo.VideoMP4
	VideoOgg     = mediainfo.VideoOgg

	FileError     = mediainfo.FileError
	UnknownFormat = mediainfo.UnknownFormat
	CustomError   = mediainfo.CustomError

	StreamGeneral = mediainfo.StreamGeneral
	StreamVideo   = mediainfo.StreamVideo
	StreamAudio   = mediainfo.StreamAudio
)

// Errors
var (
	ErrFile          = mediainfo.ErrFile
	ErrUnknownFormat = mediainfo.ErrUnknownFormat
)

// Probing
var (
	New        = mediainfo.New
	WithLogger = mediainfo.WithLogger
	WithFs     = mediainfo.WithFs
)

func ProbeFile(path string) (Metadata, error) {
	return mediainfo.ProbeFile(path)
}

func ProbeSlice(data []byte) (Metadata, error) {
	return mediainfo.ProbeSlice(data)
}

func ProbeReader(r io.Reader) (Metadata, error) {
	return mediainfo.ProbeReader(r)
}

func NewCustomError(message string) *Error {
	return mediainfo.NewCustomError(message)
}

// Classification
func ClassifyAudio(hint string) AudioType {
	return mediainfo.ClassifyAudio(hint)
}

func ClassifyVideo(hint string) VideoType {
	return mediainfo.ClassifyVideo(hint)
}

func ClassifyPath(path string) (AudioType, VideoType) {
	return mediainfo.ClassifyPath(path)
}

func SniffHint(data []byte) string {
	return mediainfo.SniffHint(data)
}

// Rendering
func BuildReport(ref string, meta Metadata) Report {
	return mediainfo.BuildReport(ref, meta)
}

func ErrorReport(ref string, err error) Report {
	return mediainfo.ErrorReport(ref, err)
}

func RenderText(reports []Report) string {
	return mediainfo.RenderText(reports)
}

func RenderJSON(reports []Report) string {
	return mediainfo.RenderJSON(reports)
}

func FormatVersion(version string) string {
	return mediainfo.FormatVersion(version)
}
