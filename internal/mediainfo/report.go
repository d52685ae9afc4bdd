package mediainfo

import (
	"errors"
	"strconv"
	"time"
)

type StreamKind string

const (
	StreamGeneral StreamKind = "General"
	StreamVideo   StreamKind = "Video"
	StreamAudio   StreamKind = "Audio"
)

// Field is one rendered property. Number, when set, is the unformatted
// value JSON output emits in place of Value.
type Field struct {
	Name   string
	Value  string
	Number string
}

type Stream struct {
	Kind   StreamKind
	Fields []Field
}

type Report struct {
	Ref     string
	General Stream
	Streams []Stream
	Err     error
}

// BuildReport lays out meta as a General stream followed by a Video and/or
// Audio stream.
func BuildReport(ref string, meta Metadata) Report {
	report := Report{
		Ref:     ref,
		General: Stream{Kind: StreamGeneral},
	}
	report.General.Fields = appendField(report.General.Fields, "Complete name", ref)

	switch m := meta.(type) {
	case VideoMetadata:
		report.General.Fields = appendField(report.General.Fields, "Format", m.Format.String())
		report.General.Fields = appendDuration(report.General.Fields, m.Audio.Duration)
		report.Streams = append(report.Streams, videoStream(m))
		if m.Audio.HasAudio() {
			report.Streams = append(report.Streams, audioStream(m.Audio))
		}
	case AudioMetadata:
		report.General.Fields = appendField(report.General.Fields, "Format", m.Format.String())
		report.General.Fields = appendDuration(report.General.Fields, m.Duration)
		report.Streams = append(report.Streams, audioStream(m))
	}
	return report
}

// ErrorReport is the report for a path that could not be classified.
func ErrorReport(ref string, err error) Report {
	report := Report{
		Ref:     ref,
		General: Stream{Kind: StreamGeneral},
		Err:     err,
	}
	report.General.Fields = appendField(report.General.Fields, "Complete name", ref)
	report.General.Fields = appendField(report.General.Fields, "Error", errorDescription(err))
	return report
}

func videoStream(m VideoMetadata) Stream {
	s := Stream{Kind: StreamVideo}
	s.Fields = appendField(s.Fields, "Format", m.Video)
	s.Fields = appendNumber(s.Fields, "Width", formatPixels(uint64(m.Dimensions.Width)), uint64(m.Dimensions.Width))
	s.Fields = appendNumber(s.Fields, "Height", formatPixels(uint64(m.Dimensions.Height)), uint64(m.Dimensions.Height))
	if m.Dimensions.Width > 0 && m.Dimensions.Height > 0 {
		s.Fields = appendField(s.Fields, "Display aspect ratio", formatAspectRatio(m.Dimensions))
	}
	return s
}

func audioStream(m AudioMetadata) Stream {
	s := Stream{Kind: StreamAudio}
	s.Fields = appendField(s.Fields, "Format", m.Audio)
	s.Fields = appendField(s.Fields, "Codec ID", m.CodecID)
	s.Fields = appendDuration(s.Fields, m.Duration)
	return s
}

func appendField(fields []Field, name, value string) []Field {
	if value == "" {
		return fields
	}
	return append(fields, Field{Name: name, Value: value})
}

func appendNumber(fields []Field, name, value string, number uint64) []Field {
	if value == "" {
		return fields
	}
	return append(fields, Field{Name: name, Value: value, Number: strconv.FormatUint(number, 10)})
}

func appendDuration(fields []Field, d time.Duration) []Field {
	if d <= 0 {
		return fields
	}
	return append(fields, Field{Name: "Duration", Value: formatDuration(d), Number: formatSeconds(d)})
}

func errorDescription(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Description()
	}
	return err.Error()
}

// Failed counts the reports carrying an error.
func Failed(reports []Report) int {
	n := 0
	for _, r := range reports {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func formatAspectRatio(size Size) string {
	ratio := float64(size.Width) / float64(size.Height)
	return strconv.FormatFloat(ratio, 'f', 3, 64) + ":1"
}
