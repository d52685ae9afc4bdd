package mediainfo

import (
	"bytes"
	"encoding/json"
)

type jsonKV struct {
	Key string
	Val string
	Raw bool
}

// jsonKeys maps report field names to JSON keys. Fields missing here are
// left out of JSON output.
var jsonKeys = map[string]string{
	"Format":               "Format",
	"Codec ID":             "CodecID",
	"Duration":             "Duration",
	"Width":                "Width",
	"Height":               "Height",
	"Display aspect ratio": "DisplayAspectRatio",
	"Error":                "Error",
	"Content hint":         "ContentHint",
	"Hinted audio":         "HintedAudio",
	"Hinted video":         "HintedVideo",
}

func RenderJSON(reports []Report) string {
	if len(reports) == 1 {
		return renderJSONPayload(reports[0]) + "\n"
	}
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, report := range reports {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString(renderJSONPayload(report))
	}
	buf.WriteString("\n]\n")
	return buf.String()
}

func renderJSONPayload(report Report) string {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	writeJSONField(&buf, "creatingLibrary", renderJSONObject(jsonCreatingLibraryFields()), true)
	buf.WriteString(",\n")
	writeJSONField(&buf, "media", renderJSONMedia(report), true)
	buf.WriteString("\n}")
	return buf.String()
}

func jsonCreatingLibraryFields() []jsonKV {
	return []jsonKV{
		{Key: "name", Val: AppName},
		{Key: "version", Val: FormatVersion(AppVersion)},
		{Key: "url", Val: AppURL},
	}
}

func renderJSONMedia(report Report) string {
	tracks := make([]string, 0, len(report.Streams)+1)
	tracks = append(tracks, renderJSONObject(jsonTrackFields(report.General)))
	for _, stream := range report.Streams {
		tracks = append(tracks, renderJSONObject(jsonTrackFields(stream)))
	}

	var buf bytes.Buffer
	buf.WriteString("{")
	writeJSONField(&buf, "@ref", report.Ref, false)
	buf.WriteString(",")
	buf.WriteString("\"track\": [")
	for i, track := range tracks {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString(track)
	}
	buf.WriteString("]}")
	return buf.String()
}

func jsonTrackFields(stream Stream) []jsonKV {
	fields := []jsonKV{{Key: "@type", Val: string(stream.Kind)}}
	for _, field := range stream.Fields {
		key, ok := jsonKeys[field.Name]
		if !ok {
			continue
		}
		if field.Number != "" {
			fields = append(fields, jsonKV{Key: key, Val: field.Number, Raw: true})
			continue
		}
		fields = append(fields, jsonKV{Key: key, Val: field.Value})
	}
	return fields
}

func renderJSONObject(fields []jsonKV) string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, field := range fields {
		if i > 0 {
			buf.WriteString(",")
		}
		writeJSONField(&buf, field.Key, field.Val, field.Raw)
	}
	buf.WriteString("}")
	return buf.String()
}

func writeJSONField(buf *bytes.Buffer, key, value string, raw bool) {
	buf.WriteString("\"")
	buf.WriteString(key)
	buf.WriteString("\": ")
	if raw {
		buf.WriteString(value)
		return
	}
	buf.WriteString(renderJSONString(value))
}

func renderJSONString(value string) string {
	data, _ := json.Marshal(value)
	return string(data)
}
