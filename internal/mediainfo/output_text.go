package mediainfo

import (
	"fmt"
	"io"
	"strings"
)

// nameWidth is the column field values are aligned to.
const nameWidth = 41

// RenderText lays out each report as titled sections of "name : value"
// lines closed by a ReportBy line. Reports are separated by a blank line
// and the output ends with one.
func RenderText(reports []Report) string {
	var sb strings.Builder
	for i, report := range reports {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sections := append([]Stream{report.General}, report.Streams...)
		for j, section := range sections {
			if j > 0 {
				sb.WriteByte('\n')
			}
			writeSection(&sb, section)
		}
		fmt.Fprintf(&sb, "\nReportBy : %s - %s\n", AppName, FormatVersion(AppVersion))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func writeSection(w io.Writer, stream Stream) {
	fmt.Fprintln(w, stream.Kind)
	for _, field := range stream.Fields {
		fmt.Fprintf(w, "%-*s: %s\n", nameWidth, field.Name, field.Value)
	}
}
