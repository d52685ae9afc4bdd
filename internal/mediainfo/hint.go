package mediainfo

import (
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// SniffHint describes data as "<mime type> <extension>", suitable as input
// to ClassifyAudio and ClassifyVideo.
func SniffHint(data []byte) string {
	m := mimetype.Detect(data)
	return m.String() + " " + m.Extension()
}

// SniffFile is SniffHint over the head of the file at path. Open and read
// failures are reported as FileError.
func (p *Prober) SniffFile(path string) (string, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return "", fileError(err)
	}
	defer f.Close()

	m, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fileError(err)
	}
	return m.String() + " " + m.Extension(), nil
}

// ClassifyPath applies both classifiers to the extension of path.
func ClassifyPath(path string) (AudioType, VideoType) {
	ext := filepath.Ext(path)
	return ClassifyAudio(ext), ClassifyVideo(ext)
}

// AddHint records a content hint on the General stream of report, along
// with what the classifiers make of it.
func AddHint(report *Report, hint string) {
	fields := appendField(report.General.Fields, "Content hint", hint)
	fields = appendField(fields, "Hinted audio", ClassifyAudio(hint).String())
	fields = appendField(fields, "Hinted video", ClassifyVideo(hint).String())
	report.General.Fields = fields
}
