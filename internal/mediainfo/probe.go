package mediainfo

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

type check struct {
	name  string
	probe func(data []byte) (Metadata, error)
}

// formatChain is tried in order and the first accepted format wins. Each
// reader rejects foreign input on its own magic bytes or box structure, so
// the order only decides which rejections are paid first. New formats are
// appended.
var formatChain = []check{
	{name: "ogg", probe: probeOgg},
	{name: "mp4", probe: probeMP4},
	{name: "mp3", probe: probeMP3},
}

// Prober classifies media content. The zero value is not usable; build one
// with New. A Prober is safe for concurrent use.
type Prober struct {
	log    zerolog.Logger
	fs     afero.Fs
	checks []check
}

type Option func(*Prober)

// WithLogger sets the logger receiving one debug event per rejected format
// and per classification.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Prober) {
		p.log = log
	}
}

// WithFs sets the filesystem ProbeFile reads from.
func WithFs(fs afero.Fs) Option {
	return func(p *Prober) {
		p.fs = fs
	}
}

func New(opts ...Option) *Prober {
	p := &Prober{
		log:    zerolog.Nop(),
		fs:     afero.NewOsFs(),
		checks: formatChain,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultProber = New()

// ProbeFile reads the whole file at path and classifies it. Open and read
// failures are reported as FileError.
func ProbeFile(path string) (Metadata, error) {
	return defaultProber.ProbeFile(path)
}

// ProbeSlice classifies data, trying Ogg, MP4 and MP3 in that order.
func ProbeSlice(data []byte) (Metadata, error) {
	return defaultProber.ProbeSlice(data)
}

// ProbeReader reads r to the end and classifies the bytes. Read failures
// are reported as FileError.
func ProbeReader(r io.Reader) (Metadata, error) {
	return defaultProber.ProbeReader(r)
}

func (p *Prober) ProbeFile(path string) (Metadata, error) {
	data, err := p.readFile(path)
	if err != nil {
		p.log.Debug().Str("path", path).Err(err).Msg("read failed")
		return nil, fileError(err)
	}
	return p.ProbeSlice(data)
}

func (p *Prober) readFile(path string) ([]byte, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (p *Prober) ProbeReader(r io.Reader) (Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fileError(err)
	}
	return p.ProbeSlice(data)
}

func (p *Prober) ProbeSlice(data []byte) (Metadata, error) {
	for _, c := range p.checks {
		meta, err := c.probe(data)
		if err != nil {
			p.log.Debug().Str("format", c.name).Int("size", len(data)).Err(err).Msg("format rejected")
			continue
		}
		p.log.Debug().Str("format", c.name).Str("kind", kindOf(meta)).Msg("format matched")
		return meta, nil
	}
	return nil, ErrUnknownFormat
}

func kindOf(meta Metadata) string {
	switch meta.(type) {
	case VideoMetadata:
		return "video"
	case AudioMetadata:
		return "audio"
	default:
		return ""
	}
}

// unknownFormat keeps the reader's reason for logging; callers only ever
// see ErrUnknownFormat.
func unknownFormat(cause error) *Error {
	return &Error{Kind: UnknownFormat, Err: cause}
}
