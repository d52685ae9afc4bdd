package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/wnielson/go-mediaprobe/internal/config"
	"github.com/wnielson/go-mediaprobe/internal/logging"
	"github.com/wnielson/go-mediaprobe/internal/mediainfo"
)

const (
	exitOK    = 0
	exitError = 1
)

// Run probes files in order and writes one report per file to stdout.
// Logs go to stderr. It returns exitError when nothing was given or any
// file failed to classify.
func Run(cfg config.Config, files []string, stdout, stderr io.Writer) int {
	return run(cfg, afero.NewOsFs(), files, stdout, stderr)
}

func run(cfg config.Config, fs afero.Fs, files []string, stdout, stderr io.Writer) int {
	if len(files) == 0 {
		return Usage(programName, stdout)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Console: stderr})
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}
	if cfg.File != "" {
		log.Debug().Str("file", cfg.File).Msg("using config file")
	}

	prober := mediainfo.New(mediainfo.WithLogger(log), mediainfo.WithFs(fs))
	reports := make([]mediainfo.Report, 0, len(files))
	for _, path := range files {
		reports = append(reports, probeOne(prober, log, cfg, path))
	}

	if cfg.Output == config.OutputJSON {
		fmt.Fprint(stdout, mediainfo.RenderJSON(reports))
	} else {
		fmt.Fprint(stdout, mediainfo.RenderText(reports))
	}

	if failed := mediainfo.Failed(reports); failed > 0 {
		log.Warn().Int("failed", failed).Int("files", len(files)).Msg("some files could not be classified")
		return exitError
	}
	return exitOK
}

func probeOne(prober *mediainfo.Prober, log zerolog.Logger, cfg config.Config, path string) mediainfo.Report {
	meta, err := prober.ProbeFile(path)
	if err != nil {
		log.Error().Str("path", path).Err(err).Msg("probe failed")
		return mediainfo.ErrorReport(path, err)
	}

	report := mediainfo.BuildReport(path, meta)
	if cfg.ShowHint {
		hint, err := prober.SniffFile(path)
		if err != nil {
			log.Warn().Str("path", path).Err(err).Msg("content hint unavailable")
		} else {
			mediainfo.AddHint(&report, hint)
		}
	}
	log.Info().Str("path", path).Msg("probed")
	return report
}
