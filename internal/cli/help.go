package cli

import (
	"fmt"
	"io"
)

const programName = "mediaprobe"

// LongHelp is the description shown by "mediaprobe --help".
const LongHelp = `mediaprobe reports whether each file is Ogg, MP4 or MP3 content, its codecs,
picture size and duration.

Settings can be given as flags, as environment variables prefixed with
MEDIAPROBE_ (MEDIAPROBE_LOG_LEVEL=debug), or in a .mediaprobe.{yaml,json,toml}
file in the working directory or the home directory. Flags take precedence
over the environment, which takes precedence over the config file.`

func HelpNothing(program string, stdout io.Writer) {
	fmt.Fprintf(stdout, "Usage: \"%s [flags] FileName1 [Filename2...]\"\n", program)
	fmt.Fprintf(stdout, "\"%s --help\" for displaying more information\n", program)
}

func Usage(program string, stdout io.Writer) int {
	HelpNothing(program, stdout)
	return exitError
}
