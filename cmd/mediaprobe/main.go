package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/wnielson/go-mediaprobe/internal/cli"
	"github.com/wnielson/go-mediaprobe/internal/config"
	"github.com/wnielson/go-mediaprobe/internal/mediainfo"
)

var (
	version = "dev"
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:           "mediaprobe [flags] <file> [file...]",
	Short:         "Identify Ogg, MP4 and MP3 media files.",
	Long:          cli.LongHelp,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		cfg, err := config.Load(cmd.Flags(), cfgFile)
		if err != nil {
			return err
		}
		os.Exit(cli.Run(cfg, args, cmd.OutOrStdout(), cmd.ErrOrStderr()))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print go-mediaprobe version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli.Version(cmd.OutOrStdout())
		return nil
	},
	DisableFlagsInUseLine: true,
}

func init() {
	resolvedVersion := resolveVersion()
	cli.SetVersion(resolvedVersion)
	mediainfo.SetAppVersion(resolvedVersion)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default .mediaprobe.{yaml,json,toml} in . or $HOME)")
	config.AddFlags(rootCmd.Flags())

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func resolveVersion() string {
	if version != "" && version != "dev" {
		return cli.NormalizeVersion(version)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return cli.NormalizeVersion(info.Main.Version)
		}
	}
	return "dev"
}
