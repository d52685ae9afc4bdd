package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/wnielson/go-mediaprobe/internal/mediainfo"
)

const repoSlug = "wnielson/go-mediaprobe"

var errDevBuild = errors.New("self-update is only available in release builds")

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update mediaprobe",
	Long:  "Update mediaprobe to the latest GitHub release (release builds only).",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSelfUpdate(cmd.Context(), cmd.OutOrStdout(), mediainfo.AppVersion)
	},
	DisableFlagsInUseLine: true,
}

// checkUpdatable rejects builds without a release version to compare.
func checkUpdatable(current string) error {
	if current == "" || current == "dev" {
		return errDevBuild
	}
	if _, err := semver.ParseTolerant(current); err != nil {
		return fmt.Errorf("could not parse version: %w", err)
	}
	return nil
}

func runSelfUpdate(ctx context.Context, out io.Writer, current string) error {
	if err := checkUpdatable(current); err != nil {
		return err
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release of %s found for this platform", repoSlug)
	}
	if latest.LessOrEqual(current) {
		fmt.Fprintf(out, "Current binary is the latest version: %s\n", mediainfo.FormatVersion(current))
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("update binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version: %s\n", mediainfo.FormatVersion(latest.Version()))
	return nil
}
