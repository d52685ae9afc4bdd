package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/wnielson/go-mediaprobe/internal/cli"
)

func TestCheckUpdatable(t *testing.T) {
	cases := []struct {
		version string
		wantErr bool
	}{
		{version: "", wantErr: true},
		{version: "dev", wantErr: true},
		{version: "not.a.version", wantErr: true},
		{version: cli.NormalizeVersion("v1.2.3"), wantErr: false},
		{version: "0.4", wantErr: false},
	}
	for _, tc := range cases {
		err := checkUpdatable(tc.version)
		if (err != nil) != tc.wantErr {
			t.Fatalf("checkUpdatable(%q)=%v, wantErr=%v", tc.version, err, tc.wantErr)
		}
	}
}

func TestRunSelfUpdateRefusesDevBuild(t *testing.T) {
	var out bytes.Buffer
	err := runSelfUpdate(context.Background(), &out, "dev")
	if !errors.Is(err, errDevBuild) {
		t.Fatalf("err=%v, want errDevBuild", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRootHasSubcommands(t *testing.T) {
	for _, name := range []string{"update", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("subcommand %q: cmd=%v err=%v", name, cmd, err)
		}
	}
}
