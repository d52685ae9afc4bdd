package mediainfo

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorMatching(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}
	fileErr := fileError(cause)

	if !errors.Is(fileErr, ErrFile) || errors.Is(fileErr, ErrUnknownFormat) {
		t.Fatalf("file error matching")
	}
	if !errors.Is(fileErr, fs.ErrNotExist) {
		t.Fatalf("cause not reachable")
	}
	if errors.Unwrap(fileErr) != cause {
		t.Fatalf("unwrap=%v", errors.Unwrap(fileErr))
	}
	if !errors.Is(unknownFormat(errNoStreams), ErrUnknownFormat) {
		t.Fatalf("unknown format matching")
	}

	custom := NewCustomError("quota")
	if !errors.Is(custom, NewCustomError("quota")) || errors.Is(custom, NewCustomError("other")) {
		t.Fatalf("custom matching by message")
	}
	if !errors.Is(custom, &Error{Kind: CustomError}) {
		t.Fatalf("custom matching by kind")
	}
}

func TestErrorDescription(t *testing.T) {
	cases := []struct {
		err  *Error
		desc string
		msg  string
	}{
		{err: ErrFile, desc: "FileError", msg: "FileError"},
		{err: ErrUnknownFormat, desc: "UnknownFormat", msg: "UnknownFormat"},
		{err: NewCustomError("bad header"), desc: "bad header", msg: "bad header"},
		{err: fileError(errors.New("permission denied")), desc: "FileError", msg: "FileError: permission denied"},
	}
	for _, tc := range cases {
		if got := tc.err.Description(); got != tc.desc {
			t.Fatalf("Description()=%q, want %q", got, tc.desc)
		}
		if got := tc.err.Error(); got != tc.msg {
			t.Fatalf("Error()=%q, want %q", got, tc.msg)
		}
	}
}
