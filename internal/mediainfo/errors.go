package mediainfo

type ErrorKind int

const (
	// FileError means the source could not be opened or read.
	FileError ErrorKind = iota + 1
	// UnknownFormat means no container reader accepted the bytes, or the
	// one that did exposed nothing classifiable.
	UnknownFormat
	// CustomError is left for callers wrapping the prober; the prober
	// itself never returns it.
	CustomError
)

func (k ErrorKind) String() string {
	switch k {
	case FileError:
		return "FileError"
	case UnknownFormat:
		return "UnknownFormat"
	case CustomError:
		return "CustomError"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by the probe functions. Err holds the
// underlying I/O error for FileError.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

var (
	ErrFile          = &Error{Kind: FileError}
	ErrUnknownFormat = &Error{Kind: UnknownFormat}
)

func NewCustomError(message string) *Error {
	return &Error{Kind: CustomError, Message: message}
}

func fileError(err error) *Error {
	return &Error{Kind: FileError, Err: err}
}

// Description is the human readable name of the error: the kind for
// FileError and UnknownFormat, the message for CustomError.
func (e *Error) Description() string {
	if e.Kind == CustomError {
		return e.Message
	}
	return e.Kind.String()
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Description() + ": " + e.Err.Error()
	}
	return e.Description()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrFile)
// holds for every file error regardless of its cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == CustomError && t.Message != "" {
		return e.Kind == CustomError && e.Message == t.Message
	}
	return e.Kind == t.Kind
}
