package chunk

import (
	"errors"
	"runtime"
)

var (
	// ErrClipboardUnavailable is returned when no system clipboard can be reached.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ClipboardUnavailableError explains how to make the clipboard usable.
type ClipboardUnavailableError struct {
	Remedy string
}

// NewClipboardUnavailableError returns an error carrying the install hint for the current platform.
func NewClipboardUnavailableError() *ClipboardUnavailableError {
	remedy := "no clipboard utility found on this system"
	if runtime.GOOS == "linux" || runtime.GOOS == "freebsd" || runtime.GOOS == "openbsd" {
		remedy = "install one of xclip, xsel or wl-clipboard (e.g. `sudo apt install xclip`), or rerun with --no-clipboard"
	}
	return &ClipboardUnavailableError{Remedy: remedy}
}

func (e *ClipboardUnavailableError) Error() string {
	return ErrClipboardUnavailable.Error() + ": " + e.Remedy
}

func (e *ClipboardUnavailableError) Unwrap() error {
	return ErrClipboardUnavailable
}
