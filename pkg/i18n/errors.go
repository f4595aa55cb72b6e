package i18n

import (
	"errors"
	"fmt"
)

// ErrLocaleNotSupported indicates that a locale code is not part of the
// statically supported locale set.
type ErrLocaleNotSupported struct {
	Locale string
}

func (e *ErrLocaleNotSupported) Error() string {
	return fmt.Sprintf("locale not supported: %s", e.Locale)
}

var (
	// Construction
	ErrDirectoryNotFound    = errors.New("translations directory does not exist")
	ErrInitializationFailed = errors.New("translator initialization failed")

	// File operations
	ErrFailedToWriteFile = errors.New("failed to write translation file")
	ErrLanguageNotLoaded = errors.New("language is not loaded")

	// Parsing
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")

	// Context cancellation errors are separated to allow proper error
	// handling in timeouts.
	ErrParsingCancelled = errors.New("translation parsing cancelled")
	ErrLoadingCancelled = errors.New("loading translation file cancelled")
	ErrSavingCancelled  = errors.New("saving translation file cancelled")
)
