package errors

import "fmt"

// DecodeFailed creates a document decode failure error
func DecodeFailed(format string, err error) *TreeError {
	return Wrap(err, ErrCodeDecodeFailed, fmt.Sprintf("failed to decode %s document", format)).
		WithDetail("format", format)
}

// UnsupportedValue creates an error for a value kind the document model cannot hold
func UnsupportedValue(description string) *TreeError {
	return New(ErrCodeUnsupportedValue, fmt.Sprintf("unsupported value: %s", description))
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *TreeError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *TreeError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ConfigValidation creates a schema validation failure error
func ConfigValidation(err error) *TreeError {
	return Wrap(err, ErrCodeConfigValidation, "configuration failed schema validation")
}

// NodeNotFound creates an error for a key lookup that matched no node
func NodeNotFound(key string) *TreeError {
	return New(ErrCodeNodeNotFound, fmt.Sprintf("no node with key '%s'", key)).
		WithDetail("key", key)
}

// WatchFailed creates a file watch failure error
func WatchFailed(path string, err error) *TreeError {
	return Wrap(err, ErrCodeWatchFailed, fmt.Sprintf("failed to watch %s", path)).
		WithDetail("path", path)
}
