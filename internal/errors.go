package internal

import "fmt"

// InputError represents a rejected request: a malformed window or an
// unparseable time expression. The operation is refused with no partial
// output.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StoreError represents a failure reading or writing the event database.
// It is propagated unchanged to the caller; the store is read once per
// invocation and never retried.
type StoreError struct {
	Op   string // "open", "append", "query"
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("event store error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ConfigError represents a failure loading the configuration file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
