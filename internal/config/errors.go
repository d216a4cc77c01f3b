package config

import "fmt"

// ParseError reports a descriptor document that does not match the
// expected shape: unreadable syntax, a missing "options" field, or a
// record with the wrong value kind. The underlying decoder error, when
// there is one, is available through Unwrap.
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid options document %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid options document %s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
