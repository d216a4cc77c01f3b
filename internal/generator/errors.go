package generator

import "fmt"

// UnsupportedTypeError reports an option whose internal type token is not
// part of the closed vocabulary recognized by MapType. It aborts schema
// generation outright; the Zig config generator accepts unknown tokens
// verbatim and is unaffected.
type UnsupportedTypeError struct {
	Token string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported config option type %q", e.Token)
}

// SectionNotFoundError reports that the generated-section markers could
// not be located in the documentation file: a marker is absent, or the end
// marker occurs before the start marker. The target file is left untouched.
type SectionNotFoundError struct {
	Path   string
	Marker string
}

func (e *SectionNotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("generated section marker %q not found in %s", e.Marker, e.Path)
	}
	return fmt.Sprintf("generated section marker %q not found", e.Marker)
}
