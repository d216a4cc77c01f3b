package generator

// MapType maps an internal Zig type token to its JSON schema type. The
// vocabulary is closed: any token outside it yields an *UnsupportedTypeError
// naming the offender. Extending the vocabulary means adding a case here,
// keeping the mapping auditable in one place.
func MapType(zigType string) (string, error) {
	switch zigType {
	case "?[]const u8":
		return "string", nil
	case "bool":
		return "boolean", nil
	case "usize":
		return "integer", nil
	}
	return "", &UnsupportedTypeError{Token: zigType}
}
