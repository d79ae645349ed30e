package codec

import (
	perr "langshift/internal/platform/errors"
)

// Format tags handled by this package
const (
	JSON = "json"
	YAML = "yaml"
	XML  = "xml"
)

// Supports reports whether tag is a structured format with a codec
func Supports(tag string) bool {
	switch tag {
	case JSON, YAML, XML:
		return true
	}
	return false
}

// Decode parses text written in format into a Value.
// Malformed input fails with an ErrorCodeFormat error.
func Decode(text, format string) (Value, error) {
	switch format {
	case JSON:
		return DecodeJSON(text)
	case YAML:
		return DecodeYAML(text)
	case XML:
		return DecodeXML(text)
	}
	return Value{}, perr.WithOp(perr.Validationf("codec: unsupported format %q", format), "decode:"+format)
}

// Encode renders v in format
func Encode(v Value, format string) (string, error) {
	switch format {
	case JSON:
		return EncodeJSON(v), nil
	case YAML:
		return EncodeYAML(v), nil
	case XML:
		return EncodeXML(v), nil
	}
	return "", perr.WithOp(perr.Validationf("codec: unsupported format %q", format), "encode:"+format)
}

// Convert decodes text as from and encodes the result as to
func Convert(text, from, to string) (string, error) {
	v, err := Decode(text, from)
	if err != nil {
		return "", err
	}
	return Encode(v, to)
}
