// Package b64 holds the Base64 helpers shared by the handlers.
//
// IsEncoded is the single predicate that decides whether a query value is
// treated as Base64 or as literal text. The redirect and HTML endpoints both
// go through Resolve so their rules cannot drift apart.
package b64

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalid is returned by Decode for malformed input and for input whose
// decoded bytes are not UTF-8 text.
var ErrInvalid = errors.New("invalid base64 data")

// decode is the one place input is checked and decoded.
func decode(s string) ([]byte, bool) {
	// encoding/base64 silently skips CR and LF.
	if s == "" || strings.ContainsAny(s, "\r\n") {
		return nil, false
	}

	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}

	return decoded, true
}

// IsEncoded reports whether s is well-formed standard Base64 with correct
// padding. The empty string is not considered encoded.
func IsEncoded(s string) bool {
	_, ok := decode(s)
	return ok
}

// Encode returns the standard Base64 encoding of the bytes of s.
func Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Decode decodes standard Base64 text. The empty string decodes to the
// empty string.
func Decode(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	decoded, ok := decode(s)
	if !ok {
		return "", ErrInvalid
	}
	if !utf8.Valid(decoded) {
		return "", errors.Wrap(ErrInvalid, "decoded bytes are not UTF-8")
	}

	return string(decoded), nil
}

// Resolve returns the decoded bytes when s is Base64, otherwise s unchanged.
// The bytes are passed on as they are; they are never re-encoded.
func Resolve(s string) string {
	decoded, ok := decode(s)
	if !ok {
		return s
	}

	return string(decoded)
}
