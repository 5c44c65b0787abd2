package textutils

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var encodings = map[string]encoding.Encoding{
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"utf-8":        unicode.UTF8BOM,
	"utf8":         unicode.UTF8BOM,
}

// LookupEncoding returns the text encoding registered under name.
// Names are case-insensitive.
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// SupportedEncodings lists the names LookupEncoding accepts.
func SupportedEncodings() []string {
	return []string{"ISO-8859-1", "latin1", "ISO-8859-15", "windows-1252", "cp1252", "UTF-8", "utf8"}
}
