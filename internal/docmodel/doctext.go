package docmodel

import (
	"encoding/json"
	"strings"
)

// DocText is the cleaned documentation prose for one tagged section, or a
// marker that no documentation was found for that section.
type DocText struct {
	text    string
	missing bool
}

// Documented wraps cleaned documentation prose.
func Documented(text string) DocText {
	return DocText{text: text}
}

// NoDoc returns the missing-documentation value for the given section tag.
// Its rendered form is the fixed placeholder " NO <TAG> " (e.g. " NO SUMMARY ")
// that downstream renderers test for.
func NoDoc(tag string) DocText {
	return DocText{text: " NO " + strings.ToUpper(tag) + " ", missing: true}
}

// Missing reports whether no documentation was found for the section.
func (d DocText) Missing() bool {
	return d.missing
}

// String returns the cleaned prose, or the placeholder when missing.
func (d DocText) String() string {
	return d.text
}

// MarshalJSON emits the same string form as String.
func (d DocText) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.text)
}

// MarshalYAML emits the same string form as String.
func (d DocText) MarshalYAML() (interface{}, error) {
	return d.text, nil
}
