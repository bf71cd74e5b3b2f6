// Package sanitize neutralizes untrusted free-text input before it is
// validated or stored.
package sanitize

import "strings"

// entities maps each escaped character to its HTML entity.
var entities = map[rune]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#x27;",
	'/':  "&#x2F;",
	'`':  "&#96;",
}

// produced lists every entity String emits. An ampersand that already starts
// one of them is kept as is, which makes String idempotent.
var produced = []string{"&amp;", "&lt;", "&gt;", "&quot;", "&#x27;", "&#x2F;", "&#96;"}

// String trims surrounding whitespace and escapes markup-significant
// characters.
func String(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.ContainsAny(s, "&<>\"'/`") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)
	for i, r := range s {
		if r == '&' && startsWithEntity(s[i:]) {
			b.WriteRune(r)
			continue
		}
		if ent, ok := entities[r]; ok {
			b.WriteString(ent)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Optional sanitizes a pointer field. Nil stays nil.
func Optional(raw *string) *string {
	if raw == nil {
		return nil
	}
	s := String(*raw)
	return &s
}

func startsWithEntity(s string) bool {
	for _, ent := range produced {
		if strings.HasPrefix(s, ent) {
			return true
		}
	}
	return false
}
