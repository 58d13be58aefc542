// Package strongs parses verse text carrying inline Strong's markers.
//
// The wire format embeds a lexicon code in angle brackets immediately after
// the annotated word: "In the beginning <H7225> God <H430> created". Decode
// splits such text into plain and reference segments; Render is the exact
// inverse.
package strongs

import (
	"regexp"
	"strings"
)

// markerRe matches a well-formed inline marker. Anything that does not match
// exactly (lowercase prefix, missing digits, unclosed bracket) stays part of
// the surrounding plain text.
var markerRe = regexp.MustCompile(`<([HG]\d+)>`)

var codeRe = regexp.MustCompile(`^[HG]\d+$`)

// SegmentKind discriminates Segment values.
type SegmentKind int

const (
	// Plain is a run of ordinary verse text.
	Plain SegmentKind = iota
	// Reference is a lexicon code extracted from a marker.
	Reference
)

// Segment is one piece of decoded verse text. For Plain segments Value is the
// text run; for Reference segments Value is the code without delimiters
// ("H7225").
type Segment struct {
	Kind  SegmentKind
	Value string
}

// Decode splits text into an ordered sequence of segments. It is total: any
// input produces a valid sequence, and text without markers comes back as a
// single plain segment equal to the input. Empty plain runs between adjacent
// markers are dropped; Render still reconstructs the original text exactly.
func Decode(text string) []Segment {
	matches := markerRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: Plain, Value: text}}
	}

	segments := make([]Segment, 0, 2*len(matches)+1)
	pos := 0
	for _, m := range matches {
		if m[0] > pos {
			segments = append(segments, Segment{Kind: Plain, Value: text[pos:m[0]]})
		}
		segments = append(segments, Segment{Kind: Reference, Value: text[m[2]:m[3]]})
		pos = m[1]
	}
	if pos < len(text) {
		segments = append(segments, Segment{Kind: Plain, Value: text[pos:]})
	}

	return segments
}

// Render is the inverse of Decode: references are re-delimited as <CODE> and
// everything is concatenated in order, so Render(Decode(t)) == t.
func Render(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Kind == Reference {
			b.WriteByte('<')
			b.WriteString(s.Value)
			b.WriteByte('>')
		} else {
			b.WriteString(s.Value)
		}
	}
	return b.String()
}

// Codes returns the reference codes of text in order of appearance.
func Codes(text string) []string {
	matches := markerRe.FindAllStringSubmatch(text, -1)
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		codes = append(codes, m[1])
	}
	return codes
}

// NormalizeCode upper-cases a user-typed code and, when only digits were
// given, assumes Hebrew — the reader UI defaults bare numbers to the H prefix.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return code
	}
	if code[0] != 'H' && code[0] != 'G' {
		code = "H" + code
	}
	return code
}

// IsCode reports whether s is a well-formed lexicon code after normalization.
func IsCode(s string) bool {
	return codeRe.MatchString(s)
}
