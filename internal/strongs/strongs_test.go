package strongs

import (
	"testing"
)

// TestDecodePlainText verifies text with no markers comes back as a single
// plain segment equal to the input.
func TestDecodePlainText(t *testing.T) {
	inputs := []string{
		"",
		"And God said, Let there be light: and there was light.",
		"На початку Бог створив Небо та землю.",
		"malformed <h7225> lower, <H> no digits, <H123 unclosed",
	}

	for _, in := range inputs {
		segments := Decode(in)
		if len(segments) != 1 {
			t.Errorf("Decode(%q): expected 1 segment, got %d", in, len(segments))
			continue
		}
		if segments[0].Kind != Plain || segments[0].Value != in {
			t.Errorf("Decode(%q): expected single plain segment equal to input, got %+v", in, segments[0])
		}
	}
}

// TestDecodeMarkers checks ordering and extraction on a tagged verse.
func TestDecodeMarkers(t *testing.T) {
	segments := Decode("In <H7225> the beginning <H7225> God <H430> created")

	wantCodes := []string{"H7225", "H7225", "H430"}
	var gotCodes []string
	lastKind := Reference
	for _, s := range segments {
		if s.Kind == Reference {
			gotCodes = append(gotCodes, s.Value)
		}
		if s.Kind == lastKind && s.Kind == Reference {
			// Adjacent references are only legal with no text between them,
			// which this input does not have.
			t.Errorf("unexpected adjacent reference segments: %+v", segments)
		}
		lastKind = s.Kind
	}

	if len(gotCodes) != len(wantCodes) {
		t.Fatalf("expected %d codes, got %d (%v)", len(wantCodes), len(gotCodes), gotCodes)
	}
	for i := range wantCodes {
		if gotCodes[i] != wantCodes[i] {
			t.Errorf("code %d: expected %s, got %s", i, wantCodes[i], gotCodes[i])
		}
	}

	if segments[0].Kind != Plain || segments[0].Value != "In " {
		t.Errorf("expected leading plain segment 'In ', got %+v", segments[0])
	}
	last := segments[len(segments)-1]
	if last.Kind != Plain || last.Value != " created" {
		t.Errorf("expected trailing plain segment ' created', got %+v", last)
	}
}

// TestRoundTrip asserts Render(Decode(t)) == t for representative inputs.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"no markers here",
		"In <H7225> the beginning <H7225> God <H430> created",
		"<H430>",
		"<H430><G746>",
		"trailing marker <G746>",
		"<H1> leading marker",
		"And God <H430> said <H559>, Let there be light <H216>: and there was light <H216>.",
		"not a marker <X123> but this is <H123>",
	}

	for _, in := range inputs {
		if got := Render(Decode(in)); got != in {
			t.Errorf("round trip failed: %q -> %q", in, got)
		}
	}
}

func TestCodes(t *testing.T) {
	codes := Codes("And God <H430> called <H7121> the light <H216> Day <H3117>")
	want := []string{"H430", "H7121", "H216", "H3117"}
	if len(codes) != len(want) {
		t.Fatalf("expected %d codes, got %v", len(want), codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("code %d: expected %s, got %s", i, want[i], codes[i])
		}
	}

	if got := Codes("nothing tagged"); len(got) != 0 {
		t.Errorf("expected no codes, got %v", got)
	}
}

func TestAdjacentMarkers(t *testing.T) {
	segments := Decode("<H430><G746>")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %+v", segments)
	}
	if segments[0].Value != "H430" || segments[1].Value != "G746" {
		t.Errorf("unexpected segments: %+v", segments)
	}
}

func TestNormalizeCode(t *testing.T) {
	cases := map[string]string{
		"h7225":  "H7225",
		"H7225":  "H7225",
		"g746":   "G746",
		"7225":   "H7225",
		" G746 ": "G746",
		"":       "",
	}
	for in, want := range cases {
		if got := NormalizeCode(in); got != want {
			t.Errorf("NormalizeCode(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestIsCode(t *testing.T) {
	valid := []string{"H7225", "G746", "H1"}
	invalid := []string{"", "7225", "h7225", "X123", "H", "H12a"}

	for _, s := range valid {
		if !IsCode(s) {
			t.Errorf("expected %q to be a valid code", s)
		}
	}
	for _, s := range invalid {
		if IsCode(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
