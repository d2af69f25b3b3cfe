package morse

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"sos", "SOS", "... --- ..."},
		{"lowercase", "sos", "... --- ..."},
		{"word separator", "A B", ".- / -..."},
		{"digits", "73", "--... ...--"},
		{"punctuation", "?/", "..--.. -..-."},
		{"unsupported passes through", "A!B", ".- ! -..."},
		{"double space", "A  B", ".- / / -..."},
		{"leading space", " E", "/ ."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.in); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeSingleSymbols(t *testing.T) {
	for _, r := range Alphabet() {
		want, _ := Pattern(r)
		if got := Encode(string(r)); got != want {
			t.Errorf("Encode(%q) = %q, want %q", r, got, want)
		}
	}
	for _, r := range []rune{'!', '@', '#', '"', '_'} {
		if got := Encode(string(r)); got != string(r) {
			t.Errorf("Encode(%q) = %q, want pass-through", r, got)
		}
	}
}

func TestAlphabetIsBijective(t *testing.T) {
	if Size() != 43 {
		t.Fatalf("alphabet size = %d, want 43", Size())
	}
	seen := make(map[string]rune)
	for _, r := range Alphabet() {
		p, _ := Pattern(r)
		if prev, dup := seen[p]; dup {
			t.Fatalf("pattern %q shared by %q and %q", p, prev, r)
		}
		seen[p] = r
		back, ok := Symbol(p)
		if !ok || back != r {
			t.Errorf("Symbol(%q) = %q, %v; want %q", p, back, ok, r)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"... --- ...", "SOS"},
		{".- / -...", "A B"},
		{"  .-   -... ", "AB"},
		{".- ! -...", "A!B"},
		{"........", "........"},
	}
	for _, tt := range tests {
		if got := Decode(tt.in); got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeInvertsEncode(t *testing.T) {
	for _, s := range []string{"HELLO WORLD", "cq cq de k1abc", "(1, 2) - 3?", "A  B"} {
		if got := Decode(Encode(s)); got != strings.ToUpper(s) {
			t.Errorf("Decode(Encode(%q)) = %q", s, got)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"He11o!! World", "HE11O WORLD"},
		{"what's up?", "WHATS UP?"},
		{"naïve café", "NAVE CAF"},
		{"tab\tand\nnewline", "TABANDNEWLINE"},
		{"(a-b)/c, d.", "(A-B)/C, D."},
	}
	for _, tt := range tests {
		got := Sanitize(tt.in)
		if got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := Sanitize(got); again != got {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", tt.in, got, again)
		}
	}
}

func TestSymbols(t *testing.T) {
	got := Symbols("ab c!1")
	want := []string{"A", "B", "C", "1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Symbols mismatch (-want +got):\n%s", diff)
	}
	if got := Symbols("!! ?"); len(got) != 1 || got[0] != "?" {
		t.Errorf("Symbols(%q) = %v", "!! ?", got)
	}
}

func TestClassify(t *testing.T) {
	ms := time.Millisecond
	presses := []time.Duration{50 * ms, 350 * ms, 199 * ms, 200 * ms}
	if got := Classify(presses, 0); got != ".-.-" {
		t.Errorf("Classify default threshold = %q, want %q", got, ".-.-")
	}
	if got := Classify(presses, 100*ms); got != ".---" {
		t.Errorf("Classify 100ms threshold = %q, want %q", got, ".---")
	}
	if got := Classify(nil, 0); got != "" {
		t.Errorf("Classify(nil) = %q, want empty", got)
	}
}

func TestCheckInput(t *testing.T) {
	tests := []struct {
		target string
		input  string
		want   InputStatus
	}{
		{".-", ".-", InputMatch},
		{".-", " .- ", InputMatch},
		{".-", ".", InputPartial},
		{".-", "", InputPartial},
		{".-", "-", InputMistake},
		{".-", ".--", InputMistake},
	}
	for _, tt := range tests {
		if got := CheckInput(tt.target, tt.input); got != tt.want {
			t.Errorf("CheckInput(%q, %q) = %v, want %v", tt.target, tt.input, got, tt.want)
		}
	}
}

func TestSchedule(t *testing.T) {
	unit := 10 * time.Millisecond
	tones, total := Schedule(".-", unit)
	want := []Tone{
		{Start: 0, Duration: unit},
		{Start: 2 * unit, Duration: 3 * unit},
	}
	if diff := cmp.Diff(want, tones); diff != "" {
		t.Errorf("Schedule mismatch (-want +got):\n%s", diff)
	}
	if total != 6*unit {
		t.Errorf("total = %v, want %v", total, 6*unit)
	}

	if _, total := Schedule("", 0); total != 0 {
		t.Errorf("empty pattern total = %v, want 0", total)
	}
}

func TestScheduleText(t *testing.T) {
	unit := time.Millisecond
	tones := ScheduleText("e e", unit)
	want := []Tone{
		{Start: 0, Duration: unit},
		{Start: 8 * unit, Duration: unit},
	}
	if diff := cmp.Diff(want, tones); diff != "" {
		t.Errorf("word gap mismatch (-want +got):\n%s", diff)
	}

	tones = ScheduleText("ET", unit)
	want = []Tone{
		{Start: 0, Duration: unit},
		{Start: 4 * unit, Duration: 3 * unit},
	}
	if diff := cmp.Diff(want, tones); diff != "" {
		t.Errorf("letter gap mismatch (-want +got):\n%s", diff)
	}

	if got := ScheduleText("!!", unit); len(got) != 0 {
		t.Errorf("unsupported-only text produced %d tones", len(got))
	}
}
