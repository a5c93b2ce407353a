package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func newTest(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewWith(strings.NewReader(input), &out), &out
}

func TestAsk(t *testing.T) {
	p, out := newTest("  Acme Shop  \n")

	got, err := p.Ask("Project name")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Acme Shop" {
		t.Errorf("Ask = %q, want %q", got, "Acme Shop")
	}
	if !strings.Contains(out.String(), "? Project name: ") {
		t.Errorf("prompt output = %q", out.String())
	}
}

func TestAsk_EOF(t *testing.T) {
	p, _ := newTest("")
	if _, err := p.Ask("Project name"); err == nil {
		t.Fatal("expected error on exhausted input")
	}
}

func TestAskDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty answer returns default", "\n", "npm"},
		{"explicit answer wins", "pnpm\n", "pnpm"},
		{"whitespace-only answer returns default", "   \n", "npm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTest(tt.input)
			got, err := p.AskDefault("Package manager", "npm")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("AskDefault = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "[npm]") {
				t.Errorf("prompt missing default hint: %q", out.String())
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
		wantHint   string
	}{
		{"yes", "y\n", false, true, "[y/N]"},
		{"yes word", "YES\n", false, true, "[y/N]"},
		{"no", "n\n", true, false, "[Y/n]"},
		{"empty takes default yes", "\n", true, true, "[Y/n]"},
		{"empty takes default no", "\n", false, false, "[y/N]"},
		{"garbage takes default", "maybe\n", true, true, "[Y/n]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTest(tt.input)
			got, err := p.Confirm("Continue", tt.defaultYes)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Confirm = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), tt.wantHint) {
				t.Errorf("prompt missing %q hint: %q", tt.wantHint, out.String())
			}
		})
	}
}

func TestSelect(t *testing.T) {
	p, out := newTest("2\n")

	got, err := p.Select("Pick one", []string{"alpha", "beta", "gamma"})
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("Select = %d, want 1", got)
	}

	s := out.String()
	for _, want := range []string{"1. alpha", "2. beta", "3. gamma", "? Pick one (1-3): "} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

func TestSelect_RetriesInvalidInput(t *testing.T) {
	p, out := newTest("0\nnope\n7\n3\n")

	got, err := p.Select("Pick one", []string{"alpha", "beta", "gamma"})
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("Select = %d, want 2", got)
	}

	s := out.String()
	if got := strings.Count(s, "Please enter a number between 1 and 3."); got != 3 {
		t.Errorf("retry message printed %d times, want 3", got)
	}
	// The menu itself is printed once, not per retry.
	if got := strings.Count(s, "1. alpha"); got != 1 {
		t.Errorf("menu printed %d times, want 1", got)
	}
}
