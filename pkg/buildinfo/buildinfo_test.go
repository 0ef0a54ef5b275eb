package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	s := String()
	if !strings.HasPrefix(s, "v1.2.3\n") {
		t.Errorf("String() = %q, want version first", s)
	}
	for _, want := range []string{"commit: ", "built: ", "go: "} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q", want)
		}
	}
}

func TestTemplate(t *testing.T) {
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version ") {
		t.Errorf("Template() = %q", got)
	}
}
