package buildinfo

import (
	"strings"
	"testing"
)

func TestResolveKeepsStampedValues(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.2.3", "abc123", "2024-12-23T00:00:00Z"
	v, c, d := Resolve()
	if v != "v1.2.3" || c != "abc123" || d != "2024-12-23T00:00:00Z" {
		t.Errorf("Resolve() = %s %s %s", v, c, d)
	}
}

func TestTemplate(t *testing.T) {
	oldV := Version
	t.Cleanup(func() { Version = oldV })
	Version = "v9.9.9"

	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version v9.9.9\n") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(String(), "version: v9.9.9") {
		t.Errorf("String() = %q", String())
	}
}
