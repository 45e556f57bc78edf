package diff

import (
	"strings"
	"testing"
)

func TestLines_IdenticalContent(t *testing.T) {
	doc := Fields("name", "Ana", "age", "20")

	if result := Lines(doc, doc, "before", "after"); result != "" {
		t.Errorf("Expected empty diff for identical content, got: %s", result)
	}
}

func TestLines_SingleFieldChange(t *testing.T) {
	before := Fields("name", "Ana", "age", "20", "program", "CS")
	after := Fields("name", "Ana", "age", "21", "program", "CS")

	result := Lines(before, after, "student 3", "student 3 (updated)")

	if !strings.HasPrefix(result, "--- student 3\n+++ student 3 (updated)\n") {
		t.Errorf("Diff should start with labelled headers, got: %s", result)
	}
	if !strings.Contains(result, "-age: 20\n") {
		t.Error("Diff should show removed line with - prefix")
	}
	if !strings.Contains(result, "+age: 21\n") {
		t.Error("Diff should show added line with + prefix")
	}
	if !strings.Contains(result, " name: Ana\n") {
		t.Error("Diff should keep unchanged lines with a space prefix")
	}
	if strings.Contains(result, "-name") || strings.Contains(result, "+name") {
		t.Error("Unchanged lines must not be reported as changes")
	}
}

func TestLines_AddedTrailingField(t *testing.T) {
	before := Fields("name", "Ana")
	after := Fields("name", "Ana", "score", "9.5")

	result := Lines(before, after, "a", "b")
	if !strings.Contains(result, "+score: 9.5\n") {
		t.Errorf("Expected added field, got: %s", result)
	}
}

func TestFields_IgnoresDanglingKey(t *testing.T) {
	if got := Fields("name", "Ana", "age"); got != "name: Ana\n" {
		t.Errorf("unexpected rendering %q", got)
	}
}
