package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateCutsOnRuneBoundaries(t *testing.T) {
	korean := "강아지가 해변에서 즐겁게 뛰어노는 짧은 영상"
	got := truncate(korean, 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 10 {
		t.Errorf("rune count = %d, want 10", n)
	}
}

func TestTruncateLeavesShortValuesAlone(t *testing.T) {
	for _, value := range []string{"", "short", "귀여운 강아지"} {
		if got := truncate(value, 40); got != strings.TrimSpace(value) {
			t.Errorf("truncate(%q) = %q", value, got)
		}
	}
}

func TestRenderTableRightAlignsRequestedColumn(t *testing.T) {
	out := renderTable(
		[]string{"STATUS", "PROJECTS"},
		[][]string{{"completed", "5"}},
		1,
	)
	if !strings.Contains(out, "STATUS") || !strings.Contains(out, "PROJECTS") {
		t.Fatalf("headers missing:\n%s", out)
	}
	// Right alignment pads the narrow count up to the header width.
	if !strings.Contains(out, "      5") {
		t.Errorf("count column not right-aligned:\n%s", out)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"A", "B", "C"},
		[][]string{{"only-one"}},
	)
	if !strings.Contains(out, "only-one") {
		t.Errorf("row value missing:\n%s", out)
	}
}
