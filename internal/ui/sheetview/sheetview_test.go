package sheetview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFrameDimensions(t *testing.T) {
	out := Frame("Results", []string{"row one", "row two"}, 40, 6, false)

	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("rendered %d rows, want 6", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 40 {
			t.Errorf("row %d width = %d, want 40", i, w)
		}
	}
}

func TestFrameShowsTitleAndHandle(t *testing.T) {
	out := Frame("Bookmarks", nil, 40, 4, false)
	plain := ansi.Strip(out)

	if !strings.Contains(plain, "Bookmarks") {
		t.Error("title missing from frame")
	}
	if !strings.Contains(plain, "━━━") {
		t.Error("grab handle missing from frame")
	}
}

func TestFrameSingleRowIsJustHandle(t *testing.T) {
	out := Frame("Results", []string{"row"}, 40, 1, false)
	if strings.Count(out, "\n") != 0 {
		t.Error("height 1 should render exactly the top border")
	}
}

func TestFrameTooNarrow(t *testing.T) {
	if out := Frame("x", nil, 4, 3, false); out != "" {
		t.Errorf("tiny width should render empty, got %q", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits untouched", "harbor", 10, "harbor"},
		{"cut with ellipsis", "a very long place name", 10, "a very lo…"},
		{"zero width", "anything", 0, ""},
		{"wide runes respected", "日本語テキスト", 7, "日本語…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateStyled(t *testing.T) {
	styled := "\x1b[1mvery important place\x1b[0m"
	got := Truncate(styled, 10)
	if w := ansi.StringWidth(got); w > 10 {
		t.Errorf("styled truncate width = %d, want <= 10", w)
	}
	if !strings.Contains(got, "…") {
		t.Error("styled truncate should append ellipsis")
	}
}
