package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Level", "Accuracy", "Combo"}
	rows := [][]string{
		{"1-back", "93%", "12"},
		{"12-back", "8%", "3"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Level    Accuracy  Combo" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "1-back        93%     12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "12-back        8%      3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableCountsWideRunes(t *testing.T) {
	lines := formatTable([]string{"关卡", "X"}, [][]string{{"a", "1"}}, nil)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "a     1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}
