package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	headers := []string{"Name", "Age", "City"}
	table := NewTable(headers)

	if table == nil {
		t.Fatal("NewTable returned nil")
	}

	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}

	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Hex", "HSL"})

	table.AddRow([]string{"#ff0000", "hsl(0.0, 100.0%, 50.0%)"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Add row with fewer columns (should be padded)
	table.AddRow([]string{"#00ff00"})
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected row to be padded to 2 columns, got %q", table.rows[1])
	}

	// Add row with more columns (should be truncated)
	table.AddRow([]string{"#0000ff", "x", "extra"})
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"#", "Hex"})
	table.AddRow([]string{"1", "#ff0000"})
	table.AddRow([]string{"10", "#000000"})

	want := "#   Hex\n" +
		"--  -------\n" +
		"1   #ff0000\n" +
		"10  #000000\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderIgnoresANSIWidth(t *testing.T) {
	table := NewTable([]string{"Swatch", "Hex"})
	table.AddRow([]string{"\x1b[48;2;255;0;0m  \x1b[0m", "#ff0000"})

	lines := strings.Split(table.Render(), "\n")
	if !strings.HasPrefix(lines[1], "------  ") {
		t.Errorf("expected separator sized to header, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "\x1b[0m      #ff0000") {
		t.Errorf("expected swatch padded to header width, got %q", lines[2])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "", want: 0},
		{input: "abc", want: 3},
		{input: "\x1b[38;2;1;2;3mab\x1b[0m", want: 2},
		{input: "50%", want: 3},
	}
	for _, tt := range tests {
		if got := displayWidth(tt.input); got != tt.want {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
