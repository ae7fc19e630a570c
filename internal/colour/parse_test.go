package colour

import (
	"slices"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "hex", input: "#ff8000", want: Color{255, 128, 0}},
		{name: "hex without hash", input: "1e1e2e", want: Color{30, 30, 46}},
		{name: "short hex", input: "#fff", want: Color{255, 255, 255}},
		{name: "functional", input: "rgb(8, 16, 256)", want: Color{8, 16, 256}},
		{name: "functional upper case", input: "RGB(1,2,3)", want: Color{1, 2, 3}},
		{name: "comma triple", input: "256,0,128", want: Color{256, 0, 128}},
		{name: "space triple", input: "  1 2.5 3  ", want: Color{1, 2.5, 3}},
		{name: "empty", input: "", wantErr: true},
		{name: "bad hex", input: "#zzzzzz", wantErr: true},
		{name: "two channels", input: "1,2", wantErr: true},
		{name: "negative channel", input: "-1,2,3", wantErr: true},
		{name: "nan channel", input: "nan,0,0", wantErr: true},
		{name: "infinite channel", input: "rgb(0, +Inf, 0)", wantErr: true},
		{name: "not a number", input: "a,b,c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColors(t *testing.T) {
	content := `# palette
#ff0000
// a comment
; another comment

0,256,0 # green
rgb(0, 0, 256)
`
	got, err := ParseColors(content)
	if err != nil {
		t.Fatalf("ParseColors() error = %v", err)
	}

	want := []Color{{255, 0, 0}, {0, 256, 0}, {0, 0, 256}}
	if !slices.Equal(got, want) {
		t.Errorf("ParseColors() = %v, want %v", got, want)
	}
}

func TestParseColorsReportsLine(t *testing.T) {
	_, err := ParseColors("#ff0000\nnot-a-colour\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); len(got) < 6 || got[:6] != "line 2" {
		t.Errorf("expected error to start with line number, got %q", got)
	}
}
