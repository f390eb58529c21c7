package pngicon

import "testing"

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in  string
		out Color
	}{
		{"#0078D7", WindowsBlue},
		{"0078d7", WindowsBlue},
		{"#FF0000", Red},
		{"#f00", Red},
		{" #abc ", Color{R: 0xaa, G: 0xbb, B: 0xcc}},
	}
	for _, tt := range cases {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): unexpected error: %v", tt.in, err)
		} else if got != tt.out {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.out)
		}
	}

	for _, in := range []string{"", "#12345", "#GGGGGG", "#1234567", "blue"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", in)
		}
	}
}

func TestNewColor(t *testing.T) {
	c, err := NewColor(0, 120, 215)
	if err != nil || c != WindowsBlue {
		t.Errorf("NewColor(0, 120, 215) = %v, %v", c, err)
	}
	if _, err := NewColor(255, 255, 255); err != nil {
		t.Errorf("NewColor(255, 255, 255): unexpected error: %v", err)
	}

	_, err = NewColor(0, 256, 0)
	ce, ok := err.(*ColorComponentError)
	if !ok || ce.Channel != "green" || ce.Value != 256 {
		t.Errorf("NewColor(0, 256, 0) error = %v", err)
	}
}

func TestColorString(t *testing.T) {
	if s := WindowsBlue.String(); s != "#0078D7" {
		t.Errorf("WindowsBlue.String() = %q", s)
	}
}
