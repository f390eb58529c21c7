package manifest

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hwc2357300448/modern-clipboard-manager/pngicon"
)

func TestExprEval(t *testing.T) {
	vars := map[string]interface{}{"base": float64(32)}
	cases := []struct {
		in  Expr
		out int
	}{
		{"16", 16},
		{"base", 32},
		{"base * 2", 64},
		{"(base + 8) / 2", 20},
		{"scale(base, 1.5)", 48},
	}
	for _, tt := range cases {
		got, err := tt.in.Eval(vars)
		if err != nil {
			t.Errorf("Expr(%q).Eval: unexpected error: %v", tt.in, err)
		} else if got != tt.out {
			t.Errorf("Expr(%q).Eval = %v, want %v", tt.in, got, tt.out)
		}
	}

	for _, in := range []Expr{"", "base / 3", "missing + 1", "base >", "'text'"} {
		if _, err := in.Eval(vars); err == nil {
			t.Errorf("Expr(%q).Eval: expected error", in)
		}
	}
}

func TestDefault(t *testing.T) {
	jobs, err := Default().Jobs()
	if err != nil {
		t.Fatal(err)
	}
	want := []Job{
		{Name: "tray.png", Spec: pngicon.Spec{Width: 32, Height: 32, Color: pngicon.WindowsBlue}, Output: "dataurl"},
		{Name: "red_tray.png", Spec: pngicon.Spec{Width: 32, Height: 32, Color: pngicon.Red}, Output: "file"},
	}
	if len(jobs) != len(want) {
		t.Fatalf("got %d jobs, want %d", len(jobs), len(want))
	}
	for i := range want {
		if jobs[i] != want[i] {
			t.Errorf("job %d = %+v, want %+v", i, jobs[i], want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.yml")
	doc := `
icons:
  - width: 8
    height: "4"
    color: "#00ff00"
`
	if err := ioutil.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	jobs, err := m.Jobs()
	if err != nil {
		t.Fatal(err)
	}
	want := Job{Name: "icon-0.png", Spec: pngicon.Spec{Width: 8, Height: 4, Color: pngicon.Color{G: 0xff}}, Output: DefaultOutput}
	if len(jobs) != 1 || jobs[0] != want {
		t.Errorf("jobs = %+v, want [%+v]", jobs, want)
	}
}

func TestJobsErrorsNameTheIcon(t *testing.T) {
	cases := []struct {
		doc  string
		want string
	}{
		{`
icons:
  - name: bad-color.png
    width: 1
    height: 1
    color: "#zz0000"
`, "bad-color.png"},
		{`
icons:
  - name: zero.png
    width: 0
    height: 1
    color: "#000000"
`, "zero.png"},
		{`
icons:
  - name: expr.png
    width: nope * 2
    height: 1
    color: "#000000"
`, "expr.png"},
		{`
icons:
  - name: dup.png
    width: 1
    height: 1
    color: "#000000"
  - name: dup.png
    width: 2
    height: 2
    color: "#000000"
`, "dup.png"},
	}
	for _, tt := range cases {
		m, err := Parse([]byte(tt.doc))
		if err != nil {
			t.Errorf("Parse: unexpected error: %v", err)
			continue
		}
		_, err = m.Jobs()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Jobs() = %v, want error naming %s", err, tt.want)
		}
	}
}

func TestJobsInvalidDimension(t *testing.T) {
	m, err := Parse([]byte("icons:\n  - {name: a.png, width: 1, height: -4, color: '#000'}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Jobs(); !pngicon.IsInvalidDimension(err) {
		t.Errorf("Jobs() = %v, want invalid dimension", err)
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	for _, doc := range []string{
		"",
		"icons: []",
		"icons:\n  - name: a.png\n    colour: '#000'\n",
		"icons: [",
	} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("Parse(%q): expected error", doc)
		}
	}
}
