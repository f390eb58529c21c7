package runner

import (
	"bytes"
	"encoding/base64"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juju/errors"

	"github.com/hwc2357300448/modern-clipboard-manager/manifest"
	"github.com/hwc2357300448/modern-clipboard-manager/pngicon"
	"github.com/hwc2357300448/modern-clipboard-manager/sink"
)

// failingSink rejects every image.
type failingSink struct{}

func (failingSink) Emit(name string, png []byte) error {
	return errors.New("disk full")
}

func TestRunDefaultManifest(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()

	jobs, err := manifest.Default().Jobs()
	if err != nil {
		t.Fatal(err)
	}
	r := New(sink.Defaults(&out, dir))
	r.Progress = true
	r.ProgressOutput = ioutil.Discard
	if err := r.Run(jobs); err != nil {
		t.Fatal(err)
	}

	line := strings.TrimSpace(out.String())
	if !strings.HasPrefix(line, "data:image/png;base64,") {
		t.Fatalf("stdout = %q, want a data URL", line)
	}
	blue, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(line, "data:image/png;base64,"))
	if err != nil {
		t.Fatal(err)
	}
	checkSolid(t, "tray.png", blue, 32, 32, pngicon.WindowsBlue)

	red, err := ioutil.ReadFile(filepath.Join(dir, "red_tray.png"))
	if err != nil {
		t.Fatal(err)
	}
	checkSolid(t, "red_tray.png", red, 32, 32, pngicon.Red)
}

func checkSolid(t *testing.T, name string, b []byte, width, height uint32, want pngicon.Color) {
	t.Helper()
	img, err := pngicon.Inspect(b)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if img.Header.Width != width || img.Header.Height != height {
		t.Errorf("%s: size = %dx%d, want %dx%d", name, img.Header.Width, img.Header.Height, width, height)
	}
	if c, ok := img.SolidColor(); !ok || c != want {
		t.Errorf("%s: SolidColor() = %v, %v, want %v", name, c, ok, want)
	}
}

func TestRunUnknownSink(t *testing.T) {
	var out bytes.Buffer
	jobs := []manifest.Job{{Name: "a.png", Spec: pngicon.Spec{Width: 1, Height: 1}, Output: "clipboard"}}
	err := New(sink.Defaults(&out, t.TempDir())).Run(jobs)
	if !errors.IsNotFound(err) {
		t.Errorf("Run() = %v, want not found", err)
	}
	if out.Len() != 0 {
		t.Errorf("Run() emitted %q before failing", out.String())
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	var out bytes.Buffer
	sinks := map[string]sink.Sink{
		"dataurl": &sink.DataURL{W: &out},
		"broken":  failingSink{},
	}
	jobs := []manifest.Job{
		{Name: "first.png", Spec: pngicon.Spec{Width: 2, Height: 2}, Output: "broken"},
		{Name: "second.png", Spec: pngicon.Spec{Width: 2, Height: 2}, Output: "dataurl"},
	}
	err := New(sinks).Run(jobs)
	if err == nil || !strings.Contains(err.Error(), "first.png") {
		t.Fatalf("Run() = %v, want error naming first.png", err)
	}
	if out.Len() != 0 {
		t.Errorf("second job ran after failure: %q", out.String())
	}
}

func TestRunInvalidSpec(t *testing.T) {
	var out bytes.Buffer
	jobs := []manifest.Job{{Name: "empty.png", Spec: pngicon.Spec{Width: 0, Height: 3}, Output: "dataurl"}}
	if err := New(sink.Defaults(&out, t.TempDir())).Run(jobs); !pngicon.IsInvalidDimension(err) {
		t.Errorf("Run() = %v, want invalid dimension", err)
	}
}
