// Command icongen generates solid-color PNG tray icons.
//
// By default it prints a 32x32 Windows-blue icon as a data URL. Use -out
// file to write it to disk instead, -manifest to generate a batch, -defaults
// to regenerate the clipboard manager's own icons, and -inspect to check an
// existing file.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/hwc2357300448/modern-clipboard-manager/manifest"
	"github.com/hwc2357300448/modern-clipboard-manager/pngicon"
	"github.com/hwc2357300448/modern-clipboard-manager/runner"
	"github.com/hwc2357300448/modern-clipboard-manager/sink"
)

var (
	width    = flag.Int("width", 32, "icon width in pixels")
	height   = flag.Int("height", 32, "icon height in pixels")
	color    = flag.String("color", pngicon.WindowsBlue.String(), "icon color as #RRGGBB")
	out      = flag.String("out", manifest.DefaultOutput, "output: "+strings.Join(sink.Kinds, ", "))
	dir      = flag.String("dir", ".", "directory for -out file")
	name     = flag.String("name", "tray.png", "file name for -out file")
	level    = flag.Int("level", pngicon.DefaultCompression, "zlib compression level (-1 for default, 0-9)")
	manif    = flag.String("manifest", "", "path to a YAML icon manifest")
	defaults = flag.Bool("defaults", false, "generate the built-in tray icon set")
	inspect  = flag.String("inspect", "", "path to a PNG file to verify and describe")
	progress = flag.Bool("progress", false, "show a progress bar on stderr")
	logLevel = flag.String("loglevel", "", "log level (DEBUG, INFO, WARNING, ERROR); defaults to $"+runner.LogLevelEnv+" or INFO")
	verbose  = flag.Bool("v", false, "shorthand for -loglevel DEBUG")
)

func main() {
	flag.Parse()
	if *verbose {
		*logLevel = "DEBUG"
	}
	check(runner.ConfigureLogging(*logLevel))

	if *inspect != "" {
		inspectFile(*inspect)
		return
	}

	var jobs []manifest.Job
	switch {
	case *manif != "":
		m, err := manifest.Load(*manif)
		check(err)
		jobs, err = m.Jobs()
		check(err)
	case *defaults:
		var err error
		jobs, err = manifest.Default().Jobs()
		check(err)
	default:
		c, err := pngicon.ParseHexColor(*color)
		check(err)
		jobs = []manifest.Job{{
			Name:   *name,
			Spec:   pngicon.Spec{Width: *width, Height: *height, Color: c},
			Output: *out,
		}}
	}

	r := runner.New(sink.Defaults(os.Stdout, *dir))
	r.Level = *level
	r.Progress = *progress
	check(r.Run(jobs))
}

func inspectFile(path string) {
	b, err := ioutil.ReadFile(path)
	check(err)
	img, err := pngicon.Inspect(b)
	check(err)

	h := img.Header
	fmt.Printf("%s: %s\n", path, humanize.Bytes(uint64(len(b))))
	fmt.Printf("  size=%dx%d depth=%d color=%d compression=%d filter=%d interlace=%d\n",
		h.Width, h.Height, h.BitDepth, h.ColorType, h.Compression, h.Filter, h.Interlace)
	for _, c := range img.Chunks {
		fmt.Printf("  %s len=%d crc=%08x\n", c.Type, len(c.Data), c.CRC())
	}
	if c, ok := img.SolidColor(); ok {
		fmt.Printf("  solid %s\n", c)
	} else {
		fmt.Println("  not a solid color")
	}
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
