// Package sink delivers encoded icons to their destination: the console as
// base64 text, or the filesystem.
package sink

import (
	"encoding/base64"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/juju/errors"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("sink")

const dataURLPrefix = "data:image/png;base64,"

// Sink receives one encoded PNG at a time.
type Sink interface {
	Emit(name string, png []byte) error
}

// DataURL prints each image as a data:image/png;base64 URL on its own line.
type DataURL struct {
	W io.Writer
}

func (s *DataURL) Emit(name string, png []byte) error {
	_, err := fmt.Fprintf(s.W, "%s%s\n", dataURLPrefix, base64.StdEncoding.EncodeToString(png))
	return errors.Annotatef(err, "could not print %s", name)
}

// Base64 prints each image as bare base64 text on its own line.
type Base64 struct {
	W io.Writer
}

func (s *Base64) Emit(name string, png []byte) error {
	_, err := fmt.Fprintln(s.W, base64.StdEncoding.EncodeToString(png))
	return errors.Annotatef(err, "could not print %s", name)
}

// File writes each image to Dir/name, creating Dir when needed.
type File struct {
	Dir  string
	Mode os.FileMode
}

func (s *File) Emit(name string, png []byte) error {
	if name == "" || filepath.Base(name) != name {
		return errors.NotValidf("file name %q", name)
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Annotatef(err, "could not create %s", dir)
	}
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, png, mode); err != nil {
		return errors.Annotatef(err, "could not write %s", path)
	}
	log.Debugf("wrote %s (%d bytes)", path, len(png))
	return nil
}

// Kinds lists the sink names understood by ForName.
var Kinds = []string{"base64", "dataurl", "file"}

// ForName returns the sink called kind. Text sinks print to w; the file
// sink writes into dir.
func ForName(kind string, w io.Writer, dir string) (Sink, error) {
	switch kind {
	case "dataurl":
		return &DataURL{W: w}, nil
	case "base64":
		return &Base64{W: w}, nil
	case "file":
		return &File{Dir: dir}, nil
	}
	return nil, errors.NotFoundf("sink %q", kind)
}

// Defaults returns every known sink keyed by name.
func Defaults(w io.Writer, dir string) map[string]Sink {
	sinks := make(map[string]Sink, len(Kinds))
	for _, kind := range Kinds {
		s, _ := ForName(kind, w, dir)
		sinks[kind] = s
	}
	return sinks
}

// Names returns the keys of sinks in sorted order.
func Names(sinks map[string]Sink) []string {
	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
