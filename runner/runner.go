// Package runner encodes batches of icons and hands each one to its sink.
package runner

import (
	"io"
	"os"

	"github.com/cheggaaa/pb"
	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
	"github.com/op/go-logging"

	"github.com/hwc2357300448/modern-clipboard-manager/manifest"
	"github.com/hwc2357300448/modern-clipboard-manager/pngicon"
	"github.com/hwc2357300448/modern-clipboard-manager/sink"
)

var log = logging.MustGetLogger("runner")

type Runner struct {
	Sinks map[string]sink.Sink
	// Level is the zlib level; New sets pngicon.DefaultCompression.
	Level int

	// Progress shows a progress bar on ProgressOutput (stderr if nil).
	Progress       bool
	ProgressOutput io.Writer
}

func New(sinks map[string]sink.Sink) *Runner {
	return &Runner{Sinks: sinks, Level: pngicon.DefaultCompression}
}

// Run encodes and emits jobs in order. It stops at the first failure.
func (r *Runner) Run(jobs []manifest.Job) error {
	for _, job := range jobs {
		if _, ok := r.Sinks[job.Output]; !ok {
			return errors.NotFoundf("sink %q for icon %s (have %v)", job.Output, job.Name, sink.Names(r.Sinks))
		}
	}

	var bar *pb.ProgressBar
	if r.Progress {
		bar = pb.New(len(jobs))
		bar.SetMaxWidth(100)
		bar.Output = r.ProgressOutput
		if bar.Output == nil {
			bar.Output = os.Stderr
		}
		bar.Start()
		defer bar.FinishPrint("")
	}

	var total int
	for _, job := range jobs {
		n, err := r.runOne(job)
		if err != nil {
			return errors.Annotatef(err, "icon %s", job.Name)
		}
		total += n
		if bar != nil {
			bar.Increment()
		}
	}
	log.Infof("generated %d icon(s), %s total", len(jobs), humanize.Bytes(uint64(total)))
	return nil
}

func (r *Runner) runOne(job manifest.Job) (int, error) {
	b, err := pngicon.EncodeLevel(job.Spec, r.Level)
	if err != nil {
		return 0, err
	}
	if err := r.Sinks[job.Output].Emit(job.Name, b); err != nil {
		return 0, errors.Trace(err)
	}
	log.Infof("%s: %dx%d %s -> %s (%s)", job.Name, job.Spec.Width, job.Spec.Height, job.Spec.Color, job.Output, humanize.Bytes(uint64(len(b))))
	return len(b), nil
}
