// Package manifest reads YAML descriptions of icon batches.
package manifest

import (
	"fmt"
	"io/ioutil"
	"math"
	"strings"

	"github.com/juju/errors"
	"github.com/knetic/govaluate"
	"github.com/op/go-logging"
	"gopkg.in/yaml.v2"

	"github.com/hwc2357300448/modern-clipboard-manager/pngicon"
)

var log = logging.MustGetLogger("manifest")

// DefaultOutput is the sink used by icons that do not name one.
const DefaultOutput = "dataurl"

// Expr is a width or height: either a plain integer or an arithmetic
// expression over the manifest vars, such as "base * 2".
type Expr string

func (e *Expr) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	if v == nil {
		*e = ""
		return nil
	}
	*e = Expr(fmt.Sprint(v))
	return nil
}

// Eval evaluates e and requires a positive integral result.
func (e Expr) Eval(vars map[string]interface{}) (int, error) {
	s := strings.TrimSpace(string(e))
	if s == "" {
		return 0, errors.NotValidf("empty expression")
	}
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(s, expressionFunctions)
	if err != nil {
		return 0, errors.Annotatef(err, "could not parse %q", s)
	}
	result, err := expr.Evaluate(vars)
	if err != nil {
		return 0, errors.Annotatef(err, "could not evaluate %q", s)
	}
	f, ok := result.(float64)
	if !ok {
		return 0, errors.NotValidf("%q evaluates to %v, not a number", s, result)
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errors.NotValidf("%q evaluates to %v, not an integer", s, f)
	}
	return int(f), nil
}

var expressionFunctions = map[string]govaluate.ExpressionFunction{
	// scale(n, factor) rounds n*factor to the nearest pixel, e.g. for HiDPI
	// variants of a tray icon.
	"scale": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, errors.Errorf("scale expects 2 arguments (size, factor)")
		}
		n, ok := args[0].(float64)
		if !ok {
			return nil, errors.Errorf("scale: size must be numeric")
		}
		factor, ok := args[1].(float64)
		if !ok {
			return nil, errors.Errorf("scale: factor must be numeric")
		}
		return math.Round(n * factor), nil
	},
}

// Icon is one entry of the manifest as written in YAML.
type Icon struct {
	Name   string `yaml:"name"`
	Width  Expr   `yaml:"width"`
	Height Expr   `yaml:"height"`
	Color  string `yaml:"color"`
	Output string `yaml:"output,omitempty"`
}

type Manifest struct {
	Vars  map[string]float64 `yaml:"vars,omitempty"`
	Icons []Icon             `yaml:"icons"`
}

// Job is a fully resolved icon ready for encoding.
type Job struct {
	Name   string
	Spec   pngicon.Spec
	Output string
}

func Load(path string) (*Manifest, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "could not read manifest %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Annotatef(err, "manifest %s", path)
	}
	log.Debugf("loaded %d icon(s) from %s", len(m.Icons), path)
	return m, nil
}

func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		if typeErr, ok := err.(*yaml.TypeError); ok {
			for _, msg := range typeErr.Errors {
				log.Warningf("manifest type error: %s", msg)
			}
		}
		return nil, errors.Annotate(err, "could not parse manifest")
	}
	if len(m.Icons) == 0 {
		return nil, errors.NotValidf("manifest without icons")
	}
	return &m, nil
}

// Jobs resolves every icon into a Job, stopping at the first icon that
// does not describe a valid image.
func (m *Manifest) Jobs() ([]Job, error) {
	vars := make(map[string]interface{}, len(m.Vars))
	for k, v := range m.Vars {
		vars[k] = v
	}

	jobs := make([]Job, 0, len(m.Icons))
	seen := make(map[string]bool)
	for i, icon := range m.Icons {
		name := icon.Name
		if name == "" {
			name = fmt.Sprintf("icon-%d.png", i)
		}
		job, err := icon.resolve(name, vars)
		if err != nil {
			return nil, errors.Annotatef(err, "icon %s", name)
		}
		if seen[job.Output+"/"+name] {
			return nil, errors.AlreadyExistsf("icon %s for output %s", name, job.Output)
		}
		seen[job.Output+"/"+name] = true
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (icon *Icon) resolve(name string, vars map[string]interface{}) (Job, error) {
	width, err := icon.Width.Eval(vars)
	if err != nil {
		return Job{}, errors.Annotate(err, "width")
	}
	height, err := icon.Height.Eval(vars)
	if err != nil {
		return Job{}, errors.Annotate(err, "height")
	}
	color, err := pngicon.ParseHexColor(icon.Color)
	if err != nil {
		return Job{}, errors.Trace(err)
	}

	spec := pngicon.Spec{Width: width, Height: height, Color: color}
	if err := spec.Validate(); err != nil {
		return Job{}, err
	}
	output := icon.Output
	if output == "" {
		output = DefaultOutput
	}
	return Job{Name: name, Spec: spec, Output: output}, nil
}

const defaultManifest = `
vars:
  base: 32
icons:
  - name: tray.png
    width: base
    height: base
    color: "#0078D7"
    output: dataurl
  - name: red_tray.png
    width: base
    height: base
    color: "#FF0000"
    output: file
`

// Default is the clipboard manager's own tray icon set: the blue icon
// printed as a data URL and the red icon written to red_tray.png.
func Default() *Manifest {
	m, err := Parse([]byte(defaultManifest))
	if err != nil {
		panic(errors.ErrorStack(err))
	}
	return m
}
