// Package app builds and validates designs and keeps them in a Library. It is
// the layer front ends talk to: it never panics on bad input, and it logs
// build failures and validation problems as it goes.
package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/irfansharif/foldlock/internal/gen"
	"github.com/irfansharif/foldlock/internal/pattern"
	"github.com/irfansharif/foldlock/internal/validate"
)

var buildLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("FOLDLOCK_DEBUG_BUILD") == "1" {
		buildLogger = log.New(os.Stdout, "[build] ", log.Ltime|log.Lmsgprefix)
	}
}

// App encapsulates the design library and the build pipeline.
type App struct {
	Library *Library
}

// New returns an App with an empty library.
func New() *App {
	return &App{Library: NewLibrary()}
}

// build generates and validates one design without storing it.
func build(name string, cfg pattern.Config) (Design, error) {
	p, err := gen.Generate(cfg)
	if err != nil {
		return Design{}, fmt.Errorf("design %q: %w", name, err)
	}
	buildLogger.Printf("%s: %d vertices, %d folds, %d faces", name, len(p.Vertices), len(p.Folds), len(p.Faces))
	report := validate.Pattern(p, cfg)
	logReport(name, report)
	return Design{Name: name, Config: cfg, Pattern: p, Report: report}, nil
}

func logReport(name string, r validate.Report) {
	for _, res := range r.Results() {
		buildLogger.Printf("%s: %s %s (%d errors, %d warnings)", name, res.Name, res.Status, len(res.Errors), len(res.Warnings))
		for _, e := range res.Errors {
			log.Printf("WARNING: %s: %s: %s", name, res.Name, e)
		}
	}
	if !r.Overall {
		log.Printf("WARNING: %s failed validation", name)
	}
}

// Build generates and validates a design and adds it to the library. Config
// errors are returned and nothing is stored; validation failures are stored
// and visible in the design's report.
func (a *App) Build(name string, cfg pattern.Config) (*Design, error) {
	d, err := build(name, cfg)
	if err != nil {
		log.Printf("Failed to build %s: %v", name, err)
		return nil, err
	}
	return a.Library.Add(d), nil
}

// Rebuild regenerates an existing design from a new config. On error the
// stored design is left untouched.
func (a *App) Rebuild(id DesignID, cfg pattern.Config) (*Design, error) {
	old, ok := a.Library.Get(id)
	if !ok {
		return nil, fmt.Errorf("no design with id %d", id)
	}
	d, err := build(old.Name, cfg)
	if err != nil {
		log.Printf("Failed to rebuild %s, keeping previous version: %v", old.Name, err)
		return nil, err
	}
	nd, ok := a.Library.Replace(id, d)
	if !ok {
		return nil, fmt.Errorf("design %d was removed during rebuild", id)
	}
	return nd, nil
}

// BuildAll builds every design concurrently and adds the successful ones to
// the library in input order. The returned error joins every build failure.
func (a *App) BuildAll(specs []DesignSpec) ([]*Design, error) {
	built := make([]Design, len(specs))
	errs := make([]error, len(specs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range specs {
		g.Go(func() error {
			built[i], errs[i] = build(s.Name, s.Config)
			return nil
		})
	}
	_ = g.Wait()

	var out []*Design
	var failed []error
	for i := range specs {
		if errs[i] != nil {
			log.Printf("Failed to build %s: %v", specs[i].Name, errs[i])
			failed = append(failed, errs[i])
			continue
		}
		out = append(out, a.Library.Add(built[i]))
	}
	return out, errors.Join(failed...)
}

// Failed returns the stored designs whose validation failed, in ID order.
func (a *App) Failed() []*Design {
	var out []*Design
	for _, d := range a.Library.Designs() {
		if !d.Report.Overall {
			out = append(out, d)
		}
	}
	return out
}
