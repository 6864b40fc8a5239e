// Package orchestrator drives the full pipeline: load the registry once,
// walk the working tree, fan out per-file parse/extract/analyze work over a
// worker pool, and fan back in a deterministic, path-sorted report. Rewrites
// (when requested) are applied serially per file afterward, since they have
// no cross-file dependency but do touch the filesystem.
package orchestrator

import (
	"context"
	"os"
	"runtime"
	"sort"

	"github.com/imp-nix/regref/internal/analyze"
	"github.com/imp-nix/regref/internal/errors"
	"github.com/imp-nix/regref/internal/extract"
	"github.com/imp-nix/regref/internal/log"
	"github.com/imp-nix/regref/internal/pathset"
	"github.com/imp-nix/regref/internal/registryload"
	"github.com/imp-nix/regref/internal/rename"
	"github.com/imp-nix/regref/internal/rewrite"
	"github.com/imp-nix/regref/internal/walker"
	"github.com/imp-nix/regref/internal/worker"
)

// FileReport is one file's classified references, plus any parse error that
// prevented extraction.
type FileReport struct {
	Path        string
	ParseError  error
	Classified  []analyze.Classified
}

// BrokenCount returns the number of Broken-verdict references in the report.
func (r FileReport) BrokenCount() int {
	n := 0

	for _, c := range r.Classified {
		if c.Verdict == analyze.Broken {
			n++
		}
	}

	return n
}

// Result aggregates one run of the pipeline.
type Result struct {
	Files     []FileReport
	DirErrors []walker.DirError
}

// TotalBroken sums BrokenCount across every file in the result.
func (r Result) TotalBroken() int {
	n := 0

	for _, f := range r.Files {
		n += f.BrokenCount()
	}

	return n
}

// HasParseErrors reports whether any file failed to parse.
func (r Result) HasParseErrors() bool {
	for _, f := range r.Files {
		if f.ParseError != nil {
			return true
		}
	}

	return false
}

// Config bundles everything the orchestrator needs for one run, independent
// of how those values were sourced (CLI flags vs. test fixtures).
type Config struct {
	Roots             []string
	Extension         string
	ExcludeGlobs      []string
	NoDefaultExcludes bool
	Renames           *rename.Map
	Loader            registryload.Loader
	Logger            log.Logger
	WorkerCount       int
}

// Detect runs the walk/extract/load/analyze stages and returns the
// aggregated, per-path-sorted Result. It does not touch the filesystem
// beyond reading source files.
func Detect(ctx context.Context, cfg Config) (Result, error) {
	valid, err := cfg.Loader.Load(ctx)
	if err != nil {
		return Result{}, errors.WithStackTrace(err)
	}

	paths, dirErrs, err := walker.Walk(walker.Options{
		Roots:             cfg.Roots,
		Extension:         cfg.Extension,
		ExcludeGlobs:      cfg.ExcludeGlobs,
		NoDefaultExcludes: cfg.NoDefaultExcludes,
	}, cfg.Logger)
	if err != nil {
		return Result{}, errors.WithStackTrace(err)
	}

	reports := make([]FileReport, len(paths))

	workerCount := cfg.WorkerCount
	if workerCount < 1 {
		workerCount = runtime.GOMAXPROCS(0)
	}

	pool := worker.NewWorkerPool(workerCount)
	defer pool.Stop()

	for i, path := range paths {
		i, path := i, path

		pool.Submit(func() error {
			reports[i] = analyzeFile(path, valid, cfg.Renames, cfg.Logger)
			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		return Result{}, errors.WithStackTrace(err)
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Path < reports[j].Path })

	return Result{Files: reports, DirErrors: dirErrs}, nil
}

func analyzeFile(path string, valid *pathset.Set, renames *rename.Map, l log.Logger) FileReport {
	contents, err := os.ReadFile(path)
	if err != nil {
		l.Warnf("orchestrator: cannot read %s: %v", path, err)
		return FileReport{Path: path, ParseError: err}
	}

	occurrences, err := extract.Extract(path, contents)
	if err != nil {
		l.Warnf("orchestrator: parse error in %s: %v", path, err)
		return FileReport{Path: path, ParseError: err}
	}

	l.Debugf("orchestrator: %s yielded %d registry references", path, len(occurrences))

	return FileReport{Path: path, Classified: analyze.Analyze(occurrences, valid, renames)}
}

// Plans builds one rewrite.FilePlan per file in result that has at least one
// broken reference carrying a suggestion. Files with nothing to rewrite are
// omitted.
func Plans(result Result) ([]rewrite.FilePlan, error) {
	var plans []rewrite.FilePlan

	for _, report := range result.Files {
		if report.ParseError != nil {
			continue
		}

		hasSuggestion := false

		for _, c := range report.Classified {
			if c.Verdict == analyze.Broken && c.HasSuggestion {
				hasSuggestion = true
				break
			}
		}

		if !hasSuggestion {
			continue
		}

		original, err := os.ReadFile(report.Path)
		if err != nil {
			return nil, errors.WithStackTrace(err)
		}

		plan, err := rewrite.Plan(report.Path, original, report.Classified)
		if err != nil {
			return nil, errors.WithStackTrace(err)
		}

		plans = append(plans, plan)
	}

	return plans, nil
}

// Apply writes every plan to disk. A write failure on one file does not stop
// the remaining plans; every write error is returned, joined into one.
func Apply(plans []rewrite.FilePlan) error {
	var errs []error

	for _, plan := range plans {
		if err := rewrite.Write(plan); err != nil {
			errs = append(errs, errors.Errorf("writing %s: %w", plan.Path, err))
		}
	}

	return errors.Join(errs...)
}
