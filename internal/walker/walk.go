// Package walker enumerates working-tree files matching an extension filter
// and exclusion globs: a depth-first, deterministic traversal that never
// follows symlinks and never aborts on a single unreadable directory.
package walker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-zglob"

	"github.com/imp-nix/regref/internal/errors"
	"github.com/imp-nix/regref/internal/log"
)

// isDefaultExcluded matches directory basenames the walker skips unless
// Options.NoDefaultExcludes is set: anything starting with "." or "_".
func isDefaultExcluded(basename string) bool {
	return strings.HasPrefix(basename, ".") || strings.HasPrefix(basename, "_")
}

// Options configures one walk.
type Options struct {
	// Roots are the directories to walk. Defaults to {"."} if empty.
	Roots []string

	// Extension is the canonical source-file extension to yield, including
	// the leading dot (e.g. ".nix").
	Extension string

	// ExcludeGlobs are user-supplied file-level exclusion patterns, matched
	// with zglob against the path as seen from each root.
	ExcludeGlobs []string

	// NoDefaultExcludes disables the "." / "_" prefixed directory skip.
	NoDefaultExcludes bool
}

// DirError records a directory the walker could not read; it is reported to
// the caller's logger but never aborts the walk.
type DirError struct {
	Path string
	Err  error
}

// Walk traverses Options.Roots depth-first, directory entries sorted by name,
// and returns every file path matching Extension and not excluded. Directory
// read errors are logged via l and collected in the returned DirError slice;
// they do not stop traversal of sibling directories.
func Walk(opts Options, l log.Logger) ([]string, []DirError, error) {
	roots := opts.Roots
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var (
		files    []string
		dirErrs  []DirError
		seen     = make(map[string]bool)
	)

	for _, root := range roots {
		if err := walkOne(root, opts, l, &files, &dirErrs); err != nil {
			return nil, dirErrs, errors.WithStackTrace(err)
		}
	}

	unique := files[:0]
	for _, f := range files {
		if seen[f] {
			continue
		}

		seen[f] = true
		unique = append(unique, f)
	}

	sort.Strings(unique)

	return unique, dirErrs, nil
}

func walkOne(root string, opts Options, l log.Logger, files *[]string, dirErrs *[]DirError) error {
	info, err := os.Lstat(root)
	if err != nil {
		return errors.WithStackTrace(err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		l.Warnf("walker: skipping symlink root %s", root)
		return nil
	}

	if !info.IsDir() {
		if matches(root, opts) {
			*files = append(*files, root)
		}

		return nil
	}

	return walkDir(root, opts, l, files, dirErrs)
}

func walkDir(dir string, opts Options, l log.Logger, files *[]string, dirErrs *[]DirError) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		l.Warnf("walker: cannot read directory %s: %v", dir, err)
		*dirErrs = append(*dirErrs, DirError{Path: dir, Err: err})

		return nil
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}

		if entry.IsDir() {
			if !opts.NoDefaultExcludes && isDefaultExcluded(entry.Name()) {
				continue
			}

			if err := walkDir(path, opts, l, files, dirErrs); err != nil {
				return err
			}

			continue
		}

		if matches(path, opts) {
			*files = append(*files, path)
		}
	}

	return nil
}

func matches(path string, opts Options) bool {
	if opts.Extension != "" && filepath.Ext(path) != opts.Extension {
		return false
	}

	for _, pattern := range opts.ExcludeGlobs {
		if ok, _ := zglob.Match(pattern, path); ok {
			return false
		}
	}

	return true
}
