package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds concurrent file creation in Apply.
const DefaultWorkers = 8

// ApplyOptions tunes Apply.
type ApplyOptions struct {
	Workers int
	Log     logr.Logger
}

// ApplyResult lists what Apply did, in plan order.
type ApplyResult struct {
	CreatedFolders  []string
	ExistingFolders []string
	CreatedFiles    []string
	SkippedFiles    []string
}

type fileOutcome int

const (
	outcomePending fileOutcome = iota
	outcomeCreated
	outcomeSkipped
	outcomeFailed
)

// Apply materializes plan on fsys. Every folder is created before any file,
// and a file's missing parent directories are created along with it.
// Existing folders are fine; existing files are left untouched and reported
// as skipped. A failing path does not stop the others: every failure is
// collected as a *FilesystemError and returned together, ordered by plan
// position, after all paths were attempted.
func Apply(ctx context.Context, fsys afero.Fs, plan *Plan, opts ApplyOptions) (*ApplyResult, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	log := opts.Log

	result := &ApplyResult{}
	var errs error

	for _, folder := range plan.Folders {
		p := filepath.FromSlash(folder)
		exists, err := afero.DirExists(fsys, p)
		if err == nil && exists {
			result.ExistingFolders = append(result.ExistingFolders, folder)
			continue
		}
		if err := fsys.MkdirAll(p, 0755); err != nil {
			errs = multierr.Append(errs, &FilesystemError{Op: "mkdir", Path: folder, Err: err})
			continue
		}
		log.V(1).Info("created folder", "path", folder)
		result.CreatedFolders = append(result.CreatedFolders, folder)
	}

	outcomes := make([]fileOutcome, len(plan.Files))
	fileErrs := make([]error, len(plan.Files))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, file := range plan.Files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = outcomeFailed
				fileErrs[i] = &FilesystemError{Op: "create", Path: file, Err: err}
				return nil
			}
			created, err := createFile(fsys, file)
			switch {
			case err != nil:
				outcomes[i] = outcomeFailed
				fileErrs[i] = err
			case created:
				outcomes[i] = outcomeCreated
			default:
				outcomes[i] = outcomeSkipped
			}
			return nil
		})
	}
	// Workers never return an error; failures are recorded per index.
	_ = g.Wait()

	for i, file := range plan.Files {
		switch outcomes[i] {
		case outcomeCreated:
			log.V(1).Info("created file", "path", file)
			result.CreatedFiles = append(result.CreatedFiles, file)
		case outcomeSkipped:
			log.V(1).Info("file exists, skipped", "path", file)
			result.SkippedFiles = append(result.SkippedFiles, file)
		case outcomeFailed:
			errs = multierr.Append(errs, fileErrs[i])
		}
	}

	if errs != nil {
		log.Info("apply finished with failures", "failed", len(multierr.Errors(errs)))
	}
	return result, errs
}

// createFile creates an empty file at the slash path p unless something is
// already there, creating missing parent directories first. It reports
// whether a new file was created.
func createFile(fsys afero.Fs, p string) (bool, error) {
	native := filepath.FromSlash(p)
	if parent := path.Dir(p); parent != "." {
		if err := fsys.MkdirAll(filepath.FromSlash(parent), 0755); err != nil {
			return false, &FilesystemError{Op: "mkdir", Path: parent, Err: err}
		}
	}
	f, err := fsys.OpenFile(native, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			fi, statErr := fsys.Stat(native)
			if statErr == nil && fi.IsDir() {
				return false, &FilesystemError{Op: "create", Path: p, Err: fmt.Errorf("path exists and is a directory")}
			}
			return false, nil
		}
		return false, &FilesystemError{Op: "create", Path: p, Err: err}
	}
	if err := f.Close(); err != nil {
		return false, &FilesystemError{Op: "close", Path: p, Err: err}
	}
	return true, nil
}
