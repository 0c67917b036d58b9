// Package ingest discovers invoice documents on the local filesystem and
// feeds them to the processing queue.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/invoiceworks/invoice-pipeline/constants"
	"github.com/invoiceworks/invoice-pipeline/internal/async"
)

type FileResult struct {
	Path string
	Err  string
}

type DirStats struct {
	Scanned uint32
	Matched uint32
	Queued  uint32
	Failed  uint32
}

// Enqueuer accepts discovered jobs. Satisfied by async.ProcessorQueue.
type Enqueuer interface {
	Enqueue(ctx context.Context, job async.Job) error
}

type Walker struct {
	Queue  Enqueuer
	Logger *slog.Logger
}

func NewWalker(queue Enqueuer, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{Queue: queue, Logger: logger}
}

// WalkDirectory walks root, filters by includeExts (or the default allowed
// set), skips hidden entries if requested, and enqueues each matching file.
// Returns per-file results plus aggregate stats.
func (w *Walker) WalkDirectory(ctx context.Context, root string, includeExts []string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	// Build ext set
	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		for ext := range constants.AllowedExtensions {
			exts[ext] = struct{}{}
		}
	} else {
		for _, e := range includeExts {
			e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, ok := exts[ext]; !ok {
			return nil
		}
		stats.Matched++

		if err := w.Queue.Enqueue(ctx, async.Job{Path: path, FileName: filepath.Base(path)}); err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		results = append(results, FileResult{Path: path})
		stats.Queued++
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	w.Logger.Info("directory walk complete",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"queued", stats.Queued,
		"failed", stats.Failed,
	)
	return results, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
