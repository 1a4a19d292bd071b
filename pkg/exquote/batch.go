package exquote

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/exquote-go/pkg/exquote/models"
	"github.com/ukaji3/exquote-go/pkg/exquote/parser"
)

// CollectFiles lists the workbooks directly inside dir, sorted by name.
// Office lock files ("~$...") and non-workbook files are skipped.
func CollectFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsWorkbookName(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ExpandPaths replaces every directory in paths with the workbooks it holds.
// Plain files are kept as given, even when they do not look like workbooks,
// so that the batch reports them.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}
		files, err := CollectFiles(p)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", p, err)
		}
		out = append(out, files...)
	}
	return out, nil
}

// ExtractAll extracts every file concurrently and returns results in input
// order. A file that cannot be read is reported in its FileQuote.Error and
// does not stop the batch. The only error returned is ctx's.
func ExtractAll(ctx context.Context, paths []string, opts Options, logger *zap.Logger) (*models.BatchResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	result := &models.BatchResult{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Files:     make([]models.FileQuote, len(paths)),
	}
	logger = logger.With(zap.String("run_id", result.RunID))
	logger.Info("batch started", zap.Int("files", len(paths)), zap.Int("workers", opts.WorkerCount()))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.WorkerCount())

	var done atomic.Int64
	total := len(paths)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result.Files[i] = extractOne(path, opts, logger)
			n := done.Add(1)
			logger.Info("progress", zap.String("done", fmt.Sprintf("%d/%d", n, total)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("batch finished",
		zap.Int("files", total),
		zap.Int("failed", len(result.Failed())),
		zap.Duration("elapsed", time.Since(result.StartedAt)))
	return result, nil
}

func extractOne(path string, opts Options, logger *zap.Logger) models.FileQuote {
	log := logger.With(zap.String("path", path))
	log.Debug("extracting")

	fq, err := Extract(path, opts)
	if err != nil {
		log.Warn("extraction failed", zap.Error(err))
		return models.FileQuote{
			Path:     path,
			BookName: filepath.Base(path),
			Error:    err.Error(),
		}
	}
	for _, s := range fq.Sheets {
		log.Debug("sheet extracted",
			zap.String("sheet", s.Name),
			zap.Int("start_row", s.StartRow),
			zap.Int("products", len(s.Products)),
			zap.Bool("header_complete", s.Header.Complete()))
	}
	return *fq
}
