// Package generate runs a full icon generation pass: render every configured
// size, write it to the output directory and optionally record it.
package generate

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-icons/internal/icon"
	"github.com/vovakirdan/snake-icons/internal/output"
	"github.com/vovakirdan/snake-icons/internal/storage"
)

// Recorder stores written files. *storage.Store implements it.
type Recorder interface {
	RecordAsset(a storage.Asset) (int64, error)
}

// Options configures a generation run.
type Options struct {
	Style     icon.Style
	OutputDir string
	Sizes     []int

	Logger   *log.Logger
	Recorder Recorder // Optional
}

// Result describes one generated icon.
type Result struct {
	Size int
	File output.File
}

// Run renders and writes each size in order. It stops at the first failure;
// files written before it are left in place. The context is checked before
// each size.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	results := make([]Result, 0, len(opts.Sizes))
	for _, size := range opts.Sizes {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("generate: interrupted before size %d: %w", size, err)
		}

		img := icon.Render(opts.Style, size)
		path := output.IconPath(opts.OutputDir, size)

		f, err := output.WritePNG(path, img)
		if err != nil {
			return results, fmt.Errorf("generate: size %d: %w", size, err)
		}
		logger.Info("wrote icon", "size", size, "path", f.Path, "bytes", f.Bytes)

		if opts.Recorder != nil {
			if _, err := opts.Recorder.RecordAsset(storage.Asset{
				Style:  opts.Style.ID,
				Size:   size,
				Path:   f.Path,
				SHA256: f.SHA256,
				Bytes:  f.Bytes,
			}); err != nil {
				return results, fmt.Errorf("generate: size %d: %w", size, err)
			}
			logger.Debug("recorded icon", "size", size, "sha256", f.SHA256)
		}

		results = append(results, Result{Size: size, File: f})
	}

	return results, nil
}
