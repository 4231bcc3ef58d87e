package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/osuushi/hedra/gizmos"
	"github.com/osuushi/hedra/scene"
	"github.com/osuushi/hedra/shapes"
)

type renderOptions struct {
	scale  float64
	size   float64
	data   bool
	outDir string
	show   bool
}

// Renders each scene to its own PNG in outDir. Scenes are independent, so they
// render concurrently; inline display is serialized so images don't interleave.
func render(ctx context.Context, logger *zap.Logger, opts renderOptions, paths []string) error {
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	var showMu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := filepath.Join(opts.outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".png")
			cv, err := renderScene(path, opts)
			if err != nil {
				return err
			}
			if err := cv.SavePNG(out); err != nil {
				return errors.Wrapf(err, "render %q", path)
			}
			logger.Info("rendered scene",
				zap.String("scene", path),
				zap.String("out", out),
				zap.Int("width", cv.Width()),
				zap.Int("height", cv.Height()),
			)
			if opts.show {
				showMu.Lock()
				defer showMu.Unlock()
				return showCanvas(cv, os.Stdout)
			}
			return nil
		})
	}
	return g.Wait()
}

func renderScene(path string, opts renderOptions) (*gizmos.Canvas, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	polygons := make([]shapes.Polygon, len(s.Entries))
	for i, e := range s.Entries {
		polygons[i] = e.Shape
	}

	cv := gizmos.Fit(opts.scale, polygons...)
	for _, e := range s.Entries {
		cv.DrawShape(e.Shape, opts.data, opts.size)
	}
	for _, e := range s.Entries {
		cv.LabelShape(e.Shape, e.Name)
	}
	return cv, nil
}

func showCanvas(cv *gizmos.Canvas, w io.Writer) error {
	return errors.Wrap(cv.Show(w), "show image")
}
