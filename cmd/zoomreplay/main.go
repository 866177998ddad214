// Command zoomreplay replays a recorded gesture script through a zoom viewer.
//
// It prints the CSS transform of every step and, when an image is given,
// renders each step to a PNG frame.
//
//	zoomreplay -script pinch.yaml
//	zoomreplay -script pinch.yaml -image photo.jpg -out frames -workers 4
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gogpu/zoom"
	"github.com/gogpu/zoom/render"
	"github.com/gogpu/zoom/script"
	"golang.org/x/sync/errgroup"
)

type config struct {
	script  string
	image   string
	out     string
	interp  string
	workers int
	legacy  bool
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.script, "script", "", "gesture script (.yaml, .yml or .json)")
	flag.StringVar(&cfg.image, "image", "", "source image to render each frame from")
	flag.StringVar(&cfg.out, "out", "frames", "output directory for rendered frames")
	flag.StringVar(&cfg.interp, "interp", "bilinear", "interpolation: nearest, approx, bilinear, catmullrom")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "parallel frame renderers")
	flag.BoolVar(&cfg.legacy, "legacy-delta", false, "force legacy touch delta arithmetic")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	zoom.SetLogger(logger)

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		logger.Error("zoomreplay failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, w io.Writer) error {
	if cfg.script == "" {
		return errors.New("missing -script")
	}
	s, err := script.LoadFile(cfg.script)
	if err != nil {
		return err
	}
	if cfg.legacy {
		s.LegacyDelta = true
	}

	frames, err := script.Replay(s, s.NewViewer())
	if err != nil {
		return err
	}
	for _, f := range frames {
		fmt.Fprintf(w, "%04d %-6s %-6s scale=%g %s\n",
			f.Index, f.Op, f.State.Mode, f.State.Scale, f.Transform.CSS())
	}

	if cfg.image == "" {
		return nil
	}
	interp, err := render.ParseInterp(cfg.interp)
	if err != nil {
		return err
	}
	src, err := render.LoadImage(cfg.image)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return renderFrames(ctx, cfg, s, src, frames, interp)
}

// renderFrames writes frame-NNNN.png for every frame, cfg.workers at a time.
func renderFrames(ctx context.Context, cfg config, s *script.Script, src image.Image, frames []script.Frame, interp render.Interp) error {
	width, height := s.Width, s.Height
	if width <= 0 || height <= 0 {
		width, height = src.Bounds().Dx(), src.Bounds().Dy()
	}

	g, ctx := errgroup.WithContext(ctx)
	if cfg.workers > 0 {
		g.SetLimit(cfg.workers)
	}

	for _, f := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dst := render.NewCanvas(width, height)
			err := render.Frame(dst, src, f.Transform,
				render.WithInterp(interp),
				render.WithBackground(color.Black))
			if err != nil {
				return fmt.Errorf("frame %d: %w", f.Index, err)
			}
			path := filepath.Join(cfg.out, fmt.Sprintf("frame-%04d.png", f.Index))
			return render.SavePNG(path, dst)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	zoom.Logger().Info("frames rendered", "count", len(frames), "dir", cfg.out)
	return nil
}
