// Command clipdemo lays out a chart scene with chartlayout and renders the
// clipped annotations to a PNG.
//
// Usage:
//
//	clipdemo [-scene scene.yaml] [-output clip.png] [-width 640] [-height 400] [-lang en] [-v]
//
// Without -scene a built-in scene is used. -width and -height override the
// image size from the scene.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/chartlayout"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene YAML file (default: built-in scene)")
		output    = flag.String("output", "clip.png", "output PNG file")
		width     = flag.Int("width", 0, "image width in pixels (default: from scene)")
		height    = flag.Int("height", 0, "image height in pixels (default: from scene)")
		lang      = flag.String("lang", "en", "language tag for the summary")
		verbose   = flag.Bool("v", false, "log layout diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		chartlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config{
		scene:  *scenePath,
		output: *output,
		lang:   *lang,
		width:  *width,
		height: *height,
	}
	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("clipdemo failed", "err", err)
		os.Exit(1)
	}
}

// config holds the command-line settings for one run. Zero width or height
// keeps the scene's own size.
type config struct {
	scene  string
	output string
	lang   string
	width  int
	height int
}

func run(cfg config, w io.Writer) error {
	tag, err := language.Parse(cfg.lang)
	if err != nil {
		return fmt.Errorf("language %q: %w", cfg.lang, err)
	}
	if cfg.width < 0 || cfg.height < 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidScene, cfg.width, cfg.height)
	}

	scene, err := LoadScene(cfg.scene)
	if err != nil {
		return err
	}
	if cfg.width > 0 {
		scene.Width = cfg.width
	}
	if cfg.height > 0 {
		scene.Height = cfg.height
	}
	output := cfg.output

	img := Render(scene)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	return writeSummary(message.NewPrinter(tag), w, scene, output)
}

func writeSummary(p *message.Printer, w io.Writer, s *Scene, output string) error {
	visible := 0
	for _, it := range s.Items {
		if a, ok := s.Layer.Get(it.id); ok && a.Visible() {
			visible++
		}
	}
	p.Fprintf(w, "%s: %dx%d, %d annotations, %d visible\n",
		output, s.Width, s.Height, len(s.Items), visible)

	if s.Rows.Count() == 0 {
		return nil
	}
	first, last, err := s.Rows.VisibleRange(s.Scroll, s.Viewport.H)
	if err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	p.Fprintf(w, "rows %d-%d of %d visible at scroll %.1f (total height %.1f)\n",
		first, last, s.Rows.Count(), s.Scroll, s.Rows.TotalLength())
	return nil
}
