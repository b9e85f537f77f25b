// Command xrdemo renders a demonstration picture with every kind of
// figure on a default canvas.
package main

import (
	"flag"
	"log/slog"
	"os"

	"deedles.dev/xraster"
	"deedles.dev/xraster/figure"
	"deedles.dev/xraster/internal/imageio"
)

// demo draws the demonstration picture onto c.
func demo(c *xraster.Canvas) {
	c.Draw(figure.NewTriangle(0, 100, 200, 0, 200, 200), xraster.Cyan)
	c.Draw(figure.NewRectangle(50, 90, 50, 200), xraster.Green)
	c.Draw(figure.NewCircle(100, 100, 50), xraster.Red)
	c.Draw(figure.NewLine(0, 0, 200, 200), xraster.Blue)
	c.Draw(figure.NewLine(100, 0, 100, 200), xraster.Blue)
	c.Draw(figure.NewLine(0, 100, 200, 100), xraster.Blue)
}

func main() {
	output := flag.String("o", "example.ppm", "output `path`")
	workers := flag.Int("workers", 1, "number of goroutines to draw with")
	verbose := flag.Bool("v", false, "log every draw call")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	xraster.SetLogger(logger)

	cfg := xraster.DefaultConfig()
	cfg.Workers = *workers
	c := xraster.New(cfg)
	demo(c)

	err := imageio.Save(*output, c)
	if err != nil {
		logger.Error("cannot save image", "err", err)
		os.Exit(1)
	}
	logger.Info("wrote image", "path", *output, "width", c.Width(), "height", c.Height())
}
