// Command xrdraw draws a picture described by a drawing script.
//
// Usage:
//
//	xrdraw [options] SCRIPT
//
// The image is written to SCRIPT with its extension replaced by .ppm
// unless -i is given. The format of the output is chosen from its
// extension and may be one of .ppm, .pnm, .pam, .png, .bmp, .tif or .tiff. See
// package deedles.dev/xraster/script for the script format.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"deedles.dev/xraster"
	"deedles.dev/xraster/internal/imageio"
	"deedles.dev/xraster/script"
)

type options struct {
	Script    string
	ImagePath string
	SVGPath   string
}

// imagePath returns the output path for the image.
func (o options) imagePath() string {
	if o.ImagePath != "" {
		return o.ImagePath
	}
	return strings.TrimSuffix(o.Script, filepath.Ext(o.Script)) + ".ppm"
}

func run(logger *slog.Logger, opts options) error {
	logger.Debug("checking paths")
	if err := checkScript(opts.Script); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	img := opts.imagePath()
	if err := imageio.CheckPath(img); err != nil {
		return fmt.Errorf("image: %w", err)
	}
	if opts.SVGPath != "" {
		if err := imageio.CheckPath(opts.SVGPath); err != nil {
			return fmt.Errorf("svg: %w", err)
		}
	}

	logger.Debug("parsing script", "path", opts.Script)
	s, err := script.Load(opts.Script)
	if err != nil {
		return fmt.Errorf("load %q: %w", opts.Script, err)
	}

	logger.Debug("rendering", "calls", len(s.Calls), "width", s.Config.Width, "height", s.Config.Height)
	err = imageio.Save(img, s.Render())
	if err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	logger.Info("wrote image", "path", img)

	if opts.SVGPath != "" {
		err = imageio.WriteFile(opts.SVGPath, func(w io.Writer) error { return s.WriteSVG(w) })
		if err != nil {
			return fmt.Errorf("save svg: %w", err)
		}
		logger.Info("wrote svg", "path", opts.SVGPath)
	}

	return nil
}

// checkScript checks that path names an existing regular file with an
// extension.
func checkScript(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%q: %w", path, imageio.ErrIsDir)
	}
	if filepath.Ext(path) == "" {
		return fmt.Errorf("%q: %w", path, imageio.ErrNoExtension)
	}
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Draw a picture using the instructions in a script file.\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] SCRIPT\n\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	var opts options
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "log progress")
	flag.BoolVar(&verbose, "verbose", false, "same as -v")
	flag.StringVar(&opts.ImagePath, "i", "", "output image `path` (default: SCRIPT with a .ppm extension)")
	flag.StringVar(&opts.ImagePath, "image-path", "", "same as -i")
	flag.StringVar(&opts.SVGPath, "svg", "", "also write an SVG preview to `path`")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(flag.CommandLine.Output(), "ERROR: expected exactly one script\n\n")
		flag.Usage()
		os.Exit(2)
	}
	opts.Script = flag.Arg(0)

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	xraster.SetLogger(logger)

	err := run(logger, opts)
	if err != nil {
		logger.Error("draw failed", "err", err)
		os.Exit(1)
	}
}
