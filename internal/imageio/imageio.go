// Package imageio writes images to files, choosing the encoder from
// the file's extension. Files are replaced atomically, so a failed
// write never leaves a partial file behind.
//
// Besides the plain .ppm written by package ppm, the binary netpbm
// variants are available as .pnm (raw P6) and .pam. Importing this
// package also lets image.Decode read every netpbm format.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"deedles.dev/xraster/ppm"
	"github.com/google/renameio/v2"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	// ErrIsDir is returned for an output path that is a directory.
	ErrIsDir = errors.New("path is a directory")

	// ErrNoExtension is returned for an output path without a file
	// extension.
	ErrNoExtension = errors.New("path has no extension")

	// ErrNoParent is returned when the directory that an output path
	// would be created in does not exist.
	ErrNoParent = errors.New("parent directory does not exist")

	// ErrUnsupportedFormat is returned for an extension that has no
	// encoder.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// EncodeFunc writes m to w in some format.
type EncodeFunc func(w io.Writer, m image.Image) error

// ppmMaxValue is the maximum sample value of every netpbm format
// written by this package.
const ppmMaxValue = ppm.MaxValue

var encoders = map[string]EncodeFunc{
	".ppm":  ppm.Encode,
	".pnm":  encodeRawPPM,
	".pam":  encodePAM,
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

// Encoder returns the encoder for the extension of path. Extensions
// are matched case-insensitively.
func Encoder(path string) (EncodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, fmt.Errorf("%q: %w", path, ErrNoExtension)
	}

	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
	return enc, nil
}

// CheckPath checks that a file could be created at path: path must
// not be a directory, must have an extension, and its parent directory
// must exist.
func CheckPath(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return fmt.Errorf("%q: %w", path, ErrIsDir)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %q: %w", path, err)
	}

	if filepath.Ext(path) == "" {
		return fmt.Errorf("%q: %w", path, ErrNoExtension)
	}

	dir := filepath.Dir(path)
	info, err = os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%q: %w", dir, ErrNoParent)
		}
		return fmt.Errorf("stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q: %w", dir, ErrNoParent)
	}

	return nil
}

// Save writes m to path in the format given by its extension.
func Save(path string, m image.Image) error {
	enc, err := Encoder(path)
	if err != nil {
		return err
	}

	return WriteFile(path, func(w io.Writer) error {
		return enc(w, m)
	})
}

// WriteFile checks path with CheckPath and then atomically replaces it
// with whatever write writes. If write fails, path is left untouched.
func WriteFile(path string, write func(io.Writer) error) error {
	err := CheckPath(path)
	if err != nil {
		return err
	}

	file, err := renameio.NewPendingFile(
		path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0o644),
	)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer file.Cleanup()

	err = write(file)
	if err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}

	err = file.CloseAtomicallyReplace()
	if err != nil {
		return fmt.Errorf("replace %q: %w", path, err)
	}

	return nil
}
