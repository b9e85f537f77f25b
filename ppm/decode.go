package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
)

func init() {
	image.RegisterFormat("ppm", Magic, Decode, DecodeConfig)
}

var (
	// ErrBadMagic indicates that the data does not start with the plain
	// PPM magic number.
	ErrBadMagic = errors.New("bad magic")

	// ErrBadHeader indicates that the dimensions or the maximum value
	// in the header are invalid.
	ErrBadHeader = errors.New("bad header")

	// ErrBadSample indicates a token that is not a non-negative number,
	// or a sample that is larger than the maximum value declared in the
	// header.
	ErrBadSample = errors.New("bad sample")
)

const (
	// maxPixels limits the size of images that Decode will accept.
	maxPixels = 1 << 24

	// initialPix bounds the buffer that Decode allocates up front.
	// Larger images grow it as their samples are read, so a header
	// alone cannot make Decode allocate much.
	initialPix = 1 << 20
)

type decoder struct {
	br  *bufio.Reader
	tok []byte
	err error
}

type header struct {
	width, height int
	maxval        int
}

// DecodeFile decodes the plain PPM file at path.
func DecodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads a plain PPM image from r. Samples are scaled from the
// maximum value in the header to 8 bits.
func Decode(r io.Reader) (image.Image, error) {
	d := decoder{br: bufio.NewReader(r)}
	img, err := d.decode()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeConfig returns the dimensions of a plain PPM image without
// reading its samples.
func DecodeConfig(r io.Reader) (image.Config, error) {
	d := decoder{br: bufio.NewReader(r)}
	return d.decodeConfig()
}

func (d *decoder) decode() (img *image.RGBA, err error) {
	if d.err != nil {
		return nil, d.err
	}

	defer d.catch(&err)

	h := d.header()
	stride := 4 * h.width
	pix := make([]uint8, 0, min(stride*h.height, initialPix))
	for range h.width * h.height {
		pix = append(pix,
			d.sample(h.maxval),
			d.sample(h.maxval),
			d.sample(h.maxval),
			0xFF,
		)
	}

	return &image.RGBA{
		Pix:    pix,
		Stride: stride,
		Rect:   image.Rect(0, 0, h.width, h.height),
	}, nil
}

func (d *decoder) decodeConfig() (c image.Config, err error) {
	if d.err != nil {
		return image.Config{}, d.err
	}

	defer d.catch(&err)

	h := d.header()
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      h.width,
		Height:     h.height,
	}, nil
}

func (d *decoder) header() header {
	if string(d.token()) != Magic {
		d.throw(ErrBadMagic)
	}

	h := header{
		width:  d.int(),
		height: d.int(),
		maxval: d.int(),
	}
	if (h.maxval < 1) || (h.maxval > MaxValue) {
		d.throw(fmt.Errorf("%w: max value %v", ErrBadHeader, h.maxval))
	}
	if (h.width > maxPixels) || (h.height > maxPixels/max(h.width, 1)) {
		d.throw(fmt.Errorf("%w: %vx%v is too large", ErrBadHeader, h.width, h.height))
	}

	return h
}

func (d *decoder) sample(maxval int) uint8 {
	v := d.int()
	if v > maxval {
		d.throw(fmt.Errorf("%w: %v is larger than %v", ErrBadSample, v, maxval))
	}
	return uint8(v * 0xFF / maxval)
}

func (d *decoder) int() int {
	tok := d.token()
	v, err := strconv.Atoi(string(tok))
	if (err != nil) || (v < 0) {
		d.throw(fmt.Errorf("%w: %q", ErrBadSample, tok))
	}
	return v
}

// token returns the next whitespace separated token, skipping
// comments. The returned slice is only valid until the next call.
func (d *decoder) token() []byte {
	d.tok = d.tok[:0]
	for {
		c, err := d.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(d.tok) > 0 {
					return d.tok
				}
				err = io.ErrUnexpectedEOF
			}
			d.throw(err)
		}

		switch c {
		case '#':
			d.skipLine()
			if len(d.tok) > 0 {
				return d.tok
			}
		case ' ', '\t', '\n', '\v', '\f', '\r':
			if len(d.tok) > 0 {
				return d.tok
			}
		default:
			d.tok = append(d.tok, c)
		}
	}
}

func (d *decoder) skipLine() {
	_, err := d.br.ReadBytes('\n')
	if (err != nil) && !errors.Is(err, io.EOF) {
		d.throw(err)
	}
}

type decoderError struct {
	err error
}

func (d *decoder) throw(err error) {
	if err != nil {
		panic(decoderError{err: err})
	}
}

func (d *decoder) catch(err *error) {
	switch r := recover().(type) {
	case decoderError:
		*err = r.err
		d.err = r.err
	case nil:
	default:
		panic(r)
	}
}
