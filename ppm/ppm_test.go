package ppm_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"

	"deedles.dev/xraster"
	"deedles.dev/xraster/figure"
	"deedles.dev/xraster/ppm"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	c := xraster.NewCanvas(3, 2, xraster.Black)
	c.SetColor(0, 0, xraster.Red)
	c.SetColor(2, 1, xraster.RGB(1, 2, 3))

	var buf bytes.Buffer
	require.Nil(t, ppm.Encode(&buf, c))
	require.Equal(t, "P3\n3 2\n255\n255 0 0 0 0 0 0 0 0\n0 0 0 0 0 0 1 2 3\n", buf.String())
}

func TestEncodeLineWidth(t *testing.T) {
	c := xraster.NewCanvas(100, 3, xraster.White)

	var buf bytes.Buffer
	require.Nil(t, ppm.Encode(&buf, c))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Equal(t, []string{"P3", "100 3", "255"}, lines[:3])

	samples := 0
	for _, line := range lines[3:] {
		require.LessOrEqual(t, len(line), ppm.MaxLineWidth)
		require.False(t, strings.HasPrefix(line, " "))
		require.False(t, strings.HasSuffix(line, " "))
		samples += len(strings.Fields(line))
	}
	require.Equal(t, 100*3*3, samples)
}

func TestEncodeGeneric(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	img.Set(5, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 0xFF})
	img.Set(6, 5, color.NRGBA{R: 40, G: 50, B: 60, A: 0xFF})

	var buf bytes.Buffer
	require.Nil(t, ppm.Encode(&buf, img))
	require.Equal(t, "P3\n2 1\n255\n10 20 30 40 50 60\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeError(t *testing.T) {
	err := ppm.Encode(failWriter{}, xraster.NewCanvas(4, 4, xraster.White))
	require.ErrorContains(t, err, "disk full")
}

func TestRoundTrip(t *testing.T) {
	c := xraster.Default()
	c.Draw(figure.NewTriangle(0, 100, 200, 0, 200, 200), xraster.Cyan)
	c.Draw(figure.NewCircle(100, 100, 50), xraster.Red)
	c.Draw(figure.NewLine(0, 0, 200, 200), xraster.Blue)

	var buf bytes.Buffer
	require.Nil(t, ppm.Encode(&buf, c))

	img, name, err := image.Decode(&buf)
	require.Nil(t, err)
	require.Equal(t, "ppm", name)
	require.Equal(t, c.Bounds(), img.Bounds())

	for y := range c.Height() {
		for x := range c.Width() {
			require.Equal(t, c.ColorAt(x, y), xraster.Model.Convert(img.At(x, y)), "(%v, %v)", x, y)
		}
	}
}

func TestDecode(t *testing.T) {
	const data = "P3\n# made by hand\n2 1 # two pixels\n15\n15 0 0\n0 15 7"

	img, err := ppm.Decode(strings.NewReader(data))
	require.Nil(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	require.Equal(t, color.RGBA{R: 255, A: 255}, img.At(0, 0))
	require.Equal(t, color.RGBA{G: 255, B: 119, A: 255}, img.At(1, 0))

	cfg, err := ppm.DecodeConfig(strings.NewReader(data))
	require.Nil(t, err)
	require.Equal(t, 2, cfg.Width)
	require.Equal(t, 1, cfg.Height)
}

func TestDecodeEmpty(t *testing.T) {
	img, err := ppm.Decode(strings.NewReader("P3\n0 3\n255\n"))
	require.Nil(t, err)
	require.True(t, img.Bounds().Empty())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"Magic", "P6\n1 1\n255\n", ppm.ErrBadMagic},
		{"MaxValue", "P3\n1 1\n0\n0 0 0\n", ppm.ErrBadHeader},
		{"BigMaxValue", "P3\n1 1\n65535\n0 0 0\n", ppm.ErrBadHeader},
		{"Huge", "P3\n100000 100000\n255\n", ppm.ErrBadHeader},
		{"Wide", "P3\n100000000 0\n255\n", ppm.ErrBadHeader},
		{"Tall", "P3\n0 100000000\n255\n", ppm.ErrBadHeader},
		{"LargeTruncated", "P3\n4096 4096\n255\n1 2 3\n", io.ErrUnexpectedEOF},
		{"Sample", "P3\n1 1\n255\n0 256 0\n", ppm.ErrBadSample},
		{"Negative", "P3\n1 1\n255\n0 -1 0\n", ppm.ErrBadSample},
		{"NotANumber", "P3\n1 x\n255\n", ppm.ErrBadSample},
		{"Truncated", "P3\n2 2\n255\n0 0 0 1 1", io.ErrUnexpectedEOF},
		{"Empty", "", io.ErrUnexpectedEOF},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			img, err := ppm.Decode(strings.NewReader(test.data))
			require.ErrorIs(t, err, test.err)
			require.Nil(t, img)
		})
	}
}
