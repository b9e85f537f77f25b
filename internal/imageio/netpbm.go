package imageio

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/spakin/netpbm"
)

func encodeRawPPM(w io.Writer, m image.Image) error {
	return encodeNetpbm(w, m, &netpbm.EncodeOptions{
		Format:   netpbm.PPM,
		MaxValue: ppmMaxValue,
	})
}

func encodePAM(w io.Writer, m image.Image) error {
	return encodeNetpbm(w, m, &netpbm.EncodeOptions{
		Format:    netpbm.PAM,
		MaxValue:  ppmMaxValue,
		TupleType: "RGB",
	})
}

// encodeNetpbm encodes m with netpbm. netpbm drops some write errors
// and stops reading its sample goroutine at the first one it does see,
// so the writer it is given never fails and the first error from w is
// reported after encoding finishes instead.
func encodeNetpbm(w io.Writer, m image.Image, opts *netpbm.EncodeOptions) error {
	sw := stickyWriter{w: w}
	bw := bufio.NewWriter(&sw)

	err := netpbm.Encode(bw, m, opts)
	if err != nil {
		return fmt.Errorf("encode %v: %w", opts.Format, err)
	}
	bw.Flush()

	if sw.err != nil {
		return fmt.Errorf("write: %w", sw.err)
	}
	return nil
}

// stickyWriter remembers the first error returned by w and discards
// everything written after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) Write(data []byte) (int, error) {
	if sw.err == nil {
		_, sw.err = sw.w.Write(data)
	}
	return len(data), nil
}
