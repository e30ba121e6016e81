package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	background = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	frame      = color.NRGBA{R: 0x22, G: 0x33, B: 0x55, A: 0xff}
)

// ComposeShareImage places qr on a framed square canvas with a margin of
// one eighth of its width.
func ComposeShareImage(qr image.Image) image.Image {
	w := qr.Bounds().Dx()
	margin := w / 8
	inner := w + 2*margin
	border := margin / 4
	if border < 2 {
		border = 2
	}

	canvas := imaging.New(inner+2*border, inner+2*border, frame)
	pad := imaging.New(inner, inner, background)
	canvas = imaging.PasteCenter(canvas, pad)
	return imaging.PasteCenter(canvas, qr)
}

func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
