package imagepkg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/deckanalyzer/internal/deck"
)

// ErrEmptyDeck is returned when there is no card to put in a QR code.
var ErrEmptyDeck = errors.New("deck has no cards")

const (
	MinQRSize = 128
	MaxQRSize = 2048
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return pngBytes, nil
}

// GenerateQRImage returns an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}

// DeckQRPNG renders a share image whose QR code holds the decklist text of
// d, so it can be scanned back into a list Parse accepts.
func DeckQRPNG(d deck.Deck, size int) ([]byte, error) {
	if d.Len() == 0 {
		return nil, ErrEmptyDeck
	}
	size = clampSize(size)
	qr, err := GenerateQRImage(deck.ExportDeckText(d, deck.Deck{}), size)
	if err != nil {
		return nil, err
	}
	return EncodePNG(ComposeShareImage(qr))
}

func clampSize(size int) int {
	if size < MinQRSize {
		return MinQRSize
	}
	if size > MaxQRSize {
		return MaxQRSize
	}
	return size
}
