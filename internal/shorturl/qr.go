package shorturl

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoder renders a short URL string as an inline image representation.
type Encoder interface {
	DataURL(url string) (string, error)
}

// QRCodeEncoder renders PNG QR codes as base64 data URLs.
type QRCodeEncoder struct {
	size int
}

// Ensure QRCodeEncoder implements Encoder
var _ Encoder = (*QRCodeEncoder)(nil)

// NewQRCodeEncoder creates an encoder producing size x size pixel images
// (default 256 if size <= 0).
func NewQRCodeEncoder(size int) *QRCodeEncoder {
	if size <= 0 {
		size = 256
	}
	return &QRCodeEncoder{size: size}
}

// DataURL encodes url as a PNG QR code wrapped in a data: URL
func (e *QRCodeEncoder) DataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, e.size)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
