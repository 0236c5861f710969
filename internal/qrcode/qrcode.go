package qrcode

import (
	"encoding/base64"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

const imageSize = 256

// DataURI encodes url as a PNG QR code (low error correction, black on
// white) and returns it as a data:image/png;base64 URI for inline
// embedding. Pure function of its input.
func DataURI(url string) (string, error) {
	png, err := qr.Encode(url, qr.Low, imageSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code for %s: %w", url, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
