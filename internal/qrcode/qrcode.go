// Package qrcode renders the static payment QR images shown on the
// payment-instructions page. The payloads are deterministic
// placeholder strings, not live payment requests.
package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const imageSize = 256

// PaymentPayload builds the placeholder QR payload for a payment
// method and application id, e.g. "FPS-DEMO-<id>".
func PaymentPayload(method, applicationID string) string {
	return fmt.Sprintf("%s-DEMO-%s", method, applicationID)
}

// GeneratePNG renders the payload as a PNG image.
func GeneratePNG(payload string) ([]byte, error) {
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("create QR code: %w", err)
	}
	png, err := code.PNG(imageSize)
	if err != nil {
		return nil, fmt.Errorf("render QR PNG: %w", err)
	}
	return png, nil
}
