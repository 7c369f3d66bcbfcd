package qrcode

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateShareQR renders a trip share URL as a PNG image.
func (s *qrcodeService) GenerateShareQR(shareURL string) ([]byte, error) {
	if _, err := url.ParseRequestURI(shareURL); err != nil {
		return nil, fmt.Errorf("invalid share URL: %w", err)
	}

	png, err := qrcode.Encode(shareURL, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return png, nil
}
