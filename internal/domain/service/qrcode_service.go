package service

// QRCodeService generates shareable QR codes for trip map links.
type QRCodeService interface {
	// GenerateShareQR renders the share URL as a PNG image.
	GenerateShareQR(shareURL string) ([]byte, error)
}
