package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePNG encodes content into a PNG image
	GeneratePNG(content string) ([]byte, error)
}
