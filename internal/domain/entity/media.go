package entity

// ImageFile is an image ready to be sent as a multipart part.
type ImageFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// BlobRef points at an image stored in a blob bucket, e.g. {"bucket":"file:///srv/media","key":"logo.png"}.
type BlobRef struct {
	Bucket string `json:"bucket" validate:"required"`
	Key    string `json:"key" validate:"required"`
}
