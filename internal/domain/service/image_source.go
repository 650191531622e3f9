package service

import (
	"context"

	"pos/internal/domain/entity"
)

// ImageSource loads images stored outside the client, e.g. a shared media bucket
type ImageSource interface {
	Open(ctx context.Context, ref entity.BlobRef) (*entity.ImageFile, error)
}
