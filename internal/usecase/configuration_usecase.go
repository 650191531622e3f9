package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// ConfigurationUsecase edits the singleton business configuration and the language preference
type ConfigurationUsecase interface {
	// Load fetches the configuration and replaces the shared state
	Load(ctx context.Context) (*entity.BusinessConfiguration, error)
	// Current returns the shared state, loading it on first use
	Current(ctx context.Context) (*entity.BusinessConfiguration, error)
	// Save sends a JSON PATCH, or a multipart PATCH when logo is set
	Save(ctx context.Context, cfg entity.BusinessConfiguration, logo *entity.ImageFile) (*entity.BusinessConfiguration, error)
	SaveWithLogoBlob(ctx context.Context, cfg entity.BusinessConfiguration, ref entity.BlobRef) (*entity.BusinessConfiguration, error)
	Language(ctx context.Context) string
	SetLanguage(ctx context.Context, code string) error
}
