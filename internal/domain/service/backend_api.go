package service

import (
	"context"

	"pos/internal/domain/entity"
)

// AuthAPI talks to the unauthenticated token endpoints
type AuthAPI interface {
	// ObtainTokens exchanges credentials for a token pair
	ObtainTokens(ctx context.Context, credentials entity.Credentials) (*entity.TokenPair, error)

	// RefreshTokens exchanges a refresh token for a new access token (and maybe a rotated refresh token)
	RefreshTokens(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
}

// CatalogAPI reads and writes products, categories and subcategories
type CatalogAPI interface {
	// ListProducts returns every product, or only those of categoryID when it is non-zero
	ListProducts(ctx context.Context, categoryID int) ([]entity.Product, error)
	CreateProduct(ctx context.Context, payload map[string]any) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int, payload map[string]any) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	UploadProductImage(ctx context.Context, id int, image *entity.ImageFile) (*entity.Product, error)

	ListCategories(ctx context.Context) ([]entity.Category, error)
	// ListSubcategories returns every subcategory, or only those of categoryID when it is non-zero
	ListSubcategories(ctx context.Context, categoryID int) ([]entity.Subcategory, error)
}

// ProfileAPI reads the logged-in user's profile
type ProfileAPI interface {
	GetProfile(ctx context.Context) (*entity.UserProfile, error)
}

// ConfigurationAPI reads and writes the singleton business configuration
type ConfigurationAPI interface {
	GetConfiguration(ctx context.Context) (*entity.BusinessConfiguration, error)

	// UpdateConfiguration sends a JSON PATCH, or a multipart PATCH with every field when logo is set
	UpdateConfiguration(ctx context.Context, cfg entity.BusinessConfiguration, logo *entity.ImageFile) (*entity.BusinessConfiguration, error)
}
