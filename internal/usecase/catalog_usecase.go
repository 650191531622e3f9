package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// ListingStatus is the load state of a catalog view.
type ListingStatus string

const (
	ListingLoading ListingStatus = "loading"
	ListingError   ListingStatus = "error"
	ListingLoaded  ListingStatus = "loaded"
)

// Listing is the state of one catalog view. Empty is distinct from Error.
type Listing[T any] struct {
	Status  ListingStatus `json:"status"`
	Items   []T           `json:"items"`
	Empty   bool          `json:"empty"`
	Message string        `json:"message,omitempty"`
	// Generation identifies the load that produced this state
	Generation uint64 `json:"generation"`
}

// CatalogUsecase is the read path of the catalog. Load failures are reported in the listing, not as errors.
type CatalogUsecase interface {
	// Products loads the ordering view, filtered by categoryID when non-zero
	Products(ctx context.Context, categoryID int) Listing[entity.Product]
	// RefreshProducts reloads the ordering view with its last filter
	RefreshProducts(ctx context.Context) Listing[entity.Product]
	Categories(ctx context.Context) Listing[entity.Category]
	Subcategories(ctx context.Context, categoryID int) Listing[entity.Subcategory]
	// Product resolves id from the ordering view, loading the full list when it is not cached
	Product(ctx context.Context, id int) (*entity.Product, bool)
	// Reset discards every view; in-flight loads are dropped when they return
	Reset()
}

// ProductChange is the result of an admin mutation: the product and the refetched list.
type ProductChange struct {
	Product  *entity.Product         `json:"product,omitempty"`
	Products Listing[entity.Product] `json:"products"`
}

// ProductAdminUsecase is the write path of the catalog
type ProductAdminUsecase interface {
	Create(ctx context.Context, form entity.ProductForm) (*ProductChange, error)
	Update(ctx context.Context, id int, form entity.ProductForm) (*ProductChange, error)
	Delete(ctx context.Context, id int) (*ProductChange, error)
	// EditForm pre-fills the edit form of a saved product
	EditForm(ctx context.Context, id int) (*entity.ProductForm, error)
	// UploadImage requires a saved product; id 0 fails without contacting the backend
	UploadImage(ctx context.Context, id int, image *entity.ImageFile) (*ProductChange, error)
	UploadImageFromBlob(ctx context.Context, id int, ref entity.BlobRef) (*ProductChange, error)
}
