package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// view holds one listing. Every load or reset bumps the generation; a load
// finishing under an older generation leaves the state untouched.
type view[T any] struct {
	mu         sync.Mutex
	generation uint64
	state      usecase.Listing[T]
}

func newView[T any]() *view[T] {
	return &view[T]{state: usecase.Listing[T]{Status: usecase.ListingLoading, Items: []T{}}}
}

func (v *view[T]) begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.generation++
	v.state.Status = usecase.ListingLoading
	v.state.Message = ""
	v.state.Generation = v.generation

	return v.generation
}

// finish applies a load result and reports whether it was still current
func (v *view[T]) finish(generation uint64, items []T, message string) (usecase.Listing[T], bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if generation != v.generation {
		return v.state, false
	}

	if message != "" {
		v.state = usecase.Listing[T]{Status: usecase.ListingError, Items: []T{}, Message: message, Generation: generation}
	} else {
		if items == nil {
			items = []T{}
		}
		v.state = usecase.Listing[T]{Status: usecase.ListingLoaded, Items: items, Empty: len(items) == 0, Generation: generation}
	}

	return v.state, true
}

func (v *view[T]) reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.generation++
	v.state = usecase.Listing[T]{Status: usecase.ListingLoading, Items: []T{}, Generation: v.generation}
}

func (v *view[T]) snapshot() usecase.Listing[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	api    service.CatalogAPI
	logger *slog.Logger

	products      *view[entity.Product]
	categories    *view[entity.Category]
	subcategories *view[entity.Subcategory]

	filterMu sync.Mutex
	filter   int
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx
type CatalogServiceParams struct {
	fx.In

	API    service.CatalogAPI
	Events service.EventBus
	Logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService. Views are reset when the session ends.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	srv := &catalogService{
		api:           params.API,
		logger:        params.Logger,
		products:      newView[entity.Product](),
		categories:    newView[entity.Category](),
		subcategories: newView[entity.Subcategory](),
	}

	params.Events.Subscribe(func(context.Context, entity.Event) {
		srv.Reset()
	}, entity.EventSessionExpired, entity.EventLoggedOut)

	return srv
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) Products(ctx context.Context, categoryID int) usecase.Listing[entity.Product] {
	srv.filterMu.Lock()
	srv.filter = categoryID
	srv.filterMu.Unlock()

	generation := srv.products.begin()
	items, err := srv.api.ListProducts(ctx, categoryID)

	return finishLoad(ctx, srv, srv.products, generation, items, err, domainerrors.ErrProductsLoadFailed)
}

func (srv *catalogService) RefreshProducts(ctx context.Context) usecase.Listing[entity.Product] {
	srv.filterMu.Lock()
	categoryID := srv.filter
	srv.filterMu.Unlock()

	return srv.Products(ctx, categoryID)
}

func (srv *catalogService) Categories(ctx context.Context) usecase.Listing[entity.Category] {
	generation := srv.categories.begin()
	items, err := srv.api.ListCategories(ctx)

	return finishLoad(ctx, srv, srv.categories, generation, items, err, domainerrors.ErrCategoriesLoadFailed)
}

func (srv *catalogService) Subcategories(ctx context.Context, categoryID int) usecase.Listing[entity.Subcategory] {
	generation := srv.subcategories.begin()
	items, err := srv.api.ListSubcategories(ctx, categoryID)

	return finishLoad(ctx, srv, srv.subcategories, generation, items, err, domainerrors.ErrCategoriesLoadFailed)
}

// Product looks in the cached ordering view first and falls back to the unfiltered list
func (srv *catalogService) Product(ctx context.Context, id int) (*entity.Product, bool) {
	if product, ok := findProduct(srv.products.snapshot().Items, id); ok {
		return product, true
	}

	items, err := srv.api.ListProducts(ctx, 0)
	if err != nil {
		srv.log(ctx).Warn("Failed to load products for lookup", slog.Int("product_id", id), slog.Any("error", err))

		return nil, false
	}

	return findProduct(items, id)
}

func (srv *catalogService) Reset() {
	srv.products.reset()
	srv.categories.reset()
	srv.subcategories.reset()

	srv.filterMu.Lock()
	srv.filter = 0
	srv.filterMu.Unlock()
}

func findProduct(items []entity.Product, id int) (*entity.Product, bool) {
	for i := range items {
		if items[i].ID == id {
			product := items[i]

			return &product, true
		}
	}

	return nil, false
}

func finishLoad[T any](
	ctx context.Context,
	srv *catalogService,
	v *view[T],
	generation uint64,
	items []T,
	err error,
	fallback *domainerrors.BaseError,
) usecase.Listing[T] {
	message := ""
	if err != nil {
		message = listingMessage(err, fallback)
		srv.log(ctx).Warn("Catalog load failed", slog.String("code", fallback.ErrorCode()), slog.Any("error", err))
	}

	listing, current := v.finish(generation, items, message)
	if !current {
		srv.log(ctx).Debug("Dropped stale catalog response", slog.Uint64("generation", generation))
	}

	return listing
}

// listingMessage keeps the session message so the shell can tell a logout from a failed load
func listingMessage(err error, fallback *domainerrors.BaseError) string {
	if errors.Is(err, domainerrors.ErrSessionExpired) {
		return domainerrors.ErrSessionExpired.Message()
	}

	return fallback.Message()
}
