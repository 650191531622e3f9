package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pos/internal/domain/entity"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	pathProducts      = "productos/"
	pathCategories    = "categorias/"
	pathSubcategories = "subcategorias/"
)

var _ service.CatalogAPI = (*Client)(nil)

func productPath(id int) string {
	return fmt.Sprintf("%s%d/", pathProducts, id)
}

func categoryFilter(categoryID int) url.Values {
	if categoryID <= 0 {
		return nil
	}

	return url.Values{"categoria": []string{strconv.Itoa(categoryID)}}
}

func (c *Client) ListProducts(ctx context.Context, categoryID int) ([]entity.Product, error) {
	req := newRequest("list_products", http.MethodGet, pathProducts)
	req.query = categoryFilter(categoryID)

	return decodeList[entity.Product](ctx, c, req)
}

func (c *Client) CreateProduct(ctx context.Context, payload map[string]any) (*entity.Product, error) {
	req, err := newJSONRequest("create_product", http.MethodPost, pathProducts, payload)
	if err != nil {
		return nil, err
	}

	var product entity.Product
	if err := c.do(ctx, req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, payload map[string]any) (*entity.Product, error) {
	req, err := newJSONRequest("update_product", http.MethodPatch, productPath(id), payload)
	if err != nil {
		return nil, err
	}

	var product entity.Product
	if err := c.do(ctx, req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, newRequest("delete_product", http.MethodDelete, productPath(id)), nil)
}

// UploadProductImage sends the image as the "imagen" multipart part. The caller must not pass id 0.
func (c *Client) UploadProductImage(ctx context.Context, id int, image *entity.ImageFile) (*entity.Product, error) {
	if id <= 0 {
		return nil, errors.Errorf("upload image: invalid product id %d", id)
	}

	body, contentType, err := multipartBody(nil, "imagen", image)
	if err != nil {
		return nil, err
	}

	req := newRequest("upload_product_image", http.MethodPost, productPath(id)+"upload/")
	req.body = body
	req.contentType = contentType

	var product entity.Product
	if err := c.do(ctx, req, &product); err != nil {
		return nil, err
	}
	if product.ID == 0 {
		// some deployments answer with just {"imagen": url}
		product.ID = id
	}

	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return decodeList[entity.Category](ctx, c, newRequest("list_categories", http.MethodGet, pathCategories))
}

func (c *Client) ListSubcategories(ctx context.Context, categoryID int) ([]entity.Subcategory, error) {
	req := newRequest("list_subcategories", http.MethodGet, pathSubcategories)
	req.query = categoryFilter(categoryID)

	return decodeList[entity.Subcategory](ctx, c, req)
}
