// Package handler contains the app shell HTTP handlers.
package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"pos/internal/delivery/api/response"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxUploadBytes bounds an uploaded image part
const maxUploadBytes = 5 << 20

// HealthCheck answers the liveness check
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// queryID reads an optional positive integer query parameter; absent means 0
func queryID(c echo.Context, name string) (int, bool) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, true
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, false
	}

	return id, true
}

// pathID reads the :id path parameter
func pathID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}

	return id, true
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formImage reads the named file part. A missing part yields nil without error.
func formImage(c echo.Context, field string) (*entity.ImageFile, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails(err.Error()))
	}

	return readPart(header)
}

func readPart(header *multipart.FileHeader) (*entity.ImageFile, error) {
	if header.Size > maxUploadBytes {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("image larger than 5MB"))
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails(err.Error()))
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails(err.Error()))
	}

	return &entity.ImageFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
