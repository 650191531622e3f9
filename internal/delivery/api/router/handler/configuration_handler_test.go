package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	mockUsecase "pos/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestConfigurationHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockConfigurationUsecase) {
	t.Helper()

	configurationUC := mockUsecase.NewMockConfigurationUsecase(t)
	h := NewConfigurationHandler(ConfigurationHandlerParams{ConfigurationUC: configurationUC, Logger: discardLogger()})

	e := newTestEcho()
	e.GET("/app/configuration", h.Current)
	e.PUT("/app/language", h.SetLanguage)
	e.GET("/app/admin/configuration", h.Load)
	e.PATCH("/app/admin/configuration", h.Save)

	return e, configurationUC
}

func TestConfigurationHandler_Current(t *testing.T) {
	e, configurationUC := createTestConfigurationHandler(t)

	configurationUC.EXPECT().Current(mock.Anything).Return(&entity.BusinessConfiguration{Idioma: "es", NombreRestaurante: "Soda"}, nil)
	configurationUC.EXPECT().Language(mock.Anything).Return("en")

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/app/configuration", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got ConfigurationState
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, "Soda", got.Configuracion.NombreRestaurante)
	assert.Equal(t, "en", got.Idioma)
}

func TestConfigurationHandler_SaveJSON(t *testing.T) {
	e, configurationUC := createTestConfigurationHandler(t)
	form := entity.BusinessConfiguration{Idioma: "en", NombreRestaurante: "Soda", Telefono: "2222-0000"}

	configurationUC.EXPECT().Save(mock.Anything, form, (*entity.ImageFile)(nil)).Return(&form, nil)

	rec := serve(e, jsonRequest(http.MethodPatch, "/app/admin/configuration",
		`{"idioma":"en","nombre_restaurante":"Soda","telefono":"2222-0000"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConfigurationHandler_SaveWithLogoBlob(t *testing.T) {
	e, configurationUC := createTestConfigurationHandler(t)
	ref := entity.BlobRef{Bucket: "mem://", Key: "logo.png"}

	configurationUC.EXPECT().SaveWithLogoBlob(mock.Anything, entity.BusinessConfiguration{Idioma: "es"}, ref).
		Return(&entity.BusinessConfiguration{Idioma: "es", Logo: "http://media/logo.png"}, nil)

	rec := serve(e, jsonRequest(http.MethodPatch, "/app/admin/configuration",
		`{"idioma":"es","logo_blob":{"bucket":"mem://","key":"logo.png"}}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), "http://media/logo.png")
}

func TestConfigurationHandler_SaveMultipart(t *testing.T) {
	e, configurationUC := createTestConfigurationHandler(t)
	fields := map[string]string{"idioma": "es", "nombre_restaurante": "Soda", "direccion": "San José"}

	configurationUC.EXPECT().Save(mock.Anything,
		entity.BusinessConfiguration{Idioma: "es", NombreRestaurante: "Soda", Direccion: "San José"},
		mock.MatchedBy(func(logo *entity.ImageFile) bool {
			return logo != nil && logo.Filename == "logo.png" && string(logo.Data) == "png-bytes"
		}),
	).Return(&entity.BusinessConfiguration{Idioma: "es"}, nil)

	rec := serve(e, multipartRequest(t, http.MethodPatch, "/app/admin/configuration", fields, "logo", "logo.png", []byte("png-bytes")))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConfigurationHandler_SaveShowsBackendMessage(t *testing.T) {
	e, configurationUC := createTestConfigurationHandler(t)

	configurationUC.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrConfigurationSaveFailed))

	rec := serve(e, jsonRequest(http.MethodPatch, "/app/admin/configuration", `{"idioma":"es"}`))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Error al guardar", decode(t, rec).Error.Message)
}

func TestConfigurationHandler_SetLanguage(t *testing.T) {
	e, configurationUC := createTestConfigurationHandler(t)

	configurationUC.EXPECT().SetLanguage(mock.Anything, "en").Return(nil)
	configurationUC.EXPECT().SetLanguage(mock.Anything, "fr").Return(errors.WithStack(domainerrors.ErrUnsupportedLanguage))

	rec := serve(e, jsonRequest(http.MethodPut, "/app/language", `{"idioma":"en"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"idioma":"en"}`, string(decode(t, rec).Data))

	rec = serve(e, jsonRequest(http.MethodPut, "/app/language", `{"idioma":"fr"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNSUPPORTED_LANGUAGE", decode(t, rec).Error.Code)

	rec = serve(e, jsonRequest(http.MethodPut, "/app/language", `{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}
