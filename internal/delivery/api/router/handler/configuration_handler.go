package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/domain/entity"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ConfigurationHandlerParams holds dependencies for ConfigurationHandler, injected by Fx.
type ConfigurationHandlerParams struct {
	fx.In

	ConfigurationUC usecase.ConfigurationUsecase
	Logger          *slog.Logger
}

// ConfigurationHandler serves the business configuration and the language preference
type ConfigurationHandler struct {
	configurationUC usecase.ConfigurationUsecase
	logger          *slog.Logger
}

// NewConfigurationHandler is the constructor for ConfigurationHandler
func NewConfigurationHandler(params ConfigurationHandlerParams) *ConfigurationHandler {
	return &ConfigurationHandler{
		configurationUC: params.ConfigurationUC,
		logger:          params.Logger,
	}
}

// ConfigurationState is what every view reads: the configuration and the language in effect
type ConfigurationState struct {
	Configuracion *entity.BusinessConfiguration `json:"configuracion"`
	Idioma        string                        `json:"idioma"`
}

// ConfigurationRequest is the JSON admin form. LogoBlob, when set, is uploaded as the logo.
type ConfigurationRequest struct {
	Idioma            string          `json:"idioma"`
	NombreRestaurante string          `json:"nombre_restaurante"`
	Direccion         string          `json:"direccion"`
	Telefono          string          `json:"telefono"`
	Descripcion       string          `json:"descripcion"`
	LogoBlob          *entity.BlobRef `json:"logo_blob"`
}

func (r ConfigurationRequest) configuration() entity.BusinessConfiguration {
	return entity.BusinessConfiguration{
		Idioma:            r.Idioma,
		NombreRestaurante: r.NombreRestaurante,
		Direccion:         r.Direccion,
		Telefono:          r.Telefono,
		Descripcion:       r.Descripcion,
	}
}

// LanguageRequest selects the interface language
type LanguageRequest struct {
	Idioma string `json:"idioma" validate:"required"`
}

// Current returns the shared configuration state
func (h *ConfigurationHandler) Current(c echo.Context) error {
	ctx := c.Request().Context()

	cfg, err := h.configurationUC.Current(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ConfigurationState{
		Configuracion: cfg,
		Idioma:        h.configurationUC.Language(ctx),
	})
}

// Load refetches the configuration for the admin panel
func (h *ConfigurationHandler) Load(c echo.Context) error {
	cfg, err := h.configurationUC.Load(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// Save accepts the JSON form, optionally with a blob logo, or a multipart form with a "logo" part
func (h *ConfigurationHandler) Save(c echo.Context) error {
	ctx := c.Request().Context()

	if isMultipart(c) {
		logo, err := formImage(c, "logo")
		if err != nil {
			return err
		}

		form := entity.BusinessConfiguration{
			Idioma:            c.FormValue("idioma"),
			NombreRestaurante: c.FormValue("nombre_restaurante"),
			Direccion:         c.FormValue("direccion"),
			Telefono:          c.FormValue("telefono"),
			Descripcion:       c.FormValue("descripcion"),
		}

		return h.saved(c, func() (*entity.BusinessConfiguration, error) {
			return h.configurationUC.Save(ctx, form, logo)
		})
	}

	var req ConfigurationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid configuration input")
	}

	if req.LogoBlob != nil {
		if err := c.Validate(req.LogoBlob); err != nil {
			return errors.WithStack(err)
		}

		return h.saved(c, func() (*entity.BusinessConfiguration, error) {
			return h.configurationUC.SaveWithLogoBlob(ctx, req.configuration(), *req.LogoBlob)
		})
	}

	return h.saved(c, func() (*entity.BusinessConfiguration, error) {
		return h.configurationUC.Save(ctx, req.configuration(), nil)
	})
}

func (h *ConfigurationHandler) saved(c echo.Context, save func() (*entity.BusinessConfiguration, error)) error {
	cfg, err := save()
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// SetLanguage stores the preferred interface language
func (h *ConfigurationHandler) SetLanguage(c echo.Context) error {
	var req LanguageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid language input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.configurationUC.SetLanguage(c.Request().Context(), req.Idioma); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"idioma": req.Idioma})
}
