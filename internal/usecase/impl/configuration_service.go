package impl

import (
	"context"
	"log/slog"
	"sync"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// configurationService implements the ConfigurationUsecase interface.
// The loaded configuration is shared by every view until the session ends.
type configurationService struct {
	mu      sync.RWMutex
	current *entity.BusinessConfiguration

	api             service.ConfigurationAPI
	prefs           repository.PreferenceRepository
	images          service.ImageSource
	events          service.EventBus
	defaultLanguage string
	logger          *slog.Logger
}

// ConfigurationServiceParams holds dependencies for configurationService, injected by Fx
type ConfigurationServiceParams struct {
	fx.In

	Config *config.Config
	API    service.ConfigurationAPI
	Prefs  repository.PreferenceRepository
	Images service.ImageSource
	Events service.EventBus
	Logger *slog.Logger
}

// NewConfigurationService is the constructor for configurationService.
func NewConfigurationService(params ConfigurationServiceParams) usecase.ConfigurationUsecase {
	defaultLanguage := params.Config.Order.DefaultLanguage
	if !entity.IsSupportedLanguage(defaultLanguage) {
		defaultLanguage = entity.DefaultLanguage
	}

	srv := &configurationService{
		api:             params.API,
		prefs:           params.Prefs,
		images:          params.Images,
		events:          params.Events,
		defaultLanguage: defaultLanguage,
		logger:          params.Logger,
	}

	params.Events.Subscribe(func(context.Context, entity.Event) {
		srv.mu.Lock()
		srv.current = nil
		srv.mu.Unlock()
	}, entity.EventSessionExpired, entity.EventLoggedOut)

	return srv
}

func (srv *configurationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *configurationService) Load(ctx context.Context) (*entity.BusinessConfiguration, error) {
	cfg, err := srv.api.GetConfiguration(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load configuration", slog.Any("error", err))

		return nil, surfaceError(err, domainerrors.ErrConfigurationLoadFailed)
	}

	srv.mu.Lock()
	srv.current = cfg
	srv.mu.Unlock()

	copied := *cfg

	return &copied, nil
}

func (srv *configurationService) Current(ctx context.Context) (*entity.BusinessConfiguration, error) {
	srv.mu.RLock()
	current := srv.current
	srv.mu.RUnlock()

	if current != nil {
		copied := *current

		return &copied, nil
	}

	return srv.Load(ctx)
}

func (srv *configurationService) Save(ctx context.Context, cfg entity.BusinessConfiguration, logo *entity.ImageFile) (*entity.BusinessConfiguration, error) {
	if cfg.Idioma == "" {
		cfg.Idioma = srv.defaultLanguage
	}
	if !entity.IsSupportedLanguage(cfg.Idioma) {
		return nil, errors.WithStack(domainerrors.ErrUnsupportedLanguage.WithDetails(cfg.Idioma))
	}

	srv.mu.RLock()
	previous := srv.current
	srv.mu.RUnlock()

	saved, err := srv.api.UpdateConfiguration(ctx, cfg, logo)
	if err != nil {
		srv.log(ctx).Warn("Failed to save configuration", slog.Any("error", err))

		return nil, surfaceError(err, domainerrors.ErrConfigurationSaveFailed)
	}

	srv.mu.Lock()
	srv.current = saved
	srv.mu.Unlock()

	srv.events.Publish(ctx, entity.Event{Kind: entity.EventConfigurationChanged})
	srv.log(ctx).Info("Configuration saved", slog.Bool("with_logo", logo != nil))

	if previous == nil || previous.Idioma != saved.Idioma {
		srv.applyLanguage(ctx, saved.Idioma)
	}

	copied := *saved

	return &copied, nil
}

func (srv *configurationService) SaveWithLogoBlob(ctx context.Context, cfg entity.BusinessConfiguration, ref entity.BlobRef) (*entity.BusinessConfiguration, error) {
	logo, err := srv.images.Open(ctx, ref)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open logo")
	}

	return srv.Save(ctx, cfg, logo)
}

// Language prefers the stored choice, then the business configuration, then the default
func (srv *configurationService) Language(ctx context.Context) string {
	if code := srv.prefs.LoadLanguage(ctx); entity.IsSupportedLanguage(code) {
		return code
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.current != nil && entity.IsSupportedLanguage(srv.current.Idioma) {
		return srv.current.Idioma
	}

	return srv.defaultLanguage
}

func (srv *configurationService) SetLanguage(ctx context.Context, code string) error {
	if !entity.IsSupportedLanguage(code) {
		return errors.WithStack(domainerrors.ErrUnsupportedLanguage.WithDetails(code))
	}

	srv.mu.Lock()
	if srv.current != nil {
		updated := *srv.current
		updated.Idioma = code
		srv.current = &updated
	}
	srv.mu.Unlock()

	srv.applyLanguage(ctx, code)

	return nil
}

// applyLanguage persists the preference and announces it. A storage failure is not fatal.
func (srv *configurationService) applyLanguage(ctx context.Context, code string) {
	if err := srv.prefs.SaveLanguage(ctx, code); err != nil {
		srv.log(ctx).Warn("Failed to persist language", slog.String("language", code), slog.Any("error", err))
	}

	srv.events.Publish(ctx, entity.Event{Kind: entity.EventLanguageChanged, Language: code})
}

// surfaceError passes through errors the caller acts on, shows the backend detail when there is one,
// and falls back to the generic message otherwise
func surfaceError(err error, fallback *domainerrors.BaseError) error {
	var fieldErr *domainerrors.FieldValidationError
	var statusErr *domainerrors.BackendStatusError

	switch {
	case errors.As(err, &fieldErr),
		errors.Is(err, domainerrors.ErrSessionExpired),
		errors.Is(err, domainerrors.ErrLoginRequired):
		return err
	case errors.As(err, &statusErr) && statusErr.Detail != "":
		return errors.WithStack(fallback.WithMessage(statusErr.Detail).WithDetails(err.Error()))
	}

	return errors.WithStack(fallback.WithDetails(err.Error()))
}
