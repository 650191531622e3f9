package impl

import (
	"context"
	"net/http"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	mockRepo "pos/internal/mocks/repository"
	mockService "pos/internal/mocks/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type configurationServiceFixtures struct {
	service usecase.ConfigurationUsecase
	api     *mockService.MockConfigurationAPI
	prefs   *mockRepo.MockPreferenceRepository
	images  *mockService.MockImageSource
	bus     service.EventBus
}

func createTestConfigurationService(t *testing.T) configurationServiceFixtures {
	t.Helper()

	fx := configurationServiceFixtures{
		api:    mockService.NewMockConfigurationAPI(t),
		prefs:  mockRepo.NewMockPreferenceRepository(t),
		images: mockService.NewMockImageSource(t),
		bus:    newBus(),
	}
	fx.service = NewConfigurationService(ConfigurationServiceParams{
		Config: testConfig(),
		API:    fx.api,
		Prefs:  fx.prefs,
		Images: fx.images,
		Events: fx.bus,
		Logger: discardLogger(),
	})

	return fx
}

func TestConfigurationService_CurrentLoadsOnce(t *testing.T) {
	fx := createTestConfigurationService(t)
	ctx := context.Background()
	stored := &entity.BusinessConfiguration{Idioma: "en", NombreRestaurante: "Soda"}

	fx.api.EXPECT().GetConfiguration(ctx).Return(stored, nil).Once()

	first, err := fx.service.Current(ctx)
	require.NoError(t, err)
	first.NombreRestaurante = "changed by caller"

	second, err := fx.service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Soda", second.NombreRestaurante)
}

func TestConfigurationService_LoadFailure(t *testing.T) {
	fx := createTestConfigurationService(t)
	ctx := context.Background()

	fx.api.EXPECT().GetConfiguration(ctx).Return(nil, errors.New("dial tcp: connection refused"))

	_, err := fx.service.Load(ctx)
	require.ErrorIs(t, err, domainerrors.ErrConfigurationLoadFailed)
}

func TestConfigurationService_SavePublishesAndAppliesLanguage(t *testing.T) {
	fx := createTestConfigurationService(t)
	ctx := context.Background()
	recorder := recordEvents(fx.bus, entity.EventConfigurationChanged, entity.EventLanguageChanged)
	form := entity.BusinessConfiguration{Idioma: "en", NombreRestaurante: "Soda"}

	fx.api.EXPECT().UpdateConfiguration(ctx, form, (*entity.ImageFile)(nil)).Return(&form, nil)
	fx.prefs.EXPECT().SaveLanguage(ctx, "en").Return(nil)

	saved, err := fx.service.Save(ctx, form, nil)
	require.NoError(t, err)
	assert.Equal(t, "Soda", saved.NombreRestaurante)

	assert.Equal(t, []entity.EventKind{entity.EventConfigurationChanged, entity.EventLanguageChanged}, recorder.Kinds())
	assert.Equal(t, "en", recorder.Events()[1].Language)

	current, err := fx.service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", current.Idioma)
}

func TestConfigurationService_SaveKeepsLanguageWhenUnchanged(t *testing.T) {
	fx := createTestConfigurationService(t)
	ctx := context.Background()
	stored := &entity.BusinessConfiguration{Idioma: "es"}
	form := entity.BusinessConfiguration{Idioma: "es", Telefono: "2222-0000"}

	fx.api.EXPECT().GetConfiguration(ctx).Return(stored, nil)
	fx.api.EXPECT().UpdateConfiguration(ctx, form, (*entity.ImageFile)(nil)).Return(&form, nil)

	_, err := fx.service.Load(ctx)
	require.NoError(t, err)

	recorder := recordEvents(fx.bus, entity.EventLanguageChanged)
	_, err = fx.service.Save(ctx, form, nil)
	require.NoError(t, err)
	assert.Empty(t, recorder.Kinds())
}

func TestConfigurationService_SaveErrors(t *testing.T) {
	fields := map[string][]string{"telefono": {"Número inválido."}}

	tests := []struct {
		name        string
		backendErr  error
		wantIs      error
		wantMessage string
		wantFields  map[string][]string
	}{
		{
			name:        "backend detail is shown",
			backendErr:  domainerrors.NewBackendStatusError(http.StatusForbidden, "No tiene permiso."),
			wantIs:      domainerrors.ErrConfigurationSaveFailed,
			wantMessage: "No tiene permiso.",
		},
		{
			name:        "generic message otherwise",
			backendErr:  errors.WithStack(domainerrors.ErrBackendUnavailable),
			wantIs:      domainerrors.ErrConfigurationSaveFailed,
			wantMessage: "Error al guardar",
		},
		{
			name:       "field errors pass through",
			backendErr: domainerrors.NewFieldValidationError(http.StatusBadRequest, fields),
			wantFields: fields,
		},
		{
			name:       "session expiry passes through",
			backendErr: errors.WithStack(domainerrors.ErrSessionExpired),
			wantIs:     domainerrors.ErrSessionExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConfigurationService(t)
			ctx := context.Background()
			fx.api.EXPECT().UpdateConfiguration(ctx, mock.Anything, mock.Anything).Return(nil, tt.backendErr)

			_, err := fx.service.Save(ctx, entity.BusinessConfiguration{Idioma: "es"}, nil)
			require.Error(t, err)

			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMessage != "" {
				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantMessage, appErr.Message())
			}
			if tt.wantFields != nil {
				var fieldErr *domainerrors.FieldValidationError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tt.wantFields, fieldErr.Fields())
			}
		})
	}
}

func TestConfigurationService_SaveDefaultsAndValidatesLanguage(t *testing.T) {
	fx := createTestConfigurationService(t)
	ctx := context.Background()

	_, err := fx.service.Save(ctx, entity.BusinessConfiguration{Idioma: "fr"}, nil)
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedLanguage)

	expected := entity.BusinessConfiguration{Idioma: "es", NombreRestaurante: "Soda"}
	fx.api.EXPECT().UpdateConfiguration(ctx, expected, (*entity.ImageFile)(nil)).Return(&expected, nil)
	fx.prefs.EXPECT().SaveLanguage(ctx, "es").Return(nil)

	saved, err := fx.service.Save(ctx, entity.BusinessConfiguration{NombreRestaurante: "Soda"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "es", saved.Idioma)
}

func TestConfigurationService_SaveWithLogoBlob(t *testing.T) {
	fx := createTestConfigurationService(t)
	ctx := context.Background()
	ref := entity.BlobRef{Bucket: "mem://", Key: "logo.png"}
	logo := &entity.ImageFile{Filename: "logo.png", ContentType: "image/png", Data: []byte("png")}
	form := entity.BusinessConfiguration{Idioma: "es"}
	saved := entity.BusinessConfiguration{Idioma: "es", Logo: "http://media/logo.png"}

	fx.images.EXPECT().Open(ctx, ref).Return(logo, nil)
	fx.api.EXPECT().UpdateConfiguration(ctx, form, logo).Return(&saved, nil)
	fx.prefs.EXPECT().SaveLanguage(ctx, "es").Return(nil)

	result, err := fx.service.SaveWithLogoBlob(ctx, form, ref)
	require.NoError(t, err)
	assert.Equal(t, "http://media/logo.png", result.Logo)
}

func TestConfigurationService_Language(t *testing.T) {
	fx := createTestConfigurationService(t)
	ctx := context.Background()

	fx.prefs.EXPECT().LoadLanguage(ctx).Return("").Times(2)
	assert.Equal(t, "es", fx.service.Language(ctx))

	fx.api.EXPECT().GetConfiguration(ctx).Return(&entity.BusinessConfiguration{Idioma: "en"}, nil)
	_, err := fx.service.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", fx.service.Language(ctx))

	fx.prefs.EXPECT().LoadLanguage(ctx).Return("es").Once()
	assert.Equal(t, "es", fx.service.Language(ctx))
}

func TestConfigurationService_SetLanguage(t *testing.T) {
	fx := createTestConfigurationService(t)
	ctx := context.Background()
	recorder := recordEvents(fx.bus, entity.EventLanguageChanged)

	require.ErrorIs(t, fx.service.SetLanguage(ctx, "de"), domainerrors.ErrUnsupportedLanguage)

	fx.prefs.EXPECT().SaveLanguage(ctx, "en").Return(errors.New("read-only file system"))
	require.NoError(t, fx.service.SetLanguage(ctx, "en"))

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "en", events[0].Language)
}

func TestConfigurationService_ResetWhenSessionEnds(t *testing.T) {
	fx := createTestConfigurationService(t)
	ctx := context.Background()

	fx.api.EXPECT().GetConfiguration(ctx).Return(&entity.BusinessConfiguration{Idioma: "es"}, nil).Twice()

	_, err := fx.service.Current(ctx)
	require.NoError(t, err)

	fx.bus.Publish(ctx, entity.Event{Kind: entity.EventLoggedOut})

	_, err = fx.service.Current(ctx)
	require.NoError(t, err)
}
