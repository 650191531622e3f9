package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	pathProfile       = "perfiles/me/"
	pathConfiguration = "configuracion/"
	// the configuration is a singleton stored with primary key 1
	pathConfigurationSingleton = "configuracion/1/"
)

var (
	_ service.ProfileAPI       = (*Client)(nil)
	_ service.ConfigurationAPI = (*Client)(nil)
)

func (c *Client) GetProfile(ctx context.Context) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := c.do(ctx, newRequest("get_profile", http.MethodGet, pathProfile), &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetConfiguration accepts the object itself or a list holding it
func (c *Client) GetConfiguration(ctx context.Context) (*entity.BusinessConfiguration, error) {
	var raw json.RawMessage
	if err := c.do(ctx, newRequest("get_configuration", http.MethodGet, pathConfiguration), &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []entity.BusinessConfiguration
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, errors.Wrap(domainerrors.ErrBackendUnavailable.WithDetails(err.Error()), "decode configuration list")
		}
		if len(list) == 0 {
			var empty entity.BusinessConfiguration
			_ = json.Unmarshal([]byte("{}"), &empty)

			return &empty, nil
		}

		return &list[0], nil
	}

	var cfg entity.BusinessConfiguration
	if len(trimmed) == 0 {
		trimmed = []byte("{}")
	}
	if err := json.Unmarshal(trimmed, &cfg); err != nil {
		return nil, errors.Wrap(domainerrors.ErrBackendUnavailable.WithDetails(err.Error()), "decode configuration")
	}

	return &cfg, nil
}

func (c *Client) UpdateConfiguration(ctx context.Context, cfg entity.BusinessConfiguration, logo *entity.ImageFile) (*entity.BusinessConfiguration, error) {
	var (
		req *request
		err error
	)

	if logo == nil {
		req, err = newJSONRequest("update_configuration", http.MethodPatch, pathConfigurationSingleton, cfg.JSONPayload())
		if err != nil {
			return nil, err
		}
	} else {
		fields := cfg.FormFields()
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		body, contentType, err := multipartBody(orderedFields(keys, fields), "logo", logo)
		if err != nil {
			return nil, err
		}
		req = newRequest("update_configuration", http.MethodPatch, pathConfigurationSingleton)
		req.body = body
		req.contentType = contentType
	}

	var updated entity.BusinessConfiguration
	if err := c.do(ctx, req, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
