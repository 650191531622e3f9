package entity

import (
	"encoding/json"
	"slices"

	"github.com/pkg/errors"
)

// DefaultLanguage is used when neither the backend nor the local preference names one.
const DefaultLanguage = "es"

// SupportedLanguages lists the language codes the client ships strings for.
var SupportedLanguages = []string{"es", "en"}

// IsSupportedLanguage reports whether code is one of SupportedLanguages.
func IsSupportedLanguage(code string) bool {
	return slices.Contains(SupportedLanguages, code)
}

// BusinessConfiguration is the singleton restaurant configuration.
type BusinessConfiguration struct {
	Idioma            string `json:"idioma"`
	NombreRestaurante string `json:"nombre_restaurante"`
	Direccion         string `json:"direccion"`
	Telefono          string `json:"telefono"`
	Logo              string `json:"logo"`
	Descripcion       string `json:"descripcion"`
}

// rawConfiguration mirrors the backend body where any field may be null.
type rawConfiguration struct {
	Idioma            *string `json:"idioma"`
	NombreRestaurante *string `json:"nombre_restaurante"`
	Direccion         *string `json:"direccion"`
	Telefono          *string `json:"telefono"`
	Logo              *string `json:"logo"`
	Descripcion       *string `json:"descripcion"`
}

// Normalize fills missing fields: idioma defaults to "es", everything else to "".
func (r rawConfiguration) Normalize() BusinessConfiguration {
	deref := func(s *string, fallback string) string {
		if s == nil || *s == "" {
			return fallback
		}

		return *s
	}

	return BusinessConfiguration{
		Idioma:            deref(r.Idioma, DefaultLanguage),
		NombreRestaurante: deref(r.NombreRestaurante, ""),
		Direccion:         deref(r.Direccion, ""),
		Telefono:          deref(r.Telefono, ""),
		Logo:              deref(r.Logo, ""),
		Descripcion:       deref(r.Descripcion, ""),
	}
}

// UnmarshalJSON decodes and normalizes in one step.
func (c *BusinessConfiguration) UnmarshalJSON(data []byte) error {
	var raw rawConfiguration
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode configuration")
	}
	*c = raw.Normalize()

	return nil
}

// JSONPayload is the plain PATCH body. The logo is only ever sent as a file.
func (c BusinessConfiguration) JSONPayload() map[string]any {
	payload := make(map[string]any, 5)
	for k, v := range c.FormFields() {
		payload[k] = v
	}

	return payload
}

// FormFields returns every editable text field, used for multipart submissions.
func (c BusinessConfiguration) FormFields() map[string]string {
	return map[string]string{
		"idioma":             c.Idioma,
		"nombre_restaurante": c.NombreRestaurante,
		"direccion":          c.Direccion,
		"telefono":           c.Telefono,
		"descripcion":        c.Descripcion,
	}
}
