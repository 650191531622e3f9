package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Ref identifies a related resource. The backend sends either the bare identifier
// or the embedded object; both decode to the same Ref and it always encodes as the identifier.
type Ref struct {
	ID     int
	Nombre string
}

// UnmarshalJSON accepts 3, "3", {"id":3,"nombre":"..."} and null.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}

		return nil
	}

	switch data[0] {
	case '{':
		var obj struct {
			ID     json.Number `json:"id"`
			Nombre string      `json:"nombre"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return errors.Wrap(err, "decode embedded reference")
		}
		id, err := strconv.Atoi(obj.ID.String())
		if err != nil {
			return errors.Wrapf(err, "reference id %q", obj.ID)
		}
		*r = Ref{ID: id, Nombre: obj.Nombre}

		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		if strings.TrimSpace(s) == "" {
			*r = Ref{}

			return nil
		}
		id, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.Wrapf(err, "reference id %q", s)
		}
		*r = Ref{ID: id}

		return nil
	default:
		id, err := strconv.Atoi(string(data))
		if err != nil {
			return errors.Wrapf(err, "reference id %s", data)
		}
		*r = Ref{ID: id}

		return nil
	}
}

// MarshalJSON encodes the bare identifier, or null when unset.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.ID == 0 {
		return []byte("null"), nil
	}

	return []byte(strconv.Itoa(r.ID)), nil
}

// IsSet reports whether the reference points at something.
func (r Ref) IsSet() bool {
	return r.ID != 0
}

// Product is a catalog item as served by the backend.
type Product struct {
	ID            int             `json:"id"`
	Nombre        string          `json:"nombre"`
	Descripcion   string          `json:"descripcion"`
	Precio        decimal.Decimal `json:"precio"`
	Imagen        *string         `json:"imagen"`
	Disponible    bool            `json:"disponible"`
	Categoria     Ref             `json:"categoria"`
	Subcategoria  *Ref            `json:"subcategoria"`
	Cantidad      int             `json:"cantidad"` // units in stock
	FechaCreacion string          `json:"fecha_creacion,omitempty"`
}

// IsOrderable reports whether at least one unit can be put in an order.
func (p Product) IsOrderable() bool {
	return p.Disponible && p.Cantidad > 0
}

// Category groups products.
type Category struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Subcategory belongs to exactly one category.
type Subcategory struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Categoria   Ref    `json:"categoria"`
}

// ProductForm is the admin edit form. Nil fields were not touched by the user.
// ID, FechaCreacion and Imagen may be carried over from a loaded product but are never sent.
type ProductForm struct {
	ID            int              `json:"id,omitempty"`
	Nombre        *string          `json:"nombre,omitempty"`
	Descripcion   *string          `json:"descripcion,omitempty"`
	Precio        *decimal.Decimal `json:"precio,omitempty"`
	Disponible    *bool            `json:"disponible,omitempty"`
	Categoria     *Ref             `json:"categoria,omitempty"`
	Subcategoria  *Ref             `json:"subcategoria,omitempty"`
	Cantidad      *int             `json:"cantidad,omitempty"`
	Imagen        *string          `json:"imagen,omitempty"`
	FechaCreacion *string          `json:"fecha_creacion,omitempty"`
}

// Payload builds the write body: server-managed fields are dropped, unset and
// empty-string fields are omitted, and references are flattened to identifiers.
func (f ProductForm) Payload() map[string]any {
	payload := make(map[string]any)

	putString := func(key string, v *string) {
		if v != nil && *v != "" {
			payload[key] = *v
		}
	}

	putString("nombre", f.Nombre)
	putString("descripcion", f.Descripcion)

	if f.Precio != nil {
		payload["precio"] = f.Precio.String()
	}
	if f.Disponible != nil {
		payload["disponible"] = *f.Disponible
	}
	if f.Cantidad != nil {
		payload["cantidad"] = *f.Cantidad
	}
	if f.Categoria != nil && f.Categoria.IsSet() {
		payload["categoria"] = f.Categoria.ID
	}
	if f.Subcategoria != nil && f.Subcategoria.IsSet() {
		payload["subcategoria"] = f.Subcategoria.ID
	}

	return payload
}

// FormFromProduct pre-fills the edit form with a loaded product.
func FormFromProduct(p Product) ProductForm {
	precio := p.Precio
	disponible := p.Disponible
	cantidad := p.Cantidad
	categoria := p.Categoria
	form := ProductForm{
		ID:          p.ID,
		Nombre:      &p.Nombre,
		Descripcion: &p.Descripcion,
		Precio:      &precio,
		Disponible:  &disponible,
		Cantidad:    &cantidad,
		Categoria:   &categoria,
		Imagen:      p.Imagen,
	}
	if p.Subcategoria != nil {
		sub := *p.Subcategoria
		form.Subcategoria = &sub
	}
	if p.FechaCreacion != "" {
		fecha := p.FechaCreacion
		form.FechaCreacion = &fecha
	}

	return form
}
