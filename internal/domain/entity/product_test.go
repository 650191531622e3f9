package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_DecodesEmbeddedAndBareReferences(t *testing.T) {
	body := `[
		{"id":1,"nombre":"Café","precio":"1500.00","imagen":null,"disponible":true,
		 "categoria":{"id":2,"nombre":"Bebidas"},"subcategoria":null,"cantidad":4,"fecha_creacion":"2024-01-01T00:00:00Z"},
		{"id":2,"nombre":"Pan","precio":800,"disponible":true,"categoria":"3","subcategoria":5,"cantidad":0}
	]`

	var products []Product
	require.NoError(t, json.Unmarshal([]byte(body), &products))
	require.Len(t, products, 2)

	assert.Equal(t, 2, products[0].Categoria.ID)
	assert.Equal(t, "Bebidas", products[0].Categoria.Nombre)
	assert.Nil(t, products[0].Subcategoria)
	assert.True(t, decimal.NewFromInt(1500).Equal(products[0].Precio))

	assert.Equal(t, 3, products[1].Categoria.ID)
	require.NotNil(t, products[1].Subcategoria)
	assert.Equal(t, 5, products[1].Subcategoria.ID)
	assert.False(t, products[1].IsOrderable())
}

func TestRef_EncodesAsIdentifier(t *testing.T) {
	out, err := json.Marshal(struct {
		Categoria Ref `json:"categoria"`
		Vacia     Ref `json:"vacia"`
	}{Categoria: Ref{ID: 9, Nombre: "Postres"}})

	require.NoError(t, err)
	assert.JSONEq(t, `{"categoria":9,"vacia":null}`, string(out))
}

func TestProductForm_PayloadStripsManagedAndEmptyFields(t *testing.T) {
	empty := ""
	price := decimal.NewFromInt(10)
	imagen := "http://media/x.png"
	fecha := "2024-01-01"

	form := ProductForm{
		ID:            4,
		Nombre:        &empty,
		Precio:        &price,
		Imagen:        &imagen,
		FechaCreacion: &fecha,
	}

	assert.Equal(t, map[string]any{"precio": "10"}, form.Payload())
}

func TestProductForm_PayloadFlattensReferences(t *testing.T) {
	name := "Té"
	form := ProductForm{
		Nombre:       &name,
		Categoria:    &Ref{ID: 2, Nombre: "Bebidas"},
		Subcategoria: &Ref{},
	}

	assert.Equal(t, map[string]any{"nombre": "Té", "categoria": 2}, form.Payload())
}

func TestFormFromProduct_RoundTripsEditableFields(t *testing.T) {
	p := Product{ID: 3, Nombre: "Sopa", Precio: decimal.RequireFromString("2500"), Disponible: true,
		Categoria: Ref{ID: 1}, Cantidad: 6, FechaCreacion: "2024-01-01"}

	payload := FormFromProduct(p).Payload()

	assert.Equal(t, "Sopa", payload["nombre"])
	assert.Equal(t, "2500", payload["precio"])
	assert.Equal(t, 1, payload["categoria"])
	assert.Equal(t, 6, payload["cantidad"])
	assert.NotContains(t, payload, "id")
	assert.NotContains(t, payload, "fecha_creacion")
	assert.NotContains(t, payload, "descripcion")
}
