package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/restaurant-order-panel/models"
)

func TestCreateOrderWireShape(t *testing.T) {
	var captured map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pedido", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{ID: 42, Customer: "Ana", StatusID: 1})
	}))
	defer srv.Close()

	client := NewClient(Options{PublicURL: srv.URL})

	sizeID := uint(2)
	draft := models.OrderDraft{
		Customer: "Ana",
		Notes:    "sin sal",
		Total:    30,
		StatusID: models.StatusPendingID,
		Items: models.OrderDraftItems{Create: []models.OrderDraftItem{{
			ProductID: 3,
			Quantity:  2,
			UnitPrice: 15,
			Subtotal:  30,
			SizeID:    &sizeID,
			Ingredients: models.OrderDraftIngredients{
				Create: []models.OrderDraftIngredient{{IngredientID: 4}},
			},
		}}},
	}

	created, err := client.CreateOrder(context.Background(), draft)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), created.ID)

	// The backend expects the nested "create" wrappers and null for the
	// unselected option.
	assert.Equal(t, "Ana", captured["cliente"])
	assert.Equal(t, float64(1), captured["estado_id"])
	items := captured["pedidoItems"].(map[string]interface{})["create"].([]interface{})
	assert.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, float64(3), item["producto_id"])
	assert.Equal(t, float64(2), item["productoTamano_id"])
	assert.Nil(t, item["opcionId"])
	ings := item["pedidoIngredientes"].(map[string]interface{})["create"].([]interface{})
	assert.Len(t, ings, 1)
	assert.Equal(t, float64(4), ings[0].(map[string]interface{})["ingrediente_id"])
}

func TestUpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/pedido/7/estado", r.URL.Path)

		var body map[string]uint
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, uint(2), body["estado_id"])

		json.NewEncoder(w).Encode(models.Order{ID: 7, StatusID: 2})
	}))
	defer srv.Close()

	client := NewClient(Options{PublicURL: srv.URL})
	order, err := client.UpdateOrderStatus(context.Background(), 7, 2)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), order.StatusID)
}

func TestAPIErrorCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "cliente requerido"})
	}))
	defer srv.Close()

	client := NewClient(Options{PublicURL: srv.URL})
	_, err := client.CreateOrder(context.Background(), models.OrderDraft{})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "cliente requerido", apiErr.Message)
}

func TestListProductsDecodesCatalogShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/producto", r.URL.Path)
		w.Write([]byte(`[{
			"id": 3, "nombre": "Hamburguesa", "precio": 10, "activo": true,
			"categoria_id": 1,
			"categoria": {"id": 1, "nombre": "Comidas", "activo": true},
			"ingredientes": [{"id": 1, "producto_id": 3, "ingrediente_id": 4,
				"opcional": true, "por_defecto": true,
				"ingrediente": {"id": 4, "nombre": "Queso"}}],
			"opciones": [],
			"tamanosDisponibles": [{"id": 1, "producto_id": 3, "tamano_id": 2,
				"precio": 15, "tamano": {"id": 2, "nombre": "Grande"}}]
		}]`))
	}))
	defer srv.Close()

	client := NewClient(Options{PublicURL: srv.URL})
	products, err := client.ListProducts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "Hamburguesa", p.Name)
	assert.Equal(t, "Comidas", p.Category.Name)
	assert.True(t, p.Ingredients[0].Default)
	assert.Equal(t, 15.0, p.AvailableSizes[0].Price)
	assert.Equal(t, "Grande", p.AvailableSizes[0].Size.Name)
}
