package Controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	if len(raw) > 0 {
		assert.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func cartData(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok, "response has no data object: %v", resp)
	return data
}

func TestOpenCustomizeAndConfirm(t *testing.T) {
	ts := newTestStack(t, "cart_confirm")

	// Ceviche: no sizes, two default ingredients.
	code, resp := doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/producto/2", nil)
	assert.Equal(t, http.StatusOK, code)
	draft := cartData(t, resp)["personalizacion"].(map[string]interface{})
	assert.Equal(t, float64(1), draft["cantidad"])
	assert.Len(t, draft["ingredientes"], 2)

	code, resp = doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/borrador/confirmar", nil)
	assert.Equal(t, http.StatusOK, code)
	data := cartData(t, resp)
	line := data["line"].(map[string]interface{})
	assert.Equal(t, float64(2_000_001), line["id"])
	assert.Equal(t, float64(32), line["precio"])
	assert.Equal(t, float64(32), data["total"])
	assert.Equal(t, float64(1), data["total_items"])
}

func TestDraftSizeAndOptionChangeLineKey(t *testing.T) {
	ts := newTestStack(t, "cart_sized")

	code, _ := doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/producto/1", nil)
	assert.Equal(t, http.StatusOK, code)

	// Fuente size (id 2) and Pollo option (id 1).
	code, resp := doJSON(t, ts.Client, "PATCH", ts.Panel.URL+"/carrito/borrador",
		map[string]interface{}{"tamano_id": 2, "opcion_id": 1})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(48), cartData(t, resp)["precio_unitario"])

	code, resp = doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/borrador/confirmar", nil)
	assert.Equal(t, http.StatusOK, code)
	line := cartData(t, resp)["line"].(map[string]interface{})
	assert.Equal(t, float64(1_002_101), line["id"])
	assert.Equal(t, float64(48), line["precio"])
}

func TestConfirmTwiceMergesIntoOneLine(t *testing.T) {
	ts := newTestStack(t, "cart_merge")

	for i := 0; i < 2; i++ {
		code, _ := doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/producto/2", nil)
		assert.Equal(t, http.StatusOK, code)
		code, _ = doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/borrador/confirmar", nil)
		assert.Equal(t, http.StatusOK, code)
	}

	code, resp := doJSON(t, ts.Client, "GET", ts.Panel.URL+"/carrito", nil)
	assert.Equal(t, http.StatusOK, code)
	data := cartData(t, resp)
	items := data["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]interface{})["cantidad"])
	assert.Equal(t, float64(64), data["total"])
}

func TestToggledIngredientMakesDistinctLine(t *testing.T) {
	ts := newTestStack(t, "cart_distinct")

	code, _ := doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/producto/2", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/borrador/confirmar", nil)
	assert.Equal(t, http.StatusOK, code)

	// Drop Cebolla (ingredient 1); the smallest included id changes.
	code, _ = doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/producto/2", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, ts.Client, "PATCH", ts.Panel.URL+"/carrito/borrador",
		map[string]interface{}{"ingrediente_id": 1})
	assert.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/borrador/confirmar", nil)
	assert.Equal(t, http.StatusOK, code)

	code, resp := doJSON(t, ts.Client, "GET", ts.Panel.URL+"/carrito", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, cartData(t, resp)["items"].([]interface{}), 2)
}

func TestLineQuantityZeroRemovesLine(t *testing.T) {
	ts := newTestStack(t, "cart_remove")

	code, _ := doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/producto/2", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/borrador/confirmar", nil)
	assert.Equal(t, http.StatusOK, code)

	code, resp := doJSON(t, ts.Client, "PATCH", ts.Panel.URL+"/carrito/linea/2000001",
		map[string]interface{}{"cantidad": 0})
	assert.Equal(t, http.StatusOK, code)
	data := cartData(t, resp)
	assert.Empty(t, data["items"])
	assert.Equal(t, float64(0), data["total"])
}

func TestConfirmWithoutOpenDraftConflicts(t *testing.T) {
	ts := newTestStack(t, "cart_nodraft")

	code, resp := doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/borrador/confirmar", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, false, resp["status"])
}

func TestSessionsDoNotShareCarts(t *testing.T) {
	ts := newTestStack(t, "cart_sessions")

	code, _ := doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/producto/2", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, ts.Client, "POST", ts.Panel.URL+"/carrito/borrador/confirmar", nil)
	assert.Equal(t, http.StatusOK, code)

	// A second browser with its own cookie jar sees an empty cart.
	other := newCookieClient(t)
	code, resp := doJSON(t, other, "GET", ts.Panel.URL+"/carrito", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, cartData(t, resp)["items"])
}
