package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/food-order-app/services"
)

func TestShopStatusDefaultsClosedOverHTTP(t *testing.T) {
	app := setupApp(t)

	w := app.do(t, "GET", "/user/shop/status", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["status"])

	// the default is never written back
	assert.False(t, app.mr.Exists(services.ShopStatusKey))
}

func TestShopStatusSetAndRead(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)

	w := app.do(t, "PUT", "/admin/shop/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, url := range []string{"/user/shop/status", "/admin/shop/status"} {
		var res map[string]interface{}
		if url == "/user/shop/status" {
			res = decodeBody(t, app.do(t, "GET", url, "", nil))
		} else {
			res = decodeBody(t, app.do(t, "GET", url, token, nil))
		}
		assert.Equal(t, 1.0, res["data"].(map[string]interface{})["status"])
	}

	w = app.do(t, "PUT", "/admin/shop/9", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", decodeBody(t, w)["code"])
}

func TestShopStatusWriteRequiresAdmin(t *testing.T) {
	app := setupApp(t)

	w := app.do(t, "PUT", "/admin/shop/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, "PUT", "/admin/shop/1", customerToken(t, 2), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
