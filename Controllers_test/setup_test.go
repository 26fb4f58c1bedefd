package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/router"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	mr     *miniredis.Miniredis
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctrl_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.DishCategory{},
		&models.Dish{},
		&models.DishFlavor{},
		&models.ComboMeal{},
		&models.ComboMealDish{},
		&models.CartItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	catalog := services.NewCatalogCache(db, rdb)
	deps := router.Deps{
		DB:      db,
		Catalog: catalog,
		Dishes:  services.NewDishService(db, catalog),
		Cart:    services.NewCartService(db),
		Shop:    services.NewShopStatusService(rdb),
	}

	return &testApp{router: router.SetupRouter(deps), db: db, mr: mr}
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(1, models.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to build admin token: %v", err)
	}
	return token
}

func customerToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, models.RoleCustomer)
	if err != nil {
		t.Fatalf("failed to build customer token: %v", err)
	}
	return token
}

func (app *testApp) do(t *testing.T, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}
