package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"villa-api-backend/config"
	"villa-api-backend/internal/model"
	"villa-api-backend/internal/repository"
	"villa-api-backend/internal/service"
)

type envelope struct {
	StatusCode    int             `json:"statusCode"`
	IsSuccess     bool            `json:"isSuccess"`
	ErrorMessages []string        `json:"errorMessages"`
	Result        json.RawMessage `json:"result"`
}

func setupRouter(t *testing.T, cacheEnabled bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.Villa{}, &model.VillaNumber{}))

	cfg := config.Default()
	cfg.Server.RateLimitPerSec = 1000
	cfg.Server.RateLimitBurst = 1000
	cfg.Cache.Enabled = cacheEnabled

	villas := repository.NewVillaRepository(db)
	handler := NewHandler(
		service.NewVillaService(villas, cfg.Server.MaxPageSize, zap.NewNop()),
		service.NewVillaNumberService(repository.NewVillaNumberRepository(db, villas), cfg.Server.MaxPageSize, zap.NewNop()),
	)
	return NewRouter(cfg, handler, db, zap.NewNop())
}

func do(t *testing.T, r http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Code != http.StatusNoContent && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func createVilla(t *testing.T, r http.Handler, name string, occupancy int) int64 {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/api/v1/villas",
		fmt.Sprintf(`{"name":%q,"rate":120,"occupancy":%d,"sqft":300}`, name, occupancy))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var v struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Result, &v))
	return v.ID
}

func TestVillaLifecycle(t *testing.T) {
	r := setupRouter(t, false)

	w, env := do(t, r, http.MethodPost, "/api/v1/villas", `{"name":"Pool View","rate":100,"occupancy":4,"sqft":500}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.IsSuccess)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, []string{}, env.ErrorMessages)

	var created struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Result, &created))
	assert.Positive(t, created.ID)
	assert.Equal(t, fmt.Sprintf("/api/v1/villas/%d", created.ID), w.Header().Get("Location"))
	villaURL := w.Header().Get("Location")

	w, env = do(t, r, http.MethodGet, villaURL, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Result), `"name":"Pool View"`)

	w, _ = do(t, r, http.MethodPut, villaURL,
		fmt.Sprintf(`{"id":%d,"name":"Pool View Deluxe","rate":180,"occupancy":4,"sqft":520}`, created.ID))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w, _ = do(t, r, http.MethodPatch, villaURL, `[{"op":"replace","path":"/amenity","value":"jacuzzi"}]`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	_, env = do(t, r, http.MethodGet, villaURL, "")
	assert.Contains(t, string(env.Result), `"name":"Pool View Deluxe"`)
	assert.Contains(t, string(env.Result), `"amenity":"jacuzzi"`)

	w, _ = do(t, r, http.MethodDelete, villaURL, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, env = do(t, r, http.MethodGet, villaURL, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.IsSuccess)
	assert.Empty(t, env.Result)
}

func TestVillaErrors(t *testing.T) {
	r := setupRouter(t, false)
	id := createVilla(t, r, "Royal", 2)

	cases := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"non numeric id", http.MethodGet, "/api/v1/villas/abc", "", http.StatusBadRequest},
		{"zero id", http.MethodGet, "/api/v1/villas/0", "", http.StatusBadRequest},
		{"absent id", http.MethodGet, "/api/v1/villas/999", "", http.StatusNotFound},
		{"malformed body", http.MethodPost, "/api/v1/villas", `{"name":`, http.StatusBadRequest},
		{"empty body", http.MethodPost, "/api/v1/villas", "", http.StatusBadRequest},
		{"invalid fields", http.MethodPost, "/api/v1/villas", `{"name":"","rate":1,"occupancy":1,"sqft":1}`, http.StatusBadRequest},
		{"id mismatch", http.MethodPut, fmt.Sprintf("/api/v1/villas/%d", id), `{"id":777,"name":"x","rate":1,"occupancy":1,"sqft":1}`, http.StatusBadRequest},
		{"update absent", http.MethodPut, "/api/v1/villas/999", `{"id":999,"name":"x","rate":1,"occupancy":1,"sqft":1}`, http.StatusNotFound},
		{"null patch", http.MethodPatch, fmt.Sprintf("/api/v1/villas/%d", id), `null`, http.StatusBadRequest},
		{"unknown patch path", http.MethodPatch, fmt.Sprintf("/api/v1/villas/%d", id), `[{"op":"replace","path":"/wifi","value":1}]`, http.StatusBadRequest},
		{"patch absent", http.MethodPatch, "/api/v1/villas/999", `[]`, http.StatusNotFound},
		{"delete absent", http.MethodDelete, "/api/v1/villas/999", "", http.StatusNotFound},
		{"negative page size", http.MethodGet, "/api/v1/villas?pageSize=-1", "", http.StatusBadRequest},
		{"non numeric page", http.MethodGet, "/api/v1/villas?pageNumber=two", "", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, env := do(t, r, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.status, env.StatusCode)
			assert.False(t, env.IsSuccess)
			assert.NotNil(t, env.ErrorMessages)
		})
	}
}

func TestListVillas_Pagination(t *testing.T) {
	r := setupRouter(t, false)
	names := []string{"Royal Villa", "Premium Pool Villa", "Luxury Pool Villa", "Diamond Villa", "Diamond Pool Villa"}
	for _, name := range names {
		createVilla(t, r, name, 3)
	}

	w, env := do(t, r, http.MethodGet, "/api/v1/villas?pageSize=2&pageNumber=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pageNumber":2,"pageSize":2}`, w.Header().Get(PaginationHeader))

	var page []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Result, &page))
	require.Len(t, page, 2)
	assert.Equal(t, names[2], page[0].Name)
	assert.Equal(t, names[3], page[1].Name)

	w, _ = do(t, r, http.MethodGet, "/api/v1/villas", "")
	assert.JSONEq(t, `{"pageNumber":1,"pageSize":0}`, w.Header().Get(PaginationHeader))

	w, _ = do(t, r, http.MethodGet, "/api/v1/villas?pageSize=1000", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pageNumber":1,"pageSize":100}`, w.Header().Get(PaginationHeader))

	w, env = do(t, r, http.MethodGet, "/api/v1/villas?pageSize=2&pageNumber=", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"pageNumber":1,"pageSize":2}`, w.Header().Get(PaginationHeader))
	require.NoError(t, json.Unmarshal(env.Result, &page))
	assert.Equal(t, names[0], page[0].Name)

	_, env = do(t, r, http.MethodGet, "/api/v1/villas?search=POOL&filterOccupancy=3", "")
	require.NoError(t, json.Unmarshal(env.Result, &page))
	assert.Len(t, page, 3)

	_, env = do(t, r, http.MethodGet, "/api/v1/villas?filterOccupancy=9", "")
	assert.JSONEq(t, `[]`, string(env.Result))
}

func TestVillaNumbers(t *testing.T) {
	r := setupRouter(t, false)
	villaID := createVilla(t, r, "Royal", 2)

	w, env := do(t, r, http.MethodPost, "/api/v1/villaNumbers", `{"villaNo":101,"villaId":424242}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.IsSuccess)
	require.Len(t, env.ErrorMessages, 1)
	assert.Equal(t, "villa 424242 does not exist", env.ErrorMessages[0])

	w, _ = do(t, r, http.MethodGet, "/api/v1/villaNumbers/101", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/villaNumbers", fmt.Sprintf(`{"villaNo":101,"villaId":%d,"specialDetails":"corner"}`, villaID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/v1/villaNumbers/101", w.Header().Get("Location"))

	w, _ = do(t, r, http.MethodPost, "/api/v1/villaNumbers", fmt.Sprintf(`{"villaNo":101,"villaId":%d}`, villaID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPut, "/api/v1/villaNumbers/101", fmt.Sprintf(`{"villaNo":101,"villaId":%d,"specialDetails":"balcony"}`, villaID))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = do(t, r, http.MethodPatch, "/api/v1/villaNumbers/101", `[{"op":"remove","path":"/specialDetails"}]`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, env = do(t, r, http.MethodGet, fmt.Sprintf("/api/v1/villaNumbers?villaId=%d", villaID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(PaginationHeader))
	assert.Contains(t, string(env.Result), `"villaNo":101`)
	assert.Contains(t, string(env.Result), `"specialDetails":""`)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/villaNumbers/101", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = do(t, r, http.MethodDelete, "/api/v1/villaNumbers/101", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCachedReadsSeeWrites(t *testing.T) {
	r := setupRouter(t, true)
	createVilla(t, r, "Royal", 2)

	w, env := do(t, r, http.MethodGet, "/api/v1/villas", "")
	require.Equal(t, http.StatusOK, w.Code)
	first := string(env.Result)

	w, env = do(t, r, http.MethodGet, "/api/v1/villas", "")
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Equal(t, first, string(env.Result))

	createVilla(t, r, "Diamond", 2)
	w, env = do(t, r, http.MethodGet, "/api/v1/villas", "")
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Contains(t, string(env.Result), "Diamond")
}

func TestHealthAndMetrics(t *testing.T) {
	r := setupRouter(t, false)

	w, _ := do(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w, _ = do(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
