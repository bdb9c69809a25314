package preferences

import (
	"net/http"
	"os"
	"testing"

	"unit-converter/internal/i18n"
	"unit-converter/internal/kvstore"
	"unit-converter/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := InitMetrics(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter(store kvstore.KeyValueStore) http.Handler {
	r := chi.NewRouter()
	NewHandler(newTestService(store), i18n.English).RegisterRoutes(r)
	return r
}

func TestPreferenceLifecycle(t *testing.T) {
	router := newTestRouter(kvstore.NewMemory())

	req := testutil.NewJSONRequest(t, http.MethodPut, "/preferences/abc", PreferenceRequest{Category: "area", From: "py", To: "m2"})
	w := testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	req = testutil.NewJSONRequest(t, http.MethodGet, "/preferences/abc", nil)
	w = testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got map[string]any
	testutil.DecodeJSONBody(t, w.Body, &got)
	assert.Equal(t, "area", got["category"])
	assert.Equal(t, "py", got["from"])
	assert.Equal(t, "m2", got["to"])

	req = testutil.NewJSONRequest(t, http.MethodDelete, "/preferences/abc", nil)
	w = testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusNoContent, w.Code)

	req = testutil.NewJSONRequest(t, http.MethodGet, "/preferences/abc?lang=ko", nil)
	w = testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Body, &body)
	assert.Equal(t, i18n.Text(i18n.Korean, i18n.KeyPreferenceNotFound), body["error"])
}

func TestPutPreferenceRejectsBadSelection(t *testing.T) {
	router := newTestRouter(kvstore.NewMemory())

	req := testutil.NewJSONRequest(t, http.MethodPut, "/preferences/abc", PreferenceRequest{Category: "length", From: "m", To: "kg"})
	w := testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

	req = testutil.NewJSONRequest(t, http.MethodPut, "/preferences/abc", `{"category":"length"}`)
	w = testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
}

func TestGetPreferenceStoreFailure(t *testing.T) {
	router := newTestRouter(&failingStore{kvstore.NewMemory()})

	req := testutil.NewJSONRequest(t, http.MethodGet, "/preferences/abc", nil)
	w := testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusServiceUnavailable, w.Code)
}

func TestPutPreferenceNormalizesCategory(t *testing.T) {
	router := newTestRouter(kvstore.NewMemory())

	req := testutil.NewJSONRequest(t, http.MethodPut, "/preferences/abc", PreferenceRequest{Category: " Length ", From: "m", To: "ft"})
	w := testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got map[string]any
	testutil.DecodeJSONBody(t, w.Body, &got)
	assert.Equal(t, "length", got["category"])

	req = testutil.NewJSONRequest(t, http.MethodPut, "/preferences/abc", PreferenceRequest{Category: "speed", From: "m", To: "ft"})
	w = testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
}
