package conversion

import (
	"net/http"
	"os"
	"testing"

	"unit-converter/internal/i18n"
	"unit-converter/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := InitMetrics(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	NewHandler(i18n.English).RegisterRoutes(r)
	return r
}

func TestConvertHandler(t *testing.T) {
	req := testutil.NewJSONRequest(t, http.MethodPost, "/convert", ConvertRequest{
		Category: "length", From: "m", To: "km", Input: "1500",
	})
	w := testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ConvertResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	assert.True(t, resp.OK)
	assert.Equal(t, "1.5", resp.Result)
	require.NotNil(t, resp.Value)
	assert.Equal(t, 1.5, *resp.Value)
	assert.Empty(t, resp.Message)
}

func TestConvertHandlerAcceptsNumericInput(t *testing.T) {
	req := testutil.NewJSONRequest(t, http.MethodPost, "/convert",
		`{"category":"temperature","from":"c","to":"f","input":100}`)
	w := testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ConvertResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	assert.Equal(t, "212", resp.Result)
	assert.Equal(t, "100", resp.Input)
}

func TestConvertHandlerInvalidInputYieldsEmptyResult(t *testing.T) {
	req := testutil.NewJSONRequest(t, http.MethodPost, "/convert?lang=ko", ConvertRequest{
		Category: "weight", From: "kg", To: "lb", Input: "12abc",
	})
	w := testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ConvertResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	assert.False(t, resp.OK)
	assert.Empty(t, resp.Result)
	assert.Nil(t, resp.Value)
	assert.Equal(t, i18n.Text(i18n.Korean, i18n.KeyInvalidInput), resp.Message)
}

func TestConvertHandlerRejectsBadRequests(t *testing.T) {
	tests := map[string]struct {
		body    any
		wantErr string
	}{
		"malformed json":   {body: `{"category":`, wantErr: "invalid request body"},
		"missing field":    {body: `{"category":"length","from":"m","input":"1"}`, wantErr: "invalid request body"},
		"unknown category": {body: ConvertRequest{Category: "speed", From: "a", To: "b", Input: "1"}, wantErr: "Unknown category"},
		"unknown unit":     {body: ConvertRequest{Category: "length", From: "m", To: "kg", Input: "1"}, wantErr: "Unknown unit"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/convert", tc.body)
			w := testutil.ExecuteRequest(req, newTestRouter())
			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)
			assert.Equal(t, tc.wantErr, body["error"])
		})
	}
}

func TestChainHandler(t *testing.T) {
	req := testutil.NewJSONRequest(t, http.MethodPost, "/convert/chain", map[string]any{
		"category": "length",
		"input":    "1500",
		"path":     []string{"m", "km", "mi", "m"},
	})
	w := testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ChainResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	assert.True(t, resp.OK)
	require.Len(t, resp.Steps, 3)
	assert.Equal(t, "1.5", resp.Steps[0].Display)
	assert.Equal(t, "1500", resp.Result)
}

func TestChainHandlerErrors(t *testing.T) {
	tests := map[string]struct {
		body   map[string]any
		status int
	}{
		"path too short": {body: map[string]any{"category": "length", "input": "1", "path": []string{"m"}}, status: http.StatusBadRequest},
		"unknown unit":   {body: map[string]any{"category": "length", "input": "1", "path": []string{"m", "kg"}}, status: http.StatusBadRequest},
		"bad unit with invalid input": {
			body:   map[string]any{"category": "length", "input": "x", "path": []string{"m", "kg"}},
			status: http.StatusBadRequest,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/convert/chain", tc.body)
			w := testutil.ExecuteRequest(req, newTestRouter())
			testutil.CheckResponseCode(t, tc.status, w.Code)
		})
	}
}

func TestChainHandlerInvalidInput(t *testing.T) {
	req := testutil.NewJSONRequest(t, http.MethodPost, "/convert/chain", map[string]any{
		"category": "area",
		"input":    "",
		"path":     []string{"py", "m2"},
	})
	w := testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ChainResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	assert.False(t, resp.OK)
	assert.Empty(t, resp.Steps)
	assert.Empty(t, resp.Result)
}

func TestListUnitsLocalized(t *testing.T) {
	req := testutil.NewJSONRequest(t, http.MethodGet, "/units", nil)
	req.Header.Set("Accept-Language", "ja-JP,ja;q=0.9")
	w := testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp UnitsResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	assert.Equal(t, "ja", resp.Locale)
	require.Len(t, resp.Categories, 5)
	assert.Equal(t, "長さ", resp.Categories[0].Label)
}

func TestGetCategory(t *testing.T) {
	req := testutil.NewJSONRequest(t, http.MethodGet, "/units/area?lang=ko", nil)
	w := testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var view CategoryView
	testutil.DecodeJSONBody(t, w.Body, &view)

	assert.Equal(t, "area", view.ID)
	assert.Equal(t, "넓이", view.Label)

	bases := 0
	for _, u := range view.Units {
		if u.Base {
			bases++
			assert.Equal(t, "m2", u.ID)
		}
		if u.ID == "py" {
			assert.Equal(t, "평 (py)", u.Label)
		}
	}
	assert.Equal(t, 1, bases)

	req = testutil.NewJSONRequest(t, http.MethodGet, "/units/speed", nil)
	w = testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)
}
