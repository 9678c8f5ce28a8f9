package test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/ie-dashboard/backend/internal/app"
	"github.com/ie-dashboard/backend/internal/app/appcontext"
	"github.com/ie-dashboard/backend/internal/model"
)

// testing hooks: https://pkg.go.dev/testing#hdr-Subtests_and_Sub_benchmarks

var (
	gMu       sync.Mutex
	gFiberApp *fiber.App
)

func startup(t *testing.T) {
	t.Helper()

	gMu.Lock()
	defer gMu.Unlock()

	if gFiberApp != nil {
		return
	}

	var fiberApp *fiber.App
	fxApp := fxtest.New(t,
		append(app.Options(appcontext.Declare(appcontext.EnvServer)), fx.Populate(&fiberApp))...,
	)
	fxApp.RequireStart()

	gFiberApp = fiberApp
}

func request(t *testing.T, req *http.Request, msTimeout ...int) *http.Response {
	t.Helper()

	resp, err := gFiberApp.Test(req, msTimeout...)
	if err != nil {
		t.Fatal(err)
	}

	return resp
}

func TestAPIMeta(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("health", func(t *testing.T) {
		resp := request(
			t,
			httptest.NewRequest(http.MethodGet, "/api/_/health", nil),
		)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("version", func(t *testing.T) {
		resp := request(
			t,
			httptest.NewRequest(http.MethodGet, "/api/_/bininfo", nil),
		)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestAPIOverview(t *testing.T) {
	startup(t)
	t.Parallel()

	resp := request(
		t,
		httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil),
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var overview model.Overview
	require.NoError(t, json.Unmarshal([]byte(bodyString(resp)), &overview))

	assert.Len(t, overview.KPIs, 5)
	assert.NotEmpty(t, overview.Snapshot.ID)
}

func TestAPIViews(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("descriptors", func(t *testing.T) {
		resp := request(
			t,
			httptest.NewRequest(http.MethodGet, "/api/v1/views", nil),
		)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var descriptors []model.ViewDescriptor
		require.NoError(t, json.Unmarshal([]byte(bodyString(resp)), &descriptors))

		require.Len(t, descriptors, 4)
		assert.Equal(t, "education", descriptors[0].Domain)
		assert.Equal(t, "compliance", descriptors[3].Domain)
	})

	// every domain view renders in isolation
	for _, domain := range []string{"education", "research", "workforce", "compliance"} {
		domain := domain
		t.Run(domain, func(t *testing.T) {
			resp := request(
				t,
				httptest.NewRequest(http.MethodGet, "/api/v1/views/"+domain, nil),
			)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var view model.View
			require.NoError(t, json.Unmarshal([]byte(bodyString(resp)), &view))

			assert.Equal(t, domain, view.Domain)
			assert.NotEmpty(t, view.Cards)
			assert.NotEmpty(t, view.Narrative)
		})
	}

	t.Run("unknown domain", func(t *testing.T) {
		resp := request(
			t,
			httptest.NewRequest(http.MethodGet, "/api/v1/views/finance", nil),
		)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.Unmarshal([]byte(bodyString(resp)), &body))
		assert.Equal(t, "INVALID_REQUEST", body["code"])
		assert.Contains(t, body, "violations")
	})

	t.Run("seed reproducibility", func(t *testing.T) {
		first := bodyString(request(
			t,
			httptest.NewRequest(http.MethodGet, "/api/v1/views/education?seed=42", nil),
		))
		second := bodyString(request(
			t,
			httptest.NewRequest(http.MethodGet, "/api/v1/views/education?seed=42", nil),
		))
		assert.Equal(t, first, second)
	})

	t.Run("invalid seed", func(t *testing.T) {
		resp := request(
			t,
			httptest.NewRequest(http.MethodGet, "/api/v1/views/education?seed=-1", nil),
		)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAPIExport(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		resp := request(
			t,
			httptest.NewRequest(http.MethodGet, "/api/v1/export/research?seed=7", nil),
		)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")

		var dataset model.ResearchDataset
		require.NoError(t, json.Unmarshal([]byte(bodyString(resp)), &dataset))
		assert.NotEmpty(t, dataset.TotalFundingM)
	})

	t.Run("msgpack", func(t *testing.T) {
		resp := request(
			t,
			httptest.NewRequest(http.MethodGet, "/api/v1/export/research?seed=7&format=msgpack", nil),
		)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/x-msgpack", resp.Header.Get(fiber.HeaderContentType))
	})

	t.Run("unknown format", func(t *testing.T) {
		resp := request(
			t,
			httptest.NewRequest(http.MethodGet, "/api/v1/export/research?format=csv", nil),
		)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestFrontend(t *testing.T) {
	startup(t)
	t.Parallel()

	resp := request(
		t,
		httptest.NewRequest(http.MethodGet, "/", nil),
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, bodyString(resp), "Institutional Effectiveness Dashboard")
}
