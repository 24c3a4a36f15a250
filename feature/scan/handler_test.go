package scan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"asset-registry/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScanApp(t *testing.T, s *ScanScheduler) *fiber.App {
	t.Helper()
	app := fiber.New()
	require.NoError(t, NewFeature(s, zap.NewNop()).Load(app))
	return app
}

func decode(t *testing.T, app *fiber.App, method, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandler_Latest(t *testing.T) {
	s := NewScheduler(testConfig(), nil, nil, nil, zap.NewNop())
	defer s.Stop()
	app := newScanApp(t, s)

	status, body := decode(t, app, "GET", "/scan")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Empty(t, body["files"])
	assert.Nil(t, body["last_scan"])

	r := warningResult()
	r.Files[0].ChangedRows = []reconcile.ChangedRow{{Key: "A002", Changes: []reconcile.FieldChange{{Column: "User", Sheet: "tono", Stored: "sari"}}}}
	s.publisher.Publish(r)

	status, body = decode(t, app, "GET", "/scan")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "warning", body["status"])

	_, body = decode(t, app, "GET", "/scan?flat=true")
	files := body["files"].([]any)
	row := files[0].(map[string]any)["changed_rows"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"Kode": "A002", "User (Excel)": "tono", "User (DB)": "sari"}, row)
}

func TestHandler_LatestFromMirror(t *testing.T) {
	m := new(mockMirror)
	s := NewScheduler(testConfig(), nil, m, nil, zap.NewNop())
	defer s.Stop()
	app := newScanApp(t, s)

	r := warningResult()
	r.RunID = "from-redis"
	m.On("Load", mock.Anything).Return(r, nil).Once()

	_, body := decode(t, app, "GET", "/scan")
	assert.Equal(t, "from-redis", body["run_id"])
}

func TestHandler_Run(t *testing.T) {
	s := NewScheduler(testConfig(), nil, nil, nil, zap.NewNop())
	defer s.Stop()
	app := newScanApp(t, s)

	s.scan = func(ctx context.Context, spec *reconcile.Spec) (*reconcile.ScanResult, error) {
		r := warningResult()
		r.RunID = spec.RunID
		return r, nil
	}
	status, body := decode(t, app, "POST", "/scan")
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["run_id"])
	assert.Equal(t, body["run_id"], s.Latest().RunID)

	s.scan = func(ctx context.Context, spec *reconcile.Spec) (*reconcile.ScanResult, error) {
		return nil, errors.New("failed to load inventory index: db down")
	}
	status, body = decode(t, app, "POST", "/scan")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body["error"], "db down")
}
