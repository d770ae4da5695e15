package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/service"
	"go-warehouse-api/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDockService returns canned answers so the handler's status mapping can
// be checked without a database.
type stubDockService struct {
	dock  *model.Dock
	found bool
}

func (s *stubDockService) ListDocks() ([]model.Dock, error) {
	return []model.Dock{}, nil
}

func (s *stubDockService) GetDockByID(id uint) (*model.Dock, error) {
	if !s.found {
		return nil, apperr.NotFound("dock", id)
	}
	return s.dock, nil
}

func (s *stubDockService) CreateDock(input *service.CreateDockInput) (*model.Dock, error) {
	if input.WarehouseID == 0 {
		return nil, apperr.Validation("warehouse_id must be a positive integer")
	}
	return s.dock, nil
}

func (s *stubDockService) UpdateDock(id uint, input *service.UpdateDockInput) (bool, error) {
	return s.found, nil
}

func (s *stubDockService) ClearDock(id uint) (bool, error) {
	return s.found, nil
}

func (s *stubDockService) DeleteDock(id uint) (bool, error) {
	return s.found, nil
}

func dockApp(svc service.DockService) *fiber.App {
	h := NewDockHandler(svc)
	app := fiber.New()
	app.Post("/docks", h.CreateDock)
	app.Get("/docks/:id", h.GetDock)
	app.Put("/docks/:id", h.UpdateDock)
	app.Put("/docks/:id/clear", h.ClearDock)
	return app
}

func TestCreateDockStatusCodes(t *testing.T) {
	dock := &model.Dock{BaseModel: model.BaseModel{ID: 1}, WarehouseID: 1, Name: "Dock A", Status: model.DockUnoccupied}
	app := dockApp(&stubDockService{dock: dock, found: true})

	req := httptest.NewRequest("POST", "/docks", strings.NewReader(`{"warehouse_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	req = httptest.NewRequest("POST", "/docks", strings.NewReader(`{"name":"Dock X"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode, "validation errors map to 400")
}

func TestGetDockStatusCodes(t *testing.T) {
	app := dockApp(&stubDockService{found: false})

	resp, err := app.Test(httptest.NewRequest("GET", "/docks/7", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/docks/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode, "non-numeric id is a bad request")
}

func TestUpdateDockNotFoundMapsTo404(t *testing.T) {
	app := dockApp(&stubDockService{found: false})

	req := httptest.NewRequest("PUT", "/docks/5", strings.NewReader(`{"name":"Dock A","shipment_id":42}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("PUT", "/docks/5/clear", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
