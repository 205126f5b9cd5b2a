package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops/testhelpers"
)

func TestHandleEquipmentList_ReturnsAll(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestEquipment(t, app, "Mulcher A")
	testhelpers.CreateTestEquipment(t, app, "Chipper B")

	handler := HandleEquipmentList(app)

	req := httptest.NewRequest(http.MethodGet, "/api/equipment", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(),
		"Mulcher A", "Chipper B", `"total":2`)
}

func TestHandleEquipmentView_IncludesCostBreakdown(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	machine := testhelpers.CreateTestEquipment(t, app, "View Machine")

	handler := HandleEquipmentView(app)

	req := httptest.NewRequest(http.MethodGet, "/api/equipment/"+machine.Id, nil)
	req.SetPathValue("id", machine.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(),
		"cost_breakdown", "daily_cost", "monthly_cost", "View Machine")
}

func TestHandleEquipmentDefaults_PatternAndResale(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleEquipmentDefaults(app)

	req := httptest.NewRequest(http.MethodGet,
		"/api/equipment/defaults?pattern=heavy&purchase_price=100000", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(),
		`"usage_pattern":"heavy"`,
		`"estimated_resale_value":20000`)
}

func TestHandleEquipmentDefaults_InvalidPrice(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleEquipmentDefaults(app)

	req := httptest.NewRequest(http.MethodGet,
		"/api/equipment/defaults?purchase_price=abc", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
