package handlers

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops/testhelpers"
)

func TestHandleLoadoutCreate_PricesFromMembers(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	emp := testhelpers.CreateTestEmployee(t, app, "Crew One", "TRS", 3)
	machine := testhelpers.CreateTestEquipment(t, app, "Crew Machine")

	handler := HandleLoadoutCreate(app)

	body := fmt.Sprintf(`{
		"name": "Priced Crew",
		"employees": [%q],
		"equipment": [%q],
		"markup_multiplier": 2.5
	}`, emp.Id, machine.Id)
	req := newJSONRequest(http.MethodPost, "/api/loadouts", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	loadouts, err := app.FindAllRecords("loadouts")
	if err != nil || len(loadouts) != 1 {
		t.Fatalf("expected 1 saved loadout, got %d (err %v)", len(loadouts), err)
	}
	saved := loadouts[0]

	wantOperating := emp.GetFloat("true_hourly_cost") + machine.GetFloat("hourly_cost")
	if got := saved.GetFloat("total_operating_cost"); math.Abs(got-wantOperating) > 0.001 {
		t.Errorf("total_operating_cost = %.4f, want %.4f", got, wantOperating)
	}
	if got := saved.GetFloat("billing_rate"); math.Abs(got-wantOperating*2.5) > 0.001 {
		t.Errorf("billing_rate = %.4f, want %.4f", got, wantOperating*2.5)
	}
	if got := saved.GetFloat("profit_margin"); math.Abs(got-60) > 0.001 {
		t.Errorf("profit_margin = %.4f, want 60", got)
	}
}

func TestHandleLoadoutCreate_MissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLoadoutCreate(app)

	req := newJSONRequest(http.MethodPost, "/api/loadouts", `{"markup_multiplier": 2.5}`)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleLoadoutEdit_RepricesOnMemberChange(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	emp := testhelpers.CreateTestEmployee(t, app, "Original Crew", "LCL", 2)
	loadout := testhelpers.CreateTestLoadout(t, app, "Edit Crew", []string{emp.Id}, nil)
	prevRate := loadout.GetFloat("billing_rate")

	second := testhelpers.CreateTestEmployee(t, app, "Added Crew", "TRS", 4)

	handler := HandleLoadoutEdit(app)

	body := fmt.Sprintf(`{
		"name": "Edit Crew",
		"employees": [%q, %q],
		"markup_multiplier": 2.5
	}`, emp.Id, second.Id)
	req := newJSONRequest(http.MethodPatch, "/api/loadouts/"+loadout.Id, body)
	req.SetPathValue("id", loadout.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	updated, err := app.FindRecordById("loadouts", loadout.Id)
	if err != nil {
		t.Fatalf("could not reload loadout: %v", err)
	}
	if updated.GetFloat("billing_rate") <= prevRate {
		t.Error("expected billing_rate to increase with the added member")
	}
}

func TestHandleLoadoutEstimate_MockPricing(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLoadoutEstimate(app)

	// 3 x $45 + 2 x $85 = $305 operating, x2.5 = $762.50.
	body := `{"employee_count": 3, "equipment_count": 2, "markup_multiplier": 2.5}`
	req := newJSONRequest(http.MethodPost, "/api/loadouts/estimate", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(),
		`"total_operating_cost":305`,
		`"billing_rate":762.5`,
		`"profit_margin":60`)
}

func TestHandleLoadoutEstimate_NegativeCounts(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLoadoutEstimate(app)

	req := newJSONRequest(http.MethodPost, "/api/loadouts/estimate",
		`{"employee_count": -1, "equipment_count": 0}`)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
