package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops/testhelpers"
)

func TestHandleCustomerCreate_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerCreate(app)

	body := `{
		"name": "Pine Flats HOA",
		"contact_person": "R. Maddox",
		"email": "board@pineflats.org",
		"phone": "352-555-0133"
	}`
	req := newJSONRequest(http.MethodPost, "/api/customers", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	testhelpers.AssertJSONContains(t, rec.Body.String(), "Pine Flats HOA")
}

func TestHandleCustomerCreate_MissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerCreate(app)

	req := newJSONRequest(http.MethodPost, "/api/customers", `{"phone": "352-555-0100"}`)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleCustomerEdit_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Old Name")

	handler := HandleCustomerEdit(app)

	req := newJSONRequest(http.MethodPatch, "/api/customers/"+customer.Id,
		`{"name": "New Name"}`)
	req.SetPathValue("id", customer.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	updated, err := app.FindRecordById("customers", customer.Id)
	if err != nil {
		t.Fatalf("could not reload customer: %v", err)
	}
	if got := updated.GetString("name"); got != "New Name" {
		t.Errorf("name = %q, want New Name", got)
	}
}
