package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops/testhelpers"
)

func TestHandleCustomerDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Delete Customer")
	handler := HandleCustomerDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/"+customer.Id, nil)
	req.SetPathValue("id", customer.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("customers", customer.Id); err == nil {
		t.Error("expected customer to be deleted")
	}
}

func TestHandleCustomerDelete_HasInvoices(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Invoiced Customer")

	create := HandleInvoiceCreate(app)
	body := fmt.Sprintf(`{"customer": %q, "hours": 8, "hourly_rate": 100}`, customer.Id)
	req := newJSONRequest(http.MethodPost, "/api/invoices", body)
	rec := httptest.NewRecorder()
	if err := create(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("invoice create returned error: %v", err)
	}

	handler := HandleCustomerDelete(app)
	req = httptest.NewRequest(http.MethodDelete, "/api/customers/"+customer.Id, nil)
	req.SetPathValue("id", customer.Id)
	rec = httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("customers", customer.Id); err != nil {
		t.Error("customer should not have been deleted")
	}
}
