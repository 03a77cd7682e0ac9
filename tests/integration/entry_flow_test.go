package integration

import (
	"net/http"
	"testing"
)

func TestEntryFlow_NewExpenseThroughTree(t *testing.T) {
	app := setupApp(t)

	// Step 1: Open a blank expense session
	rec := app.request("POST", "/api/v1/entries", `{"type":"expense"}`, "")
	mustStatus(t, rec, http.StatusCreated)
	e := entryOf(t, rec)
	id := e["id"].(string)
	if n := len(e["nodes"].([]interface{})); n == 0 {
		t.Fatal("expected top-level nodes")
	}
	if e["can_submit"] != false {
		t.Error("expected blank session not submittable")
	}

	// Step 2: Drill into 交通 > 公共交通 > 地铁
	for _, node := range []string{"transport", "public", "subway"} {
		rec = app.request("POST", "/api/v1/entries/"+id+"/select", `{"node_id":"`+node+`"}`, "")
		mustStatus(t, rec, http.StatusOK)
	}
	e = entryOf(t, rec)
	if e["category"] != "交通" || e["sub_category"] != "地铁" {
		t.Errorf("expected pending 交通/地铁, got %v/%v", e["category"], e["sub_category"])
	}
	if n := len(e["breadcrumbs"].([]interface{})); n != 2 {
		t.Errorf("expected 2 breadcrumbs, got %d", n)
	}

	// Step 3: Fill in the amount and submit
	rec = app.request("PATCH", "/api/v1/entries/"+id, `{"amount":"4","note":"通勤"}`, "")
	mustStatus(t, rec, http.StatusOK)

	rec = app.request("POST", "/api/v1/entries/"+id+"/submit", "", "")
	mustStatus(t, rec, http.StatusCreated)
	tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if tx["id"] != "tx-1" || tx["note"] != "通勤" || tx["amount"] != "4" {
		t.Errorf("unexpected transaction %v", tx)
	}

	// Step 4: The session is closed and the ledger shows the new record first
	rec = app.request("GET", "/api/v1/entries/"+id, "", "")
	mustStatus(t, rec, http.StatusNotFound)

	rec = app.request("GET", "/api/v1/transactions?page_size=1", "", "")
	mustStatus(t, rec, http.StatusOK)
	data := parseJSON(t, rec)["data"].([]interface{})
	if first := data[0].(map[string]interface{}); first["id"] != "tx-1" {
		t.Errorf("expected tx-1 first, got %v", first["id"])
	}
}

func TestEntryFlow_EditKeepsClassificationAfterAscend(t *testing.T) {
	app := setupApp(t)

	// Seed transaction 2 is 餐饮/零食.
	rec := app.request("POST", "/api/v1/entries", `{"transaction_id":"2"}`, "")
	mustStatus(t, rec, http.StatusCreated)
	e := entryOf(t, rec)
	id := e["id"].(string)
	if e["editing"] != true || e["transaction_id"] != "2" {
		t.Fatalf("expected edit session for 2, got %v", e)
	}

	rec = app.request("POST", "/api/v1/entries/"+id+"/ascend", "", "")
	mustStatus(t, rec, http.StatusOK)
	e = entryOf(t, rec)
	if e["category"] != "餐饮" || e["sub_category"] != "零食" {
		t.Errorf("expected classification kept, got %v/%v", e["category"], e["sub_category"])
	}

	rec = app.request("PATCH", "/api/v1/entries/"+id, `{"amount":"60"}`, "")
	mustStatus(t, rec, http.StatusOK)
	rec = app.request("POST", "/api/v1/entries/"+id+"/submit", "", "")
	mustStatus(t, rec, http.StatusCreated)

	rec = app.request("GET", "/api/v1/transactions/2", "", "")
	mustStatus(t, rec, http.StatusOK)
	tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if tx["amount"] != "60" || tx["sub_category"] != "零食" {
		t.Errorf("unexpected edited transaction %v", tx)
	}

	rec = app.request("GET", "/api/v1/transactions", "", "")
	if total := parseJSON(t, rec)["total_items"].(float64); total != 3 {
		t.Errorf("expected edit in place, got %v transactions", total)
	}
}

func TestEntryFlow_TypeSwitchAndRejectedSubmit(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/entries", `{}`, "")
	mustStatus(t, rec, http.StatusCreated)
	id := entryOf(t, rec)["id"].(string)

	rec = app.request("POST", "/api/v1/entries/"+id+"/select", `{"node_id":"food"}`, "")
	mustStatus(t, rec, http.StatusOK)

	rec = app.request("POST", "/api/v1/entries/"+id+"/type", `{"type":"income"}`, "")
	mustStatus(t, rec, http.StatusOK)
	e := entryOf(t, rec)
	if e["type"] != "income" || e["category"] != nil {
		t.Errorf("expected income with no pending category, got %v", e)
	}

	rec = app.request("PATCH", "/api/v1/entries/"+id, `{"amount":"100"}`, "")
	mustStatus(t, rec, http.StatusOK)
	rec = app.request("POST", "/api/v1/entries/"+id+"/submit", "", "")
	mustStatus(t, rec, http.StatusUnprocessableEntity)

	// The rejected session stays open.
	rec = app.request("POST", "/api/v1/entries/"+id+"/select", `{"node_id":"salary"}`, "")
	mustStatus(t, rec, http.StatusOK)
	rec = app.request("POST", "/api/v1/entries/"+id+"/submit", "", "")
	mustStatus(t, rec, http.StatusCreated)

	rec = app.request("DELETE", "/api/v1/entries/"+id, "", "")
	mustStatus(t, rec, http.StatusNotFound)
}

func TestEntryFlow_ReceiptWithoutAdvisor(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/entries", `{}`, "")
	id := entryOf(t, rec)["id"].(string)

	rec = app.request("POST", "/api/v1/entries/"+id+"/receipt", "", "")
	mustStatus(t, rec, http.StatusBadRequest)
}
