package e2e

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/testutil"
)

type record map[string]interface{}

func listOf(t *testing.T, resp *http.Response, key string) ([]record, int) {
	t.Helper()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var body map[string]json.RawMessage
	testutil.DecodeJSON(t, resp, &body)

	var items []record
	if err := json.Unmarshal(body[key], &items); err != nil {
		t.Fatalf("Failed to decode %s: %v", key, err)
	}
	if items == nil {
		t.Fatalf("Expected %s to be an array, got %s", key, string(body[key]))
	}
	var count int
	if err := json.Unmarshal(body["count"], &count); err != nil {
		t.Fatalf("Failed to decode count: %v", err)
	}
	return items, count
}

func errorOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	testutil.DecodeJSON(t, resp, &body)
	return body["error"]
}

func TestE2E_SeededCollections(t *testing.T) {
	ts := SetupE2ETest(t)

	expected := map[string]int{
		"/patients":      3,
		"/doctors":       4,
		"/appointments":  2,
		"/history":       3,
		"/consultations": 2,
	}
	keys := map[string]string{
		"/patients":      "patients",
		"/doctors":       "doctors",
		"/appointments":  "appointments",
		"/history":       "history",
		"/consultations": "consultations",
	}

	for path, want := range expected {
		items, count := listOf(t, ts.Client.GET(t, path), keys[path])
		if count != want || len(items) != count {
			t.Errorf("%s: expected %d records, got count %d and %d items", path, want, count, len(items))
		}
	}
}

func TestE2E_PatientRoundTrip(t *testing.T) {
	ts := SetupE2ETest(t)

	resp := ts.Client.POST(t, "/patients", map[string]string{
		"firstName": "Ann",
		"lastName":  "Lee",
		"email":     "a@x.com",
		"phone":     "555",
	})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var created record
	testutil.DecodeJSON(t, resp, &created)
	id, _ := created["id"].(string)
	if id != "4" {
		t.Errorf("Expected id '4' after 3 seeded patients, got '%s'", id)
	}
	if created["createdAt"] == nil || created["createdAt"] == "" {
		t.Error("Expected createdAt to be set")
	}

	first := testutil.ReadBody(t, ts.Client.GET(t, "/patients/"+id))
	second := testutil.ReadBody(t, ts.Client.GET(t, "/patients/"+id))
	if first != second {
		t.Errorf("Expected repeated reads to match.\nfirst:  %s\nsecond: %s", first, second)
	}

	var fetched record
	json.Unmarshal([]byte(first), &fetched)
	for k, v := range created {
		if fetched[k] != v {
			t.Errorf("Field %s: created %v, fetched %v", k, v, fetched[k])
		}
	}

	ts.MockPublisher.AssertEventCount(t, messaging.EventPatientCreated, 1)
}

func TestE2E_DeleteThenGet(t *testing.T) {
	ts := SetupE2ETest(t)

	testutil.AssertStatusCode(t, ts.Client.DELETE(t, "/patients/1"), http.StatusOK)

	resp := ts.Client.GET(t, "/patients/1")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", resp.StatusCode)
	}
	if msg := errorOf(t, resp); msg != "Patient not found" {
		t.Errorf("Expected 'Patient not found', got '%s'", msg)
	}

	// No cascade into dependent records.
	_, count := listOf(t, ts.Client.GET(t, "/appointments"), "appointments")
	if count != 2 {
		t.Errorf("Expected appointments untouched, got %d", count)
	}
}

func TestE2E_UpdateMergeLaw(t *testing.T) {
	ts := SetupE2ETest(t)

	var before record
	testutil.DecodeJSON(t, ts.Client.GET(t, "/appointments/1"), &before)

	resp := ts.Client.PUT(t, "/appointments/1", map[string]string{"status": "completed"})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var after record
	testutil.DecodeJSON(t, resp, &after)

	for k, v := range before {
		if k == "status" {
			continue
		}
		if after[k] != v {
			t.Errorf("Field %s changed: %v -> %v", k, v, after[k])
		}
	}
	if after["status"] != "completed" {
		t.Errorf("Expected status 'completed', got %v", after["status"])
	}
}

func TestE2E_UpdateCannotChangeIdentity(t *testing.T) {
	ts := SetupE2ETest(t)

	var before record
	testutil.DecodeJSON(t, ts.Client.GET(t, "/patients/2"), &before)

	resp := ts.Client.PUT(t, "/patients/2", map[string]string{
		"id":        "99",
		"createdAt": "1999-01-01T00:00:00Z",
		"phone":     "000",
	})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var after record
	testutil.DecodeJSON(t, resp, &after)
	if after["id"] != "2" || after["createdAt"] != before["createdAt"] {
		t.Errorf("Expected identity unchanged, got id %v createdAt %v", after["id"], after["createdAt"])
	}
	if after["phone"] != "000" {
		t.Errorf("Expected phone updated, got %v", after["phone"])
	}

	testutil.AssertStatusCode(t, ts.Client.GET(t, "/patients/99"), http.StatusNotFound)
}

func TestE2E_MissingFieldRejection(t *testing.T) {
	ts := SetupE2ETest(t)

	resp := ts.Client.POST(t, "/patients", map[string]string{"firstName": "Ann"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", resp.StatusCode)
	}
	msg := errorOf(t, resp)
	for _, field := range []string{"lastName", "email", "phone"} {
		if !strings.Contains(msg, field) {
			t.Errorf("Expected error to name %s, got '%s'", field, msg)
		}
	}
	if strings.Contains(msg, "firstName") {
		t.Errorf("Expected error not to name a supplied field, got '%s'", msg)
	}

	_, count := listOf(t, ts.Client.GET(t, "/patients"), "patients")
	if count != 3 {
		t.Errorf("Expected store length unchanged at 3, got %d", count)
	}
	ts.MockPublisher.AssertNoEvents(t)
}

func TestE2E_ReferenceCheck(t *testing.T) {
	ts := SetupE2ETest(t)

	testCases := []struct {
		path string
		key  string
		body map[string]string
	}{
		{"/consultations", "consultations", map[string]string{"patientId": "1", "doctorId": "999", "notes": "n"}},
		{"/appointments", "appointments", map[string]string{"patientId": "999", "doctorId": "1", "dateTime": "2025-06-01T10:00:00Z", "reason": "r"}},
	}

	for _, tc := range testCases {
		resp := ts.Client.POST(t, tc.path, tc.body)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: expected status 404, got %d", tc.path, resp.StatusCode)
		}
		if msg := errorOf(t, resp); msg != "Patient or doctor not found" {
			t.Errorf("%s: unexpected error '%s'", tc.path, msg)
		}
		if _, count := listOf(t, ts.Client.GET(t, tc.path), tc.key); count != 2 {
			t.Errorf("%s: expected store length unchanged, got %d", tc.path, count)
		}
	}
}

func TestE2E_ConsultationDenormalizesNames(t *testing.T) {
	ts := SetupE2ETest(t)

	resp := ts.Client.POST(t, "/consultations", map[string]string{"patientId": "3", "doctorId": "4", "notes": "Knee pain"})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var c record
	testutil.DecodeJSON(t, resp, &c)
	if c["patientName"] != "Robert Johnson" || c["doctorName"] != "Dr. Taylor" || c["status"] != "active" {
		t.Errorf("Unexpected consultation: %v", c)
	}

	// Names are a snapshot: renaming the patient does not touch the consultation.
	testutil.AssertStatusCode(t, ts.Client.PUT(t, "/patients/3", map[string]string{"lastName": "Jones"}), http.StatusOK)
	var again record
	testutil.DecodeJSON(t, ts.Client.GET(t, "/consultations/"+c["id"].(string)), &again)
	if again["patientName"] != "Robert Johnson" {
		t.Errorf("Expected snapshot name, got %v", again["patientName"])
	}
}

func TestE2E_SpecialtyFilter(t *testing.T) {
	ts := SetupE2ETest(t)

	paths := []string{
		"/doctors/specialty/anything?specialty=cardio",
		"/doctors/specialty/CARDIO",
		"/doctors/specialty?specialty=Cardio",
	}
	for _, path := range paths {
		doctors, count := listOf(t, ts.Client.GET(t, path), "doctors")
		if count != 1 || doctors[0]["specialty"] != "Cardiology" {
			t.Errorf("%s: expected only the cardiologist, got %v", path, doctors)
		}
	}

	if _, count := listOf(t, ts.Client.GET(t, "/doctors/specialty"), "doctors"); count != 4 {
		t.Errorf("Expected unfiltered list for an empty term, got %d", count)
	}
}

func TestE2E_HistoryByPatient(t *testing.T) {
	ts := SetupE2ETest(t)

	resp := ts.Client.POST(t, "/history", map[string]string{
		"patientId": "3",
		"diagnosis": "Sprain",
		"treatment": "Ice",
		"notes":     "Rest for a week",
	})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)
	var created record
	testutil.DecodeJSON(t, resp, &created)
	if created["patientName"] != "Robert Johnson" || created["doctorName"] != "Dr. Unknown" {
		t.Errorf("Unexpected defaults: %v", created)
	}

	entries, count := listOf(t, ts.Client.GET(t, "/history/patient/1"), "history")
	if count != 2 {
		t.Fatalf("Expected 2 entries for patient 1, got %d", count)
	}
	if entries[0]["diagnosis"] != "Hypertension" || entries[1]["diagnosis"] != "Regular checkup" {
		t.Errorf("Expected original order, got %v", entries)
	}
	ts.MockPublisher.AssertEventCount(t, messaging.EventHistoryEntryCreated, 1)
}

func TestE2E_IDsStrictlyIncrease(t *testing.T) {
	ts := SetupE2ETest(t)

	last := 2
	for i := 0; i < 3; i++ {
		resp := ts.Client.POST(t, "/consultations", map[string]string{"patientId": "1", "doctorId": "2", "notes": "n"})
		testutil.AssertStatusCode(t, resp, http.StatusCreated)
		var c record
		testutil.DecodeJSON(t, resp, &c)

		id, err := strconv.Atoi(c["id"].(string))
		if err != nil || id <= last {
			t.Fatalf("Expected id greater than %d, got %v", last, c["id"])
		}
		last = id

		// Deleting never frees an id.
		testutil.AssertStatusCode(t, ts.Client.DELETE(t, "/consultations/"+c["id"].(string)), http.StatusOK)
	}
}

func TestE2E_AuxiliaryEndpoints(t *testing.T) {
	ts := SetupE2ETest(t)

	health, err := http.Get(ts.Server.URL + "/health")
	if err != nil {
		t.Fatalf("Health request failed: %v", err)
	}
	testutil.AssertStatusCode(t, health, http.StatusOK)
	health.Body.Close()

	var ping map[string]string
	testutil.DecodeJSON(t, ts.Client.GET(t, "/ping"), &ping)
	if ping["message"] != "pong" {
		t.Errorf("Expected ping message 'pong', got '%s'", ping["message"])
	}

	var summary map[string]int
	testutil.DecodeJSON(t, ts.Client.GET(t, "/dashboard"), &summary)
	if summary["patients"] != 3 || summary["doctors"] != 4 || summary["consultations"] != 2 {
		t.Errorf("Unexpected dashboard: %v", summary)
	}
	if summary["activeConsultationsToday"] != 1 {
		t.Errorf("Expected the seeded active consultation to count for today, got %d", summary["activeConsultationsToday"])
	}

	resp := ts.Client.GET(t, "/nothing-here")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown route, got %d", resp.StatusCode)
	}
	if msg := errorOf(t, resp); msg == "" {
		t.Error("Expected JSON error body for unknown route")
	}

	wrongMethods := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/doctors/1"},
		{http.MethodDelete, "/patients"},
		{http.MethodPut, "/history"},
		{http.MethodPost, "/doctors"},
	}
	for _, wm := range wrongMethods {
		resp = ts.Client.Do(t, wm.method, wm.path, nil)
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("Expected 405 for %s %s, got %d", wm.method, wm.path, resp.StatusCode)
			resp.Body.Close()
			continue
		}
		if msg := errorOf(t, resp); msg != "Method not allowed" {
			t.Errorf("Expected 'Method not allowed' for %s %s, got '%s'", wm.method, wm.path, msg)
		}
	}
}

func TestE2E_MalformedJSON(t *testing.T) {
	ts := SetupE2ETest(t)

	req, _ := http.NewRequest(http.MethodPost, ts.Client.BaseURL+"/patients", strings.NewReader(`{"firstName":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := ts.Client.Client.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
	if msg := errorOf(t, resp); !strings.HasPrefix(msg, "Invalid JSON payload") {
		t.Errorf("Unexpected error '%s'", msg)
	}
}
