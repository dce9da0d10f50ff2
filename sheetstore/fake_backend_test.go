package sheetstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// fakeSheetsBackend is an in-memory stand-in for the Sheets API. It
// records every request so tests can assert that read paths stay free of
// mutating calls. The mutex keeps the recorders coherent when tests issue
// concurrent calls.
type fakeSheetsBackend struct {
	mu          sync.Mutex
	spreadsheet *sheets.Spreadsheet
	values      map[string][][]interface{}

	requests  []string
	mutations int
	appended  [][]interface{}
	updated   map[string][][]interface{}

	failSpreadsheetGet bool
}

func newFakeSheetsBackend() *fakeSheetsBackend {
	return &fakeSheetsBackend{
		spreadsheet: &sheets.Spreadsheet{
			Properties: &sheets.SpreadsheetProperties{Title: "Dr.Viva Tasks"},
		},
		values:  make(map[string][][]interface{}),
		updated: make(map[string][][]interface{}),
	}
}

// rangeFromPath extracts the A1 range from a values URL, e.g.
// /v4/spreadsheets/sheet-1/values/Tasks!A:F:append -> Tasks!A:F
func rangeFromPath(path string) string {
	idx := strings.Index(path, "/values/")
	if idx < 0 {
		return ""
	}
	r := path[idx+len("/values/"):]
	return strings.TrimSuffix(r, ":append")
}

func (f *fakeSheetsBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)

		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":append"):
			f.mutations++
			var vr sheets.ValueRange
			_ = json.NewDecoder(r.Body).Decode(&vr)
			f.appended = append(f.appended, vr.Values...)
			writeJSON(w, &sheets.AppendValuesResponse{})

		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":batchUpdate"):
			f.mutations++
			var req sheets.BatchUpdateSpreadsheetRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			resp := &sheets.BatchUpdateSpreadsheetResponse{}
			for _, rq := range req.Requests {
				if rq.AddSheet != nil {
					props := &sheets.SheetProperties{Title: rq.AddSheet.Properties.Title, SheetId: 42}
					f.spreadsheet.Sheets = append(f.spreadsheet.Sheets, &sheets.Sheet{Properties: props})
					resp.Replies = append(resp.Replies, &sheets.Response{
						AddSheet: &sheets.AddSheetResponse{Properties: props},
					})
					continue
				}
				resp.Replies = append(resp.Replies, &sheets.Response{})
			}
			writeJSON(w, resp)

		case r.Method == http.MethodPut:
			f.mutations++
			rangeName := rangeFromPath(r.URL.Path)
			var vr sheets.ValueRange
			_ = json.NewDecoder(r.Body).Decode(&vr)
			f.updated[rangeName] = vr.Values
			f.values[rangeName] = vr.Values
			writeJSON(w, &sheets.UpdateValuesResponse{})

		case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/values/"):
			rangeName := rangeFromPath(r.URL.Path)
			writeJSON(w, &sheets.ValueRange{Range: rangeName, Values: f.values[rangeName]})

		case r.Method == http.MethodGet:
			if f.failSpreadsheetGet {
				http.Error(w, "backend unavailable", http.StatusInternalServerError)
				return
			}
			writeJSON(w, f.spreadsheet)

		default:
			http.NotFound(w, r)
		}
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T) (*fakeSheetsBackend, *Client) {
	t.Helper()

	backend := newFakeSheetsBackend()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	srv, err := sheets.NewService(context.Background(),
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return backend, NewClientWithService(srv, "sheet-1", "Tasks")
}
