package calendar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/foxseedlab/pitwall/internal/schedule"
)

const season = `{
  "Monaco": {
    "location": "Monte Carlo",
    "sessions": {
      "fp1": "2024-05-24T11:30:00Z",
      "fp2": "2024-05-24T15:00:00Z",
      "fp3": "2024-05-25T10:30:00Z",
      "qualifying": "2024-05-25T14:00:00Z",
      "gp": "2024-05-26T13:00:00Z"
    }
  },
  "China": {
    "name": "Chinese",
    "location": "Shanghai",
    "sessions": {
      "fp1": "2024-04-19T03:30:00Z",
      "sprintQualifying": "2024-04-19T07:30:00Z",
      "sprint": "2024-04-20T03:00:00Z",
      "qualifying": "2024-04-20T07:00:00Z",
      "gp": "2024-04-21T07:00:00Z"
    }
  }
}`

func mustTable(t *testing.T) *schedule.Table {
	t.Helper()
	table, err := schedule.DecodeTable(2024, []byte(season))
	if err != nil {
		t.Fatalf("failed to decode schedule: %v", err)
	}
	return table
}

func TestExport_OneEventPerSession(t *testing.T) {
	out := Export(mustTable(t), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("failed to parse exported calendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(events))
	}

	race := events[4]
	if uid := race.GetProperty(ical.ComponentPropertyUniqueId); uid == nil || uid.Value != "2024-monaco-gp@pitwall" {
		t.Fatalf("unexpected uid: %+v", uid)
	}
	if s := race.GetProperty(ical.ComponentPropertySummary); s == nil || s.Value != "Monaco Grand Prix - Race" {
		t.Fatalf("unexpected summary: %+v", s)
	}
	start, err := race.GetStartAt()
	if err != nil || !start.Equal(time.Date(2024, 5, 26, 13, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v (%v)", start, err)
	}
	end, err := race.GetEndAt()
	if err != nil || end.Sub(start) != 2*time.Hour {
		t.Fatalf("unexpected end: %v (%v)", end, err)
	}

	sprint := events[7]
	if s := sprint.GetProperty(ical.ComponentPropertySummary); s == nil || s.Value != "Chinese Grand Prix - Sprint" {
		t.Fatalf("unexpected sprint summary: %+v", s)
	}
}

type stubSource struct {
	table *schedule.Table
	err   error
}

func (s stubSource) Load(_ context.Context, year int) (*schedule.Table, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.table == nil || s.table.Year != year {
		return nil, fmt.Errorf("%w: %d", schedule.ErrNotFound, year)
	}
	return s.table, nil
}

func serveCalendar(h *Handler, path string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.Handle("GET /calendar/{year}", h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler(t *testing.T) {
	table := mustTable(t)
	tests := []struct {
		name   string
		source stubSource
		path   string
		status int
	}{
		{name: "found", source: stubSource{table: table}, path: "/calendar/2024", status: http.StatusOK},
		{name: "missing year", source: stubSource{table: table}, path: "/calendar/2031", status: http.StatusNotFound},
		{name: "bad year", source: stubSource{table: table}, path: "/calendar/latest", status: http.StatusBadRequest},
		{name: "load failure", source: stubSource{err: fmt.Errorf("disk gone")}, path: "/calendar/2024", status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveCalendar(NewHandler(tt.source), tt.path)
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}

	rec := serveCalendar(NewHandler(stubSource{table: table}), "/calendar/2024")
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "BEGIN:VCALENDAR") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
