package calendar

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/foxseedlab/pitwall/internal/schedule"
)

// Handler serves GET /calendar/{year} as text/calendar.
type Handler struct {
	schedules schedule.Source
	now       func() time.Time
}

func NewHandler(schedules schedule.Source) *Handler {
	return &Handler{schedules: schedules, now: time.Now}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1950 {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	table, err := h.schedules.Load(r.Context(), year)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			http.Error(w, "no schedule for this year", http.StatusNotFound)
			return
		}
		slog.Error("failed to load schedule for calendar", "error", err, "year", year)
		http.Error(w, "schedule unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "inline; filename=\"f1-"+strconv.Itoa(year)+".ics\"")
	_, _ = w.Write([]byte(Export(table, h.now())))
}
