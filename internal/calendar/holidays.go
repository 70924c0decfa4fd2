package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	ical "github.com/emersion/go-ical"
	"github.com/muniapms/task-scheduler/backend/internal/domain"
)

// WeekStart returns midnight of the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FetchHolidays loads an iCalendar feed from a URL or a file path and returns the working days of
// the week starting at weekStart that are covered by an event.
func FetchHolidays(ctx context.Context, source string, weekStart time.Time) (domain.Holidays, error) {
	var r io.ReadCloser

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching holiday calendar: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("holiday calendar fetch returned status %d", resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("opening holiday calendar: %w", err)
		}
		r = f
	}
	defer r.Close()

	return ParseHolidays(r, weekStart)
}

// ParseHolidays decodes iCalendar data. An all-day event covers the days from DTSTART up to but
// not including DTEND; a timed event covers every day it touches.
func ParseHolidays(r io.Reader, weekStart time.Time) (domain.Holidays, error) {
	weekStart = WeekStart(weekStart)
	dec := ical.NewDecoder(r)
	holidays := domain.Holidays{}

	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing holiday calendar: %w", err)
		}

		for _, event := range cal.Events() {
			start, err := event.DateTimeStart(weekStart.Location())
			if err != nil {
				continue
			}
			end, err := event.DateTimeEnd(weekStart.Location())
			if err != nil || !end.After(start) {
				end = start.Add(time.Nanosecond)
			}

			for i, day := range domain.Weekdays {
				dayStart := weekStart.AddDate(0, 0, i)
				dayEnd := dayStart.AddDate(0, 0, 1)
				if start.Before(dayEnd) && end.After(dayStart) && !holidays.Contains(day) {
					holidays = append(holidays, day)
				}
			}
		}
	}

	// keep Monday..Friday order regardless of event order
	ordered := domain.Holidays{}
	for _, day := range domain.Weekdays {
		if holidays.Contains(day) {
			ordered = append(ordered, day)
		}
	}

	return ordered, nil
}
