// Package caldav implements the availability port against a CalDAV server.
package caldav

import (
	"context"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"

	"github.com/hiredeck/hiredeck/internal/calendar/application"
)

// Provider answers free/busy queries by listing VEVENTs on a CalDAV
// calendar. CalDAV has no dedicated free/busy endpoint in common servers,
// so every event in the window counts as busy.
type Provider struct {
	client       *caldav.Client
	calendarPath string
	location     *time.Location
}

// NewProvider creates a CalDAV availability provider using basic auth.
func NewProvider(endpoint, username, password, calendarPath string, location *time.Location) (*Provider, error) {
	client, err := caldav.NewClient(webdav.HTTPClientWithBasicAuth(nil, username, password), endpoint)
	if err != nil {
		return nil, fmt.Errorf("caldav client: %w", err)
	}
	if location == nil {
		location = time.UTC
	}
	return &Provider{client: client, calendarPath: calendarPath, location: location}, nil
}

// FreeBusy returns the time ranges of all events between from and to.
func (p *Provider) FreeBusy(ctx context.Context, from, to time.Time) ([]application.BusyPeriod, error) {
	query := &caldav.CalendarQuery{
		CompRequest: caldav.CalendarCompRequest{
			Name: "VCALENDAR",
			Comps: []caldav.CalendarCompRequest{{
				Name:  "VEVENT",
				Props: []string{"DTSTART", "DTEND", "SUMMARY"},
			}},
		},
		CompFilter: caldav.CompFilter{
			Name: "VCALENDAR",
			Comps: []caldav.CompFilter{{
				Name:  "VEVENT",
				Start: from,
				End:   to,
			}},
		},
	}

	objects, err := p.client.QueryCalendar(ctx, p.calendarPath, query)
	if err != nil {
		return nil, fmt.Errorf("caldav query: %w", err)
	}

	periods := make([]application.BusyPeriod, 0, len(objects))
	for _, obj := range objects {
		if obj.Data == nil {
			continue
		}
		periods = append(periods, busyFromCalendar(obj.Data, p.location)...)
	}
	return periods, nil
}

// busyFromCalendar extracts the busy periods from a calendar's events.
// Events without a parseable start or end are skipped.
func busyFromCalendar(cal *ical.Calendar, loc *time.Location) []application.BusyPeriod {
	events := cal.Events()
	periods := make([]application.BusyPeriod, 0, len(events))
	for _, event := range events {
		start, err := event.DateTimeStart(loc)
		if err != nil {
			continue
		}
		end, err := event.DateTimeEnd(loc)
		if err != nil || !end.After(start) {
			continue
		}
		periods = append(periods, application.BusyPeriod{Start: start, End: end})
	}
	return periods
}
