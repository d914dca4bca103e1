package caldav

import (
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calendarFixture = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:evt-1
DTSTAMP:20260301T000000Z
DTSTART:20260302T100000Z
DTEND:20260302T110000Z
SUMMARY:Team sync
END:VEVENT
BEGIN:VEVENT
UID:evt-2
DTSTAMP:20260301T000000Z
DTSTART:20260302T140000Z
DTEND:20260302T140000Z
SUMMARY:Zero-length marker
END:VEVENT
END:VCALENDAR
`

func TestBusyFromCalendar(t *testing.T) {
	cal, err := ical.NewDecoder(strings.NewReader(strings.ReplaceAll(calendarFixture, "\n", "\r\n"))).Decode()
	require.NoError(t, err)

	periods := busyFromCalendar(cal, time.UTC)

	// the zero-length event is skipped
	require.Len(t, periods, 1)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), periods[0].Start)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC), periods[0].End)
}
