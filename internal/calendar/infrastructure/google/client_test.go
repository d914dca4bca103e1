package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiredeck/hiredeck/internal/calendar/application"
)

func TestClient_FreeBusy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/freeBusy", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "timeMin")
		assert.Contains(t, req, "timeMax")

		_, _ = w.Write([]byte(`{
			"calendars": {
				"primary": {
					"busy": [
						{"start": "2026-03-02T10:00:00Z", "end": "2026-03-02T11:00:00Z"}
					]
				}
			}
		}`))
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.Client(), server.URL, "primary")

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	periods, err := client.FreeBusy(context.Background(), from, from.AddDate(0, 0, 1))
	require.NoError(t, err)

	require.Len(t, periods, 1)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), periods[0].Start)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC), periods[0].End)
}

func TestClient_FreeBusy_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.Client(), server.URL, "primary")

	_, err := client.FreeBusy(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorContains(t, err, "403")
}

func TestClient_CreateMeeting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("conferenceDataVersion"))

		var event map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		assert.Equal(t, "Technical interview: Backend Engineer", event["summary"])
		assert.Contains(t, event, "conferenceData")

		_, _ = w.Write([]byte(`{"id": "evt-1", "hangoutLink": "https://meet.google.com/abc"}`))
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.Client(), server.URL, "primary")

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	info, err := client.CreateMeeting(context.Background(), application.MeetingRequest{
		Title:         "Technical interview: Backend Engineer",
		Start:         start,
		End:           start.Add(time.Hour),
		AttendeeEmail: "ada@example.com",
		WantVideoLink: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "evt-1", info.MeetingID)
	assert.Equal(t, "https://meet.google.com/abc", info.JoinURL)
}

func TestClient_CreateMeeting_VideoLinkFromEntryPoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "evt-2",
			"conferenceData": {
				"entryPoints": [
					{"entryPointType": "phone", "uri": "tel:+1-555"},
					{"entryPointType": "video", "uri": "https://meet.google.com/xyz"}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.Client(), server.URL, "primary")

	info, err := client.CreateMeeting(context.Background(), application.MeetingRequest{
		Title:         "Final interview",
		Start:         time.Now(),
		End:           time.Now().Add(time.Hour),
		WantVideoLink: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://meet.google.com/xyz", info.JoinURL)
}
