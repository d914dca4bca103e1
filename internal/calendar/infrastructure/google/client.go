// Package google implements the calendar ports against the Google Calendar
// REST API.
package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/hiredeck/hiredeck/internal/calendar/application"
)

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

// Credentials holds the OAuth material for a connected Google calendar.
type Credentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	AccessToken  string
	RefreshToken string
}

// Client talks to the Google Calendar API. It implements both
// application.AvailabilityProvider and application.MeetingCreator.
type Client struct {
	httpClient *http.Client
	baseURL    string
	calendarID string
}

// NewClient creates a Google Calendar client. The underlying transport
// refreshes the access token as needed.
func NewClient(ctx context.Context, creds Credentials, calendarID string) *Client {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: creds.TokenURL},
	}
	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
	}

	client := oauth2.NewClient(ctx, conf.TokenSource(ctx, token))
	client.Timeout = 15 * time.Second

	return &Client{
		httpClient: client,
		baseURL:    defaultBaseURL,
		calendarID: calendarID,
	}
}

// NewClientWithHTTP creates a client over a prepared HTTP client and base
// URL. Used in tests.
func NewClientWithHTTP(httpClient *http.Client, baseURL, calendarID string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL, calendarID: calendarID}
}

type freeBusyRequest struct {
	TimeMin string               `json:"timeMin"`
	TimeMax string               `json:"timeMax"`
	Items   []freeBusyItem       `json:"items"`
}

type freeBusyItem struct {
	ID string `json:"id"`
}

type freeBusyResponse struct {
	Calendars map[string]struct {
		Busy []struct {
			Start time.Time `json:"start"`
			End   time.Time `json:"end"`
		} `json:"busy"`
	} `json:"calendars"`
}

// FreeBusy queries the calendar's busy periods between from and to.
func (c *Client) FreeBusy(ctx context.Context, from, to time.Time) ([]application.BusyPeriod, error) {
	body, err := json.Marshal(freeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []freeBusyItem{{ID: c.calendarID}},
	})
	if err != nil {
		return nil, err
	}

	var resp freeBusyResponse
	if err := c.post(ctx, "/freeBusy", body, &resp); err != nil {
		return nil, fmt.Errorf("free/busy query: %w", err)
	}

	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, nil
	}

	periods := make([]application.BusyPeriod, 0, len(cal.Busy))
	for _, b := range cal.Busy {
		periods = append(periods, application.BusyPeriod{Start: b.Start, End: b.End})
	}
	return periods, nil
}

type eventRequest struct {
	Summary     string         `json:"summary"`
	Description string         `json:"description,omitempty"`
	Start       eventDateTime  `json:"start"`
	End         eventDateTime  `json:"end"`
	Attendees   []attendee     `json:"attendees,omitempty"`
	Conference  *conferenceReq `json:"conferenceData,omitempty"`
}

type eventDateTime struct {
	DateTime string `json:"dateTime"`
}

type attendee struct {
	Email string `json:"email"`
}

type conferenceReq struct {
	CreateRequest struct {
		RequestID string `json:"requestId"`
	} `json:"createRequest"`
}

type eventResponse struct {
	ID             string `json:"id"`
	HangoutLink    string `json:"hangoutLink"`
	ConferenceData *struct {
		EntryPoints []struct {
			EntryPointType string `json:"entryPointType"`
			URI            string `json:"uri"`
		} `json:"entryPoints"`
	} `json:"conferenceData"`
}

// CreateMeeting creates a calendar event, optionally with a video conference.
func (c *Client) CreateMeeting(ctx context.Context, req application.MeetingRequest) (*application.MeetingInfo, error) {
	event := eventRequest{
		Summary:     req.Title,
		Description: req.Description,
		Start:       eventDateTime{DateTime: req.Start.Format(time.RFC3339)},
		End:         eventDateTime{DateTime: req.End.Format(time.RFC3339)},
	}
	if req.AttendeeEmail != "" {
		event.Attendees = []attendee{{Email: req.AttendeeEmail}}
	}

	path := fmt.Sprintf("/calendars/%s/events", c.calendarID)
	if req.WantVideoLink {
		conf := &conferenceReq{}
		conf.CreateRequest.RequestID = fmt.Sprintf("hiredeck-%d", time.Now().UnixNano())
		event.Conference = conf
		path += "?conferenceDataVersion=1"
	}

	body, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var resp eventResponse
	if err := c.post(ctx, path, body, &resp); err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}

	info := &application.MeetingInfo{MeetingID: resp.ID, JoinURL: resp.HangoutLink}
	if info.JoinURL == "" && resp.ConferenceData != nil {
		for _, ep := range resp.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				info.JoinURL = ep.URI
				break
			}
		}
	}
	return info, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("google calendar returned status %d: %s", resp.StatusCode, data)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
