// Package google wraps the OAuth2 authorization-code flow and the Calendar
// API. The client secret never leaves this process; browsers only ever see
// the authorization URL built here.
package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	oauth2google "golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type EventInput struct {
	Title       string
	Description string
	Start       string
	End         string
}

type Client struct {
	oauth    *oauth2.Config
	timeZone string
}

func NewClient(clientID, clientSecret, redirectURI, timeZone string) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{calendar.CalendarEventsScope},
			Endpoint:     oauth2google.Endpoint,
		},
		timeZone: timeZone,
	}
}

// AuthCodeURL builds the consent-screen URL. Offline access plus forced
// consent guarantee a refresh token even on repeat authorization; state
// carries the user id so the callback can attribute the token without a
// server-side session.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades a one-time authorization code for a token pair.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.oauth.Exchange(ctx, code)
}

// CreateEvent derives a fresh access token from the stored refresh token
// and inserts a single non-recurring event on the user's primary calendar.
func (c *Client) CreateEvent(ctx context.Context, refreshToken string, input EventInput) (*calendar.Event, error) {

	tokenSource := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	service, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("error creating calendar service: %v", err)
	}

	event := &calendar.Event{
		Summary:     input.Title,
		Description: input.Description,
		Start:       &calendar.EventDateTime{DateTime: input.Start, TimeZone: c.timeZone},
		End:         &calendar.EventDateTime{DateTime: input.End, TimeZone: c.timeZone},
		Reminders:   &calendar.EventReminders{UseDefault: true, ForceSendFields: []string{"UseDefault"}},
	}

	created, err := service.Events.Insert("primary", event).Do()
	if err != nil {
		return nil, fmt.Errorf("error inserting calendar event: %v", err)
	}

	return created, nil
}
