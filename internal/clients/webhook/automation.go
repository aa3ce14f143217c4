// Package webhook holds clients for the two outbound HTTP collaborators:
// the automation system notified about scheduled interviews and the
// résumé-scoring service. Both are attempt-once, no retries.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// InterviewPayload is the envelope the automation collaborator consumes.
type InterviewPayload struct {
	Title           string `json:"title"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Details         string `json:"details"`
	GoogleEventLink string `json:"googleEventLink"`
}

type NotificationPayload struct {
	Recruiter any              `json:"recruiter"`
	Candidate any              `json:"candidate"`
	Job       any              `json:"job"`
	Interview InterviewPayload `json:"interview"`
}

type AutomationClient struct {
	url        string
	httpClient HTTPClient
}

func NewAutomationClient(url string) *AutomationClient {
	return &AutomationClient{url: url, httpClient: &http.Client{Timeout: 15 * time.Second}}
}

func (c *AutomationClient) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

// Configured reports whether an endpoint was provided; without one,
// notifications are silently skipped.
func (c *AutomationClient) Configured() bool {
	return c.url != ""
}

func (c *AutomationClient) Notify(ctx context.Context, payload NotificationPayload) error {

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding notification payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("automation webhook responded with status %v", resp.StatusCode)
	}

	return nil
}
