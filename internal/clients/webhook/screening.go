package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// ResumeFile is one résumé in an upload batch.
type ResumeFile struct {
	Name    string
	Content io.Reader
}

// ScreeningClient forwards résumé batches to the external AI-scoring
// service. No parsing or scoring happens on this side; scored candidates
// surface later as new rows through the standard read path.
type ScreeningClient struct {
	url        string
	httpClient HTTPClient
}

func NewScreeningClient(url string) *ScreeningClient {
	return &ScreeningClient{url: url, httpClient: &http.Client{Timeout: 60 * time.Second}}
}

func (c *ScreeningClient) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *ScreeningClient) Configured() bool {
	return c.url != ""
}

func (c *ScreeningClient) Forward(ctx context.Context, jobID int, userID int, files []ResumeFile) error {

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("jobId", strconv.Itoa(jobID)); err != nil {
		return err
	}
	if err := writer.WriteField("userId", strconv.Itoa(userID)); err != nil {
		return err
	}

	for _, file := range files {
		part, err := writer.CreateFormFile("files", file.Name)
		if err != nil {
			return fmt.Errorf("error creating form file: %v", err)
		}
		if _, err = io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("error copying file content: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("screening webhook responded with status %v, body: %v", resp.StatusCode, string(body))
	}

	return nil
}
