// Package baserow is a client for the Baserow row HTTP API, the system's
// only durable store. Requests carry token auth and the user_field_names
// flag so rows come back with human-readable field names.
package baserow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL     string
	apiKey      string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(baseURL string, apiKey string) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey, httpClient: &http.Client{}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// RowList is the shape of a row-collection response. DELETE and 204
// responses are normalized to an empty list so callers never see nil.
type RowList struct {
	Count   int               `json:"count"`
	Results []json.RawMessage `json:"results"`
}

// ListRows fetches rows of a table. query is appended verbatim after the
// user_field_names flag and may carry Baserow filters, e.g.
// "filter__Email__equal=a@b.c".
func (c *Client) ListRows(ctx context.Context, tableID int, query string) (RowList, error) {

	url := c.rowsURL(tableID, "") + "?user_field_names=true"
	if query != "" {
		url += "&" + query
	}

	body, err := c.sendRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return RowList{}, err
	}

	return decodeRowList(body)
}

func (c *Client) GetRow(ctx context.Context, tableID int, rowID int) (json.RawMessage, error) {

	url := c.rowsURL(tableID, strconv.Itoa(rowID)+"/") + "?user_field_names=true"
	return c.sendRequest(ctx, http.MethodGet, url, nil)
}

func (c *Client) CreateRow(ctx context.Context, tableID int, fields any) (json.RawMessage, error) {

	url := c.rowsURL(tableID, "") + "?user_field_names=true"
	return c.sendJSON(ctx, http.MethodPost, url, fields)
}

func (c *Client) UpdateRow(ctx context.Context, tableID int, rowID int, fields any) (json.RawMessage, error) {

	url := c.rowsURL(tableID, strconv.Itoa(rowID)+"/") + "?user_field_names=true"
	return c.sendJSON(ctx, http.MethodPatch, url, fields)
}

func (c *Client) DeleteRow(ctx context.Context, tableID int, rowID int) error {

	url := c.rowsURL(tableID, strconv.Itoa(rowID)+"/")
	_, err := c.sendRequest(ctx, http.MethodDelete, url, nil)
	return err
}

// UploadFile pushes a file into Baserow's user-file storage and returns the
// provider's file descriptor.
func (c *Client) UploadFile(ctx context.Context, filename string, content io.Reader) (json.RawMessage, error) {

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("error creating form file: %v", err)
	}
	if _, err = io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("error copying file content: %v", err)
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}

	url := c.baseURL + "/api/user-files/upload-file/"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.doRequest(req)
}

func (c *Client) rowsURL(tableID int, suffix string) string {
	return fmt.Sprintf("%s/api/database/rows/table/%d/%s", c.baseURL, tableID, suffix)
}

func (c *Client) sendJSON(ctx context.Context, method string, url string, fields any) (json.RawMessage, error) {

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("error encoding request body: %v", err)
	}

	return c.sendRequest(ctx, method, url, bytes.NewReader(payload))
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Token "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.doRequest(req)
}

func (c *Client) doRequest(req *http.Request) ([]byte, error) {

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
		return nil, nil
	}

	return body, nil
}

func decodeRowList(body []byte) (RowList, error) {

	if len(body) == 0 {
		return RowList{Results: []json.RawMessage{}}, nil
	}

	var list RowList
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&list); err != nil {
		return RowList{}, fmt.Errorf("error decoding JSON response: %v", err)
	}

	if list.Results == nil {
		list.Results = []json.RawMessage{}
	}

	return list, nil
}
