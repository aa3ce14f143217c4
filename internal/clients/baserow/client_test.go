package baserow

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}, nil
}

func Test_BaserowClient_ListRows_AppendsUserFieldNames(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://rows.example.com/api/database/rows/table/711/"+
			"?user_field_names=true&filter__Email__equal=ana@example.com" &&
			req.Header.Get("Authorization") == "Token secret"
	})).Return(jsonResponse(200, `{"count":1,"results":[{"id":42,"nome":"Ana"}]}`))

	client := NewClient("https://rows.example.com", "secret")
	client.SetHTTPClient(mockClient)

	list, err := client.ListRows(context.Background(), 711, "filter__Email__equal=ana@example.com")
	assert.NoError(err)
	assert.Equal(1, list.Count)
	assert.Len(list.Results, 1)
}

func Test_BaserowClient_GetRow_BuildsRowURL(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://rows.example.com/api/database/rows/table/711/42/?user_field_names=true"
	})).Return(jsonResponse(200, `{"id":42,"nome":"Ana"}`))

	client := NewClient("https://rows.example.com", "secret")
	client.SetHTTPClient(mockClient)

	row, err := client.GetRow(context.Background(), 711, 42)
	assert.NoError(err)
	assert.Contains(string(row), `"nome":"Ana"`)
}

func Test_BaserowClient_UpdateRow_SendsJSONBody(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.Method != http.MethodPatch {
			return false
		}
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
		return strings.Contains(string(body), `"google_refresh_token":"rft-1"`) &&
			req.Header.Get("Content-Type") == "application/json"
	})).Return(jsonResponse(200, `{"id":42}`))

	client := NewClient("https://rows.example.com", "secret")
	client.SetHTTPClient(mockClient)

	_, err := client.UpdateRow(context.Background(), 711, 42, map[string]any{"google_refresh_token": "rft-1"})
	assert.NoError(err)
}

func Test_BaserowClient_DeleteRow_NormalizesEmptyResponse(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodDelete
	})).Return(jsonResponse(204, ""))

	client := NewClient("https://rows.example.com", "secret")
	client.SetHTTPClient(mockClient)

	err := client.DeleteRow(context.Background(), 709, 7)
	assert.NoError(err)
}

func Test_BaserowClient_ErrorStatusIsReported(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(jsonResponse(400, `{"detail":"bad request"}`))

	client := NewClient("https://rows.example.com", "secret")
	client.SetHTTPClient(mockClient)

	_, err := client.ListRows(context.Background(), 711, "")
	assert.Error(err)
	assert.Contains(err.Error(), "400")
}
