package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
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

func okResponse() (*http.Response, error) {
	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBufferString(`{}`)),
	}, nil
}

func Test_AutomationClient_Notify_SendsEnvelope(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.URL.String() != "https://automation.example.com/hook" {
			return false
		}
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))

		var payload NotificationPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return false
		}
		return payload.Interview.GoogleEventLink == "https://calendar.google.com/event?eid=abc"
	})).Return(okResponse())

	client := NewAutomationClient("https://automation.example.com/hook")
	client.SetHTTPClient(mockClient)

	err := client.Notify(context.Background(), NotificationPayload{
		Interview: InterviewPayload{
			Title:           "Entrevista",
			GoogleEventLink: "https://calendar.google.com/event?eid=abc",
		},
	})
	assert.NoError(err)
}

func Test_AutomationClient_Notify_ReportsErrorStatus(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 500,
		Body:       io.NopCloser(bytes.NewBufferString("boom")),
	}, nil)

	client := NewAutomationClient("https://automation.example.com/hook")
	client.SetHTTPClient(mockClient)

	err := client.Notify(context.Background(), NotificationPayload{})
	assert.Error(err)
}

func Test_ScreeningClient_Forward_SendsMultipartBatch(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if err := req.ParseMultipartForm(1 << 20); err != nil {
			return false
		}
		files := req.MultipartForm.File["files"]
		return req.FormValue("jobId") == "709" &&
			req.FormValue("userId") == "42" &&
			len(files) == 2
	})).Return(okResponse())

	client := NewScreeningClient("https://scoring.example.com/hook")
	client.SetHTTPClient(mockClient)

	err := client.Forward(context.Background(), 709, 42, []ResumeFile{
		{Name: "cv1.pdf", Content: bytes.NewBufferString("resume one")},
		{Name: "cv2.pdf", Content: bytes.NewBufferString("resume two")},
	})
	assert.NoError(err)
}
