package google

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AuthCodeURL_CarriesStateScopeAndConsent(t *testing.T) {

	assert := assert.New(t)

	client := NewClient("client-id", "client-secret", "http://localhost:3001/api/google/auth/callback", "America/Sao_Paulo")

	raw := client.AuthCodeURL("42")

	parsed, err := url.Parse(raw)
	assert.NoError(err)

	query := parsed.Query()
	assert.Equal("42", query.Get("state"))
	assert.Equal("https://www.googleapis.com/auth/calendar.events", query.Get("scope"))
	assert.Equal("offline", query.Get("access_type"))
	assert.Equal("consent", query.Get("prompt"))
	assert.Equal("client-id", query.Get("client_id"))
	assert.Empty(query.Get("client_secret"))
}
