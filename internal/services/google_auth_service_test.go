package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

type mockOAuthClient struct {
	mock.Mock
}

func (m *mockOAuthClient) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *mockOAuthClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

type mockRefreshTokenStore struct {
	mock.Mock
}

func (m *mockRefreshTokenStore) SetGoogleRefreshToken(ctx context.Context, id int, token *string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func Test_GoogleAuthService_ConnectURL_EncodesUserAsState(t *testing.T) {

	oauth := &mockOAuthClient{}
	oauth.On("AuthCodeURL", "42").Return("https://accounts.google.com/o/oauth2/auth?state=42")

	service := NewGoogleAuthService(oauth, &mockRefreshTokenStore{})

	url := service.ConnectURL("42")
	assert.Contains(t, url, "state=42")
	oauth.AssertExpectations(t)
}

func Test_GoogleAuthService_Callback_PersistsRefreshToken(t *testing.T) {

	refreshToken := "rft-1"

	oauth := &mockOAuthClient{}
	oauth.On("Exchange", mock.Anything, "ABC").Return(&oauth2.Token{RefreshToken: refreshToken}, nil)

	users := &mockRefreshTokenStore{}
	users.On("SetGoogleRefreshToken", mock.Anything, 42, &refreshToken).Return(nil)

	service := NewGoogleAuthService(oauth, users)
	service.HandleCallback(context.Background(), "ABC", "42")

	users.AssertExpectations(t)
}

func Test_GoogleAuthService_Callback_WithoutRefreshTokenLeavesStateUntouched(t *testing.T) {

	oauth := &mockOAuthClient{}
	oauth.On("Exchange", mock.Anything, "ABC").Return(&oauth2.Token{AccessToken: "at-only"}, nil)

	users := &mockRefreshTokenStore{}

	service := NewGoogleAuthService(oauth, users)
	service.HandleCallback(context.Background(), "ABC", "42")

	users.AssertNotCalled(t, "SetGoogleRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func Test_GoogleAuthService_Callback_ExchangeFailureIsSwallowed(t *testing.T) {

	oauth := &mockOAuthClient{}
	oauth.On("Exchange", mock.Anything, "ABC").Return(nil, assert.AnError)

	users := &mockRefreshTokenStore{}

	service := NewGoogleAuthService(oauth, users)
	service.HandleCallback(context.Background(), "ABC", "42")

	users.AssertNotCalled(t, "SetGoogleRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func Test_GoogleAuthService_Callback_WithoutCodeDoesNothing(t *testing.T) {

	oauth := &mockOAuthClient{}
	users := &mockRefreshTokenStore{}

	service := NewGoogleAuthService(oauth, users)
	service.HandleCallback(context.Background(), "", "42")

	oauth.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "SetGoogleRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func Test_GoogleAuthService_Disconnect_ClearsTokenAndIsIdempotent(t *testing.T) {

	users := &mockRefreshTokenStore{}
	users.On("SetGoogleRefreshToken", mock.Anything, 42, (*string)(nil)).Return(nil).Twice()

	service := NewGoogleAuthService(&mockOAuthClient{}, users)

	assert.NoError(t, service.Disconnect(context.Background(), 42))
	assert.NoError(t, service.Disconnect(context.Background(), 42))
	users.AssertExpectations(t)
}
