// Package repositories holds typed per-table access on top of the Baserow
// row client. Every write is a blind overwrite; the remote backend is the
// sole arbiter of consistency.
package repositories

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"
	"github.com/talentflow/talentflow/internal/clients/baserow"
	"github.com/talentflow/talentflow/internal/entities"
)

type Users struct {
	client  *baserow.Client
	tableID int
}

func NewUsersRepository(client *baserow.Client, tableID int) *Users {
	return &Users{client: client, tableID: tableID}
}

// GetByEmail returns the first user row matching the email, or nil when no
// row matches.
func (repo *Users) GetByEmail(ctx context.Context, email string) (*entities.UserProfile, error) {

	query := "filter__Email__equal=" + url.QueryEscape(email)
	list, err := repo.client.ListRows(ctx, repo.tableID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query users by email")
	}

	if len(list.Results) == 0 {
		return nil, nil
	}

	var user entities.UserProfile
	if err := json.Unmarshal(list.Results[0], &user); err != nil {
		return nil, errors.Wrap(err, "failed to decode user row")
	}
	return &user, nil
}

func (repo *Users) GetByID(ctx context.Context, id int) (*entities.UserProfile, error) {

	row, err := repo.client.GetRow(ctx, repo.tableID, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user row")
	}

	var user entities.UserProfile
	if err := json.Unmarshal(row, &user); err != nil {
		return nil, errors.Wrap(err, "failed to decode user row")
	}
	return &user, nil
}

func (repo *Users) Create(ctx context.Context, fields map[string]any) (*entities.UserProfile, error) {

	row, err := repo.client.CreateRow(ctx, repo.tableID, fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user row")
	}

	var user entities.UserProfile
	if err := json.Unmarshal(row, &user); err != nil {
		return nil, errors.Wrap(err, "failed to decode created user row")
	}
	return &user, nil
}

func (repo *Users) Update(ctx context.Context, id int, fields map[string]any) (*entities.UserProfile, error) {

	row, err := repo.client.UpdateRow(ctx, repo.tableID, id, fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user row")
	}

	var user entities.UserProfile
	if err := json.Unmarshal(row, &user); err != nil {
		return nil, errors.Wrap(err, "failed to decode updated user row")
	}
	return &user, nil
}

// SetGoogleRefreshToken overwrites the stored refresh token; nil clears it.
func (repo *Users) SetGoogleRefreshToken(ctx context.Context, id int, token *string) error {
	_, err := repo.client.UpdateRow(ctx, repo.tableID, id, map[string]any{"google_refresh_token": token})
	return errors.Wrap(err, "failed to update google refresh token")
}
