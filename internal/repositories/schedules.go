package repositories

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/talentflow/talentflow/internal/clients/baserow"
	"github.com/talentflow/talentflow/internal/entities"
)

type Schedules struct {
	client  *baserow.Client
	tableID int
}

func NewSchedulesRepository(client *baserow.Client, tableID int) *Schedules {
	return &Schedules{client: client, tableID: tableID}
}

func (repo *Schedules) List(ctx context.Context) ([]entities.ScheduleEvent, error) {

	list, err := repo.client.ListRows(ctx, repo.tableID, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schedule rows")
	}

	events := make([]entities.ScheduleEvent, 0, len(list.Results))
	for _, row := range list.Results {
		var event entities.ScheduleEvent
		if err := json.Unmarshal(row, &event); err != nil {
			return nil, errors.Wrap(err, "failed to decode schedule row")
		}
		events = append(events, event)
	}
	return events, nil
}

func (repo *Schedules) Create(ctx context.Context, fields map[string]any) (*entities.ScheduleEvent, error) {

	row, err := repo.client.CreateRow(ctx, repo.tableID, fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schedule row")
	}

	var event entities.ScheduleEvent
	if err := json.Unmarshal(row, &event); err != nil {
		return nil, errors.Wrap(err, "failed to decode created schedule row")
	}
	return &event, nil
}

// RemoveEndedBefore deletes rows whose end time falls before the cutoff
// date and returns how many were removed.
func (repo *Schedules) RemoveEndedBefore(ctx context.Context, cutoff time.Time) (int, error) {

	query := "filter__Fim__date_before=" + url.QueryEscape(cutoff.Format("2006-01-02"))
	list, err := repo.client.ListRows(ctx, repo.tableID, query)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list expired schedule rows")
	}

	removed := 0
	for _, row := range list.Results {
		var event entities.ScheduleEvent
		if err := json.Unmarshal(row, &event); err != nil {
			return removed, errors.Wrap(err, "failed to decode schedule row")
		}
		if err := repo.client.DeleteRow(ctx, repo.tableID, event.ID); err != nil {
			return removed, errors.Wrap(err, "failed to delete schedule row")
		}
		removed++
	}
	return removed, nil
}
