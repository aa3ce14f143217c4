package repositories

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/talentflow/talentflow/internal/clients/baserow"
	"github.com/talentflow/talentflow/internal/entities"
)

type Jobs struct {
	client  *baserow.Client
	tableID int
}

func NewJobsRepository(client *baserow.Client, tableID int) *Jobs {
	return &Jobs{client: client, tableID: tableID}
}

func (repo *Jobs) List(ctx context.Context) ([]entities.JobPosting, error) {

	list, err := repo.client.ListRows(ctx, repo.tableID, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list job rows")
	}

	jobs := make([]entities.JobPosting, 0, len(list.Results))
	for _, row := range list.Results {
		var job entities.JobPosting
		if err := json.Unmarshal(row, &job); err != nil {
			return nil, errors.Wrap(err, "failed to decode job row")
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (repo *Jobs) Create(ctx context.Context, fields map[string]any) (*entities.JobPosting, error) {

	row, err := repo.client.CreateRow(ctx, repo.tableID, fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create job row")
	}

	var job entities.JobPosting
	if err := json.Unmarshal(row, &job); err != nil {
		return nil, errors.Wrap(err, "failed to decode created job row")
	}
	return &job, nil
}

func (repo *Jobs) Remove(ctx context.Context, jobID int) error {
	return errors.Wrap(repo.client.DeleteRow(ctx, repo.tableID, jobID), "failed to delete job row")
}
