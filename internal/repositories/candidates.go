package repositories

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/talentflow/talentflow/internal/clients/baserow"
	"github.com/talentflow/talentflow/internal/entities"
)

// Candidates reads both physical candidate sources: the primary table fed
// by résumé uploads and the WhatsApp-sourced table, whose rows are
// normalized into the canonical shape at this boundary.
type Candidates struct {
	client          *baserow.Client
	tableID         int
	whatsappTableID int
}

func NewCandidatesRepository(client *baserow.Client, tableID int, whatsappTableID int) *Candidates {
	return &Candidates{client: client, tableID: tableID, whatsappTableID: whatsappTableID}
}

func (repo *Candidates) List(ctx context.Context) ([]entities.Candidate, error) {

	list, err := repo.client.ListRows(ctx, repo.tableID, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list candidate rows")
	}

	candidates := make([]entities.Candidate, 0, len(list.Results))
	for _, row := range list.Results {
		var candidate entities.Candidate
		if err := json.Unmarshal(row, &candidate); err != nil {
			return nil, errors.Wrap(err, "failed to decode candidate row")
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func (repo *Candidates) ListWhatsApp(ctx context.Context) ([]entities.Candidate, error) {

	list, err := repo.client.ListRows(ctx, repo.whatsappTableID, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list whatsapp candidate rows")
	}

	candidates := make([]entities.Candidate, 0, len(list.Results))
	for _, row := range list.Results {
		candidate, err := entities.CandidateFromWhatsAppRow(row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to normalize whatsapp candidate row")
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// UpdateStatus overwrites the status single-select of a primary-table row.
func (repo *Candidates) UpdateStatus(ctx context.Context, candidateID int, status entities.CandidateStatus) error {
	_, err := repo.client.UpdateRow(ctx, repo.tableID, candidateID, map[string]any{"Status": string(status)})
	return errors.Wrap(err, "failed to update candidate status")
}
