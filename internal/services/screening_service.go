package services

import (
	"context"

	"github.com/talentflow/talentflow/internal/clients/webhook"
)

type screeningClient interface {
	Configured() bool
	Forward(ctx context.Context, jobID int, userID int, files []webhook.ResumeFile) error
}

// ScreeningService passes résumé batches through to the external scoring
// collaborator. Single attempt, no retry; the human retries via the UI.
type ScreeningService struct {
	client screeningClient
}

func NewScreeningService(client screeningClient) *ScreeningService {
	return &ScreeningService{client: client}
}

func (s *ScreeningService) ForwardBatch(ctx context.Context, jobID int, userID int, files []webhook.ResumeFile) error {

	if !s.client.Configured() {
		return ErrNotConfigured
	}

	return s.client.Forward(ctx, jobID, userID, files)
}
