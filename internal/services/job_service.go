package services

import (
	"context"

	"github.com/samber/lo"
	"github.com/talentflow/talentflow/internal/entities"
)

type jobRepository interface {
	List(ctx context.Context) ([]entities.JobPosting, error)
	Create(ctx context.Context, fields map[string]any) (*entities.JobPosting, error)
	Remove(ctx context.Context, jobID int) error
}

type JobService struct {
	jobs jobRepository
}

func NewJobService(jobs jobRepository) *JobService {
	return &JobService{jobs: jobs}
}

type JobInput struct {
	Title          string
	Description    string
	RequiredSkills string
	DesiredSkills  string
}

func (s *JobService) ListForUser(ctx context.Context, userID int) ([]entities.JobPosting, error) {

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Filter(jobs, func(job entities.JobPosting, _ int) bool {
		return job.OwnedBy(userID)
	}), nil
}

func (s *JobService) Create(ctx context.Context, userID int, input JobInput) (*entities.JobPosting, error) {

	return s.jobs.Create(ctx, map[string]any{
		"titulo":                  input.Title,
		"descricao":               input.Description,
		"requisitos_obrigatorios": input.RequiredSkills,
		"requisitos_desejaveis":   input.DesiredSkills,
		"usuario":                 []int{userID},
	})
}

func (s *JobService) Delete(ctx context.Context, jobID int) error {
	return s.jobs.Remove(ctx, jobID)
}
