package services

import (
	"context"

	"github.com/samber/lo"
	"github.com/talentflow/talentflow/internal/entities"
	"github.com/talentflow/talentflow/internal/metrics"
)

type candidateRepository interface {
	List(ctx context.Context) ([]entities.Candidate, error)
	ListWhatsApp(ctx context.Context) ([]entities.Candidate, error)
	UpdateStatus(ctx context.Context, candidateID int, status entities.CandidateStatus) error
}

type jobLister interface {
	List(ctx context.Context) ([]entities.JobPosting, error)
}

// CandidateService merges the two physical candidate sources and applies
// the per-user ownership filter that stands in for access control.
type CandidateService struct {
	candidates candidateRepository
	jobs       jobLister
}

func NewCandidateService(candidates candidateRepository, jobs jobLister) *CandidateService {
	return &CandidateService{candidates: candidates, jobs: jobs}
}

type UserData struct {
	Jobs       []entities.JobPosting
	Candidates []entities.Candidate
}

// FetchUserData performs the three-way fetch concurrently and joins before
// merging; the result sets are disjoint so ordering is irrelevant.
func (s *CandidateService) FetchUserData(ctx context.Context, userID int) (UserData, error) {

	var (
		jobs                     []entities.JobPosting
		primary, secondary       []entities.Candidate
		jobsErr, primErr, secErr error
	)

	done := make(chan struct{}, 3)
	go func() { jobs, jobsErr = s.jobs.List(ctx); done <- struct{}{} }()
	go func() { primary, primErr = s.candidates.List(ctx); done <- struct{}{} }()
	go func() { secondary, secErr = s.candidates.ListWhatsApp(ctx); done <- struct{}{} }()
	for i := 0; i < 3; i++ {
		<-done
	}

	for _, err := range []error{jobsErr, primErr, secErr} {
		if err != nil {
			return UserData{}, err
		}
	}

	merged := append(primary, secondary...)

	return UserData{
		Jobs: lo.Filter(jobs, func(job entities.JobPosting, _ int) bool {
			return job.OwnedBy(userID)
		}),
		Candidates: lo.Filter(merged, func(candidate entities.Candidate, _ int) bool {
			return candidate.OwnedBy(userID)
		}),
	}, nil
}

// ForJob narrows a candidate list to one job posting.
func (s *CandidateService) ForJob(candidates []entities.Candidate, jobID int) []entities.Candidate {
	return lo.Filter(candidates, func(candidate entities.Candidate, _ int) bool {
		return candidate.AppliedTo(jobID)
	})
}

// UpdateStatus validates the value against the closed enum before the
// blind overwrite; callers re-fetch rather than patch locally.
func (s *CandidateService) UpdateStatus(ctx context.Context, candidateID int, value string) (entities.CandidateStatus, error) {

	status, err := entities.ParseStatus(value)
	if err != nil {
		return "", ErrUnknownStatus
	}

	if err := s.candidates.UpdateStatus(ctx, candidateID, status); err != nil {
		return "", err
	}

	metrics.StatusTransitionsCounter.WithLabelValues(string(status)).Inc()
	return status, nil
}
