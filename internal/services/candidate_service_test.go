package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/talentflow/talentflow/internal/entities"
)

type mockCandidateRepository struct {
	mock.Mock
}

func (m *mockCandidateRepository) List(ctx context.Context) ([]entities.Candidate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Candidate), args.Error(1)
}

func (m *mockCandidateRepository) ListWhatsApp(ctx context.Context) ([]entities.Candidate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Candidate), args.Error(1)
}

func (m *mockCandidateRepository) UpdateStatus(ctx context.Context, candidateID int, status entities.CandidateStatus) error {
	args := m.Called(ctx, candidateID, status)
	return args.Error(0)
}

type mockJobLister struct {
	mock.Mock
}

func (m *mockJobLister) List(ctx context.Context) ([]entities.JobPosting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.JobPosting), args.Error(1)
}

func owner(id int) []entities.TableRef {
	return []entities.TableRef{{ID: id, Value: "owner"}}
}

func Test_CandidateService_FetchUserData_MergesSourcesAndFiltersByOwner(t *testing.T) {

	assert := assert.New(t)

	candidates := &mockCandidateRepository{}
	candidates.On("List", mock.Anything).Return([]entities.Candidate{
		{ID: 1, Name: "Maria", Users: owner(42)},
		{ID: 2, Name: "José", Users: owner(99)},
	}, nil)
	candidates.On("ListWhatsApp", mock.Anything).Return([]entities.Candidate{
		{ID: 3, Name: "Pedro", Users: owner(42), Jobs: []entities.TableRef{{ID: 0, Value: "Analista"}}},
	}, nil)

	jobs := &mockJobLister{}
	jobs.On("List", mock.Anything).Return([]entities.JobPosting{
		{ID: 9, Title: "Analista", Users: owner(42)},
		{ID: 10, Title: "Gerente", Users: owner(99)},
	}, nil)

	service := NewCandidateService(candidates, jobs)

	data, err := service.FetchUserData(context.Background(), 42)
	assert.NoError(err)

	assert.Len(data.Jobs, 1)
	assert.Equal(9, data.Jobs[0].ID)

	assert.Len(data.Candidates, 2)
	names := []string{data.Candidates[0].Name, data.Candidates[1].Name}
	assert.Contains(names, "Maria")
	assert.Contains(names, "Pedro")
}

func Test_CandidateService_FetchUserData_PropagatesFetchError(t *testing.T) {

	candidates := &mockCandidateRepository{}
	candidates.On("List", mock.Anything).Return([]entities.Candidate{}, assert.AnError)
	candidates.On("ListWhatsApp", mock.Anything).Return([]entities.Candidate{}, nil)

	jobs := &mockJobLister{}
	jobs.On("List", mock.Anything).Return([]entities.JobPosting{}, nil)

	service := NewCandidateService(candidates, jobs)

	_, err := service.FetchUserData(context.Background(), 42)
	assert.Error(t, err)
}

func Test_CandidateService_ForJob_FiltersByJobReference(t *testing.T) {

	service := NewCandidateService(&mockCandidateRepository{}, &mockJobLister{})

	candidates := []entities.Candidate{
		{ID: 1, Jobs: []entities.TableRef{{ID: 9, Value: "Analista"}}},
		{ID: 2, Jobs: []entities.TableRef{{ID: 10, Value: "Gerente"}}},
	}

	filtered := service.ForJob(candidates, 9)
	assert.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)
}

func Test_CandidateService_UpdateStatus_AcceptsEveryPipelineStage(t *testing.T) {

	for _, status := range entities.AllStatuses() {
		candidates := &mockCandidateRepository{}
		candidates.On("UpdateStatus", mock.Anything, 7, status).Return(nil)

		service := NewCandidateService(candidates, &mockJobLister{})

		updated, err := service.UpdateStatus(context.Background(), 7, string(status))
		assert.NoError(t, err)
		assert.Equal(t, status, updated)
		candidates.AssertExpectations(t)
	}
}

func Test_CandidateService_UpdateStatus_RejectsUnknownValueBeforeAnyWrite(t *testing.T) {

	candidates := &mockCandidateRepository{}
	service := NewCandidateService(candidates, &mockJobLister{})

	_, err := service.UpdateStatus(context.Background(), 7, "Contratado")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	candidates.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
