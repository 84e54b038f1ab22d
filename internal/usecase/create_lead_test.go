package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/casemark/lead-intake/internal/entity"
	"github.com/casemark/lead-intake/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) GetAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) (*entity.Lead, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatusMany(ctx context.Context, ids []string, status entity.LeadStatus) ([]entity.Lead, error) {
	args := m.Called(ctx, ids, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func validInput() CreateLeadInput {
	return CreateLeadInput{
		FirstName: "Maria",
		LastName:  "Silva",
		Email:     "maria.silva@example.com",
		LinkedIn:  "https://linkedin.com/in/mariasilva",
		Country:   "Brazil",
		VisaTypes: []string{"O-1", "EB-2 NIW"},
		Notes:     "Referred by a former client",
	}
}

func TestCreateLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadCreated", ctx, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, mockQueue)

	lead, fieldErrors, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.NotNil(t, lead)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.StatusPending, lead.Status)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.Equal(t, []entity.VisaType{entity.VisaO1, entity.VisaEB2NIW}, lead.VisaTypes)

	mockRepo.AssertExpectations(t)
	mockQueue.AssertExpectations(t)
}

func TestCreateLeadValidationFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	uc := NewCreateLeadUseCase(mockRepo, nil)

	input := validInput()
	input.Email = "not-an-email"
	input.VisaTypes = nil

	lead, fieldErrors, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.Nil(t, lead)
	assert.Len(t, fieldErrors, 2)

	// Nothing reaches the store on invalid input.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeadStorageFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := NewCreateLeadUseCase(mockRepo, nil)

	lead, fieldErrors, err := uc.Execute(ctx, validInput())

	assert.Nil(t, lead)
	assert.Empty(t, fieldErrors)
	assert.True(t, IsTechnicalError(err))
}

func TestCreateLeadPublishFailureDoesNotFailSubmission(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadCreated", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := NewCreateLeadUseCase(mockRepo, mockQueue)

	lead, fieldErrors, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.NotNil(t, lead)
}
