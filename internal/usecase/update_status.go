package usecase

import (
	"context"

	"github.com/casemark/lead-intake/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewUpdateLeadStatusUseCase(repo entity.LeadRepositoryInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Repo: repo}
}

// Execute replaces one lead's status. An unknown id comes back as
// entity.ErrLeadNotFound, not as a crash.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, id string, status entity.LeadStatus) (*entity.Lead, error) {
	if !status.Valid() {
		return nil, &DomainError{Code: "INVALID_STATUS", Message: "status must be PENDING or REACHED_OUT"}
	}
	return uc.Repo.UpdateStatus(ctx, id, status)
}

type BulkUpdateStatusUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewBulkUpdateStatusUseCase(repo entity.LeadRepositoryInterface) *BulkUpdateStatusUseCase {
	return &BulkUpdateStatusUseCase{Repo: repo}
}

// Execute applies one status to every targeted lead. Unknown ids are skipped
// silently; the returned slice holds only the leads actually updated.
func (uc *BulkUpdateStatusUseCase) Execute(ctx context.Context, ids []string, status entity.LeadStatus) ([]entity.Lead, error) {
	if !status.Valid() {
		return nil, &DomainError{Code: "INVALID_STATUS", Message: "status must be PENDING or REACHED_OUT"}
	}
	if len(ids) == 0 {
		return []entity.Lead{}, nil
	}
	return uc.Repo.UpdateStatusMany(ctx, ids, status)
}
