package usecase

import (
	"context"

	"github.com/casemark/lead-intake/internal/entity"
)

type DeleteLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewDeleteLeadUseCase(repo entity.LeadRepositoryInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Repo: repo}
}

// Execute removes a lead. The bool reports whether a record was actually
// deleted; an unknown id is false, not an error.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id string) (bool, error) {
	return uc.Repo.Delete(ctx, id)
}
