package usecase

import (
	"context"
	"errors"

	"github.com/casemark/lead-intake/internal/entity"
)

type ListLeadsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewListLeadsUseCase(repo entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute loads the full collection and derives the visible page:
// filter, then sort, then paginate. The collection itself is never written to.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, input ListLeadsInput) (*ListLeadsOutput, error) {
	leads, err := uc.Repo.GetAll(ctx)
	if err != nil {
		// A missing backend degrades to an empty listing instead of a failure.
		if errors.Is(err, entity.ErrStorageUnavailable) {
			return &ListLeadsOutput{Leads: []entity.Lead{}, Page: 1}, nil
		}
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load leads"}
	}

	filtered := FilterLeads(leads, input.Filter)
	sorted := SortLeads(filtered, input.Sort)
	page := Paginate(sorted, input.Page)

	return &ListLeadsOutput{
		Leads:      page.Items,
		Page:       page.Number,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}, nil
}
