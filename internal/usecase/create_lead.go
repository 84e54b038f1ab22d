package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/casemark/lead-intake/internal/entity"
	"github.com/casemark/lead-intake/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Repo  entity.LeadRepositoryInterface
	Queue QueueProducerInterface
}

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface, producer QueueProducerInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:  repo,
		Queue: producer,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, []ValidationError, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs, nil
	}

	visaTypes := make([]entity.VisaType, 0, len(input.VisaTypes))
	for _, vt := range input.VisaTypes {
		visaTypes = append(visaTypes, entity.VisaType(vt))
	}

	lead, err := entity.NewLead(
		strings.TrimSpace(input.FirstName),
		strings.TrimSpace(input.LastName),
		strings.TrimSpace(input.Email),
		strings.TrimSpace(input.LinkedIn),
		strings.TrimSpace(input.Country),
		visaTypes,
		input.ResumeURL,
		input.Notes,
	)
	if err != nil {
		return nil, nil, &DomainError{Code: "INVALID_LEAD", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to save lead"}
	}

	// Confirmation email is delivered out of band; a publish failure must not
	// fail the submission.
	if uc.Queue != nil {
		payload := queue.LeadCreatedPayload{
			LeadID:    lead.ID,
			FirstName: lead.FirstName,
			LastName:  lead.LastName,
			Email:     lead.Email,
		}
		if err := uc.Queue.PublishLeadCreated(ctx, payload); err != nil {
			log.Printf("lead %s created but event publish failed: %v", lead.ID, err)
		}
	}

	return lead, nil, nil
}
