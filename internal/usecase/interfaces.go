package usecase

import (
	"context"

	"github.com/casemark/lead-intake/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error
}
