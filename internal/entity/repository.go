package entity

import "context"

// LeadRepositoryInterface is the record store boundary. Reads never mutate;
// UpdateStatusMany is atomic from the reader's point of view.
type LeadRepositoryInterface interface {
	GetAll(ctx context.Context) ([]Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, lead *Lead) error
	UpdateStatus(ctx context.Context, id string, status LeadStatus) (*Lead, error)
	UpdateStatusMany(ctx context.Context, ids []string, status LeadStatus) ([]Lead, error)
	Delete(ctx context.Context, id string) (bool, error)
}
