package database

import (
	"context"
	"sync"

	"github.com/casemark/lead-intake/internal/entity"
)

// MemoryLeadRepository backs the record store with a guarded slice. It serves
// as the no-DATABASE_URL fallback and as the repository double in tests.
// Insertion order is preserved so listings stay stable between calls.
type MemoryLeadRepository struct {
	mu    sync.RWMutex
	leads []entity.Lead
}

func NewMemoryLeadRepository(seed []entity.Lead) *MemoryLeadRepository {
	leads := make([]entity.Lead, len(seed))
	copy(leads, seed)
	return &MemoryLeadRepository{leads: leads}
}

func (r *MemoryLeadRepository) GetAll(ctx context.Context) ([]entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Lead, len(r.leads))
	copy(out, r.leads)
	return out, nil
}

func (r *MemoryLeadRepository) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.leads {
		if r.leads[i].ID == id {
			lead := r.leads[i]
			return &lead, nil
		}
	}
	return nil, entity.ErrLeadNotFound
}

func (r *MemoryLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leads = append(r.leads, *lead)
	return nil
}

func (r *MemoryLeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.leads {
		if r.leads[i].ID == id {
			r.leads[i].Status = status
			lead := r.leads[i]
			return &lead, nil
		}
	}
	return nil, entity.ErrLeadNotFound
}

func (r *MemoryLeadRepository) UpdateStatusMany(ctx context.Context, ids []string, status entity.LeadStatus) ([]entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := make(map[string]bool, len(ids))
	for _, id := range ids {
		target[id] = true
	}

	updated := []entity.Lead{}
	for i := range r.leads {
		if target[r.leads[i].ID] {
			r.leads[i].Status = status
			updated = append(updated, r.leads[i])
		}
	}
	return updated, nil
}

func (r *MemoryLeadRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.leads {
		if r.leads[i].ID == id {
			r.leads = append(r.leads[:i], r.leads[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
