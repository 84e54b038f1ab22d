package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casemark/lead-intake/internal/entity"
)

func TestMemoryRepositorySeedIsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLeadRepository(SeedLeads())

	leads, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, leads, 8)

	// Mutating a returned slice must not leak into the store.
	leads[0].Status = entity.StatusReachedOut
	fresh, _ := repo.GetAll(ctx)
	assert.Equal(t, entity.StatusPending, fresh[0].Status)
}

func TestMemoryRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLeadRepository(nil)

	lead, err := entity.NewLead("Nina", "Gomez", "nina@example.com",
		"https://linkedin.com/in/ninagomez", "Spain",
		[]entity.VisaType{entity.VisaO1}, "", "")
	assert.NoError(t, err)

	assert.NoError(t, repo.Create(ctx, lead))

	stored, err := repo.GetByID(ctx, lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, lead.Email, stored.Email)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestMemoryRepositoryUpdateStatusMany(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLeadRepository(SeedLeads())

	updated, err := repo.UpdateStatusMany(ctx, []string{"1", "3", "zzz"}, entity.StatusReachedOut)
	assert.NoError(t, err)
	assert.Len(t, updated, 2)

	all, _ := repo.GetAll(ctx)
	reached := 0
	for _, lead := range all {
		if lead.Status == entity.StatusReachedOut {
			reached++
		}
	}
	// Leads 1 and 3 plus the seeded REACHED_OUT lead 7.
	assert.Equal(t, 3, reached)
}

func TestMemoryRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLeadRepository(SeedLeads())

	deleted, err := repo.Delete(ctx, "2")
	assert.NoError(t, err)
	assert.True(t, deleted)

	all, _ := repo.GetAll(ctx)
	assert.Len(t, all, 7)

	deleted, err = repo.Delete(ctx, "2")
	assert.NoError(t, err)
	assert.False(t, deleted)
}
