package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casemark/lead-intake/internal/entity"
	"github.com/casemark/lead-intake/internal/infra/database"
	"github.com/casemark/lead-intake/internal/usecase"
)

func newLeadHandler() (*LeadHandler, *database.MemoryLeadRepository) {
	repo := database.NewMemoryLeadRepository(nil)
	return NewLeadHandler(usecase.NewCreateLeadUseCase(repo, nil)), repo
}

func TestCaptureLeadSuccess(t *testing.T) {
	h, repo := newLeadHandler()

	body := `{
		"firstName": "Maria",
		"lastName": "Silva",
		"email": "maria.silva@example.com",
		"linkedIn": "https://linkedin.com/in/mariasilva",
		"country": "Brazil",
		"visaTypes": ["O-1"],
		"notes": "Referred"
	}`

	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Capture(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var lead entity.Lead
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&lead))
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.StatusPending, lead.Status)
	assert.False(t, lead.CreatedAt.IsZero())

	all, _ := repo.GetAll(req.Context())
	assert.Len(t, all, 1)
}

func TestCaptureLeadValidationFailure(t *testing.T) {
	h, repo := newLeadHandler()

	req := httptest.NewRequest(http.MethodPost, "/leads",
		strings.NewReader(`{"firstName":"Maria","email":"bad","visaTypes":[]}`))
	rec := httptest.NewRecorder()
	h.Capture(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string                    `json:"error"`
		Fields []usecase.ValidationError `json:"fields"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error)
	assert.NotEmpty(t, body.Fields)

	all, _ := repo.GetAll(req.Context())
	assert.Empty(t, all)
}

func TestCaptureLeadInvalidJSON(t *testing.T) {
	h, _ := newLeadHandler()

	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Capture(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCaptureLeadRateLimited(t *testing.T) {
	h, _ := newLeadHandler()

	body := `{
		"firstName": "Maria",
		"lastName": "Silva",
		"email": "maria.silva@example.com",
		"linkedIn": "https://linkedin.com/in/mariasilva",
		"visaTypes": ["O-1"]
	}`

	var last int
	for i := 0; i < 12; i++ {
		req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(body))
		req.RemoteAddr = "10.0.0.9:1234"
		rec := httptest.NewRecorder()
		h.Capture(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
