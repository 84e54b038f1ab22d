package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/casemark/lead-intake/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, first_name, last_name, email, linked_in, country, visa_types, resume_url, notes, status, created_at`

func (r *LeadRepository) GetAll(ctx context.Context) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC`)
	if err != nil {
		log.Printf("leads query failed: %v", err)
		return nil, entity.ErrStorageUnavailable
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)

	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, first_name, last_name, email, linked_in, country, visa_types, resume_url, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.LinkedIn,
		nullString(lead.Country),
		pq.Array(visaTypeStrings(lead.VisaTypes)),
		nullString(lead.ResumeURL),
		nullString(lead.Notes),
		string(lead.Status),
		lead.CreatedAt,
	)
	if err != nil {
		log.Printf("lead insert failed: %v", err)
	}
	return err
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx,
		`UPDATE leads SET status = $1 WHERE id = $2 RETURNING `+leadColumns,
		string(status), id,
	)

	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

// UpdateStatusMany runs inside one transaction so a reader never observes a
// partially-applied batch. Ids with no matching row are skipped silently.
func (r *LeadRepository) UpdateStatusMany(ctx context.Context, ids []string, status entity.LeadStatus) ([]entity.Lead, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`UPDATE leads SET status = $1 WHERE id = ANY($2) RETURNING `+leadColumns,
		string(status), pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}

	var updated []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		updated = append(updated, *lead)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if updated == nil {
		updated = []entity.Lead{}
	}
	return updated, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var country, resumeURL, notes sql.NullString
	var visaTypes pq.StringArray
	var status string

	err := row.Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.LinkedIn,
		&country,
		&visaTypes,
		&resumeURL,
		&notes,
		&status,
		&lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Country = country.String
	lead.ResumeURL = resumeURL.String
	lead.Notes = notes.String
	lead.Status = entity.LeadStatus(status)
	lead.VisaTypes = make([]entity.VisaType, 0, len(visaTypes))
	for _, vt := range visaTypes {
		lead.VisaTypes = append(lead.VisaTypes, entity.VisaType(vt))
	}

	return &lead, nil
}

func visaTypeStrings(visaTypes []entity.VisaType) []string {
	out := make([]string, 0, len(visaTypes))
	for _, vt := range visaTypes {
		out = append(out, string(vt))
	}
	return out
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
