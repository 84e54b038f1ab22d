package entity

import (
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	StatusPending    LeadStatus = "PENDING"
	StatusReachedOut LeadStatus = "REACHED_OUT"
)

func (s LeadStatus) Valid() bool {
	return s == StatusPending || s == StatusReachedOut
}

type VisaType string

const (
	VisaO1      VisaType = "O-1"
	VisaEB1A    VisaType = "EB-1A"
	VisaEB2NIW  VisaType = "EB-2 NIW"
	VisaUnknown VisaType = "I don't know"
)

func (v VisaType) Valid() bool {
	switch v {
	case VisaO1, VisaEB1A, VisaEB2NIW, VisaUnknown:
		return true
	}
	return false
}

type Lead struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	LinkedIn  string     `json:"linkedIn"`
	Country   string     `json:"country,omitempty"`
	VisaTypes []VisaType `json:"visaTypes"`
	ResumeURL string     `json:"resumeUrl,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// FullName is the display name used by search and by name ordering.
func (l *Lead) FullName() string {
	return l.FirstName + " " + l.LastName
}

func (l *Lead) HasVisaType(v VisaType) bool {
	for _, vt := range l.VisaTypes {
		if vt == v {
			return true
		}
	}
	return false
}

// Factory: id, status and createdAt are assigned here, never by callers.
func NewLead(firstName, lastName, email, linkedIn, country string, visaTypes []VisaType, resumeURL, notes string) (*Lead, error) {
	lead := &Lead{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		LinkedIn:  linkedIn,
		Country:   country,
		VisaTypes: visaTypes,
		ResumeURL: resumeURL,
		Notes:     notes,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.FirstName == "" {
		return ErrFirstNameRequired
	}
	if l.LastName == "" {
		return ErrLastNameRequired
	}
	if l.Email == "" {
		return ErrEmailRequired
	}
	if len(l.VisaTypes) == 0 {
		return ErrVisaTypesRequired
	}
	for _, vt := range l.VisaTypes {
		if !vt.Valid() {
			return ErrInvalidVisaType
		}
	}
	if !l.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
