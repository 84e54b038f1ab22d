package usecase

import "github.com/casemark/lead-intake/internal/entity"

type CreateLeadInput struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	LinkedIn  string   `json:"linkedIn"`
	Country   string   `json:"country,omitempty"`
	VisaTypes []string `json:"visaTypes"`
	ResumeURL string   `json:"resumeUrl,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

type ListLeadsInput struct {
	Filter FilterSpec
	Sort   SortSpec
	Page   int
}

type ListLeadsOutput struct {
	Leads      []entity.Lead `json:"leads"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
}
