package usecase

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/casemark/lead-intake/internal/entity"
)

const PageSize = 10

// MatchAll is the sentinel for status/visa-type filters meaning "no constraint".
const MatchAll = "ALL"

// FilterSpec fields arrive as raw query-param strings. Empty means unconstrained.
type FilterSpec struct {
	Search   string
	Status   string
	Country  string
	VisaType string
}

// FilterLeads returns the sub-slice of leads satisfying every active predicate.
// It never mutates its input.
func FilterLeads(leads []entity.Lead, f FilterSpec) []entity.Lead {
	filtered := make([]entity.Lead, 0, len(leads))

	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, lead := range leads {
		if search != "" {
			name := strings.ToLower(lead.FullName())
			email := strings.ToLower(lead.Email)
			if !strings.Contains(name, search) && !strings.Contains(email, search) {
				continue
			}
		}

		if f.Status != "" && f.Status != MatchAll && string(lead.Status) != f.Status {
			continue
		}

		if f.Country != "" && lead.Country != f.Country {
			continue
		}

		if f.VisaType != "" && f.VisaType != MatchAll && !lead.HasVisaType(entity.VisaType(f.VisaType)) {
			continue
		}

		filtered = append(filtered, lead)
	}

	return filtered
}

type SortField string

const (
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "createdAt"
	SortByStatus    SortField = "status"
	SortByCountry   SortField = "country"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByName, SortByCreatedAt, SortByStatus, SortByCountry:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort is newest submissions first.
var DefaultSort = SortSpec{Field: SortByCreatedAt, Direction: SortDesc}

// Toggle returns the spec after a click on a column header: same field flips
// the direction, a new field starts ascending.
func (s SortSpec) Toggle(field SortField) SortSpec {
	if s.Field == field {
		if s.Direction == SortAsc {
			return SortSpec{Field: field, Direction: SortDesc}
		}
		return SortSpec{Field: field, Direction: SortAsc}
	}
	return SortSpec{Field: field, Direction: SortAsc}
}

// SortLeads returns a sorted copy; the input slice is left untouched.
func SortLeads(leads []entity.Lead, spec SortSpec) []entity.Lead {
	sorted := make([]entity.Lead, len(leads))
	copy(sorted, leads)

	if !spec.Field.Valid() {
		spec = DefaultSort
	}

	var less func(a, b *entity.Lead) bool

	switch spec.Field {
	case SortByName:
		c := collate.New(language.English, collate.IgnoreCase)
		less = func(a, b *entity.Lead) bool {
			return c.CompareString(a.FullName(), b.FullName()) < 0
		}
	case SortByCreatedAt:
		less = func(a, b *entity.Lead) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	case SortByStatus:
		less = func(a, b *entity.Lead) bool {
			return a.Status < b.Status
		}
	case SortByCountry:
		// A missing country compares as the empty string and sorts first ascending.
		less = func(a, b *entity.Lead) bool {
			return a.Country < b.Country
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if spec.Direction == SortDesc {
			return less(&sorted[j], &sorted[i])
		}
		return less(&sorted[i], &sorted[j])
	})

	return sorted
}

type Page struct {
	Items      []entity.Lead `json:"items"`
	Number     int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
}

// Paginate slices out one fixed-size page. The requested page number is
// clamped into [1, totalPages]; an empty input yields an empty page 1 with
// zero total pages.
func Paginate(leads []entity.Lead, page int) Page {
	totalItems := len(leads)
	totalPages := (totalItems + PageSize - 1) / PageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	if totalItems == 0 {
		return Page{Items: []entity.Lead{}, Number: 1, TotalPages: 0, TotalItems: 0}
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Items:      leads[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}
