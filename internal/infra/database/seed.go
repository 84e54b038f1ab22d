package database

import (
	"time"

	"github.com/casemark/lead-intake/internal/entity"
)

var seedTime = time.Date(2024, 2, 2, 14, 45, 0, 0, time.UTC)

// SeedLeads is the demo fixture the in-memory store starts from.
func SeedLeads() []entity.Lead {
	return []entity.Lead{
		{
			ID: "1", FirstName: "Jorge", LastName: "Ruiz",
			Email: "jorge.ruiz@example.com", LinkedIn: "https://linkedin.com/in/jorgeruiz",
			Country: "Mexico", VisaTypes: []entity.VisaType{entity.VisaO1},
			Notes:  "Interested in O-1 visa options for tech entrepreneurs",
			Status: entity.StatusPending, CreatedAt: seedTime,
		},
		{
			ID: "2", FirstName: "Bahar", LastName: "Zamir",
			Email: "bahar.zamir@example.com", LinkedIn: "https://linkedin.com/in/baharzamir",
			Country: "Mexico", VisaTypes: []entity.VisaType{entity.VisaEB1A},
			Notes:  "Award-winning researcher seeking visa options",
			Status: entity.StatusPending, CreatedAt: seedTime,
		},
		{
			ID: "3", FirstName: "Mary", LastName: "Lopez",
			Email: "mary.lopez@example.com", LinkedIn: "https://linkedin.com/in/marylopez",
			Country: "Brazil", VisaTypes: []entity.VisaType{entity.VisaEB2NIW},
			Notes:  "Software engineer with 10+ years experience",
			Status: entity.StatusPending, CreatedAt: seedTime,
		},
		{
			ID: "4", FirstName: "Li", LastName: "Zijin",
			Email: "li.zijin@example.com", LinkedIn: "https://linkedin.com/in/lizijin",
			Country: "South Korea", VisaTypes: []entity.VisaType{entity.VisaO1, entity.VisaEB1A},
			Notes:  "AI researcher looking for US visa options",
			Status: entity.StatusPending, CreatedAt: seedTime,
		},
		{
			ID: "5", FirstName: "Mark", LastName: "Antonov",
			Email: "mark.antonov@example.com", LinkedIn: "https://linkedin.com/in/markantonov",
			Country: "Russia", VisaTypes: []entity.VisaType{entity.VisaUnknown},
			Notes:  "Looking for information about US visa options",
			Status: entity.StatusPending, CreatedAt: seedTime,
		},
		{
			ID: "6", FirstName: "Jane", LastName: "Ma",
			Email: "jane.ma@example.com", LinkedIn: "https://linkedin.com/in/janema",
			Country: "Mexico", VisaTypes: []entity.VisaType{entity.VisaEB2NIW},
			Notes:  "Professor seeking NIW options",
			Status: entity.StatusPending, CreatedAt: seedTime,
		},
		{
			ID: "7", FirstName: "Anand", LastName: "Jain",
			Email: "anand.jain@example.com", LinkedIn: "https://linkedin.com/in/anandjain",
			Country: "Mexico", VisaTypes: []entity.VisaType{entity.VisaO1},
			Notes:  "CEO of tech startup",
			Status: entity.StatusReachedOut, CreatedAt: seedTime,
		},
		{
			ID: "8", FirstName: "Anna", LastName: "Voronova",
			Email: "anna.voronova@example.com", LinkedIn: "https://linkedin.com/in/annavoronova",
			Country: "France", VisaTypes: []entity.VisaType{entity.VisaEB1A},
			Notes:  "Award-winning fashion designer",
			Status: entity.StatusPending, CreatedAt: seedTime,
		},
	}
}
