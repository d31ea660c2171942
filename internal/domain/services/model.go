package services

import "strings"

// Category del proveedor. "all" solo existe como filtro.
type Category string

const (
	CategoryAll     Category = "all"
	CategoryVet     Category = "Vet"
	CategoryGroomer Category = "Groomer"
	CategoryDaycare Category = "Daycare"
	CategoryWalker  Category = "Walker"
	CategoryTrainer Category = "Trainer"
)

// FilterType es un botón de la barra de filtros.
type FilterType struct {
	ID    Category
	Label string
}

var filterTypes = []FilterType{
	{ID: CategoryAll, Label: "All"},
	{ID: CategoryVet, Label: "Vets"},
	{ID: CategoryGroomer, Label: "Groomers"},
	{ID: CategoryDaycare, Label: "Daycare"},
	{ID: CategoryWalker, Label: "Walkers"},
	{ID: CategoryTrainer, Label: "Trainers"},
}

// ParseCategory no distingue mayúsculas. "" es all.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryAll, true
	}
	for _, f := range filterTypes {
		if strings.EqualFold(string(f.ID), s) {
			return f.ID, true
		}
	}
	return "", false
}

type Review struct {
	ID         int
	UserName   string
	UserAvatar string
	Rating     float64
	Comment    string
	Date       string
}

type Provider struct {
	ID              int
	Name            string
	Type            Category
	Image           string
	Rating          float64
	ReviewCount     int
	Distance        string
	Summary         string
	Tags            []string
	Badges          []string
	AIReviewSummary string
	Reviews         []Review
}

// HasDetails indica si la tarjeta se puede expandir.
func (p Provider) HasDetails() bool {
	return p.AIReviewSummary != "" || len(p.Reviews) > 0
}
