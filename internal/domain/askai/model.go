package askai

import "strings"

// Category de las preguntas de la comunidad.
// @Enum behavior, training, health
type Category string

const (
	CategoryAll      Category = "all"
	CategoryBehavior Category = "behavior"
	CategoryTraining Category = "training"
	CategoryHealth   Category = "health"
)

// ParseCategory acepta "" como all. ok=false si no se reconoce.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CategoryAll:
		return CategoryAll, true
	case CategoryBehavior, CategoryTraining, CategoryHealth:
		return c, true
	default:
		return "", false
	}
}

type CommunityQuestion struct {
	ID         int
	User       string
	Avatar     string
	Breed      string
	Age        string
	Question   string
	AIResponse string
	Replies    int
	Category   Category
}

// Answer es la respuesta de "Dog Life AI" a una pregunta nueva.
type Answer struct {
	Question string
	Response string
	Avatar   string
}
