package dogs

import (
	"errors"
	"strings"
)

var ErrInvalidGender = errors.New("gender must be male or female")

// Gender decide qué pool de muestras (pensamientos, voces) se usa.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", ErrInvalidGender
	}
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Label es el texto que muestra la UI ("Male Dog Voice").
func (g Gender) Label() string {
	if g == GenderMale {
		return "Male"
	}
	return "Female"
}

// Pupsona es el perfil "diario de sueños" del perro del usuario en Home.
type Pupsona struct {
	Name       string
	Avatar     string
	DiaryEntry string
	Gender     Gender
}
