package match

import "dog-life/internal/domain/dogs"

// Profile es un perro sugerido para playdate. Compatibility es 0-100
// y solo se muestra; no se calcula.
type Profile struct {
	ID            int
	Name          string
	Breed         string
	Age           string
	Gender        dogs.Gender
	Image         string
	Distance      string
	Compatibility int
	Personality   []string
	Interests     []string
	Owner         string
	OwnerImage    string
}

type Event struct {
	ID        int
	Title     string
	Date      string
	Time      string
	Location  string
	Attendees int
	Image     string
	Tags      []string
}
