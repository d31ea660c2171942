package home

import "strings"

// Condition del widget de clima para paseos.
// @Enum sunny, cloudy, rainy, windy
type Condition string

const (
	ConditionSunny  Condition = "sunny"
	ConditionCloudy Condition = "cloudy"
	ConditionRainy  Condition = "rainy"
	ConditionWindy  Condition = "windy"
)

// ParseCondition cae en sunny si el valor no se reconoce (mismo ícono por defecto).
func ParseCondition(s string) Condition {
	switch c := Condition(strings.ToLower(strings.TrimSpace(s))); c {
	case ConditionSunny, ConditionCloudy, ConditionRainy, ConditionWindy:
		return c
	default:
		return ConditionSunny
	}
}

type WeatherAlert struct {
	Condition      Condition
	TemperatureF   int
	Recommendation string
}
