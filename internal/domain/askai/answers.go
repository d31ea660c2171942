package askai

import "strings"

const answerPrefix = "Thank you for your question. "

type answerRule struct {
	keywords []string
	text     string
}

// Reglas en orden: gana la primera que matchea.
var answerRules = []answerRule{
	{
		keywords: []string{"puppy"},
		text:     "Puppies require special attention during their first year. Make sure to provide proper socialization, training, and veterinary care. Establish a routine for feeding, potty breaks, and playtime to help them adjust.",
	},
	{
		keywords: []string{"food", "eat"},
		text:     "A balanced diet is crucial for your dog's health. High-quality commercial dog foods that meet AAFCO standards are generally recommended. Always consult with your veterinarian about specific dietary needs based on your dog's age, breed, size, and health conditions.",
	},
	{
		keywords: []string{"train"},
		text:     "Positive reinforcement training is highly effective for dogs. Use treats, praise, and play as rewards for desired behaviors. Consistency is key - ensure all family members use the same commands and rules. Short, frequent training sessions work better than long ones.",
	},
}

const defaultAnswer = "Dogs thrive on routine, exercise, proper nutrition, and regular veterinary care. Each dog is unique, so it's important to understand your specific dog's needs based on their breed, age, and personality. If you have specific concerns, please provide more details."

// answerFor elige la respuesta canned por palabras clave.
func answerFor(question string) string {
	q := strings.ToLower(question)
	for _, r := range answerRules {
		for _, k := range r.keywords {
			if strings.Contains(q, k) {
				return answerPrefix + r.text
			}
		}
	}
	return answerPrefix + defaultAnswer
}
