package memory

import (
	"dog-life/internal/adapters/storage"
	"dog-life/internal/samples"
)

// NewSampleCatalog sirve los datos de muestra compilados.
func NewSampleCatalog() storage.Catalog {
	return storage.Catalog{
		Feed:          NewFeedRepo(samples.Posts()),
		Notifications: NewNotificationRepo(samples.Notifications()),
		Home:          NewHomeRepo(samples.Pupsona(), samples.Weather()),
		AskAI:         NewAskAIRepo(samples.PopularQuestions(), samples.CommunityQuestions()),
		Health: NewHealthRepo(HealthData{
			Summary:      samples.HealthSummary(),
			VetVisits:    samples.VetVisits(),
			Vaccinations: samples.Vaccinations(),
			Weight:       samples.Weight(),
			Behavior:     samples.Behavior(),
		}),
		Services: NewServicesRepo(samples.Providers()),
		Match:    NewMatchRepo(samples.Profiles(), samples.Events()),
	}
}
