// Package samples tiene los datos de muestra de cada pantalla. Cada función
// devuelve una copia nueva: quien la recibe puede modificarla.
package samples

import (
	"time"

	"dog-life/internal/domain/askai"
	"dog-life/internal/domain/dogs"
	"dog-life/internal/domain/feed"
	"dog-life/internal/domain/health"
	"dog-life/internal/domain/home"
	"dog-life/internal/domain/match"
	"dog-life/internal/domain/notifications"
	"dog-life/internal/domain/services"
	"dog-life/internal/ports/assets"
)

func Posts() []feed.Post {
	return []feed.Post{
		{
			ID:       1,
			Username: "max_the_retriever",
			Avatar:   "/happy-golden-avatar.png",
			Image:    "/park-playtime.png",
			Caption:  "Best day ever at the park! 🐾 #doglife #weekendvibes",
			Likes:    128,
			Comments: 24,
			TimeAgo:  "2 hours ago",
		},
		{
			ID:       2,
			Username: "bella_paws",
			Avatar:   "/happy-beagle-avatar.png",
			Image:    "/playful-beagle.png",
			Caption:  "New toy day is the best day! 🧸 #spoiled #dogtoys",
			Likes:    95,
			Comments: 12,
			TimeAgo:  "5 hours ago",
		},
		{
			ID:       3,
			Username: "cooper_the_pug",
			Avatar:   "/happy-pug-portrait.png",
			Image:    "/dog-sleeping.png",
			Caption:  "Monday mood... 😴 #naptime #puglife",
			Likes:    203,
			Comments: 31,
			TimeAgo:  "1 day ago",
		},
		{
			ID:       4,
			Username: "luna_husky",
			Avatar:   "/playful-husky-profile.png",
			Image:    "/dog-snow.png",
			Caption:  "Snow day is the best day! ❄️ #winterfun #husky",
			Likes:    156,
			Comments: 18,
			TimeAgo:  "3 hours ago",
		},
	}
}

func Pupsona() dogs.Pupsona {
	return dogs.Pupsona{
		Name:       "Buddy",
		Avatar:     "/golden-closeup.png",
		DiaryEntry: "Today I dreamed I caught that squirrel that's always taunting me from the oak tree. Victory was delicious! 🐿️",
		Gender:     dogs.GenderMale,
	}
}

func Weather() home.WeatherAlert {
	return home.WeatherAlert{
		Condition:      home.ConditionSunny,
		TemperatureF:   72,
		Recommendation: "Perfect weather for a long walk! Don't forget water and sun protection for your pup.",
	}
}

func Notifications() []notifications.Notification {
	return []notifications.Notification{
		{ID: 1, Title: "Vet Appointment", Description: "Annual checkup tomorrow at 2:00 PM", Time: "1 day"},
		{ID: 2, Title: "Grooming Reminder", Description: "Buddy's grooming appointment on Friday", Time: "3 days"},
		{ID: 3, Title: "Vaccination Due", Description: "Rabies vaccination due next week", Time: "7 days", Read: true},
	}
}

func PopularQuestions() []string {
	return []string{
		"How to stop my puppy from chewing furniture?",
		"What human foods are safe for dogs?",
		"How often should I bathe my dog?",
	}
}

func CommunityQuestions() []askai.CommunityQuestion {
	return []askai.CommunityQuestion{
		{
			ID:         1,
			User:       "Jessica & Rufus",
			Avatar:     "/happy-golden-avatar.png",
			Breed:      "Golden Retriever",
			Age:        "3 years",
			Question:   "My dog gets anxious during thunderstorms. Any tips to help calm him down?",
			AIResponse: "Try creating a safe space with familiar toys and sounds. ThunderShirts can help, as well as playing white noise to mask the storm sounds. Consult your vet about anxiety-reducing supplements if the problem persists.",
			Replies:    12,
			Category:   askai.CategoryBehavior,
		},
		{
			ID:         2,
			User:       "Mike & Bella",
			Avatar:     "/playful-husky-profile.png",
			Breed:      "Pomeranian",
			Age:        "5 years",
			Question:   "How do I get my dog to stop pulling on the leash during walks?",
			AIResponse: "Consistent training is key. Stop walking when pulling occurs, and only continue when the leash is slack. Reward good walking behavior with treats. Front-clip harnesses can help reduce pulling while you work on training.",
			Replies:    8,
			Category:   askai.CategoryTraining,
		},
		{
			ID:         3,
			User:       "Taylor & Max",
			Avatar:     "/happy-beagle-avatar.png",
			Breed:      "Beagle",
			Age:        "2 years",
			Question:   "What's the best way to introduce my dog to a new baby?",
			AIResponse: "Start by introducing your dog to baby scents and sounds before the arrival. When the baby comes home, allow your dog to sniff items with the baby's scent. Always supervise interactions and reward calm behavior around the baby. Maintain your dog's routine as much as possible to reduce stress.",
			Replies:    15,
			Category:   askai.CategoryBehavior,
		},
		{
			ID:         4,
			User:       "Sam & Luna",
			Avatar:     "/playful-husky-profile.png",
			Breed:      "Husky",
			Age:        "4 years",
			Question:   "How much exercise does my Husky need daily?",
			AIResponse: "Huskies are high-energy dogs that typically need 1-2 hours of exercise daily. This should include walks, runs, and mental stimulation activities. Without adequate exercise, Huskies may develop destructive behaviors. Consider activities like hiking, swimming, or dog sports to keep them engaged.",
			Replies:    6,
			Category:   askai.CategoryHealth,
		},
		{
			ID:         5,
			User:       "Alex & Cooper",
			Avatar:     "/happy-golden-avatar.png",
			Breed:      "Labrador",
			Age:        "1 year",
			Question:   "What's the best puppy food for a growing Labrador?",
			AIResponse: "Look for high-quality puppy food specifically formulated for large breeds. These contain the right balance of nutrients, calcium, and phosphorus for proper bone development. Avoid foods with fillers like corn and wheat. Feed them 3-4 times daily until 6 months, then twice daily. Always consult your vet for specific recommendations.",
			Replies:    10,
			Category:   askai.CategoryHealth,
		},
		{
			ID:         6,
			User:       "Jordan & Daisy",
			Avatar:     "/happy-beagle-avatar.png",
			Breed:      "Border Collie",
			Age:        "3 years",
			Question:   "How can I teach my Border Collie to stop herding children?",
			AIResponse: "Border Collies have strong herding instincts. Redirect this behavior by teaching an incompatible behavior like 'place' or 'settle.' Ensure your dog gets plenty of mental and physical exercise. Use positive reinforcement to reward calm behavior around children. Consider working with a professional trainer who specializes in herding breeds.",
			Replies:    9,
			Category:   askai.CategoryTraining,
		},
	}
}

func HealthSummary() health.Summary {
	return health.Summary{
		Tiles: []health.Tile{
			{Label: "Weight", Value: "64 lbs", Note: "Healthy range"},
			{Label: "Next Vaccine", Value: "Oct 15", Note: "Bordetella"},
			{Label: "Last Vet Visit", Value: "Jul 15", Note: "Annual Checkup"},
			{Label: "Energy Level", Value: "High", Note: "Active & Playful"},
		},
		CurrentWeight:  64,
		TargetMin:      60,
		TargetMax:      70,
		SixMonthChange: -1,
	}
}

func VetVisits() []health.VetVisit {
	return []health.VetVisit{
		{ID: 1, Date: "July 15, 2023", Reason: "Annual Checkup", Notes: "All vitals normal. Recommended dental cleaning in 6 months."},
		{ID: 2, Date: "March 3, 2023", Reason: "Vaccinations", Notes: "Rabies and DHPP boosters administered. No adverse reactions."},
		{ID: 3, Date: "December 10, 2022", Reason: "Ear Infection", Notes: "Prescribed antibiotics for 10 days. Follow-up showed complete recovery."},
	}
}

func Vaccinations() []health.Vaccination {
	return []health.Vaccination{
		{ID: 1, Name: "Rabies", Date: "March 3, 2023", DueDate: "March 3, 2024", Status: health.VaccineUpToDate},
		{ID: 2, Name: "DHPP", Date: "March 3, 2023", DueDate: "March 3, 2024", Status: health.VaccineUpToDate},
		{ID: 3, Name: "Bordetella", Date: "October 15, 2022", DueDate: "October 15, 2023", Status: health.VaccineDueSoon},
		{ID: 4, Name: "Leptospirosis", Date: "March 3, 2023", DueDate: "March 3, 2024", Status: health.VaccineUpToDate},
	}
}

func Weight() []health.WeightPoint {
	return []health.WeightPoint{
		{Month: "Jan", Weight: 65},
		{Month: "Feb", Weight: 67},
		{Month: "Mar", Weight: 68},
		{Month: "Apr", Weight: 67},
		{Month: "May", Weight: 66},
		{Month: "Jun", Weight: 65},
		{Month: "Jul", Weight: 64},
	}
}

func Behavior() []health.BehaviorPoint {
	return []health.BehaviorPoint{
		{Month: "Jan", Energy: 7, Anxiety: 3},
		{Month: "Feb", Energy: 6, Anxiety: 4},
		{Month: "Mar", Energy: 8, Anxiety: 2},
		{Month: "Apr", Energy: 7, Anxiety: 2},
		{Month: "May", Energy: 9, Anxiety: 1},
		{Month: "Jun", Energy: 8, Anxiety: 2},
		{Month: "Jul", Energy: 7, Anxiety: 3},
	}
}

func Providers() []services.Provider {
	return []services.Provider{
		{
			ID:              1,
			Name:            "Pawsome Grooming",
			Type:            services.CategoryGroomer,
			Image:           "/happy-groomed-poodle.png",
			Rating:          4.8,
			ReviewCount:     124,
			Distance:        "1.2 miles",
			Summary:         "Professional grooming services with gentle handling and organic products. Specializes in all breeds and coat types.",
			Tags:            []string{"Nail Trimming", "Bath", "Haircut"},
			AIReviewSummary: "Customers consistently praise the gentle handling of pets and use of organic products. Many highlight the staff's ability to work with anxious dogs and the cleanliness of the facility.",
			Badges:          []string{"Top Rated", "Gentle Care"},
			Reviews: []services.Review{
				{ID: 101, UserName: "Sarah M.", UserAvatar: "/diverse-woman-avatars.png", Rating: 5, Comment: "My nervous poodle actually enjoys going here now! They're so patient and gentle with him.", Date: "2 weeks ago"},
				{ID: 102, UserName: "Mike T.", UserAvatar: "/diverse-man-portrait.png", Rating: 4.5, Comment: "Great job with my golden's thick coat. Love that they use all-natural products.", Date: "1 month ago"},
			},
		},
		{
			ID:              2,
			Name:            "Happy Tails Veterinary",
			Type:            services.CategoryVet,
			Image:           "/welcoming-vet-clinic.png",
			Rating:          4.9,
			ReviewCount:     208,
			Distance:        "2.5 miles",
			Summary:         "Full-service veterinary clinic with emergency care available. Compassionate staff and modern facilities.",
			Tags:            []string{"Emergency", "Vaccinations", "Surgery"},
			AIReviewSummary: "Reviewers frequently mention the clinic's quick response in emergencies and the caring, knowledgeable staff. The modern equipment and clear communication about treatment options are also highly appreciated.",
			Badges:          []string{"Top Rated", "Emergency Care"},
			Reviews: []services.Review{
				{ID: 201, UserName: "Jessica L.", UserAvatar: "/happy-golden-avatar.png", Rating: 5, Comment: "Dr. Wilson saved my dog's life during an emergency. Forever grateful for their quick action and expertise.", Date: "3 weeks ago"},
				{ID: 202, UserName: "David R.", UserAvatar: "/diverse-man-portrait.png", Rating: 5, Comment: "They take time to explain everything and never rush through appointments. Best vet we've ever had.", Date: "2 months ago"},
			},
		},
		{
			ID:          3,
			Name:        "Bark Park Daycare",
			Type:        services.CategoryDaycare,
			Image:       "/playful-pup-paradise.png",
			Rating:      4.7,
			ReviewCount: 95,
			Distance:    "3.1 miles",
			Summary:     "Supervised play in indoor and outdoor areas. Webcam access for owners to check on their pets throughout the day.",
			Tags:        []string{"Supervised Play", "Training", "Socialization"},
		},
		{
			ID:          4,
			Name:        "Fetch & Go Walkers",
			Type:        services.CategoryWalker,
			Image:       "/urban-dog-walk.png",
			Rating:      4.6,
			ReviewCount: 76,
			Distance:    "0.8 miles",
			Summary:     "Reliable dog walking service with GPS tracking and photo updates. Individual and group walks available.",
			Tags:        []string{"GPS Tracking", "Insured", "Flexible Schedule"},
		},
		{
			ID:          5,
			Name:        "Canine Academy",
			Type:        services.CategoryTrainer,
			Image:       "/patient-pupil-practice.png",
			Rating:      4.9,
			ReviewCount: 152,
			Distance:    "4.2 miles",
			Summary:     "Positive reinforcement training for all ages and behavior issues. Group classes and private sessions available.",
			Tags:        []string{"Behavior", "Obedience", "Puppy Classes"},
		},
	}
}

func Profiles() []match.Profile {
	return []match.Profile{
		{
			ID:            1,
			Name:          "Max",
			Breed:         "Golden Retriever",
			Age:           "3 years",
			Gender:        dogs.GenderMale,
			Image:         "/happy-golden-hour-retriever.png",
			Distance:      "0.8 miles",
			Compatibility: 92,
			Personality:   []string{"Friendly", "Energetic", "Playful"},
			Interests:     []string{"Fetch", "Swimming", "Running"},
			Owner:         "Sarah",
			OwnerImage:    "/diverse-woman-avatars.png",
		},
		{
			ID:            2,
			Name:          "Luna",
			Breed:         "Border Collie",
			Age:           "2 years",
			Gender:        dogs.GenderFemale,
			Image:         "/alert-border-collie.png",
			Distance:      "1.2 miles",
			Compatibility: 87,
			Personality:   []string{"Smart", "Athletic", "Focused"},
			Interests:     []string{"Agility", "Frisbee", "Hiking"},
			Owner:         "Mike",
			OwnerImage:    "/diverse-man-portrait.png",
		},
		{
			ID:            3,
			Name:          "Charlie",
			Breed:         "Labrador",
			Age:           "4 years",
			Gender:        dogs.GenderMale,
			Image:         "/happy-labrador-field.png",
			Distance:      "2.5 miles",
			Compatibility: 78,
			Personality:   []string{"Calm", "Gentle", "Social"},
			Interests:     []string{"Walks", "Toys", "Treats"},
			Owner:         "Jessica",
			OwnerImage:    "/happy-golden-avatar.png",
		},
	}
}

func Events() []match.Event {
	return []match.Event{
		{
			ID:        1,
			Title:     "Bark in the Park",
			Date:      "Aug 15, 2023",
			Time:      "10:00 AM - 1:00 PM",
			Location:  "Central Park Dog Run",
			Attendees: 24,
			Image:     "/park-playtime.png",
			Tags:      []string{"Off-leash", "Social", "All Sizes"},
		},
		{
			ID:        2,
			Title:     "Puppy Playgroup",
			Date:      "Aug 18, 2023",
			Time:      "4:00 PM - 5:30 PM",
			Location:  "Happy Tails Training Center",
			Attendees: 12,
			Image:     "/playful-beagle.png",
			Tags:      []string{"Puppies Only", "Supervised", "Training"},
		},
		{
			ID:        3,
			Title:     "Doggy Splash Day",
			Date:      "Aug 25, 2023",
			Time:      "11:00 AM - 3:00 PM",
			Location:  "Riverside Community Pool",
			Attendees: 35,
			Image:     "/dog-snow.png",
			Tags:      []string{"Swimming", "Water Play", "Large Area"},
		},
	}
}

// Assets es la semilla del asset store en memoria: las cinco voces con su
// duración y todas las imágenes que referencian los datos de muestra.
func Assets() []assets.Metadata {
	out := []assets.Metadata{
		{Ref: "/male-retriever-voice.mp3", Kind: assets.KindAudio, Duration: 4200 * time.Millisecond},
		{Ref: "/male-pug-voice.mp3", Kind: assets.KindAudio, Duration: 3600 * time.Millisecond},
		{Ref: "/dog-voice-sample.mp3", Kind: assets.KindAudio, Duration: 5 * time.Second},
		{Ref: "/female-beagle-voice.mp3", Kind: assets.KindAudio, Duration: 3900 * time.Millisecond},
		{Ref: "/female-husky-voice.mp3", Kind: assets.KindAudio, Duration: 4500 * time.Millisecond},
	}
	for _, ref := range images {
		out = append(out, assets.Metadata{Ref: ref, Kind: assets.KindImage})
	}
	return out
}

var images = []string{
	"/purple-paw-impression.png",
	"/golden-closeup.png",
	"/happy-golden-pup.png",
	"/happy-golden-avatar.png",
	"/happy-beagle-avatar.png",
	"/happy-pug-portrait.png",
	"/playful-husky-profile.png",
	"/park-playtime.png",
	"/playful-beagle.png",
	"/dog-sleeping.png",
	"/dog-snow.png",
	"/abstract-ai-network.png",
	"/assistance-dog-park.png",
	"/happy-groomed-poodle.png",
	"/welcoming-vet-clinic.png",
	"/playful-pup-paradise.png",
	"/urban-dog-walk.png",
	"/patient-pupil-practice.png",
	"/diverse-woman-avatars.png",
	"/diverse-man-portrait.png",
	"/happy-golden-retriever-puppy.png",
	"/happy-golden-hour-retriever.png",
	"/alert-border-collie.png",
	"/happy-labrador-field.png",
	"/placeholder.svg",
}
