package memory

import (
	"github.com/google/uuid"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
)

func (s *Store) seedDestinations() {
	seeds := []domain.Destination{
		{
			Name:        "Paris",
			Country:     "France",
			Description: "The City of Light awaits with its iconic landmarks, world-class museums, and romantic atmosphere.",
			Latitude:    48.8566,
			Longitude:   2.3522,
			Category:    domain.CategoryCulture,
			Images:      []string{"https://images.unsplash.com/photo-1502602898536-47ad22581b52?w=800"},
			Videos:      []string{},
			Price:       2500,
			Rating:      4.8,
			Activities:  []string{"Eiffel Tower", "Louvre Museum", "Seine River Cruise"},
			Highlights:  []string{"Iconic landmarks", "World-class cuisine", "Rich history"},
			BestSeason:  "Spring-Summer",
			Duration:    "5-7 days",
			Difficulty:  domain.DifficultyEasy,
			IsPopular:   true,
		},
		{
			Name:        "Bali",
			Country:     "Indonesia",
			Description: "Tropical paradise with stunning beaches, ancient temples, and vibrant culture.",
			Latitude:    -8.3405,
			Longitude:   115.0920,
			Category:    domain.CategoryBeaches,
			Images:      []string{"https://images.unsplash.com/photo-1537953773345-d172ccf13cf1?w=800"},
			Videos:      []string{},
			Price:       1800,
			Rating:      4.7,
			Activities:  []string{"Beach relaxation", "Temple visits", "Rice terrace tours"},
			Highlights:  []string{"Beautiful beaches", "Cultural heritage", "Tropical climate"},
			BestSeason:  "Year-round",
			Duration:    "7-10 days",
			Difficulty:  domain.DifficultyEasy,
			IsPopular:   true,
		},
		{
			Name:        "Mount Fuji",
			Country:     "Japan",
			Description: "Sacred mountain offering breathtaking views and spiritual experiences.",
			Latitude:    35.3606,
			Longitude:   138.7274,
			Category:    domain.CategoryAdventure,
			Images:      []string{"https://images.unsplash.com/photo-1490806843957-31f4c9a91c65?w=800"},
			Videos:      []string{},
			Price:       3200,
			Rating:      4.9,
			Activities:  []string{"Mountain climbing", "Hot springs", "Cultural sites"},
			Highlights:  []string{"Iconic peak", "Spiritual journey", "Stunning landscapes"},
			BestSeason:  "Summer",
			Duration:    "4-6 days",
			Difficulty:  domain.DifficultyChallenging,
			IsPopular:   true,
		},
		{
			Name:        "Maldives",
			Country:     "Maldives",
			Description: "Ultimate luxury destination with crystal-clear waters and overwater bungalows.",
			Latitude:    3.2028,
			Longitude:   73.2207,
			Category:    domain.CategoryLuxury,
			Images:      []string{"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800"},
			Videos:      []string{},
			Price:       5500,
			Rating:      4.9,
			Activities:  []string{"Snorkeling", "Spa treatments", "Water sports"},
			Highlights:  []string{"Luxury resorts", "Marine life", "Perfect beaches"},
			BestSeason:  "Year-round",
			Duration:    "5-8 days",
			Difficulty:  domain.DifficultyEasy,
			IsPopular:   true,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dest := range seeds {
		dest.ID = uuid.New()
		dest.CreatedAt = s.now().UTC()
		s.destinations[dest.ID] = dest
	}
}
