package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DestinationCategory string

const (
	CategoryAdventure  DestinationCategory = "adventure"
	CategoryLuxury     DestinationCategory = "luxury"
	CategoryCulture    DestinationCategory = "culture"
	CategoryBeaches    DestinationCategory = "beaches"
	CategoryHistorical DestinationCategory = "historical"
)

func (c DestinationCategory) Valid() bool {
	switch c {
	case CategoryAdventure, CategoryLuxury, CategoryCulture, CategoryBeaches, CategoryHistorical:
		return true
	}
	return false
}

type DestinationDifficulty string

const (
	DifficultyEasy        DestinationDifficulty = "easy"
	DifficultyModerate    DestinationDifficulty = "moderate"
	DifficultyChallenging DestinationDifficulty = "challenging"
)

func (d DestinationDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyChallenging:
		return true
	}
	return false
}

type Destination struct {
	ID          uuid.UUID             `db:"id" json:"id"`
	Name        string                `db:"name" json:"name"`
	Country     string                `db:"country" json:"country"`
	Description string                `db:"description" json:"description"`
	Latitude    float64               `db:"latitude" json:"latitude"`
	Longitude   float64               `db:"longitude" json:"longitude"`
	Category    DestinationCategory   `db:"category" json:"category"`
	Images      pq.StringArray        `db:"images" json:"images"`
	Videos      pq.StringArray        `db:"videos" json:"videos"`
	Price       float64               `db:"price" json:"price"`
	Rating      float64               `db:"rating" json:"rating"`
	Activities  pq.StringArray        `db:"activities" json:"activities"`
	Highlights  pq.StringArray        `db:"highlights" json:"highlights"`
	BestSeason  string                `db:"best_season" json:"best_season"`
	Duration    string                `db:"duration" json:"duration"`
	Difficulty  DestinationDifficulty `db:"difficulty" json:"difficulty"`
	IsPopular   bool                  `db:"is_popular" json:"is_popular"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
}

// DestinationFields holds the writable attributes of a destination.
// Create requires every field; Update treats nil pointers as "keep".
type DestinationFields struct {
	Name        *string                `json:"name,omitempty"`
	Country     *string                `json:"country,omitempty"`
	Description *string                `json:"description,omitempty"`
	Latitude    *float64               `json:"latitude,omitempty"`
	Longitude   *float64               `json:"longitude,omitempty"`
	Category    *DestinationCategory   `json:"category,omitempty"`
	Images      *[]string              `json:"images,omitempty"`
	Videos      *[]string              `json:"videos,omitempty"`
	Price       *float64               `json:"price,omitempty"`
	Rating      *float64               `json:"rating,omitempty"`
	Activities  *[]string              `json:"activities,omitempty"`
	Highlights  *[]string              `json:"highlights,omitempty"`
	BestSeason  *string                `json:"best_season,omitempty"`
	Duration    *string                `json:"duration,omitempty"`
	Difficulty  *DestinationDifficulty `json:"difficulty,omitempty"`
	IsPopular   *bool                  `json:"is_popular,omitempty"`
}
