package domain

import "time"

// Season describes what an area is like at a given time of year.
type Season struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AreaPropertyType describes one kind of property available in an area.
type AreaPropertyType struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	PriceRange  string `json:"priceRange"`
}

// Area is a geographic region offered for recommendation. Slug is the stable
// identifier referenced by score maps, genres, and listings.
type Area struct {
	Slug              string             `json:"slug"`
	Name              string             `json:"name"`
	NameJa            string             `json:"nameJa"`
	Tagline           string             `json:"tagline"`
	Description       string             `json:"description"`
	AccessFromAirport string             `json:"accessFromAirport"`
	AverageRent       string             `json:"averageRent"`
	PriceRange        string             `json:"priceRange"`
	SafetyRating      int                `json:"safetyRating"`
	ForeignerFriendly int                `json:"foreignerFriendly"`
	Seasons           []Season           `json:"seasons,omitempty"`
	FitFor            []string           `json:"fitFor,omitempty"`
	NotFor            []string           `json:"notFor,omitempty"`
	RelatedGenres     []string           `json:"relatedGenres,omitempty"`
	Highlights        []string           `json:"highlights,omitempty"`
	PropertyTypes     []AreaPropertyType `json:"propertyTypes,omitempty"`
}

// Genre groups areas by theme (city life, nature escape, ...) for browsing.
type Genre struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Color        string   `json:"color"`
	RelatedAreas []string `json:"relatedAreas"`
}

// Property is a single listing in the catalog.
type Property struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Area            string   `json:"area"`
	Type            string   `json:"type"`
	Price           string   `json:"price"`
	PriceYen        int      `json:"priceYen"`
	Size            string   `json:"size"`
	Bedrooms        int      `json:"bedrooms"`
	Bathrooms       int      `json:"bathrooms"`
	YearBuilt       int      `json:"yearBuilt"`
	Features        []string `json:"features,omitempty"`
	InvestmentYield string   `json:"investmentYield,omitempty"`
	Image           string   `json:"image"`
}

// FAQ is a categorized question/answer pair.
type FAQ struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizOption is one selectable answer. Scores maps area slugs to the points
// this option contributes; areas absent from the map contribute zero. Slug
// keys are treated as opaque and are not validated against the area set.
type QuizOption struct {
	Text   string         `json:"text"`
	Scores map[string]int `json:"scores"`
}

// QuizQuestion holds a prompt and its ordered options. Option order is the
// on-screen answer-index order and must be preserved.
type QuizQuestion struct {
	ID      int          `json:"id"`
	Prompt  string       `json:"question"`
	Options []QuizOption `json:"options"`
}

// QuizAnswers maps question ID to the selected zero-based option index.
// Re-answering a question overwrites the previous index.
type QuizAnswers map[int]int

// QuizResult is one ranked recommendation. Never mutated after creation.
type QuizResult struct {
	Area         string `json:"area"`
	PropertyType string `json:"propertyType"`
	Score        int    `json:"score"`
}

// RankedResult pairs a result with its match percentage and display blurb.
type RankedResult struct {
	QuizResult
	MatchPercent int    `json:"matchPercent"`
	Description  string `json:"description,omitempty"`
}

// Ranking is a snapshot of the current recommendation standings for a session.
type Ranking struct {
	SessionID string         `json:"sessionId"`
	Answered  int            `json:"answered"`
	Results   []RankedResult `json:"results"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Lead is a contact-form submission from a prospective buyer.
type Lead struct {
	ID             string    `json:"id"`
	Name           string    `json:"name" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	Country        string    `json:"country" validate:"required"`
	Purpose        string    `json:"purpose" validate:"required,oneof=residence investment vacation other"`
	Budget         string    `json:"budget"`
	PreferredAreas []string  `json:"preferredAreas,omitempty"`
	Timeline       string    `json:"timeline"`
	Message        string    `json:"message"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
