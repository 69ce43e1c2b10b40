package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrInvalidRecommendation = errors.New("recommendation must be Yes or No")
	ErrIncompleteReview      = errors.New("review is incomplete")
)

type Recommendation string

const (
	RecommendYes Recommendation = "Yes"
	RecommendNo  Recommendation = "No"
)

func (r Recommendation) Valid() bool {
	return r == RecommendYes || r == RecommendNo
}

func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

type Review struct {
	ID        uuid.UUID
	Name      string
	Text      string
	Rating    int
	Recommend Recommendation

	CreatedAt time.Time
}

// NewReview builds a review only when every field is present.
func NewReview(name, text string, rating int, recommend Recommendation) (Review, error) {
	if name == "" || text == "" || !ValidRating(rating) || !recommend.Valid() {
		return Review{}, ErrIncompleteReview
	}

	return Review{
		ID:        uuid.New(),
		Name:      name,
		Text:      text,
		Rating:    rating,
		Recommend: recommend,
		CreatedAt: time.Now(),
	}, nil
}
