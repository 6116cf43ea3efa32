package models

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// PurchaseTypeVerified marks reviews written by a buyer of the game.
const PurchaseTypeVerified = "verified"

const (
	minReviewContentLen = 50
	maxReviewTags       = 10
)

// ReviewRecord is a user-submitted evaluation of a game.
type ReviewRecord struct {
	ID            string    `json:"id"`
	GameID        string    `json:"game_id"`
	Rating        int       `json:"rating"` // 1..5
	Recommended   bool      `json:"recommended"`
	Title         string    `json:"title,omitempty"`
	Content       string    `json:"content"`
	Tags          []string  `json:"tags,omitempty"`
	PlaytimeHours float64   `json:"playtime_hours"`
	PurchaseType  string    `json:"purchase_type"`
	CreatedAt     time.Time `json:"created_at"`
	HelpfulVotes  int       `json:"helpful_votes"`
	TotalVotes    int       `json:"total_votes"`
}

// Validate checks the submission rules and returns the list of failures.
// An empty list means the review is acceptable. The review is never partially
// applied: callers must reject the submission when any failure is present.
func (r ReviewRecord) Validate() []string {
	var failures []string
	if r.Rating < 1 || r.Rating > 5 {
		failures = append(failures, "rating must be between 1 and 5")
	}
	if utf8.RuneCountInString(r.Content) < minReviewContentLen {
		failures = append(failures, fmt.Sprintf("content must be at least %d characters", minReviewContentLen))
	}
	if len(r.Tags) > maxReviewTags {
		failures = append(failures, fmt.Sprintf("at most %d tags are allowed", maxReviewTags))
	}
	if r.PlaytimeHours < 0 {
		failures = append(failures, "playtime hours must not be negative")
	}
	if r.HelpfulVotes > r.TotalVotes {
		failures = append(failures, "helpful votes cannot exceed total votes")
	}
	return failures
}
