package reviews

import (
	"strings"
	"testing"

	"novacore/backend/internal/models"
)

func validReview(gameID string) models.ReviewRecord {
	return models.ReviewRecord{
		GameID:       gameID,
		Rating:       4,
		Recommended:  true,
		Content:      strings.Repeat("Genuinely great game, worth every minute. ", 3),
		PurchaseType: models.PurchaseTypeVerified,
	}
}

func TestSubmit_StoresValidReview(t *testing.T) {
	s := NewStore()

	stored, failures := s.Submit(validReview("g1"))
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if stored.ID == "" || stored.CreatedAt.IsZero() {
		t.Fatalf("submit should stamp id and creation time: %+v", stored)
	}

	list := s.List("g1")
	if len(list) != 1 || list[0].ID != stored.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
	if got := s.List("other"); len(got) != 0 {
		t.Fatalf("reviews leaked across games: %+v", got)
	}
}

func TestSubmit_RejectsInvalidWholesale(t *testing.T) {
	s := NewStore()

	bad := validReview("g1")
	bad.Rating = 7
	bad.Content = "too short"
	bad.Tags = make([]string, 11)

	_, failures := s.Submit(bad)
	if len(failures) != 3 {
		t.Fatalf("want 3 failures, got %v", failures)
	}
	if got := s.List("g1"); len(got) != 0 {
		t.Fatalf("rejected review must not be stored, got %+v", got)
	}
}

func TestValidate_VoteInvariant(t *testing.T) {
	r := validReview("g1")
	r.HelpfulVotes = 5
	r.TotalVotes = 3
	if failures := r.Validate(); len(failures) != 1 {
		t.Fatalf("want 1 failure for vote invariant, got %v", failures)
	}
}
