package reviews

import (
	"math"
	"testing"
	"time"

	"novacore/backend/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregates_EmptyInput(t *testing.T) {
	if got := AverageRating(nil); got != 0 {
		t.Fatalf("AverageRating(nil) = %v", got)
	}
	if got := RecommendationPercentage(nil); got != 0 {
		t.Fatalf("RecommendationPercentage(nil) = %v", got)
	}
	if got := AveragePlaytime(nil); got != 0 {
		t.Fatalf("AveragePlaytime(nil) = %v", got)
	}
	if got := VerifiedPurchasePercentage(nil); got != 0 {
		t.Fatalf("VerifiedPurchasePercentage(nil) = %v", got)
	}
	if got := RecentTrend(nil, 30); got != 0 {
		t.Fatalf("RecentTrend(nil) = %v", got)
	}
	if got := TopTags(nil, 10); len(got) != 0 {
		t.Fatalf("TopTags(nil) = %v", got)
	}
	dist := RatingDistribution(nil)
	for star := 1; star <= 5; star++ {
		if dist[star] != 0 {
			t.Fatalf("empty distribution has count at %d", star)
		}
	}
}

func TestAverageRatingAndDistribution(t *testing.T) {
	reviews := []models.ReviewRecord{
		{Rating: 5}, {Rating: 5}, {Rating: 4}, {Rating: 2},
	}
	if got := AverageRating(reviews); got != 4 {
		t.Fatalf("AverageRating = %v, want 4", got)
	}

	dist := RatingDistribution(reviews)
	if dist[5] != 2 || dist[4] != 1 || dist[2] != 1 || dist[3] != 0 || dist[1] != 0 {
		t.Fatalf("unexpected distribution: %v", dist)
	}
}

func TestRecommendationAndVerifiedPercentages(t *testing.T) {
	reviews := []models.ReviewRecord{
		{Recommended: true, PurchaseType: models.PurchaseTypeVerified},
		{Recommended: true, PurchaseType: "gift"},
		{Recommended: false, PurchaseType: models.PurchaseTypeVerified},
		{Recommended: true, PurchaseType: models.PurchaseTypeVerified},
	}
	if got := RecommendationPercentage(reviews); got != 75 {
		t.Fatalf("RecommendationPercentage = %v, want 75", got)
	}
	if got := VerifiedPurchasePercentage(reviews); got != 75 {
		t.Fatalf("VerifiedPurchasePercentage = %v, want 75", got)
	}
}

func TestAveragePlaytime(t *testing.T) {
	reviews := []models.ReviewRecord{
		{PlaytimeHours: 10}, {PlaytimeHours: 30}, {PlaytimeHours: 20},
	}
	if got := AveragePlaytime(reviews); got != 20 {
		t.Fatalf("AveragePlaytime = %v, want 20", got)
	}
}

func TestRecentTrend(t *testing.T) {
	now := time.Now()
	old := now.AddDate(0, 0, -90)
	recent := now.AddDate(0, 0, -5)

	// Overall average 3, recent average 5: trend +2.
	reviews := []models.ReviewRecord{
		{Rating: 1, CreatedAt: old},
		{Rating: 3, CreatedAt: old},
		{Rating: 5, CreatedAt: recent},
	}
	if got := RecentTrend(reviews, 30); !almostEqual(got, 2) {
		t.Fatalf("RecentTrend = %v, want 2", got)
	}

	// No review inside the window: the recent average falls back to the
	// overall average, so the trend is 0.
	stale := []models.ReviewRecord{
		{Rating: 1, CreatedAt: old},
		{Rating: 5, CreatedAt: old},
	}
	if got := RecentTrend(stale, 30); got != 0 {
		t.Fatalf("RecentTrend = %v, want 0", got)
	}
}

func TestTopTags(t *testing.T) {
	reviews := []models.ReviewRecord{
		{Tags: []string{"fun", "hard"}},
		{Tags: []string{"fun", "buggy"}},
		{Tags: []string{"fun", "hard", "buggy"}},
		{Tags: []string{"cozy"}},
	}

	got := TopTags(reviews, 10)
	if len(got) != 4 {
		t.Fatalf("want 4 tags, got %v", got)
	}
	if got[0].Tag != "fun" || got[0].Count != 3 {
		t.Fatalf("top tag should be fun x3, got %+v", got[0])
	}
	// hard and buggy tie at 2: first appearance wins.
	if got[1].Tag != "hard" || got[2].Tag != "buggy" {
		t.Fatalf("tie-break should follow first appearance, got %+v", got)
	}
	if got[3].Tag != "cozy" || got[3].Count != 1 {
		t.Fatalf("unexpected last tag: %+v", got[3])
	}

	// Truncation.
	if got := TopTags(reviews, 2); len(got) != 2 {
		t.Fatalf("limit 2 should truncate, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	reviews := []models.ReviewRecord{
		{Rating: 5, Recommended: true, PlaytimeHours: 12, CreatedAt: time.Now(), Tags: []string{"fun"}},
		{Rating: 3, CreatedAt: time.Now()},
	}
	s := Summarize(reviews)
	if s.TotalReviews != 2 || s.AverageRating != 4 || s.RecommendationPercentage != 50 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if len(s.TopTags) != 1 || s.TopTags[0].Tag != "fun" {
		t.Fatalf("unexpected top tags: %v", s.TopTags)
	}
}
