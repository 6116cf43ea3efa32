package reviews

import (
	"sort"
	"time"

	"novacore/backend/internal/models"
)

// DefaultTrendWindowDays is the lookback used for the recent rating trend.
const DefaultTrendWindowDays = 30

// All aggregation functions in this file are pure and total: they accept an
// empty review list and return zero/empty defaults, and never modify their
// input.

// AverageRating is the arithmetic mean of the ratings, 0 for no reviews.
func AverageRating(reviews []models.ReviewRecord) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// RecommendationPercentage is the share of reviews that recommend the game.
func RecommendationPercentage(reviews []models.ReviewRecord) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var recommended int
	for _, r := range reviews {
		if r.Recommended {
			recommended++
		}
	}
	return 100 * float64(recommended) / float64(len(reviews))
}

// RatingDistribution is the histogram of integer ratings. All five buckets are
// always present.
func RatingDistribution(reviews []models.ReviewRecord) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			dist[r.Rating]++
		}
	}
	return dist
}

// RecentTrend is the recent average rating minus the overall average, where
// "recent" means reviews created within the last windowDays days. When no
// review falls inside the window the recent average falls back to the overall
// average, so the trend is 0.
func RecentTrend(reviews []models.ReviewRecord, windowDays int) float64 {
	if len(reviews) == 0 {
		return 0
	}
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}

	overall := AverageRating(reviews)
	cutoff := time.Now().AddDate(0, 0, -windowDays)

	var sum, n int
	for _, r := range reviews {
		if r.CreatedAt.After(cutoff) {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum)/float64(n) - overall
}

// VerifiedPurchasePercentage is the share of reviews from verified purchases.
func VerifiedPurchasePercentage(reviews []models.ReviewRecord) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var verified int
	for _, r := range reviews {
		if r.PurchaseType == models.PurchaseTypeVerified {
			verified++
		}
	}
	return 100 * float64(verified) / float64(len(reviews))
}

// AveragePlaytime is the arithmetic mean of reviewers' playtime hours.
func AveragePlaytime(reviews []models.ReviewRecord) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.PlaytimeHours
	}
	return sum / float64(len(reviews))
}

// TagCount is one entry of the most-mentioned-tags ranking.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TopTags counts every tag across all reviews and returns the most frequent
// ones, at most limit. Ties are broken by first appearance order across the
// review list, which keeps the ranking deterministic.
func TopTags(reviews []models.ReviewRecord, limit int) []TagCount {
	if limit <= 0 {
		return []TagCount{}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, r := range reviews {
		for _, tag := range r.Tags {
			if _, seen := counts[tag]; !seen {
				firstSeen[tag] = order
				order++
			}
			counts[tag]++
		}
	}

	ranked := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		ranked = append(ranked, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Tag] < firstSeen[ranked[j].Tag]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Summary bundles every aggregate for one game's reviews.
type Summary struct {
	TotalReviews               int         `json:"total_reviews"`
	AverageRating              float64     `json:"average_rating"`
	RecommendationPercentage   float64     `json:"recommendation_percentage"`
	RatingDistribution         map[int]int `json:"rating_distribution"`
	RecentTrend                float64     `json:"recent_trend"`
	VerifiedPurchasePercentage float64     `json:"verified_purchase_percentage"`
	AveragePlaytime            float64     `json:"average_playtime"`
	TopTags                    []TagCount  `json:"top_tags"`
}

// Summarize computes the full summary with default parameters.
func Summarize(reviews []models.ReviewRecord) Summary {
	return Summary{
		TotalReviews:               len(reviews),
		AverageRating:              AverageRating(reviews),
		RecommendationPercentage:   RecommendationPercentage(reviews),
		RatingDistribution:         RatingDistribution(reviews),
		RecentTrend:                RecentTrend(reviews, DefaultTrendWindowDays),
		VerifiedPurchasePercentage: VerifiedPurchasePercentage(reviews),
		AveragePlaytime:            AveragePlaytime(reviews),
		TopTags:                    TopTags(reviews, 10),
	}
}
