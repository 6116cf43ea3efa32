package catalog

import (
	"sort"
	"strings"

	"novacore/backend/internal/models"
)

// Supported sort keys. Anything else (including "relevance") leaves the input
// order untouched.
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortRating     = "rating"
	SortPopularity = "popularity"
	SortNameAZ     = "name-az"
	SortNameZA     = "name-za"
)

func clone(games []models.GameRecord) []models.GameRecord {
	return append([]models.GameRecord(nil), games...)
}

// Search returns the records whose title, localized title, developer, tags or
// genres contain the query as a case-insensitive substring. A blank query
// returns the full input unfiltered.
func Search(games []models.GameRecord, query string) []models.GameRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clone(games)
	}

	out := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		if matchesQuery(g, q) {
			out = append(out, g)
		}
	}
	return out
}

func matchesQuery(g models.GameRecord, q string) bool {
	if strings.Contains(strings.ToLower(g.Title), q) ||
		strings.Contains(strings.ToLower(g.TitleAlt), q) ||
		strings.Contains(strings.ToLower(g.Developer), q) {
		return true
	}
	for _, tag := range g.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, genre := range g.Genres {
		if strings.Contains(strings.ToLower(genre), q) {
			return true
		}
	}
	return false
}

// FilterByGenre retains records whose genre list contains the given genre as a
// case-insensitive exact token. A blank genre is a no-op.
func FilterByGenre(games []models.GameRecord, genre string) []models.GameRecord {
	g := strings.ToLower(strings.TrimSpace(genre))
	if g == "" {
		return clone(games)
	}

	out := make([]models.GameRecord, 0, len(games))
	for _, game := range games {
		for _, have := range game.Genres {
			if strings.ToLower(have) == g {
				out = append(out, game)
				break
			}
		}
	}
	return out
}

// FilterByPriceRange retains records with min <= price <= max, both bounds
// inclusive. Malformed bounds (negative min is clamped, max below min) degrade
// to no filter.
func FilterByPriceRange(games []models.GameRecord, min, max float64) []models.GameRecord {
	if min < 0 {
		min = 0
	}
	if max < min {
		return clone(games)
	}

	out := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		if g.Price >= min && g.Price <= max {
			out = append(out, g)
		}
	}
	return out
}

// FilterByPlatform retains records with a case-insensitive substring match of
// platform against any platform entry. A blank platform is a no-op.
func FilterByPlatform(games []models.GameRecord, platform string) []models.GameRecord {
	p := strings.ToLower(strings.TrimSpace(platform))
	if p == "" {
		return clone(games)
	}

	out := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		for _, have := range g.Platforms {
			if strings.Contains(strings.ToLower(have), p) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

// FilterByMinRating retains records rated at or above the threshold.
func FilterByMinRating(games []models.GameRecord, threshold float64) []models.GameRecord {
	if threshold <= 0 {
		return clone(games)
	}

	out := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		if g.Rating >= threshold {
			out = append(out, g)
		}
	}
	return out
}

// FilterByTags retains records carrying every requested tag (case-insensitive
// exact token). An empty selection is a no-op.
func FilterByTags(games []models.GameRecord, tags []string) []models.GameRecord {
	wanted := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			wanted = append(wanted, t)
		}
	}
	if len(wanted) == 0 {
		return clone(games)
	}

	out := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		if hasAllTags(g, wanted) {
			out = append(out, g)
		}
	}
	return out
}

func hasAllTags(g models.GameRecord, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, have := range g.Tags {
			if strings.ToLower(have) == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SortBy returns a sorted copy of games. The sort is stable: records comparing
// equal keep their relative input order. Unknown keys return the input order.
func SortBy(games []models.GameRecord, key string) []models.GameRecord {
	out := clone(games)

	var less func(a, b models.GameRecord) bool
	switch key {
	case SortNewest:
		less = func(a, b models.GameRecord) bool { return a.ReleaseDate.After(b.ReleaseDate) }
	case SortOldest:
		less = func(a, b models.GameRecord) bool { return a.ReleaseDate.Before(b.ReleaseDate) }
	case SortPriceLow:
		less = func(a, b models.GameRecord) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b models.GameRecord) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b models.GameRecord) bool { return a.Rating > b.Rating }
	case SortPopularity:
		less = func(a, b models.GameRecord) bool { return a.ReviewCount > b.ReviewCount }
	case SortNameAZ:
		less = func(a, b models.GameRecord) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case SortNameZA:
		less = func(a, b models.GameRecord) bool { return strings.ToLower(a.Title) > strings.ToLower(b.Title) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Discounted returns the records currently on sale with an actual discount.
func Discounted(games []models.GameRecord) []models.GameRecord {
	out := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		if g.IsOnSale && g.DiscountPercent > 0 {
			out = append(out, g)
		}
	}
	return out
}

// BestSellers returns the records flagged as best sellers.
func BestSellers(games []models.GameRecord) []models.GameRecord {
	out := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		if g.IsBestSeller {
			out = append(out, g)
		}
	}
	return out
}

// NewReleases returns the records flagged as new releases.
func NewReleases(games []models.GameRecord) []models.GameRecord {
	out := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		if g.IsNewRelease {
			out = append(out, g)
		}
	}
	return out
}

// FeaturedScore is the composite ranking value used for featured and
// recommended ordering: rating*10 plus flag bonuses.
func FeaturedScore(g models.GameRecord) float64 {
	score := g.Rating * 10
	if g.IsBestSeller {
		score += 5
	}
	if g.IsNewRelease {
		score += 3
	}
	return score
}

// Featured ranks best-seller/new-release records by FeaturedScore descending
// and truncates to count. When fewer flagged records exist than requested, the
// remainder is backfilled with the highest-rated of the other records.
func Featured(games []models.GameRecord, count int) []models.GameRecord {
	if count <= 0 {
		return []models.GameRecord{}
	}

	primary := make([]models.GameRecord, 0, len(games))
	rest := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		if g.IsBestSeller || g.IsNewRelease {
			primary = append(primary, g)
		} else {
			rest = append(rest, g)
		}
	}

	sort.SliceStable(primary, func(i, j int) bool {
		return FeaturedScore(primary[i]) > FeaturedScore(primary[j])
	})
	if len(primary) >= count {
		return primary[:count]
	}

	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Rating > rest[j].Rating })
	need := count - len(primary)
	if need > len(rest) {
		need = len(rest)
	}
	return append(primary, rest[:need]...)
}

// RecommendOptions configures Recommend.
type RecommendOptions struct {
	Genres     []string // preferred genres, matched case-insensitively
	MinRating  float64  // eligibility threshold
	ExcludeIDs []string // games the caller already owns or dismissed
	Count      int
}

// Recommend partitions eligible records into genre-matching and non-matching
// groups, both ordered by FeaturedScore descending. Up to 70% of the requested
// count comes from the matching group; the remainder is filled from the rest.
func Recommend(games []models.GameRecord, opts RecommendOptions) []models.GameRecord {
	if opts.Count <= 0 {
		return []models.GameRecord{}
	}

	excluded := make(map[string]bool, len(opts.ExcludeIDs))
	for _, id := range opts.ExcludeIDs {
		excluded[id] = true
	}
	preferred := make(map[string]bool, len(opts.Genres))
	for _, g := range opts.Genres {
		if g = strings.ToLower(strings.TrimSpace(g)); g != "" {
			preferred[g] = true
		}
	}

	var matching, other []models.GameRecord
	for _, g := range games {
		if excluded[g.ID] || g.Rating < opts.MinRating {
			continue
		}
		if matchesGenres(g, preferred) {
			matching = append(matching, g)
		} else {
			other = append(other, g)
		}
	}

	byScore := func(s []models.GameRecord) {
		sort.SliceStable(s, func(i, j int) bool { return FeaturedScore(s[i]) > FeaturedScore(s[j]) })
	}
	byScore(matching)
	byScore(other)

	fromMatching := opts.Count * 7 / 10
	if fromMatching > len(matching) {
		fromMatching = len(matching)
	}
	out := append([]models.GameRecord{}, matching[:fromMatching]...)

	need := opts.Count - len(out)
	if need > len(other) {
		need = len(other)
	}
	out = append(out, other[:need]...)

	// If the non-matching pool ran dry, top back up from the matching group.
	if len(out) < opts.Count && fromMatching < len(matching) {
		extra := opts.Count - len(out)
		if extra > len(matching)-fromMatching {
			extra = len(matching) - fromMatching
		}
		out = append(out, matching[fromMatching:fromMatching+extra]...)
	}
	return out
}

func matchesGenres(g models.GameRecord, preferred map[string]bool) bool {
	if len(preferred) == 0 {
		return false
	}
	for _, genre := range g.Genres {
		if preferred[strings.ToLower(genre)] {
			return true
		}
	}
	return false
}

// Query bundles one browse request. Apply runs the stages in the fixed
// composition order search -> genre -> price -> rating -> platform -> tags ->
// sort, each stage consuming the previous stage's output.
type Query struct {
	Search    string
	Genre     string
	MinPrice  float64
	MaxPrice  float64 // 0 means unbounded
	MinRating float64
	Platform  string
	Tags      []string
	Sort      string
}

// Apply evaluates the query against the given records without mutating them.
func (q Query) Apply(games []models.GameRecord) []models.GameRecord {
	out := Search(games, q.Search)
	out = FilterByGenre(out, q.Genre)
	if q.MinPrice > 0 || q.MaxPrice > 0 {
		max := q.MaxPrice
		if max <= 0 {
			max = maxPrice(out)
		}
		out = FilterByPriceRange(out, q.MinPrice, max)
	}
	out = FilterByMinRating(out, q.MinRating)
	out = FilterByPlatform(out, q.Platform)
	out = FilterByTags(out, q.Tags)
	return SortBy(out, q.Sort)
}

func maxPrice(games []models.GameRecord) float64 {
	var max float64
	for _, g := range games {
		if g.Price > max {
			max = g.Price
		}
	}
	return max
}
