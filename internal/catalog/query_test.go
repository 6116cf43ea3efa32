package catalog

import (
	"strings"
	"testing"
	"time"

	"novacore/backend/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtureGames() []models.GameRecord {
	return []models.GameRecord{
		{
			ID: "g1", Title: "Alpha Station", TitleAlt: "アルファ", Developer: "Redline",
			Price: 19.99, Genres: []string{"Action", "Shooter"}, Tags: []string{"Sci-Fi", "Co-op"},
			Platforms: []string{"Windows", "Linux"}, Rating: 4.5, ReviewCount: 100,
			ReleaseDate: date("2024-01-10"), IsBestSeller: true,
		},
		{
			ID: "g2", Title: "Beta Garden", Developer: "Sprout Labs",
			Price: 19.99, Genres: []string{"Simulation"}, Tags: []string{"Cozy", "Farming"},
			Platforms: []string{"Windows", "macOS"}, Rating: 4.9, ReviewCount: 250,
			ReleaseDate: date("2023-05-02"),
		},
		{
			ID: "g3", Title: "Gamma Depths", Developer: "Redline",
			Price: 39.99, OriginalPrice: 49.99, DiscountPercent: 20,
			Genres: []string{"Action", "Horror"}, Tags: []string{"Atmospheric"},
			Platforms: []string{"Windows"}, Rating: 3.8, ReviewCount: 40,
			ReleaseDate: date("2025-02-20"), IsOnSale: true, IsNewRelease: true,
		},
		{
			ID: "g4", Title: "Delta Skies", Developer: "Cloudworks",
			Price: 9.99, Genres: []string{"Adventure"}, Tags: []string{"Relaxing", "Flight"},
			Platforms: []string{"Linux"}, Rating: 4.2, ReviewCount: 500,
			ReleaseDate: date("2022-09-01"),
		},
	}
}

func ids(games []models.GameRecord) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}

func wantIDs(t *testing.T, games []models.GameRecord, want ...string) {
	t.Helper()
	got := ids(games)
	if len(got) != len(want) {
		t.Fatalf("want ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want ids %v, got %v", want, got)
		}
	}
}

func TestSearch_MatchesAnyField(t *testing.T) {
	games := fixtureGames()

	// Developer match, case-insensitive.
	wantIDs(t, Search(games, "redline"), "g1", "g3")
	// Localized title match.
	wantIDs(t, Search(games, "アルファ"), "g1")
	// Tag substring match.
	wantIDs(t, Search(games, "farm"), "g2")
	// Genre substring match.
	wantIDs(t, Search(games, "horror"), "g3")
	// No match.
	wantIDs(t, Search(games, "zzz"))
}

func TestSearch_IsSupersetFilter(t *testing.T) {
	games := fixtureGames()
	q := "a"
	for _, g := range Search(games, q) {
		fields := append([]string{g.Title, g.TitleAlt, g.Developer}, append(g.Tags, g.Genres...)...)
		found := false
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("game %s returned without matching field", g.ID)
		}
	}
}

func TestSearch_EmptyQueryIdentity(t *testing.T) {
	games := fixtureGames()
	wantIDs(t, Search(games, ""), "g1", "g2", "g3", "g4")
	wantIDs(t, Search(games, "   "), "g1", "g2", "g3", "g4")
}

func TestFilterByGenre_TokenNotSubstring(t *testing.T) {
	games := fixtureGames()
	wantIDs(t, FilterByGenre(games, "action"), "g1", "g3")
	// "Act" is not a genre token, only a substring.
	wantIDs(t, FilterByGenre(games, "Act"))
	// Blank genre is a no-op.
	wantIDs(t, FilterByGenre(games, ""), "g1", "g2", "g3", "g4")
}

func TestFilterByPriceRange_InclusiveBounds(t *testing.T) {
	games := fixtureGames()
	wantIDs(t, FilterByPriceRange(games, 9.99, 19.99), "g1", "g2", "g4")
	// Negative min is clamped.
	wantIDs(t, FilterByPriceRange(games, -5, 10), "g4")
	// max below min degrades to no filter.
	wantIDs(t, FilterByPriceRange(games, 50, 10), "g1", "g2", "g3", "g4")
}

func TestFilterByPlatform_Substring(t *testing.T) {
	games := fixtureGames()
	wantIDs(t, FilterByPlatform(games, "linux"), "g1", "g4")
	wantIDs(t, FilterByPlatform(games, "mac"), "g2")
}

func TestFilterByMinRating(t *testing.T) {
	games := fixtureGames()
	wantIDs(t, FilterByMinRating(games, 4.5), "g1", "g2")
	wantIDs(t, FilterByMinRating(games, 0), "g1", "g2", "g3", "g4")
}

func TestFilterByTags_AllMustMatch(t *testing.T) {
	games := fixtureGames()
	wantIDs(t, FilterByTags(games, []string{"cozy"}), "g2")
	wantIDs(t, FilterByTags(games, []string{"cozy", "farming"}), "g2")
	wantIDs(t, FilterByTags(games, []string{"cozy", "sci-fi"}))
	wantIDs(t, FilterByTags(games, nil), "g1", "g2", "g3", "g4")
}

func TestSortBy(t *testing.T) {
	games := fixtureGames()

	wantIDs(t, SortBy(games, SortNewest), "g3", "g1", "g2", "g4")
	wantIDs(t, SortBy(games, SortOldest), "g4", "g2", "g1", "g3")
	wantIDs(t, SortBy(games, SortPriceHigh), "g3", "g1", "g2", "g4")
	wantIDs(t, SortBy(games, SortRating), "g2", "g1", "g4", "g3")
	wantIDs(t, SortBy(games, SortPopularity), "g4", "g2", "g1", "g3")
	wantIDs(t, SortBy(games, SortNameAZ), "g1", "g2", "g4", "g3")
	wantIDs(t, SortBy(games, SortNameZA), "g3", "g4", "g2", "g1")

	// Unknown keys and "relevance" preserve input order.
	wantIDs(t, SortBy(games, "relevance"), "g1", "g2", "g3", "g4")
	wantIDs(t, SortBy(games, "bogus"), "g1", "g2", "g3", "g4")
}

func TestSortBy_StableOnEqualKeys(t *testing.T) {
	games := fixtureGames()
	// g1 and g2 share the same price; their relative order must survive.
	sorted := SortBy(games, SortPriceLow)
	wantIDs(t, sorted, "g4", "g1", "g2", "g3")
}

func TestSortBy_DoesNotMutateInput(t *testing.T) {
	games := fixtureGames()
	SortBy(games, SortPriceHigh)
	wantIDs(t, games, "g1", "g2", "g3", "g4")
}

func TestDerivedCollections(t *testing.T) {
	games := fixtureGames()
	wantIDs(t, Discounted(games), "g3")
	wantIDs(t, BestSellers(games), "g1")
	wantIDs(t, NewReleases(games), "g3")
}

func TestFeaturedScore_Weights(t *testing.T) {
	a := models.GameRecord{Rating: 4.5, IsBestSeller: true}
	b := models.GameRecord{Rating: 4.9}
	if got := FeaturedScore(a); got != 50 {
		t.Fatalf("score(a) = %v, want 50", got)
	}
	if got := FeaturedScore(b); got != 49 {
		t.Fatalf("score(b) = %v, want 49", got)
	}
}

func TestFeatured_OrdersByScoreAndBackfills(t *testing.T) {
	games := []models.GameRecord{
		{ID: "plain", Rating: 4.9},
		{ID: "seller", Rating: 4.5, IsBestSeller: true},
		{ID: "filler", Rating: 4.0},
	}

	// The flagged game outranks the higher-rated unflagged one (50 vs 49).
	wantIDs(t, Featured(games, 1), "seller")

	// Too few flagged games: backfill with the highest-rated remainder.
	wantIDs(t, Featured(games, 2), "seller", "plain")
	wantIDs(t, Featured(games, 10), "seller", "plain", "filler")
}

func TestRecommend_PrefersMatchingGenres(t *testing.T) {
	games := []models.GameRecord{
		{ID: "rpg1", Genres: []string{"RPG"}, Rating: 4.5},
		{ID: "rpg2", Genres: []string{"RPG"}, Rating: 4.2},
		{ID: "sim1", Genres: []string{"Simulation"}, Rating: 4.8},
		{ID: "sim2", Genres: []string{"Simulation"}, Rating: 4.6},
		{ID: "low", Genres: []string{"RPG"}, Rating: 3.0},
		{ID: "owned", Genres: []string{"RPG"}, Rating: 5.0},
	}

	got := Recommend(games, RecommendOptions{
		Genres:     []string{"rpg"},
		MinRating:  4.0,
		ExcludeIDs: []string{"owned"},
		Count:      4,
	})

	// 70% of 4 rounds down to 2 from the matching group, then the rest.
	wantIDs(t, got, "rpg1", "rpg2", "sim1", "sim2")
}

func TestRecommend_TopsUpFromMatchingWhenOthersRunOut(t *testing.T) {
	games := []models.GameRecord{
		{ID: "rpg1", Genres: []string{"RPG"}, Rating: 4.5},
		{ID: "rpg2", Genres: []string{"RPG"}, Rating: 4.4},
		{ID: "rpg3", Genres: []string{"RPG"}, Rating: 4.3},
	}

	got := Recommend(games, RecommendOptions{Genres: []string{"RPG"}, MinRating: 4.0, Count: 3})
	wantIDs(t, got, "rpg1", "rpg2", "rpg3")
}

func TestQueryApply_CompositionOrder(t *testing.T) {
	games := fixtureGames()
	q := Query{
		Search:    "a",
		Genre:     "Action",
		MinRating: 4.0,
		Platform:  "windows",
		Sort:      SortPriceLow,
	}
	wantIDs(t, q.Apply(games), "g1")

	// Input untouched.
	wantIDs(t, games, "g1", "g2", "g3", "g4")
}

func TestLoad_EmbeddedSeed(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cat.Len() == 0 {
		t.Fatal("catalog is empty")
	}

	for _, g := range cat.Games() {
		if g.DRM == "" {
			t.Fatalf("game %s has no DRM default", g.ID)
		}
		if len(g.Editions) == 0 {
			t.Fatalf("game %s has no editions", g.ID)
		}
		if g.DiscountPercent > 0 && g.Price >= g.OriginalPrice {
			t.Fatalf("game %s violates the discount invariant", g.ID)
		}
	}

	if _, ok := cat.Get("starfall-vanguard"); !ok {
		t.Fatal("expected seeded game missing")
	}
	if _, ok := cat.Get("nope"); ok {
		t.Fatal("unknown id should not resolve")
	}
}
