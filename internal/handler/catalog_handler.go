package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"novacore/backend/internal/catalog"
	"novacore/backend/internal/models"
	"novacore/backend/internal/wishlist"
)

// region --- DTOs ---

// EditionResponse describes one purchasable edition of a game.
type EditionResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
}

// GameResponse is the API shape of a catalog record.
type GameResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	TitleAlt        string            `json:"title_alt,omitempty"`
	Developer       string            `json:"developer"`
	Publisher       string            `json:"publisher"`
	Price           float64           `json:"price"`
	OriginalPrice   float64           `json:"original_price,omitempty"`
	DiscountPercent float64           `json:"discount_percent,omitempty"`
	Genres          []string          `json:"genres"`
	Tags            []string          `json:"tags"`
	Platforms       []string          `json:"platforms"`
	DRM             string            `json:"drm"`
	Rating          float64           `json:"rating"`
	ReviewCount     int               `json:"review_count"`
	ReleaseDate     time.Time         `json:"release_date"`
	CoverImage      string            `json:"cover_image"`
	Screenshots     []string          `json:"screenshots"`
	IsNewRelease    bool              `json:"is_new_release"`
	IsBestSeller    bool              `json:"is_best_seller"`
	IsOnSale        bool              `json:"is_on_sale"`
	IsEarlyAccess   bool              `json:"is_early_access"`
	IsWishlisted    bool              `json:"is_wishlisted"`
	Editions        []EditionResponse `json:"editions"`
}

func newGameResponse(game models.GameRecord, wishlisted func(string) bool) GameResponse {
	editions := make([]EditionResponse, 0, len(game.Editions))
	for _, e := range game.Editions {
		editions = append(editions, EditionResponse{
			ID:              e.ID,
			Name:            e.Name,
			Price:           e.Price,
			DiscountPercent: e.DiscountPercent,
		})
	}

	isWishlisted := false
	if wishlisted != nil {
		isWishlisted = wishlisted(game.ID)
	}

	return GameResponse{
		ID:              game.ID,
		Title:           game.Title,
		TitleAlt:        game.TitleAlt,
		Developer:       game.Developer,
		Publisher:       game.Publisher,
		Price:           game.Price,
		OriginalPrice:   game.OriginalPrice,
		DiscountPercent: game.DiscountPercent,
		Genres:          game.Genres,
		Tags:            game.Tags,
		Platforms:       game.Platforms,
		DRM:             game.DRM,
		Rating:          game.Rating,
		ReviewCount:     game.ReviewCount,
		ReleaseDate:     game.ReleaseDate,
		CoverImage:      game.CoverImage,
		Screenshots:     game.Screenshots,
		IsNewRelease:    game.IsNewRelease,
		IsBestSeller:    game.IsBestSeller,
		IsOnSale:        game.IsOnSale,
		IsEarlyAccess:   game.IsEarlyAccess,
		IsWishlisted:    isWishlisted,
		Editions:        editions,
	}
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// CatalogHandler serves the read-only catalog: browse, search, derived
// collections and recommendations. The catalog itself is injected and
// immutable.
type CatalogHandler struct {
	catalog   *catalog.Catalog
	wishlists *wishlist.Manager
}

// NewCatalogHandler wires a catalog handler.
func NewCatalogHandler(c *catalog.Catalog, wishlists *wishlist.Manager) *CatalogHandler {
	return &CatalogHandler{catalog: c, wishlists: wishlists}
}

// wishlistedCheck resolves the session's wishlist membership test, or nil when
// the request carries no session.
func (h *CatalogHandler) wishlistedCheck(c *gin.Context) func(string) bool {
	sid, ok := sessionID(c)
	if !ok {
		return nil
	}
	w := h.wishlists.ForSession(c.Request.Context(), sid)
	return w.Contains
}

// GetGames godoc
// @Summary      Browse the catalog
// @Description  Retrieves a paginated list of games with optional search, filters and sorting.
// @Tags         games
// @Produce      json
// @Param        q          query  string  false  "Search query (title, localized title, developer, tags, genres)"
// @Param        genre      query  string  false  "Genre token"
// @Param        platform   query  string  false  "Platform substring"
// @Param        tags       query  string  false  "Comma-separated tag tokens (all must match)"
// @Param        min_price  query  number  false  "Minimum price (inclusive)"
// @Param        max_price  query  number  false  "Maximum price (inclusive)"
// @Param        min_rating query  number  false  "Minimum rating"
// @Param        sort       query  string  false  "newest | oldest | price-low | price-high | rating | popularity | name-az | name-za"
// @Param        page       query  int     false  "Page number" default(1)
// @Param        limit      query  int     false  "Items per page" default(12)
// @Success      200 {object} PaginatedGameResponse
// @Router       /games [get]
func (h *CatalogHandler) GetGames(c *gin.Context) {
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(c, "limit", 12)
	if limit < 1 {
		limit = 12
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	query := catalog.Query{
		Search:    c.Query("q"),
		Genre:     c.Query("genre"),
		Platform:  c.Query("platform"),
		Tags:      splitCommaSeparated(c.Query("tags")),
		MinPrice:  queryFloat(c, "min_price"),
		MaxPrice:  queryFloat(c, "max_price"),
		MinRating: queryFloat(c, "min_rating"),
		Sort:      c.Query("sort"),
	}

	games := query.Apply(h.catalog.Games())
	h.respondGameList(c, games, page, limit)
}

// GetGameByID godoc
// @Summary      Get a single game
// @Description  Retrieves one catalog record, including its editions and wishlist status.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *CatalogHandler) GetGameByID(c *gin.Context) {
	game, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, newGameResponse(game, h.wishlistedCheck(c)))
}

// GetFeatured godoc
// @Summary      Get featured games
// @Description  Ranks flagged games by weighted score, backfilled by rating when too few are flagged.
// @Tags         games
// @Produce      json
// @Param        count query int false "Number of games" default(6)
// @Success      200 {array} GameResponse
// @Router       /games/featured [get]
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	count := queryInt(c, "count", 6)
	h.respondGames(c, catalog.Featured(h.catalog.Games(), count))
}

// GetDiscounted godoc
// @Summary      Get discounted games
// @Tags         games
// @Produce      json
// @Success      200 {array} GameResponse
// @Router       /games/discounted [get]
func (h *CatalogHandler) GetDiscounted(c *gin.Context) {
	h.respondGames(c, catalog.Discounted(h.catalog.Games()))
}

// GetBestSellers godoc
// @Summary      Get best sellers
// @Tags         games
// @Produce      json
// @Success      200 {array} GameResponse
// @Router       /games/bestsellers [get]
func (h *CatalogHandler) GetBestSellers(c *gin.Context) {
	h.respondGames(c, catalog.BestSellers(h.catalog.Games()))
}

// GetNewReleases godoc
// @Summary      Get new releases
// @Tags         games
// @Produce      json
// @Success      200 {array} GameResponse
// @Router       /games/new-releases [get]
func (h *CatalogHandler) GetNewReleases(c *gin.Context) {
	h.respondGames(c, catalog.NewReleases(h.catalog.Games()))
}

// GetRecommendations godoc
// @Summary      Get recommended games
// @Description  Picks up to 70% of the requested count from preferred genres (by weighted score), filling the rest from other well-rated games.
// @Tags         games
// @Produce      json
// @Param        genres     query string false "Comma-separated preferred genres"
// @Param        min_rating query number false "Eligibility threshold" default(4.0)
// @Param        exclude    query string false "Comma-separated game IDs to skip"
// @Param        count      query int    false "Number of games" default(10)
// @Success      200 {array} GameResponse
// @Router       /games/recommendations [get]
func (h *CatalogHandler) GetRecommendations(c *gin.Context) {
	minRating := 4.0
	if c.Query("min_rating") != "" {
		minRating = queryFloat(c, "min_rating")
	}

	games := catalog.Recommend(h.catalog.Games(), catalog.RecommendOptions{
		Genres:     splitCommaSeparated(c.Query("genres")),
		MinRating:  minRating,
		ExcludeIDs: splitCommaSeparated(c.Query("exclude")),
		Count:      queryInt(c, "count", 10),
	})
	h.respondGames(c, games)
}

func (h *CatalogHandler) respondGames(c *gin.Context, games []models.GameRecord) {
	wishlisted := h.wishlistedCheck(c)
	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game, wishlisted))
	}
	c.JSON(http.StatusOK, response)
}

func (h *CatalogHandler) respondGameList(c *gin.Context, games []models.GameRecord, page, limit int) {
	wishlisted := h.wishlistedCheck(c)
	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game, wishlisted))
	}
	c.JSON(http.StatusOK, PaginateSlice(response, page, limit))
}
