package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sbo-seals/oilseal-api/models"
	"github.com/sbo-seals/oilseal-api/store"
)

// ReviewController serves the public review endpoints.
type ReviewController struct {
	store *store.ReviewDBStore
	log   *slog.Logger
}

// NewReviewController returns a controller over the given review store.
func NewReviewController(s *store.ReviewDBStore, log *slog.Logger) *ReviewController {
	if log == nil {
		log = slog.Default()
	}
	return &ReviewController{store: s, log: log}
}

// Create handles POST /api/reviews
func (ctl *ReviewController) Create(c *gin.Context) {
	var in models.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid input",
			"details": ValidationDetails(err),
		})
		return
	}

	// Cross-field rule: a review must carry at least one contact channel.
	if in.Email == "" && in.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Either email or phone must be provided",
		})
		return
	}

	review, err := ctl.store.AddReview(in)
	if err != nil {
		ctl.log.Error("failed to add review", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// List handles GET /api/reviews
func (ctl *ReviewController) List(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		return
	}

	reviews, err := ctl.store.ListReviews(limit, offset)
	if err != nil {
		ctl.log.Error("failed to list reviews", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	c.JSON(http.StatusOK, reviews)
}

// Stats handles GET /api/reviews/stats
func (ctl *ReviewController) Stats(c *gin.Context) {
	stats, err := ctl.store.ReviewStats()
	if err != nil {
		ctl.log.Error("failed to compute review stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get review stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// queryInt parses an optional non-negative integer query parameter, answering
// a 400 itself when the value is malformed.
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a non-negative integer"})
		return 0, false
	}
	return n, true
}
