package store

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sbo-seals/oilseal-api/models"
)

// reviewRow is the persisted shape of a customer rating submission. Rows are
// immutable once inserted.
type reviewRow struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	CreatedAt      time.Time
	ProductRating  int    `gorm:"not null"`
	DeliveryRating int    `gorm:"not null"`
	ResponseRating int    `gorm:"not null"`
	Name           string `gorm:"not null"`
	Email          *string
	Phone          *string
	Comment        *string `gorm:"type:text"`
}

// TableName specifies the table name for the review row
func (reviewRow) TableName() string {
	return "reviews"
}

func (r *reviewRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func reviewFromRow(r reviewRow) models.Review {
	rev := models.Review{
		ID:             r.ID,
		CreatedAt:      r.CreatedAt,
		ProductRating:  r.ProductRating,
		DeliveryRating: r.DeliveryRating,
		ResponseRating: r.ResponseRating,
		Name:           r.Name,
	}
	if r.Email != nil {
		rev.Email = *r.Email
	}
	if r.Phone != nil {
		rev.Phone = *r.Phone
	}
	if r.Comment != nil {
		rev.Comment = *r.Comment
	}
	return rev
}

func reviewToRow(rev models.Review) reviewRow {
	r := reviewRow{
		ID:             rev.ID,
		CreatedAt:      rev.CreatedAt,
		ProductRating:  rev.ProductRating,
		DeliveryRating: rev.DeliveryRating,
		ResponseRating: rev.ResponseRating,
		Name:           rev.Name,
	}
	if rev.Email != "" {
		r.Email = &rev.Email
	}
	if rev.Phone != "" {
		r.Phone = &rev.Phone
	}
	if rev.Comment != "" {
		r.Comment = &rev.Comment
	}
	return r
}

// ReviewDBStore persists reviews in the hosted relational store. There is no
// fallback: without a configured database every method fails.
type ReviewDBStore struct {
	db *gorm.DB
}

// NewReviewDBStore returns a review adapter over db.
func NewReviewDBStore(db *gorm.DB) *ReviewDBStore {
	return &ReviewDBStore{db: db}
}

// AddReview inserts a new review with a server-assigned identifier and
// creation timestamp.
func (s *ReviewDBStore) AddReview(in models.ReviewInput) (*models.Review, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	row := reviewToRow(models.Review{
		ProductRating:  in.ProductRating,
		DeliveryRating: in.DeliveryRating,
		ResponseRating: in.ResponseRating,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Comment:        in.Comment,
	})
	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	rev := reviewFromRow(row)
	return &rev, nil
}

// ListReviews returns reviews most-recent-first. A zero limit means
// unbounded.
func (s *ReviewDBStore) ListReviews(limit, offset int) ([]models.Review, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	q := s.db.Model(&reviewRow{}).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var rows []reviewRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	reviews := make([]models.Review, 0, len(rows))
	for _, r := range rows {
		reviews = append(reviews, reviewFromRow(r))
	}
	return reviews, nil
}

// ReviewStats recomputes aggregate statistics from every stored review. The
// distribution buckets each review by the rounded mean of its three ratings.
func (s *ReviewDBStore) ReviewStats() (*models.ReviewStats, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	var rows []reviewRow
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load reviews for stats: %w", err)
	}

	stats := &models.ReviewStats{
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(rows) == 0 {
		return stats, nil
	}

	var productSum, deliverySum, responseSum int
	for _, r := range rows {
		productSum += r.ProductRating
		deliverySum += r.DeliveryRating
		responseSum += r.ResponseRating

		perReview := float64(r.ProductRating+r.DeliveryRating+r.ResponseRating) / 3
		stats.RatingDistribution[int(math.Round(perReview))]++
	}

	total := len(rows)
	avgProduct := float64(productSum) / float64(total)
	avgDelivery := float64(deliverySum) / float64(total)
	avgResponse := float64(responseSum) / float64(total)

	stats.TotalReviews = total
	stats.AverageProductRating = round2(avgProduct)
	stats.AverageDeliveryRating = round2(avgDelivery)
	stats.AverageResponseRating = round2(avgResponse)
	stats.OverallRating = round2((avgProduct + avgDelivery + avgResponse) / 3)
	return stats, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
