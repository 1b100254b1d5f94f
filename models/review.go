package models

import "time"

// Review is a customer rating submission. Reviews are immutable once created.
type Review struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	ProductRating  int       `json:"productRating"`
	DeliveryRating int       `json:"deliveryRating"`
	ResponseRating int       `json:"responseRating"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Comment        string    `json:"comment,omitempty"`
}

// ReviewInput is the request body for POST /api/reviews. A review must carry
// at least one contact channel (email or phone); that cross-field rule is
// checked in the handler after binding succeeds.
type ReviewInput struct {
	ProductRating  int    `json:"productRating" binding:"gte=1,lte=5"`
	DeliveryRating int    `json:"deliveryRating" binding:"gte=1,lte=5"`
	ResponseRating int    `json:"responseRating" binding:"gte=1,lte=5"`
	Name           string `json:"name" binding:"required,min=1"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Comment        string `json:"comment"`
}

// ReviewStats is derived from all reviews on every request; nothing is
// maintained incrementally. Distribution buckets a review by the rounded mean
// of its three ratings.
type ReviewStats struct {
	TotalReviews          int         `json:"totalReviews"`
	AverageProductRating  float64     `json:"averageProductRating"`
	AverageDeliveryRating float64     `json:"averageDeliveryRating"`
	AverageResponseRating float64     `json:"averageResponseRating"`
	OverallRating         float64     `json:"overallRating"`
	RatingDistribution    map[int]int `json:"ratingDistribution"`
}
