package model

import "time"

const (
	TestimonialStatusPending  = "pending"
	TestimonialStatusApproved = "approved"

	DefaultTestimonialRating = 5
)

type Testimonial struct {
	Base      `bson:",inline"`
	Name      string    `bson:"name" json:"name"`
	Role      string    `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	Rating    int       `bson:"rating" json:"rating"`
	Avatar    string    `bson:"avatar" json:"avatar"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
