package model

import "time"

const InquiryStatusUnread = "unread"

// Inquiry is a contact-form submission.
type Inquiry struct {
	Base      `bson:",inline"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone" json:"phone"`
	Sector    string    `bson:"sector,omitempty" json:"sector,omitempty"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
