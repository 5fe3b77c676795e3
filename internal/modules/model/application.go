package model

import "time"

const ApplicationStatusPending = "pending"

// Application is a career application submitted from the public site.
type Application struct {
	Base      `bson:",inline"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Position  string    `bson:"position" json:"position"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Status    string    `bson:"status" json:"status"`
	AppliedAt time.Time `bson:"appliedAt" json:"appliedAt"`
}
