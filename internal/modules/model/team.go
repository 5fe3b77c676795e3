package model

import "time"

type TeamMember struct {
	Base        `bson:",inline"`
	Name        string    `bson:"name" json:"name"`
	Designation string    `bson:"designation" json:"designation"`
	Image       string    `bson:"image" json:"image"`
	Bio         string    `bson:"bio" json:"bio"`
	LinkedIn    string    `bson:"linkedin" json:"linkedin"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
