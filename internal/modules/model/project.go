package model

import "time"

// Observed project statuses. The field itself is free text.
const (
	ProjectStatusActive    = "Active Portfolio"
	ProjectStatusCompleted = "Completed"
	ProjectStatusOngoing   = "Ongoing"
)

type ProjectStat struct {
	Label string `bson:"label" json:"label" yaml:"label"`
	Value string `bson:"value" json:"value" yaml:"value"`
}

type Project struct {
	Base        `bson:",inline" yaml:",inline"`
	Slug        string        `bson:"slug" json:"slug" yaml:"slug"`
	Title       string        `bson:"title" json:"title" yaml:"title"`
	Category    string        `bson:"category" json:"category" yaml:"category"`
	Stats       []ProjectStat `bson:"stats" json:"stats" yaml:"stats"`
	Image       string        `bson:"image" json:"image" yaml:"image"`
	Gallery     []string      `bson:"gallery" json:"gallery" yaml:"gallery"`
	Status      string        `bson:"status" json:"status" yaml:"status"`
	Location    string        `bson:"location" json:"location" yaml:"location"`
	Description string        `bson:"description" json:"description" yaml:"description"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt" yaml:"-"`
}
