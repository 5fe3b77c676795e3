package model

// Collection names in the document store.
const (
	CollectionProjects     = "projects"
	CollectionTeam         = "team"
	CollectionTestimonials = "testimonials"
	CollectionApplications = "applications"
	CollectionInquiries    = "inquiries"
	CollectionSettings     = "settings"
)

// Base carries the store-assigned identifier. It is never written back to the store.
type Base struct {
	ID string `bson:"-" json:"id"`
}

func (b *Base) SetID(id string) { b.ID = id }
