package domain

// ServiceListing is read-only reference data shown on the public site.
type ServiceListing struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

// Review is read-only customer feedback reference data.
type Review struct {
	ID           string
	ReviewerName string
	Rating       int
	Comment      string
}
