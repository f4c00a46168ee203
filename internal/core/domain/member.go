package domain

// Member is one user of a campaign audience as resolved by the segment
// directory.
type Member struct {
	UserID         string
	Email          string
	OrganizationID *int64
}
