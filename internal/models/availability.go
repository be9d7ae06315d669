package models

// Availability is an open slot a caregiver has offered for a date.
// Duplicate slots for the same caregiver and date are allowed.
type Availability struct {
	Username string
	Date     string
}
