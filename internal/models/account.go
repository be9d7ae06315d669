// Package models holds the persisted entities of the scheduler.
package models

// Role distinguishes the two disjoint account kinds.
type Role string

const (
	RolePatient   Role = "patient"
	RoleCaregiver Role = "caregiver"
)

// Account is a credential record for a patient or a caregiver. The role is
// carried by the table the record lives in, not by the record itself.
// Accounts are created once and never mutated.
type Account struct {
	Username string
	Salt     []byte
	Hash     []byte
}
