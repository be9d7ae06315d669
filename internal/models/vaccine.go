package models

// Vaccine is a per-name dose inventory. Doses never goes below zero.
type Vaccine struct {
	Name  string
	Doses int
}
