package models

// AppointmentTime is the fixed time of day every appointment is booked at.
const AppointmentTime = "09:00"

// Appointment is a booked reservation. IDs are positive integers assigned as
// max(existing)+1 at reservation time.
type Appointment struct {
	ID            int
	PatientName   string
	CaregiverName string
	VaccineName   string
	Date          string
	Time          string
}
