package cli

import (
	"context"
	"strconv"
	"time"
)

// validDate reports whether s is a well-formed YYYY-MM-DD date.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func (a *App) searchCaregiverSchedule(ctx context.Context, tokens []string) {
	if !a.loggedIn() {
		a.println("Please login first")
		return
	}
	if len(tokens) != 2 || !validDate(tokens[1]) {
		a.println("Please try again")
		return
	}
	date := tokens[1]

	caregivers, stock, err := a.schedule.Search(ctx, date)
	if err != nil {
		a.log.Debug(ctx, "schedule search failed", "date", date, "error", err)
		a.println("Please try again")
		return
	}

	a.println("Caregivers:")
	for _, username := range caregivers {
		a.println(username)
	}
	if len(caregivers) == 0 {
		a.println("No caregivers available")
	}

	a.println("Vaccines:")
	for _, v := range stock {
		a.printf("%s %d\n", v.Name, v.Doses)
	}
	if len(stock) == 0 {
		a.println("No vaccines available")
	}
}

func (a *App) uploadAvailability(ctx context.Context, tokens []string) {
	if a.currentCaregiver == "" {
		a.println("Please login as a caregiver first!")
		return
	}
	if len(tokens) != 2 {
		a.println("Please try again!")
		return
	}
	date := tokens[1]
	if !validDate(date) {
		a.println("Please enter a valid date!")
		return
	}

	if err := a.schedule.UploadAvailability(ctx, a.currentCaregiver, date); err != nil {
		a.log.Debug(ctx, "upload availability failed", "date", date, "error", err)
		a.println("Error occurred when uploading availability")
		return
	}
	a.println("Availability uploaded!")
}

func (a *App) addDoses(ctx context.Context, tokens []string) {
	if a.currentCaregiver == "" {
		a.println("Please login as a caregiver first!")
		return
	}
	if len(tokens) != 3 {
		a.println("Please try again!")
		return
	}
	name := tokens[1]
	count, err := strconv.Atoi(tokens[2])
	if err != nil || count <= 0 {
		a.println("Please try again!")
		return
	}

	if err := a.schedule.AddDoses(ctx, name, count); err != nil {
		a.log.Debug(ctx, "add doses failed", "vaccine", name, "error", err)
		a.println("Error occurred when adding doses")
		return
	}
	a.println("Doses updated!")
}
