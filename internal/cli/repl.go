package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

var banner = []string{
	"",
	"Welcome to the COVID-19 Vaccine Reservation Scheduling Application!",
	"*** Please enter one of the following commands ***",
	"> create_patient <username> <password>",
	"> create_caregiver <username> <password>",
	"> login_patient <username> <password>",
	"> login_caregiver <username> <password>",
	"> search_caregiver_schedule <date>",
	"> reserve <date> <vaccine>",
	"> upload_availability <date>",
	"> cancel <appointment_id>",
	"> add_doses <vaccine> <number>",
	"> show_appointments",
	"> logout",
	"> quit",
	"",
}

// Run prints the greeting banner and processes commands from the scanner
// until "quit" or EOF. Every handler prints exactly one result line (or a
// short listing) and never lets an error escape the loop.
func (a *App) Run(ctx context.Context, scanner *bufio.Scanner) {
	for _, line := range banner {
		a.println(line)
	}

	for {
		if a.prompt {
			fmt.Fprint(a.out, "> ")
		}
		if !scanner.Scan() {
			return
		}

		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		switch tokens[0] {
		case "create_patient":
			a.createPatient(ctx, tokens)
		case "create_caregiver":
			a.createCaregiver(ctx, tokens)
		case "login_patient":
			a.loginPatient(ctx, tokens)
		case "login_caregiver":
			a.loginCaregiver(ctx, tokens)
		case "search_caregiver_schedule":
			a.searchCaregiverSchedule(ctx, tokens)
		case "reserve":
			a.reserve(ctx, tokens)
		case "upload_availability":
			a.uploadAvailability(ctx, tokens)
		case "cancel":
			a.cancel(ctx, tokens)
		case "add_doses":
			a.addDoses(ctx, tokens)
		case "show_appointments":
			a.showAppointments(ctx, tokens)
		case "logout":
			a.logout(tokens)
		case "quit":
			a.println("Bye!")
			return
		default:
			a.println("Invalid operation name!")
		}
	}
}
