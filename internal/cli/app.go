// Package cli implements the interactive command loop of the scheduler:
// one line in, one handler dispatched, one result line out.
package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Zetpete/Vaccine-Scheduler/internal/logging"
	"github.com/Zetpete/Vaccine-Scheduler/internal/service"
)

// isTerminal is a test seam for terminal detection.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// App holds the services and the session state of the command loop.
// At most one of currentPatient and currentCaregiver is non-empty:
// only one user can be logged in at a time.
type App struct {
	accounts     service.Accounts
	schedule     service.Schedule
	appointments service.Appointments
	log          logging.Logger
	out          io.Writer

	currentPatient   string
	currentCaregiver string

	// prompt is true when stdin is an interactive terminal; piped input
	// gets no "> " prompts so scripted transcripts stay clean.
	prompt bool
}

func NewApp(accounts service.Accounts, schedule service.Schedule, appointments service.Appointments, log logging.Logger, out io.Writer) *App {
	return &App{
		accounts:     accounts,
		schedule:     schedule,
		appointments: appointments,
		log:          log,
		out:          out,
		prompt:       isTerminal(),
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) loggedIn() bool {
	return a.currentPatient != "" || a.currentCaregiver != ""
}
