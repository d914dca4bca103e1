package cli

import (
	applicationCommands "github.com/hiredeck/hiredeck/internal/applications/application/commands"
	applicationQueries "github.com/hiredeck/hiredeck/internal/applications/application/queries"
	candidateCommands "github.com/hiredeck/hiredeck/internal/candidates/application/commands"
	candidateQueries "github.com/hiredeck/hiredeck/internal/candidates/application/queries"
	interviewCommands "github.com/hiredeck/hiredeck/internal/interviews/application/commands"
	interviewQueries "github.com/hiredeck/hiredeck/internal/interviews/application/queries"
	interviewServices "github.com/hiredeck/hiredeck/internal/interviews/application/services"
)

// App holds the CLI application dependencies.
type App struct {
	// Candidate handlers
	AddCandidateHandler   *candidateCommands.AddCandidateHandler
	ListCandidatesHandler *candidateQueries.ListCandidatesHandler
	GetCandidateHandler   *candidateQueries.GetCandidateHandler

	// Application handlers
	SubmitApplicationHandler     *applicationCommands.SubmitApplicationHandler
	AdvanceApplicationHandler    *applicationCommands.AdvanceApplicationHandler
	RejectApplicationHandler     *applicationCommands.RejectApplicationHandler
	UpdateStatusHandler          *applicationCommands.UpdateStatusHandler
	ListApplicationsHandler      *applicationQueries.ListApplicationsHandler
	CandidateApplicationsHandler *applicationQueries.CandidateApplicationsHandler

	// Interview handlers
	ScheduleInterviewHandler     *interviewCommands.ScheduleInterviewHandler
	CancelInterviewHandler       *interviewCommands.CancelInterviewHandler
	ApplicationInterviewsHandler *interviewQueries.ApplicationInterviewsHandler
	UpcomingInterviewsHandler    *interviewQueries.UpcomingInterviewsHandler

	// Scheduling services
	Planner  *interviewServices.Planner
	SlotGrid *interviewServices.SlotGrid
}

var app *App

// SetApp sets the CLI application dependencies.
func SetApp(a *App) {
	app = a
}

// GetApp returns the CLI application dependencies, or nil when the container
// failed to initialize.
func GetApp() *App {
	return app
}
