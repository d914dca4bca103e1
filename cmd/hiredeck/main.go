package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hiredeck/hiredeck/adapter/cli"
	cliApplication "github.com/hiredeck/hiredeck/adapter/cli/application"
	cliCandidate "github.com/hiredeck/hiredeck/adapter/cli/candidate"
	cliInterview "github.com/hiredeck/hiredeck/adapter/cli/interview"
	"github.com/hiredeck/hiredeck/internal/app"
	"github.com/hiredeck/hiredeck/pkg/config"
	"github.com/hiredeck/hiredeck/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development defaults", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			// in development the CLI runs without a database; commands
			// that need one print a hint instead
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()

		if container.OutboxProcessor != nil && cfg.OutboxProcessorEnabled {
			go func() {
				if err := container.OutboxProcessor.Start(ctx); err != nil {
					logger.Warn("outbox processor stopped", "error", err)
				}
			}()
		}

		cli.SetApp(&cli.App{
			AddCandidateHandler:   container.AddCandidateHandler,
			ListCandidatesHandler: container.ListCandidatesHandler,
			GetCandidateHandler:   container.GetCandidateHandler,

			SubmitApplicationHandler:     container.SubmitApplicationHandler,
			AdvanceApplicationHandler:    container.AdvanceApplicationHandler,
			RejectApplicationHandler:     container.RejectApplicationHandler,
			UpdateStatusHandler:          container.UpdateStatusHandler,
			ListApplicationsHandler:      container.ListApplicationsHandler,
			CandidateApplicationsHandler: container.CandidateApplicationsHandler,

			ScheduleInterviewHandler:     container.ScheduleInterviewHandler,
			CancelInterviewHandler:       container.CancelInterviewHandler,
			ApplicationInterviewsHandler: container.ApplicationInterviewsHandler,
			UpcomingInterviewsHandler:    container.UpcomingInterviewsHandler,

			Planner:  container.Planner,
			SlotGrid: container.SlotGrid,
		})
	}

	cli.AddCommand(cliCandidate.Cmd)
	cli.AddCommand(cliApplication.Cmd)
	cli.AddCommand(cliInterview.Cmd)

	cli.Execute()
}
