// Package app wires the hiredeck dependency graph.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	applicationCommands "github.com/hiredeck/hiredeck/internal/applications/application/commands"
	applicationQueries "github.com/hiredeck/hiredeck/internal/applications/application/queries"
	applicationDomain "github.com/hiredeck/hiredeck/internal/applications/domain"
	applicationPersistence "github.com/hiredeck/hiredeck/internal/applications/infrastructure/persistence"
	calendarApp "github.com/hiredeck/hiredeck/internal/calendar/application"
	calendarCalDAV "github.com/hiredeck/hiredeck/internal/calendar/infrastructure/caldav"
	calendarGoogle "github.com/hiredeck/hiredeck/internal/calendar/infrastructure/google"
	candidateCommands "github.com/hiredeck/hiredeck/internal/candidates/application/commands"
	candidateQueries "github.com/hiredeck/hiredeck/internal/candidates/application/queries"
	candidateDomain "github.com/hiredeck/hiredeck/internal/candidates/domain"
	candidatePersistence "github.com/hiredeck/hiredeck/internal/candidates/infrastructure/persistence"
	interviewApp "github.com/hiredeck/hiredeck/internal/interviews/application"
	interviewCommands "github.com/hiredeck/hiredeck/internal/interviews/application/commands"
	interviewQueries "github.com/hiredeck/hiredeck/internal/interviews/application/queries"
	interviewServices "github.com/hiredeck/hiredeck/internal/interviews/application/services"
	interviewDomain "github.com/hiredeck/hiredeck/internal/interviews/domain"
	interviewLock "github.com/hiredeck/hiredeck/internal/interviews/infrastructure/lock"
	interviewPersistence "github.com/hiredeck/hiredeck/internal/interviews/infrastructure/persistence"
	notifyApp "github.com/hiredeck/hiredeck/internal/notifications/application"
	notifyInfra "github.com/hiredeck/hiredeck/internal/notifications/infrastructure"
	sharedApplication "github.com/hiredeck/hiredeck/internal/shared/application"
	"github.com/hiredeck/hiredeck/internal/shared/infrastructure/eventbus"
	"github.com/hiredeck/hiredeck/internal/shared/infrastructure/migrations"
	"github.com/hiredeck/hiredeck/internal/shared/infrastructure/outbox"
	sharedPersistence "github.com/hiredeck/hiredeck/internal/shared/infrastructure/persistence"
	"github.com/hiredeck/hiredeck/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Storage; exactly one of DB / SQLiteDB is set.
	DB       *pgxpool.Pool
	SQLiteDB *sql.DB

	RedisClient *redis.Client

	// Repositories
	CandidateRepo   candidateDomain.Repository
	ApplicationRepo applicationDomain.Repository
	InterviewRepo   interviewDomain.Repository
	OutboxRepo      outbox.Repository

	EventPublisher eventbus.Publisher
	OutboxProcessor *outbox.Processor

	UnitOfWork    sharedApplication.UnitOfWork
	EventRecorder sharedApplication.EventRecorder

	// Calendar integration
	Availability calendarApp.AvailabilityProvider
	Meetings     calendarApp.MeetingCreator

	Notifier notifyApp.Dispatcher
	Locker   interviewApp.AdvisoryLocker

	// Scheduling services
	SlotGrid *interviewServices.SlotGrid
	Planner  *interviewServices.Planner

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
}

// NewContainer initializes all dependencies. When SQLitePath is configured
// the container runs in local mode on the embedded store; otherwise it
// connects to PostgreSQL, Redis, and RabbitMQ.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if cfg.SQLitePath != "" {
		if err := c.initSQLite(ctx, cfg); err != nil {
			return nil, err
		}
	} else {
		if err := c.initPostgres(ctx, cfg); err != nil {
			return nil, err
		}
	}

	c.initRedis(cfg)
	c.initCalendar(ctx, cfg)
	c.initNotifier(cfg)
	c.initScheduling(cfg)
	c.initHandlers(cfg)

	return c, nil
}

func (c *Container) initPostgres(ctx context.Context, cfg *config.Config) error {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	c.DB = pool
	c.CandidateRepo = candidatePersistence.NewPostgresCandidateRepository(pool)
	c.ApplicationRepo = applicationPersistence.NewPostgresApplicationRepository(pool)
	c.InterviewRepo = interviewPersistence.NewPostgresInterviewRepository(pool)
	c.OutboxRepo = outbox.NewPostgresRepository(pool)
	c.UnitOfWork = sharedPersistence.NewPgxUnitOfWork(pool)
	c.EventRecorder = outbox.NewRecorder(c.OutboxRepo)

	publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, c.Logger)
	if err != nil {
		c.Logger.Warn("rabbitmq unavailable, events stay in the outbox until the worker drains them", "error", err)
		c.EventPublisher = eventbus.NewNoopPublisher(c.Logger)
	} else {
		c.EventPublisher = publisher
	}

	c.OutboxProcessor = outbox.NewProcessor(c.OutboxRepo, c.EventPublisher, outbox.ProcessorConfig{
		PollInterval:     cfg.OutboxPollInterval,
		BatchSize:        cfg.OutboxBatchSize,
		MaxRetries:       cfg.OutboxMaxRetries,
		RetryBackoffBase: 1 * time.Second,
		RetryBackoffMax:  1 * time.Minute,
	}, c.Logger)

	return nil
}

func (c *Container) initSQLite(ctx context.Context, cfg *config.Config) error {
	db, err := sql.Open("sqlite", cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	c.SQLiteDB = db
	c.CandidateRepo = candidatePersistence.NewSQLiteCandidateRepository(db)
	c.ApplicationRepo = applicationPersistence.NewSQLiteApplicationRepository(db)
	c.InterviewRepo = interviewPersistence.NewSQLiteInterviewRepository(db)
	c.UnitOfWork = sharedPersistence.NewSQLiteUnitOfWork(db)

	// local mode has no outbox; events are dropped
	c.EventRecorder = sharedApplication.NewNoopEventRecorder()
	c.EventPublisher = eventbus.NewNoopPublisher(c.Logger)

	return nil
}

func (c *Container) initRedis(cfg *config.Config) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil || cfg.SQLitePath != "" {
		c.Locker = interviewApp.NewNoopLocker()
		return
	}
	c.RedisClient = redis.NewClient(opts)
	c.Locker = interviewLock.NewRedisLocker(c.RedisClient)
}

func (c *Container) initCalendar(ctx context.Context, cfg *config.Config) {
	if !cfg.CalendarConnected() {
		null := calendarApp.NewNullProvider()
		c.Availability = null
		c.Meetings = null
		return
	}

	switch cfg.CalendarProvider {
	case "google":
		client := calendarGoogle.NewClient(ctx, calendarGoogle.Credentials{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			TokenURL:     cfg.OAuthTokenURL,
			AccessToken:  cfg.GoogleAccessToken,
			RefreshToken: cfg.GoogleRefreshToken,
		}, cfg.CalendarID)
		breaker := calendarApp.NewBreakerProvider(client, client)
		c.Availability = breaker
		c.Meetings = breaker
	case "caldav":
		loc, err := time.LoadLocation(cfg.SchedulingTimezone)
		if err != nil {
			loc = time.UTC
		}
		provider, err := calendarCalDAV.NewProvider(cfg.CalDAVBaseURL, cfg.CalDAVUsername, cfg.CalDAVPassword, cfg.CalendarID, loc)
		if err != nil {
			c.Logger.Warn("caldav setup failed, calendar disabled", "error", err)
			null := calendarApp.NewNullProvider()
			c.Availability = null
			c.Meetings = null
			return
		}
		// CalDAV answers free/busy only; meeting creation stays disconnected
		c.Availability = calendarApp.NewBreakerProvider(provider, nil)
		c.Meetings = nil
	default:
		null := calendarApp.NewNullProvider()
		c.Availability = null
		c.Meetings = null
	}
}

func (c *Container) initNotifier(cfg *config.Config) {
	if cfg.ChatWebhookURL != "" {
		c.Notifier = notifyInfra.NewWebhookDispatcher(cfg.ChatWebhookURL, cfg.EmailFrom, nil, c.Logger)
		return
	}
	c.Notifier = notifyInfra.NewLogDispatcher(c.Logger)
}

func (c *Container) initScheduling(cfg *config.Config) {
	loc, err := time.LoadLocation(cfg.SchedulingTimezone)
	if err != nil {
		c.Logger.Warn("invalid scheduling timezone, falling back to UTC", "timezone", cfg.SchedulingTimezone)
		loc = time.UTC
	}

	grid, err := interviewServices.NewSlotGrid(interviewServices.SlotGridConfig{
		WorkdayStart: cfg.WorkdayStart,
		WorkdayEnd:   cfg.WorkdayEnd,
		Step:         cfg.SlotStep,
		Location:     loc,
	})
	if err != nil {
		c.Logger.Warn("invalid slot grid configuration, using defaults", "error", err)
		grid, _ = interviewServices.NewSlotGrid(interviewServices.DefaultSlotGridConfig())
	}

	c.SlotGrid = grid
	c.Planner = interviewServices.NewPlanner(grid, interviewServices.NewAvailabilityService(c.Availability, c.Logger))
}

func (c *Container) initHandlers(cfg *config.Config) {
	c.AddCandidateHandler = candidateCommands.NewAddCandidateHandler(c.CandidateRepo)
	c.ListCandidatesHandler = candidateQueries.NewListCandidatesHandler(c.CandidateRepo)
	c.GetCandidateHandler = candidateQueries.NewGetCandidateHandler(c.CandidateRepo)

	c.SubmitApplicationHandler = applicationCommands.NewSubmitApplicationHandler(c.ApplicationRepo, c.CandidateRepo, c.UnitOfWork, c.EventRecorder)
	c.AdvanceApplicationHandler = applicationCommands.NewAdvanceApplicationHandler(c.ApplicationRepo, c.UnitOfWork, c.EventRecorder)
	c.RejectApplicationHandler = applicationCommands.NewRejectApplicationHandler(c.ApplicationRepo, c.UnitOfWork, c.EventRecorder)
	c.UpdateStatusHandler = applicationCommands.NewUpdateStatusHandler(c.ApplicationRepo, c.UnitOfWork, c.EventRecorder)
	c.ListApplicationsHandler = applicationQueries.NewListApplicationsHandler(c.ApplicationRepo)
	c.CandidateApplicationsHandler = applicationQueries.NewCandidateApplicationsHandler(c.ApplicationRepo)

	c.ScheduleInterviewHandler = interviewCommands.NewScheduleInterviewHandler(interviewCommands.ScheduleInterviewDeps{
		Interviews:   c.InterviewRepo,
		Applications: c.ApplicationRepo,
		Candidates:   c.CandidateRepo,
		Meetings:     c.Meetings,
		Notifier:     c.Notifier,
		Locker:       c.Locker,
		UoW:          c.UnitOfWork,
		Events:       c.EventRecorder,
		Logger:       c.Logger,
		LockTTL:      cfg.InterviewLockTTL,
	})
	c.CancelInterviewHandler = interviewCommands.NewCancelInterviewHandler(c.InterviewRepo, c.UnitOfWork, c.EventRecorder)
	c.ApplicationInterviewsHandler = interviewQueries.NewApplicationInterviewsHandler(c.InterviewRepo)
	c.UpcomingInterviewsHandler = interviewQueries.NewUpcomingInterviewsHandler(c.InterviewRepo)
}

// Close releases all container resources.
func (c *Container) Close() {
	if c.OutboxProcessor != nil {
		c.OutboxProcessor.Stop()
	}
	if closer, ok := c.EventPublisher.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if c.RedisClient != nil {
		_ = c.RedisClient.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
	if c.SQLiteDB != nil {
		_ = c.SQLiteDB.Close()
	}
}
