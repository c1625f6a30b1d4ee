package api

import (
	"context"
	"errors"
	"github.com/datefy/datefy-api/internal/config"
	"github.com/datefy/datefy-api/internal/domain/models"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type UserStorage interface {
	SaveUser(ctx context.Context, name, email, passHash string) (int64, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	User(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, name, email string, balance decimal.Decimal) error
	UpdatePreferences(ctx context.Context, id int64, p models.Preferences) error
}

type TaskStorage interface {
	Tasks(ctx context.Context, userID int64) ([]models.Task, error)
	RecentTasks(ctx context.Context, userID int64, limit int) ([]models.Task, error)
	PendingTasks(ctx context.Context, userID int64) ([]models.Task, error)
	CountPendingTasksOn(ctx context.Context, userID int64, date string) (int, error)
	SaveTask(ctx context.Context, task *models.Task) (int64, error)
}

type FinanceStorage interface {
	Finances(ctx context.Context, userID int64) ([]models.FinanceEntry, error)
	FinanceTotals(ctx context.Context, userID int64) (models.FinanceTotals, error)
	FinanceCategoryTotals(ctx context.Context, userID int64) ([]models.CategoryTotal, error)
	SaveFinance(ctx context.Context, entry *models.FinanceEntry) (int64, error)
}

type ReminderStorage interface {
	Reminders(ctx context.Context, userID int64) ([]models.Reminder, error)
	SaveReminder(ctx context.Context, reminder *models.Reminder) (int64, error)
}

// RecordMutator changes or removes records addressed by their own id only.
// No check is made that the record belongs to whoever asks; a stricter
// implementation can be plugged in with WithMutator.
type RecordMutator interface {
	UpdateTask(ctx context.Context, id int64, upd models.TaskUpdate) error
	SetTaskStatus(ctx context.Context, id int64, status int) error
	DeleteTask(ctx context.Context, id int64) error
	DeleteFinance(ctx context.Context, id int64) error
	DeleteReminder(ctx context.Context, id int64) error
}

type Storage interface {
	UserStorage
	TaskStorage
	FinanceStorage
	ReminderStorage
	RecordMutator

	Ping(ctx context.Context) error
}

type APIServer struct {
	config  *config.Config
	logger  *slog.Logger
	server  *http.Server
	storage Storage
	mutator RecordMutator
	metrics *metrics
	now     func() time.Time
}

type Option func(*APIServer)

// WithMutator replaces the storage for every by-id edit and delete.
func WithMutator(m RecordMutator) Option {
	return func(s *APIServer) {
		s.mutator = m
	}
}

// WithClock sets the time source used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *APIServer) {
		s.now = now
	}
}

func New(config *config.Config, logger *slog.Logger, storage Storage, opts ...Option) *APIServer {
	s := &APIServer{
		config: config,
		logger: logger,
		server: &http.Server{
			Addr:              config.ApiHost + ":" + strconv.Itoa(config.ApiPort),
			ReadHeaderTimeout: 10 * time.Second,
		},
		storage: storage,
		mutator: storage,
		metrics: newMetrics(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.configureRouter()

	return s
}

func (s *APIServer) Start() error {
	s.logger.Info("Starting server", slog.String("addr", s.server.Addr))

	return s.server.ListenAndServe()
}

func (s *APIServer) MustStart() {
	err := s.Start()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("Failed to start server: " + err.Error())
	}
}

func (s *APIServer) Stop(ctx context.Context) error {
	defer s.logger.Info("Server successfully stopped")
	return s.server.Shutdown(ctx)
}

// Handler is the fully wrapped HTTP handler the server runs.
func (s *APIServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *APIServer) configureRouter() {
	router := mux.NewRouter()
	// Unmatched requests skip router middleware, so they are counted here.
	router.NotFoundHandler = s.metrics.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	}))
	router.MethodNotAllowedHandler = s.metrics.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}))
	router.Use(s.metrics.middleware)

	router.HandleFunc("/auth/register", s.registerHandler()).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", s.loginHandler()).Methods(http.MethodPost)

	router.HandleFunc("/usuario/{id}", s.userHandler()).Methods(http.MethodGet)
	router.HandleFunc("/usuario/{id}", s.updateUserHandler()).Methods(http.MethodPut)
	router.HandleFunc("/usuario/{id}/preferencias", s.preferencesHandler()).Methods(http.MethodPut)

	router.HandleFunc("/tarefas/recentes/{userId}", s.recentTasksHandler()).Methods(http.MethodGet)
	router.HandleFunc("/tarefas/calendario/{userId}", s.calendarHandler()).Methods(http.MethodGet)
	router.HandleFunc("/tarefas/{userId}", s.tasksHandler()).Methods(http.MethodGet)
	router.HandleFunc("/tarefas", s.createTaskHandler()).Methods(http.MethodPost)
	router.HandleFunc("/tarefas/{id}", s.editTaskHandler()).Methods(http.MethodPut)
	router.HandleFunc("/tarefas/{id}/concluir", s.taskStatusHandler(models.TaskDone)).Methods(http.MethodPut)
	router.HandleFunc("/tarefas/{id}/desfazer", s.taskStatusHandler(models.TaskPending)).Methods(http.MethodPut)
	router.HandleFunc("/tarefas/{id}", s.deleteTaskHandler()).Methods(http.MethodDelete)

	router.HandleFunc("/financas/totais/{userId}", s.financeTotalsHandler()).Methods(http.MethodGet)
	router.HandleFunc("/financas/categorias/{userId}", s.financeCategoriesHandler()).Methods(http.MethodGet)
	router.HandleFunc("/financas/{userId}", s.financesHandler()).Methods(http.MethodGet)
	router.HandleFunc("/financas", s.createFinanceHandler()).Methods(http.MethodPost)
	router.HandleFunc("/financas/{id}", s.deleteFinanceHandler()).Methods(http.MethodDelete)

	router.HandleFunc("/lembretes/{userId}", s.remindersHandler()).Methods(http.MethodGet)
	router.HandleFunc("/lembretes", s.createReminderHandler()).Methods(http.MethodPost)
	router.HandleFunc("/lembretes/{id}", s.deleteReminderHandler()).Methods(http.MethodDelete)

	router.HandleFunc("/dashboard/{userId}", s.dashboardHandler()).Methods(http.MethodGet)

	router.HandleFunc("/health", s.healthHandler()).Methods(http.MethodGet)
	router.Handle("/metrics", s.metrics.handler(s.logger)).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.config.CorsOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader}),
	)

	s.server.Handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(printlnLogger{s.logger}),
	)(cors(s.logRequests(router)))
}

func (s *APIServer) healthHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := s.storage.Ping(ctx); err != nil {
			s.log(r).Error("Health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	}
}
