// Package server exposes the loan calculator as a web UI and JSON API.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/internal/auth"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/internal/cache"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/internal/config"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/amortization"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/constants"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/datetime"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/output"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger        *zap.Logger
	authenticator auth.Authenticator
	results       cache.Cache
	generator     *amortization.ScheduleGenerator
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// calculator API. All API routes except login and version sit behind the
// authenticator.
func NewHandler(logger *zap.Logger, authenticator auth.Authenticator, results cache.Cache, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if authenticator == nil {
		authenticator = auth.Denied{}
	}
	if results == nil {
		results = cache.NewMemory()
	}
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		authenticator: authenticator,
		results:       results,
		generator:     amortization.NewScheduleGenerator(logger),
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
	}

	r := mux.NewRouter()

	// Unauthenticated endpoints
	r.HandleFunc("/api/login", h.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)

	// Calculator API behind the login gate
	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.requireAuth)
	api.HandleFunc("/calculate", h.handleCalculate).Methods(http.MethodPost)
	api.HandleFunc("/calculate/upload", h.handleCalculateUpload).Methods(http.MethodPost)
	api.HandleFunc("/schedule/{id}/export", h.handleExport).Methods(http.MethodGet)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.PathPrefix("/").Handler(http.FileServer(http.FS(sub)))

	return r
}

type calculateRequest struct {
	Principal          float64 `json:"principal"`
	AnnualInterestRate float64 `json:"annualInterestRate"`
	TermYears          int     `json:"termYears"`
	Frequency          string  `json:"frequency"`
	ExtraPayment       float64 `json:"extraPayment"`
	StartDate          string  `json:"startDate"`
}

type calculateResponse struct {
	ID       string           `json:"id"`
	Summary  summaryPayload   `json:"summary"`
	Schedule []schedulePeriod `json:"schedule"`
	Chart    output.ChartData `json:"chart"`
	Duration string           `json:"duration"`
}

type summaryPayload struct {
	BasePayment   float64 `json:"basePayment"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalInterest float64 `json:"totalInterest"`
	PayoffDate    string  `json:"payoffDate"`
	PeriodCount   int     `json:"periodCount"`
}

type schedulePeriod struct {
	Index              int     `json:"index"`
	Date               string  `json:"date"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingBalance   float64 `json:"remainingBalance"`
	CumulativeInterest float64 `json:"cumulativeInterest"`
}

// requireAuth gates the calculator behind the configured credential check.
// The check is per-request; no session is issued.
func (h *handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || !h.authenticator.Verify(auth.Credentials{Username: username, Password: password}) {
			h.respondErrorWithOp(w, http.StatusUnauthorized, "invalid credentials", "server.requireAuth")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok || !h.authenticator.Verify(auth.Credentials{Username: username, Password: password}) {
		h.respondErrorWithOp(w, http.StatusUnauthorized, "invalid credentials", "server.handleLogin")
		return
	}

	h.logger.Info("login accepted",
		zap.String("op", "server.handleLogin"),
		zap.String("username", username),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var payload calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleCalculate")
		return
	}

	loan := config.LoanConfig{
		Principal:          payload.Principal,
		AnnualInterestRate: payload.AnnualInterestRate,
		TermYears:          payload.TermYears,
		Frequency:          payload.Frequency,
		ExtraPayment:       payload.ExtraPayment,
		StartDate:          payload.StartDate,
	}

	h.runCalculation(w, loan, start, "server.handleCalculate")
}

func (h *handler) handleCalculateUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handleCalculateUpload")
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), "server.handleCalculateUpload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing loan file", "server.handleCalculateUpload")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleCalculateUpload"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to read loan file: %v", err), "server.handleCalculateUpload")
		return
	}

	loan, err := decodeLoanDocument(buf.Bytes())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("error reading loan data, %v", err), "server.handleCalculateUpload")
		return
	}

	h.runCalculation(w, loan, start, "server.handleCalculateUpload")
}

// decodeLoanDocument accepts either a full configuration file with a loan
// section, parsed through the config loader, or a bare loan document.
func decodeLoanDocument(payload []byte) (config.LoanConfig, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return config.LoanConfig{}, err
	}

	if _, ok := doc["loan"]; ok {
		conf, err := config.LoadConfigurationFromReader(bytes.NewReader(payload))
		if err != nil {
			return config.LoanConfig{}, err
		}
		return conf.Loan, nil
	}

	var loan config.LoanConfig
	if err := yaml.Unmarshal(payload, &loan); err != nil {
		return config.LoanConfig{}, err
	}
	return loan, nil
}

func (h *handler) runCalculation(w http.ResponseWriter, loan config.LoanConfig, start time.Time, op string) {
	params, err := loan.Parameters()
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	schedule, err := h.generator.Compute(params)
	if err != nil {
		var invalid *amortization.InvalidInputError
		var nonConvergence *amortization.NonConvergenceError
		switch {
		case errors.As(err, &invalid):
			h.respondErrorWithOp(w, http.StatusBadRequest, invalid.Error(), op)
		case errors.As(err, &nonConvergence):
			h.respondErrorWithOp(w, http.StatusUnprocessableEntity, nonConvergence.Error(), op)
		default:
			h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute schedule: %v", err), op)
		}
		return
	}

	csvText, err := output.CsvString(schedule)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render report: %v", err), op)
		return
	}

	id := uuid.NewString()
	if err := h.results.Set(id, csvText); err != nil {
		// Export-by-id degrades but the calculation itself succeeded.
		h.logger.Warn("failed to cache schedule for export",
			zap.String("op", op),
			zap.String("id", id),
			zap.Error(err),
		)
	}

	elapsed := time.Since(start)
	response := calculateResponse{
		ID:       id,
		Summary:  buildSummary(schedule),
		Schedule: buildPeriods(schedule),
		Chart:    output.ChartSeries(schedule),
		Duration: elapsed.String(),
	}

	h.logger.Info("schedule computed",
		zap.String("op", op),
		zap.String("id", id),
		zap.Int("periods", schedule.Summary.PeriodCount),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	csvText, ok := h.results.Get(id)
	if !ok {
		h.respondErrorWithOp(w, http.StatusNotFound, "unknown schedule id", "server.handleExport")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", constants.ExportFileName))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, csvText); err != nil {
		h.logger.Error("failed to write CSV export",
			zap.String("op", "server.handleExport"),
			zap.Error(err),
		)
	}
}

func buildSummary(schedule *amortization.Schedule) summaryPayload {
	return summaryPayload{
		BasePayment:   schedule.Summary.BasePayment,
		TotalPaid:     schedule.Summary.TotalPaid,
		TotalInterest: schedule.Summary.TotalInterest,
		PayoffDate:    datetime.FormatDate(schedule.Summary.PayoffDate),
		PeriodCount:   schedule.Summary.PeriodCount,
	}
}

func buildPeriods(schedule *amortization.Schedule) []schedulePeriod {
	rows := make([]schedulePeriod, 0, len(schedule.Periods))
	for _, period := range schedule.Periods {
		rows = append(rows, schedulePeriod{
			Index:              period.Index,
			Date:               datetime.FormatDate(period.Date),
			Payment:            period.Payment,
			Principal:          period.Principal,
			Interest:           period.Interest,
			RemainingBalance:   period.RemainingBalance,
			CumulativeInterest: period.CumulativeInterest,
		})
	}
	return rows
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
