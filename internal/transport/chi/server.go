// Package chi is the HTTP transport: routing, JSON codecs, auth and the
// domain-error-to-status mapping.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/talentbridge/matchd/internal/domain"
	domjob "github.com/talentbridge/matchd/internal/domain/job"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
	connectionuc "github.com/talentbridge/matchd/internal/usecase/connection"
	healthuc "github.com/talentbridge/matchd/internal/usecase/health"
	jobuc "github.com/talentbridge/matchd/internal/usecase/job"
	matchinguc "github.com/talentbridge/matchd/internal/usecase/matching"
	profileuc "github.com/talentbridge/matchd/internal/usecase/profile"
	rankinguc "github.com/talentbridge/matchd/internal/usecase/ranking"
)

// Error response codes.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeProfileNotFound    = "profile_not_found"
	codeJobNotFound        = "job_not_found"
	codeConnectionNotFound = "connection_not_found"
	codeConnectionResolved = "connection_already_resolved"
	codeInternalError      = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the matching API over HTTP.
type Server struct {
	profiles      *profileuc.Service
	jobs          *jobuc.Service
	matching      *matchinguc.Service
	ranking       *rankinguc.Service
	connections   *connectionuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	profiles *profileuc.Service,
	jobs *jobuc.Service,
	matching *matchinguc.Service,
	ranking *rankinguc.Service,
	connections *connectionuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		profiles:    profiles,
		jobs:        jobs,
		matching:    matching,
		ranking:     ranking,
		connections: connections,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrProfileNotFound, http.StatusNotFound, codeProfileNotFound),
		sentinelHandler(domain.ErrJobNotFound, http.StatusNotFound, codeJobNotFound),
		sentinelHandler(domain.ErrConnectionNotFound, http.StatusNotFound, codeConnectionNotFound),
		sentinelHandler(domain.ErrInvalidSubjectID, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidProfile, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidJob, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidConnection, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidConnectionState, http.StatusConflict, codeConnectionResolved),
	}
	return s
}

// Routes registers every API route on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.healthCheck)
	r.Get("/metrics", s.metrics)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/profiles", func(r chi.Router) {
			r.Put("/talent/{id}", s.upsertTalent)
			r.Put("/startup/{id}", s.upsertStartup)
			r.Put("/investor/{id}", s.upsertInvestor)
			r.Get("/talent/{id}", s.getProfile(domain.RoleTalent))
			r.Get("/startup/{id}", s.getProfile(domain.RoleStartup))
			r.Get("/investor/{id}", s.getProfile(domain.RoleInvestor))
			r.Get("/{role}/{id}", s.getProfile(""))
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", s.createJob)
			r.Get("/", s.listJobs)
			r.Get("/{id}", s.getJob)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/talent/{talentID}/startup/{startupID}", s.matchTalentStartup)
			r.Get("/startup/{startupID}/investor/{investorID}", s.matchStartupInvestor)
			r.Get("/talent/{talentID}/startups", s.rankStartupsForTalent)
			r.Get("/talent/{talentID}/jobs", s.rankJobsForTalent)
			r.Get("/startups/{startupID}/talent", s.rankTalentForStartup)
			r.Get("/startups/{startupID}/investors", s.rankInvestorsForStartup)
		})

		r.Route("/connections", func(r chi.Router) {
			r.Post("/", s.createConnection)
			r.Get("/{subjectID}", s.listConnections)
			r.Post("/{id}/respond", s.respondConnection)
		})
	})
}

// upsertTalent handles PUT /v1/profiles/talent/{id}.
func (s *Server) upsertTalent(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseSubjectID(chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	var req talentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	t, err := domprof.NewTalent(id, req.Name, req.Headline, req.Bio, skillsFromDTO(req.Skills))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if err := s.profiles.SaveTalent(r.Context(), t); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, talentToResponse(t))
}

// upsertStartup handles PUT /v1/profiles/startup/{id}.
func (s *Server) upsertStartup(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseSubjectID(chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	var req startupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	st, err := domprof.NewStartup(
		id, req.Name, req.Tagline, req.Description, req.Industry,
		domprof.Stage(req.Stage), req.RequiredSkills,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if err := s.profiles.SaveStartup(r.Context(), st); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, startupToResponse(st))
}

// upsertInvestor handles PUT /v1/profiles/investor/{id}.
func (s *Server) upsertInvestor(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseSubjectID(chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	var req investorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	stages := make([]domprof.Stage, len(req.InvestmentStages))
	for i, raw := range req.InvestmentStages {
		stages[i] = domprof.Stage(raw)
	}

	inv, err := domprof.NewInvestor(id, req.Name, req.Fund, req.Thesis, req.PreferredSectors, stages)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if err := s.profiles.SaveInvestor(r.Context(), inv); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, investorToResponse(inv))
}

// getProfile builds the GET /v1/profiles/{role}/{id} handler for one
// role. An empty role serves the wildcard route, which only ever sees
// roles outside the three known kinds.
func (s *Server) getProfile(role domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqRole := role
		if reqRole == "" {
			reqRole = domain.Role(chi.URLParam(r, "role"))
		}
		if !reqRole.IsValid() {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "unknown role "+string(reqRole))
			return
		}
		id, err := domain.ParseSubjectID(chi.URLParam(r, "id"))
		if err != nil {
			s.handleDomainError(w, err)
			return
		}

		switch reqRole {
		case domain.RoleTalent:
			t, err := s.profiles.GetTalent(r.Context(), id)
			if err != nil {
				s.handleDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, talentToResponse(t))
		case domain.RoleStartup:
			st, err := s.profiles.GetStartup(r.Context(), id)
			if err != nil {
				s.handleDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, startupToResponse(st))
		case domain.RoleInvestor:
			inv, err := s.profiles.GetInvestor(r.Context(), id)
			if err != nil {
				s.handleDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, investorToResponse(inv))
		}
	}
}

// createJob handles POST /v1/jobs.
func (s *Server) createJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	startupID, err := domain.ParseSubjectID(req.StartupID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	j, err := s.jobs.Create(
		r.Context(), startupID, req.Title, req.Description,
		domjob.Type(req.JobType), req.RequiredSkills,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, jobToResponse(j))
}

// listJobs handles GET /v1/jobs. An optional startup_id query parameter
// narrows the listing to one startup's postings.
func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	var (
		jobs []domjob.Job
		err  error
	)
	if raw := r.URL.Query().Get("startup_id"); raw != "" {
		startupID, perr := domain.ParseSubjectID(raw)
		if perr != nil {
			s.handleDomainError(w, perr)
			return
		}
		jobs, err = s.jobs.ListByStartup(r.Context(), startupID)
	} else {
		jobs, err = s.jobs.List(r.Context())
	}
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		items[i] = jobToResponse(j)
	}
	writeJSON(w, http.StatusOK, jobListResponse{Items: items, Total: len(items)})
}

// getJob handles GET /v1/jobs/{id}.
func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	j, err := s.jobs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobToResponse(j))
}

// matchTalentStartup handles GET /v1/matches/talent/{talentID}/startup/{startupID}.
func (s *Server) matchTalentStartup(w http.ResponseWriter, r *http.Request) {
	talentID, err := domain.ParseSubjectID(chi.URLParam(r, "talentID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	startupID, err := domain.ParseSubjectID(chi.URLParam(r, "startupID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	result, err := s.matching.MatchTalentToStartup(r.Context(), talentID, startupID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matchToResponse(result))
}

// matchStartupInvestor handles GET /v1/matches/startup/{startupID}/investor/{investorID}.
func (s *Server) matchStartupInvestor(w http.ResponseWriter, r *http.Request) {
	startupID, err := domain.ParseSubjectID(chi.URLParam(r, "startupID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	investorID, err := domain.ParseSubjectID(chi.URLParam(r, "investorID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	result, err := s.matching.MatchStartupToInvestor(r.Context(), startupID, investorID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matchToResponse(result))
}

// rankStartupsForTalent handles GET /v1/matches/talent/{talentID}/startups.
func (s *Server) rankStartupsForTalent(w http.ResponseWriter, r *http.Request) {
	talentID, err := domain.ParseSubjectID(chi.URLParam(r, "talentID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results, err := s.ranking.RankStartupsForTalent(r.Context(), talentID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matchesToResponse(results))
}

// rankJobsForTalent handles GET /v1/matches/talent/{talentID}/jobs.
func (s *Server) rankJobsForTalent(w http.ResponseWriter, r *http.Request) {
	talentID, err := domain.ParseSubjectID(chi.URLParam(r, "talentID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results, err := s.ranking.RankJobsForTalent(r.Context(), talentID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matchesToResponse(results))
}

// rankTalentForStartup handles GET /v1/matches/startups/{startupID}/talent.
func (s *Server) rankTalentForStartup(w http.ResponseWriter, r *http.Request) {
	startupID, err := domain.ParseSubjectID(chi.URLParam(r, "startupID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results, err := s.ranking.RankTalentForStartup(r.Context(), startupID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matchesToResponse(results))
}

// rankInvestorsForStartup handles GET /v1/matches/startups/{startupID}/investors.
func (s *Server) rankInvestorsForStartup(w http.ResponseWriter, r *http.Request) {
	startupID, err := domain.ParseSubjectID(chi.URLParam(r, "startupID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results, err := s.ranking.RankInvestorsForStartup(r.Context(), startupID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matchesToResponse(results))
}

// createConnection handles POST /v1/connections.
func (s *Server) createConnection(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	requester, err := domain.ParseSubjectID(req.RequesterID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	target, err := domain.ParseSubjectID(req.TargetID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	conn, err := s.connections.Request(r.Context(), requester, target, req.Message)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, connectionToResponse(conn))
}

// listConnections handles GET /v1/connections/{subjectID}.
func (s *Server) listConnections(w http.ResponseWriter, r *http.Request) {
	subjectID, err := domain.ParseSubjectID(chi.URLParam(r, "subjectID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	sent, received, err := s.connections.ListFor(r.Context(), subjectID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, connectionListResponse{
		Sent:     connectionsToResponse(sent),
		Received: connectionsToResponse(received),
	})
}

// respondConnection handles POST /v1/connections/{id}/respond.
func (s *Server) respondConnection(w http.ResponseWriter, r *http.Request) {
	var req connectionRespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	conn, err := s.connections.Respond(r.Context(), chi.URLParam(r, "id"), req.Accept)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, connectionToResponse(conn))
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// metrics handles GET /metrics.
func (s *Server) metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProfileNotFound,
		domain.ErrJobNotFound,
		domain.ErrConnectionNotFound,
		domain.ErrInvalidSubjectID,
		domain.ErrInvalidProfile,
		domain.ErrInvalidJob,
		domain.ErrInvalidConnection,
		domain.ErrInvalidConnectionState,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
