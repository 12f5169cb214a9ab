package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/cv-matcher/internal/fetch"
	"github.com/jonathan/cv-matcher/internal/scoring"
)

// MatchRequest represents the request body for /match. The job description
// comes either inline or from a URL.
type MatchRequest struct {
	CVText  string `json:"cv_text" validate:"required"`
	JobText string `json:"job_text,omitempty"`
	JobURL  string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleMatch scores a CV against a job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := validator.New().Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.JobText == "" && req.JobURL == "" {
		s.errorJSON(w, &ErrValidation{Field: "job_text", Message: "either job_text or job_url is required"})
		return
	}
	if req.JobText != "" && req.JobURL != "" {
		s.errorJSON(w, &ErrValidation{Field: "job_url", Message: "job_text and job_url are mutually exclusive"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.matchTimeout)
	defer cancel()

	jobText := req.JobText
	if req.JobURL != "" {
		fetched, err := fetch.JobPosting(ctx, req.JobURL, nil)
		if err != nil {
			s.logger.Warn("job posting fetch failed", zap.String("url", req.JobURL), zap.Error(err))
			s.errorJSON(w, err)
			return
		}
		jobText = fetched
	}

	result, err := s.matcher.Match(ctx, req.CVText, jobText)
	if err != nil {
		s.logger.Error("match failed", zap.Error(err))
		s.errorJSON(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetWeights returns the active scoring weights.
func (s *Server) handleGetWeights(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.matcher.Engine().Weights())
}

// handleSetWeights replaces the active scoring weights.
func (s *Server) handleSetWeights(w http.ResponseWriter, r *http.Request) {
	var weights scoring.Weights
	if err := json.NewDecoder(r.Body).Decode(&weights); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.matcher.Engine().SetWeights(weights); err != nil {
		s.errorJSON(w, &ErrValidation{Field: "weights", Message: err.Error()})
		return
	}

	s.jsonResponse(w, http.StatusOK, weights)
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response with the given status code.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes a JSON error with an explicit status code.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}

// errorJSON writes a JSON error with the status derived from the error type.
func (s *Server) errorJSON(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
