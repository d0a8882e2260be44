package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/hirogeru/internal/models"
	"github.com/hyperjump/hirogeru/internal/search"
	"github.com/hyperjump/hirogeru/internal/storage"
)

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req models.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("optimize request", zap.String("query", req.Query), zap.Int("top_k", req.TopK))

	result, err := s.engine.Optimize(r.Context(), &req)
	if err != nil {
		if errors.Is(err, search.ErrIndexNotBuilt) {
			s.respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.Error("optimize failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	run := &models.Run{
		Query:    result.Query,
		Variants: result.Variants,
		Metrics:  result.Metrics,
	}
	if err := s.storage.SaveRun(r.Context(), run); err != nil {
		s.logger.Warn("failed to persist run", zap.Error(err))
	}

	s.respondJSON(w, http.StatusOK, result.Report())
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	docs := s.engine.Documents()
	if docs == nil {
		docs = []models.Document{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
		"total":     len(docs),
	})
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	runs, err := s.storage.ListRuns(r.Context(), limit)
	if err != nil {
		s.logger.Error("list runs failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []*models.Run{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"runs":  runs,
		"total": len(runs),
	})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := s.storage.GetRun(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			s.respondError(w, http.StatusNotFound, "run not found")
			return
		}
		s.logger.Error("get run failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, run)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type databaseSizer interface {
	SizeBytes() (int64, error)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	runCount, err := s.storage.CountRuns(r.Context())
	if err != nil {
		s.logger.Error("status: count runs failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := map[string]interface{}{
		"documents":  s.engine.DocumentCount(),
		"index_size": s.engine.IndexSize(),
		"runs":       runCount,
	}

	configInfo := map[string]interface{}{
		"index_type": s.engine.IndexType(),
	}
	if s.config != nil {
		configInfo["embedding_dimensions"] = s.config.Embedding.Dimensions
		configInfo["expansion_model"] = s.config.Expansion.Model
		configInfo["database_path"] = s.config.Storage.DatabasePath
		configInfo["corpus_directories"] = s.config.Corpus.Directories
	}
	resp["config"] = configInfo

	if sizer, ok := s.storage.(databaseSizer); ok {
		if n, err := sizer.SizeBytes(); err == nil {
			resp["disk_usage_bytes"] = n
		}
	}

	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
