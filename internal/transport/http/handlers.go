package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/internal/service/chat"
	"github.com/sandevgo/sensei/pkg/log"
)

const internalError = "Internal server error"

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req core.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, core.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	resp, err := s.chat.Reply(ctx, req)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		writeJSON(w, http.StatusBadRequest, core.ErrorResponse{Error: err.Error()})
	case err != nil:
		log.FromCtx(ctx).Error().Err(err).Msg("chat request failed")
		writeJSON(w, http.StatusInternalServerError, core.ErrorResponse{Error: internalError, Details: err.Error()})
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, core.HealthResponse{
		Status:  "ok",
		Region:  s.cfg.Region,
		ModelID: s.cfg.ModelID,
		Bucket:  s.cfg.Bucket,
		Prefix:  s.cfg.Prefix,
		Time:    s.now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
