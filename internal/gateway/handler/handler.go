// Package handler exposes the gateway's JSON REST surface.
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"specforge/internal/export"
	"specforge/internal/gateway/events"
	projectrepo "specforge/internal/gateway/repository/project"
	"specforge/internal/gateway/usecase/generate"
	"specforge/internal/llm"
)

type Handler struct {
	store   projectrepo.Store
	client  llm.Client
	hub     *events.Hub
	bundles *export.S3Store // nil when no bucket is configured
}

func New(store projectrepo.Store, client llm.Client, hub *events.Hub, bundles *export.S3Store) *Handler {
	return &Handler{store: store, client: client, hub: hub, bundles: bundles}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// Spec carries the generated result when persistence failed, so the
	// client can still display or export it.
	Spec any `json:"spec,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handler: write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	kind := generate.ErrorKind(err)
	writeJSON(w, statusFor(kind), errorBody{Error: kind, Message: err.Error()})
}

func statusFor(kind string) int {
	switch kind {
	case "not_found":
		return http.StatusNotFound
	case "transport_error", "malformed_response", "empty_response":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad_request", Message: msg})
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}
