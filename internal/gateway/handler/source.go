package handler

import (
	"net/http"
	"strings"

	"specforge/internal/spec"
)

type addSourceRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Kind    string `json:"kind"`
}

func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.store.ListSources(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sources)
}

func (h *Handler) AddSource(w http.ResponseWriter, r *http.Request) {
	var req addSourceRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeBadRequest(w, "source name is required")
		return
	}
	switch req.Kind {
	case "", "file", "pasted":
	default:
		writeBadRequest(w, `source kind must be "file" or "pasted"`)
		return
	}
	added, err := h.store.AddSource(r.Context(), r.PathValue("id"), spec.ReferenceSource{
		Name:    req.Name,
		Content: req.Content,
		Kind:    req.Kind,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (h *Handler) DeleteSource(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteSource(r.Context(), r.PathValue("id"), r.PathValue("sourceID"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
