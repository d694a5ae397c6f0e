package handler

import (
	"net/http"

	projectrepo "specforge/internal/gateway/repository/project"
	"specforge/internal/spec"
)

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	created, err := h.store.CreateProject(r.Context(), projectrepo.Project{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type updateProjectRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Stack       *spec.StackConfig      `json:"stack"`
	Selected    *[]spec.SelectedModule `json:"selected"`
	RawPrompt   *string                `json:"rawPrompt"`
}

// UpdateProject applies a partial update to the editing session. Selected
// modules are deduplicated per blueprint id, last confirmation wins.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req updateProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	updated, err := h.store.UpdateProject(r.Context(), r.PathValue("id"), func(p *projectrepo.Project) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Stack != nil {
			p.Stack = *req.Stack
		}
		if req.Selected != nil {
			sel := spec.NewSelection()
			for _, m := range *req.Selected {
				sel.Confirm(m)
			}
			p.Selected = sel.Modules()
		}
		if req.RawPrompt != nil {
			p.RawPrompt = *req.RawPrompt
		}
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
