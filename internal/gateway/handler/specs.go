package handler

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"specforge/internal/export"
	projectrepo "specforge/internal/gateway/repository/project"
	"specforge/internal/gateway/usecase/generate"
	"specforge/internal/spec"
)

func (h *Handler) ListSpecs(w http.ResponseWriter, r *http.Request) {
	specs, err := h.store.ListSpecs(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, specs)
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// Generate runs one synchronous generation action. When the spec was
// produced but could not be saved, the response still carries it so the
// client can export or retry without another provider call.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			writeBadRequest(w, err.Error())
			return
		}
	}
	outcome, err := generate.Execute(r.Context(), generate.Input{
		ProjectID: r.PathValue("id"),
		Prompt:    req.Prompt,
	}, generate.Deps{Store: h.store, Client: h.client, Hub: h.hub})
	if err != nil {
		if errors.Is(err, generate.ErrPersistence) && outcome != nil && outcome.Result != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody{
				Error:   generate.ErrorKind(err),
				Message: err.Error(),
				Spec:    outcome.Result,
			})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, outcome.Version)
}

// Export streams the bundle for the project's requested (default: latest)
// spec version and, when a bundle bucket is configured, stores a copy.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("id")

	p, err := h.store.GetProject(ctx, projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	versions, err := h.store.ListSpecs(ctx, projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	version, ok := pickVersion(versions, r.URL.Query().Get("version"))
	if !ok {
		writeError(w, projectrepo.ErrNotFound)
		return
	}
	sources, err := h.store.ListSources(ctx, projectID)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteBundle(&buf, p.Name, version.SpecificationResult, sources); err != nil {
		writeError(w, err)
		return
	}
	if h.bundles != nil {
		if err := h.bundles.PutBundle(ctx, p.ID, version.Version, buf.Bytes()); err != nil {
			log.Printf("handler: bundle upload for project %s: %v", p.ID, err)
		}
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.BundleName(p.Name)+`"`)
	_, _ = w.Write(buf.Bytes())
}

func pickVersion(versions []spec.SpecVersion, want string) (spec.SpecVersion, bool) {
	if len(versions) == 0 {
		return spec.SpecVersion{}, false
	}
	if want == "" {
		// listings are newest-first
		return versions[0], true
	}
	for _, v := range versions {
		if v.Version == want {
			return v, true
		}
	}
	return spec.SpecVersion{}, false
}
