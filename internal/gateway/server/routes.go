package server

import (
	"net/http"

	"specforge/internal/gateway/handler"
	"specforge/internal/gateway/middleware"
)

// Routes builds the API mux. All routes are JSON except export (zip) and
// watch (websocket).
func Routes(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/projects", h.ListProjects)
	mux.HandleFunc("POST /api/projects", h.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", h.GetProject)
	mux.HandleFunc("PUT /api/projects/{id}", h.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", h.DeleteProject)

	mux.HandleFunc("GET /api/projects/{id}/sources", h.ListSources)
	mux.HandleFunc("POST /api/projects/{id}/sources", h.AddSource)
	mux.HandleFunc("DELETE /api/projects/{id}/sources/{sourceID}", h.DeleteSource)

	mux.HandleFunc("GET /api/projects/{id}/specs", h.ListSpecs)
	mux.HandleFunc("POST /api/projects/{id}/generate", h.Generate)
	mux.HandleFunc("GET /api/projects/{id}/export", h.Export)

	mux.HandleFunc("GET /api/catalog", h.Catalog)
	mux.HandleFunc("GET /api/watch/{id}", h.Watch)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return middleware.CORS(mux)
}
