package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/flowmark/flowmark/pkg/flowchart"
	"github.com/flowmark/flowmark/pkg/render"
)

// maxBodySize caps request bodies for the diagram endpoints (1 MiB).
const maxBodySize = 1 << 20

// shutdownTimeout bounds graceful server shutdown.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command running the HTTP diagram API.
//
// Endpoints:
//   - POST   /diagrams          store markup, returns the assigned id
//   - GET    /diagrams/{id}     return the stored markup
//   - DELETE /diagrams/{id}     remove a stored diagram
//   - GET    /diagrams/{id}/svg render the stored diagram to SVG
//   - POST   /fmt               reformat markup to canonical form
//   - GET    /healthz           liveness probe
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP diagram API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			srv := newServer(c.Logger.With("component", "http"), c.newRenderer(&renderOpts{}))
			return srv.run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

// diagramStore is an in-memory markup store keyed by diagram id.
// Diagrams live for the lifetime of the server process.
type diagramStore struct {
	mu       sync.RWMutex
	diagrams map[string]string
}

func newDiagramStore() *diagramStore {
	return &diagramStore{diagrams: make(map[string]string)}
}

// put stores markup under a fresh id and returns the id.
func (s *diagramStore) put(markup string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.diagrams[id] = markup
	s.mu.Unlock()
	return id
}

func (s *diagramStore) get(id string) (string, bool) {
	s.mu.RLock()
	markup, ok := s.diagrams[id]
	s.mu.RUnlock()
	return markup, ok
}

// delete removes id and reports whether it existed.
func (s *diagramStore) delete(id string) bool {
	s.mu.Lock()
	_, ok := s.diagrams[id]
	delete(s.diagrams, id)
	s.mu.Unlock()
	return ok
}

// server bundles the HTTP handler dependencies.
type server struct {
	logger   interface{ Infof(string, ...any) }
	store    *diagramStore
	renderer render.Renderer
}

func newServer(logger interface{ Infof(string, ...any) }, renderer render.Renderer) *server {
	return &server{
		logger:   logger,
		store:    newDiagramStore(),
		renderer: renderer,
	}
}

// router builds the chi route tree.
func (s *server) router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Post("/fmt", s.handleFmt)
	r.Route("/diagrams", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleGet)
		r.Delete("/{id}", s.handleDelete)
		r.Get("/{id}/svg", s.handleSVG)
	})

	return r
}

// run serves until ctx is cancelled, then shuts down gracefully.
func (s *server) run(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Listening on %s", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Infof("Server stopped")
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// createResponse is the JSON body returned by POST /diagrams.
type createResponse struct {
	ID    string `json:"id"`
	Nodes int    `json:"nodes"`
	Links int    `json:"links"`
}

// errorResponse is the JSON body for all error statuses.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// handleCreate validates and stores submitted markup. The stored form is the
// canonical serialization, not the submitted bytes.
func (s *server) handleCreate(w http.ResponseWriter, r *http.Request) {
	f, ok := s.readDiagram(w, r)
	if !ok {
		return
	}

	id := s.store.put(f.Render())
	s.logger.Infof("Stored diagram %s", id)

	writeJSON(w, http.StatusCreated, createResponse{
		ID:    id,
		Nodes: len(f.Nodes()),
		Links: f.CountLinks(),
	})
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	markup, ok := s.store.get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "diagram not found"})
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, markup)
}

func (s *server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.store.delete(chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "diagram not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSVG renders the stored diagram. Render errors map to 502 because the
// markup was validated on storage; failures here come from the engine.
func (s *server) handleSVG(w http.ResponseWriter, r *http.Request) {
	markup, ok := s.store.get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "diagram not found"})
		return
	}

	data, err := s.renderer.Render(r.Context(), markup)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(data)
}

// handleFmt reformats submitted markup without storing it.
func (s *server) handleFmt(w http.ResponseWriter, r *http.Request) {
	f, ok := s.readDiagram(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, f.Render())
}

// readDiagram reads and parses the request body, writing an error response
// and returning ok=false on failure.
func (s *server) readDiagram(w http.ResponseWriter, r *http.Request) (*flowchart.Flowchart, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
		return nil, false
	}

	f, err := flowchart.Parse(string(body))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return nil, false
	}
	return f, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
