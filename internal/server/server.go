package server

// Local catalog service emulator. A development and test stand-in for
// the real item-catalog service, speaking the same HTTP contract:
// array/object JSON bodies on success, {timestamp,status,message} on
// failure.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tturner/stockdeck/internal/catalog"
	"github.com/tturner/stockdeck/internal/logging"
)

// Server serves the catalog API from an in-memory store.
type Server struct {
	store *Store
	log   *logging.Logger
	mux   *http.ServeMux
}

// New wires the emulator routes. A nil logger is replaced with a no-op.
func New(store *Store, log *logging.Logger) *Server {
	if log == nil {
		log = logging.Nop()
	}
	s := &Server{store: store, log: log, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /api/items", s.handleList)
	s.mux.HandleFunc("GET /api/items/low-stock", s.handleLowStock)
	s.mux.HandleFunc("GET /api/items/{id}", s.handleGet)
	s.mux.HandleFunc("POST /api/items", s.handleCreate)
	s.mux.HandleFunc("PUT /api/items/{id}", s.handleUpdate)
	s.mux.HandleFunc("DELETE /api/items/{id}", s.handleDelete)
	return s
}

// ServeHTTP implements http.Handler with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.log.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
}

// ListenAndServe runs the emulator until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr, Handler: s}
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	s.log.Info("catalog emulator listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minPrice, err := parsePriceParam(q.Get("minPrice"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "minPrice must be a number")
		return
	}
	maxPrice, err := parsePriceParam(q.Get("maxPrice"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "maxPrice must be a number")
		return
	}
	sortBy := q.Get("sortBy")
	if sortBy == "" {
		sortBy = "id"
	}
	order := q.Get("order")
	if order == "" {
		order = "asc"
	}
	writeJSON(w, http.StatusOK, s.store.Query(minPrice, maxPrice, sortBy, order))
}

func (s *Server) handleLowStock(w http.ResponseWriter, r *http.Request) {
	threshold := 5
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "threshold must be an integer")
			return
		}
		threshold = parsed
	}
	items := s.store.LowStock(threshold)
	if items == nil {
		items = []catalog.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	item, found := s.store.Get(id)
	if !found {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Item not found with id %d", id))
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	item := s.store.Create(in)
	s.log.Info("item created", "id", item.ID, "name", item.Name)
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	item, found := s.store.Update(id, in)
	if !found {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Item not found with id %d", id))
		return
	}
	s.log.Info("item updated", "id", item.ID)
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if !s.store.Delete(id) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Item not found with id %d", id))
		return
	}
	s.log.Info("item deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "item id must be numeric")
		return 0, false
	}
	return id, true
}

func decodeInput(w http.ResponseWriter, r *http.Request) (catalog.ItemInput, bool) {
	var in catalog.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return catalog.ItemInput{}, false
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return catalog.ItemInput{}, false
	}
	return in, true
}

func parsePriceParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{
		Timestamp: time.Now().Format(time.RFC3339),
		Status:    status,
		Message:   message,
	})
}
