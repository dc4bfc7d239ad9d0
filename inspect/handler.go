package inspect

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler returns the inspector's routes:
//
//	GET /healthz  liveness
//	GET /state    latest State as JSON, 404 before the first frame
//	GET /         HTML summary
func Handler(board *Board, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &handlers{board: board, log: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", h.health)
	r.Get("/state", h.state)
	r.Get("/", h.index)
	return r
}

type handlers struct {
	board *Board
	log   *slog.Logger
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *handlers) state(w http.ResponseWriter, _ *http.Request) {
	s, ok := h.board.Latest()
	if !ok {
		http.Error(w, "no frame published yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.log.Error("encode state", slog.Any("err", err))
	}
}

func (h *handlers) index(w http.ResponseWriter, _ *http.Request) {
	s, ok := h.board.Latest()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page(s, ok).Render(w); err != nil {
		h.log.Error("render index", slog.Any("err", err))
	}
}
