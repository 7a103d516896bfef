// internal/httpserver/server.go
//
// HTTP server wiring for the hangman backend. This is the presentation
// boundary: clients render the gallows from the snapshot's mistake count.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access logs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: GET /game, POST /game/new, POST /game/guess.
//   - Leaderboard: GET /leaderboard.
//   - Vocabulary lookups backed by the trie: GET /words/lookup.
//
// Notes:
//   - One Session per process. The session is single-writer, so every
//     handler that touches it holds s.mu.
//   - The win prompt is answered by the optional "name" in the guess body.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/words"
)

// Options tunes the server. Zero values fall back to defaults.
type Options struct {
	ClientOrigin     string         // CORS origin; default http://localhost:5173
	Timeout          time.Duration  // per-request bound; default 10s
	LeaderboardLimit int            // entries in snapshots; <= 0 means all
	Logger           zerolog.Logger // access and error logs
}

// Server bundles router, the game session and the vocabulary.
type Server struct {
	r     *chi.Mux
	mu    sync.Mutex // serializes session access
	game  *session.Session
	vocab *words.Vocabulary
	opts  Options
	log   zerolog.Logger
}

// New constructs a Server, installs middleware, and registers routes.
func New(sess *session.Session, vocab *words.Vocabulary, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	s := &Server{r: chi.NewRouter(), game: sess, vocab: vocab, opts: opts, log: opts.Logger}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger(s.log))        // zerolog access log
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(opts.Timeout)) // bound handler time
	s.r.Use(jsonContentType)             // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","GET /game","POST /game/new","POST /game/guess","GET /leaderboard","GET /words/lookup"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- game ---
	s.r.Route("/game", func(r chi.Router) {
		r.Get("/", s.handleState)
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
	})
	s.r.Get("/leaderboard", s.handleLeaderboard)
	s.r.Get("/words/lookup", s.handleLookup)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ GAME ---------------------------------------

// handleState returns the current round snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.game.Snapshot(s.opts.LeaderboardLimit)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// handleNewGame abandons the active round and starts another.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.game.NewGame()
	snap := s.game.Snapshot(s.opts.LeaderboardLimit)
	s.mu.Unlock()
	if err != nil {
		s.log.Error().Err(err).Msg("new game")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "new_game_failed"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	Letter string `json:"letter"`
	Name   string `json:"name"` // leaderboard name, used only if this guess wins
}
type guessRes struct {
	session.Result
	Game session.Snapshot `json:"game"` // the round now in play
}

// errorRes is the body of every non-2xx game response.
type errorRes struct {
	Error string            `json:"error"`
	Game  *session.Snapshot `json:"game,omitempty"`
}

// handleGuess applies a letter to the active round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json"})
		return
	}

	s.mu.Lock()
	res, err := s.game.SubmitGuess(req.Letter, func(int) string { return req.Name })
	snap := s.game.Snapshot(s.opts.LeaderboardLimit)
	s.mu.Unlock()

	if err != nil {
		status, code := guessError(err)
		if status == http.StatusInternalServerError {
			s.log.Error().Err(err).Msg("guess")
		}
		writeJSON(w, status, errorRes{Error: code, Game: &snap})
		return
	}
	if res.Finished != nil {
		s.log.Info().
			Str("round", res.Finished.RoundID).
			Str("status", string(res.Finished.Status)).
			Bool("recorded", res.Finished.Recorded).
			Msg("round finished")
	}
	writeJSON(w, http.StatusOK, guessRes{Result: res, Game: snap})
}

// guessError maps engine errors to HTTP status + error code.
func guessError(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		return http.StatusBadRequest, "invalid_guess"
	case errors.Is(err, game.ErrAlreadyGuessed):
		return http.StatusConflict, "already_guessed"
	case errors.Is(err, game.ErrRoundOver):
		return http.StatusConflict, "round_over"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// ---------------------------- LEADERBOARD ----------------------------------

// handleLeaderboard returns the ranked leaderboard. ?limit=n caps it.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 0)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_limit"})
		return
	}
	s.mu.Lock()
	ranked := s.game.Leaderboard()
	s.mu.Unlock()
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": ranked})
}

// ------------------------------- WORDS -------------------------------------

// handleLookup answers word/prefix membership for ?q=, listing up to ?limit=
// matches (default 10).
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 10)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_limit"})
		return
	}
	writeJSON(w, http.StatusOK, s.vocab.Lookup(r.URL.Query().Get("q"), limit))
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// queryInt parses a non-negative integer query parameter.
func queryInt(r *http.Request, key string, def int) (int, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
