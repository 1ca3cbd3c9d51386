package demoserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/raysh454/soshin/internal/logging"

	_ "github.com/raysh454/soshin/docs/swagger" // generated API docs
)

// DemoServer serves the workshop pages, the login API they submit to,
// and a control surface for switching the API between success and
// failure behavior.
type DemoServer struct {
	cfg      Config
	store    *Store
	router   chi.Router
	logger   logging.Logger
	upgrader websocket.Upgrader

	modeMu sync.RWMutex
	mode   Mode

	subMu       sync.Mutex
	subscribers map[*websocket.Conn]struct{}
}

// NewDemoServer creates a demo server with its own submission store.
func NewDemoServer(cfg Config) (*DemoServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("DemoServer")
	}
	if cfg.InitialMode == "" {
		cfg.InitialMode = ModeOK
	}

	store, err := OpenStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening submission store: %w", err)
	}

	s := &DemoServer{
		cfg:    cfg,
		store:  store,
		router: chi.NewRouter(),
		logger: logger,
		mode:   cfg.InitialMode,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// the demo server is a local workshop tool
				return true
			},
		},
		subscribers: map[*websocket.Conn]struct{}{},
	}

	s.routes()
	return s, nil
}

func (s *DemoServer) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// Workshop pages
	r.Get("/login", s.pageHandler(loginSubmitPage))
	r.Get("/login/click", s.pageHandler(loginClickPage))

	// API the pages submit to
	r.Post("/api/login", s.handleLogin)
	r.Get("/api/submissions", s.handleListSubmissions)
	r.Get("/api/submissions/{id}/diff", s.handleSubmissionDiff)

	// Failure-mode control
	r.Post("/demo/set-mode", s.handleSetMode)
	r.Get("/demo/get-mode", s.handleGetMode)

	// WebSocket stream of received submissions
	r.Get("/ws/submissions", s.handleSubmissionsWS)

	// Interactive API docs
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}

func (s *DemoServer) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

// ServeHTTP implements http.Handler.
func (s *DemoServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}

	if r.Body != nil && r.Method == http.MethodPost {
		if bodyBytes, err := io.ReadAll(r.Body); err == nil {
			fields = append(fields, logging.Field{Key: "body", Value: string(bodyBytes)})
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Start blocks serving on the configured port.
func (s *DemoServer) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("demo server starting",
		logging.Field{Key: "addr", Value: addr},
		logging.Field{Key: "mode", Value: string(s.Mode())})
	return http.ListenAndServe(addr, s)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *DemoServer) HTTPServer() *http.Server {
	return &http.Server{
		Addr:        fmt.Sprintf(":%d", s.cfg.Port),
		Handler:     s,
		ReadTimeout: 15 * time.Second,
	}
}

// Close shuts down the submission store and any websocket subscribers.
func (s *DemoServer) Close() {
	s.subMu.Lock()
	for conn := range s.subscribers {
		_ = conn.Close()
	}
	s.subscribers = map[*websocket.Conn]struct{}{}
	s.subMu.Unlock()

	if s.store != nil {
		_ = s.store.Close()
	}
}

// Mode returns the current API behavior.
func (s *DemoServer) Mode() Mode {
	s.modeMu.RLock()
	defer s.modeMu.RUnlock()
	return s.mode
}

// SetMode switches the API behavior.
func (s *DemoServer) SetMode(m Mode) {
	s.modeMu.Lock()
	s.mode = m
	s.modeMu.Unlock()
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- HTTP handlers ---

func (s *DemoServer) pageHandler(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(page))
	}
}

// handleLogin accepts the workshop's JSON payload.
//
//	@Summary      Submit login credentials
//	@Description  Accepts the JSON payload the workshop pages POST and stores it as a submission.
//	@Accept       json
//	@Produce      json
//	@Param        payload  body      LoginRequest  true  "Field values read from the form"
//	@Success      200      {object}  LoginResponse
//	@Failure      400      {object}  ErrorResponse
//	@Failure      404      {object}  ErrorResponse
//	@Failure      500      {object}  ErrorResponse
//	@Router       /api/login [post]
func (s *DemoServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch s.Mode() {
	case ModeNotFound:
		s.logger.Info("login rejected by mode", logging.Field{Key: "mode", Value: "not-found"})
		writeError(w, http.StatusNotFound, "no such account")
		return
	case ModeError:
		s.logger.Info("login rejected by mode", logging.Field{Key: "mode", Value: "error"})
		writeError(w, http.StatusInternalServerError, "login backend unavailable")
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}

	var payload map[string]string
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.logger.Warn("decoding login body", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	sub, err := s.store.Insert(r.Context(), payload["username"], string(raw))
	if err != nil {
		s.logger.Warn("storing submission", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Info("stored submission",
		logging.Field{Key: "id", Value: sub.ID},
		logging.Field{Key: "username", Value: sub.Username})
	s.broadcast(sub)

	writeJSON(w, http.StatusOK, map[string]string{"id": sub.ID})
}

// handleListSubmissions returns stored submissions, newest first.
//
//	@Summary  List received submissions
//	@Produce  json
//	@Param    limit  query     int  false  "Maximum number of submissions"
//	@Success  200    {array}   Submission
//	@Failure  500    {object}  ErrorResponse
//	@Router   /api/submissions [get]
func (s *DemoServer) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
			limit = v
		}
	}

	subs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.logger.Warn("listing submissions", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if subs == nil {
		subs = []Submission{}
	}
	writeJSON(w, http.StatusOK, subs)
}

// handleSubmissionDiff shows what changed against the previous attempt.
//
//	@Summary  Diff a submission against the previous one
//	@Produce  json
//	@Param    id   path      string  true  "Submission id"
//	@Success  200  {object}  DiffResponse
//	@Failure  404  {object}  ErrorResponse
//	@Router   /api/submissions/{id}/diff [get]
func (s *DemoServer) handleSubmissionDiff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cur, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "submission not found")
		return
	}

	prev, err := s.store.Previous(r.Context(), id)
	if err != nil {
		// First submission: diff against nothing
		prev = &Submission{}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":       cur.ID,
		"previous": prev.ID,
		"diff":     PayloadDiff(prev.Payload, cur.Payload),
	})
}

func (s *DemoServer) handleSetMode(w http.ResponseWriter, r *http.Request) {
	mode := Mode(r.FormValue("mode"))
	switch mode {
	case ModeOK, ModeNotFound, ModeError:
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown mode %q", mode))
		return
	}

	s.SetMode(mode)
	s.logger.Info("mode changed", logging.Field{Key: "mode", Value: string(mode)})
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "mode": string(mode)})
}

func (s *DemoServer) handleGetMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"mode": string(s.Mode())})
}

// --- WebSocket stream ---

func (s *DemoServer) handleSubmissionsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", logging.Field{Key: "error", Value: err.Error()})
		return
	}

	s.subMu.Lock()
	s.subscribers[conn] = struct{}{}
	s.subMu.Unlock()

	s.logger.Info("submission stream subscriber connected")

	// Drain the connection until the client goes away
	go func() {
		defer func() {
			s.subMu.Lock()
			delete(s.subscribers, conn)
			s.subMu.Unlock()
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *DemoServer) broadcast(sub *Submission) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for conn := range s.subscribers {
		if err := conn.WriteJSON(sub); err != nil {
			_ = conn.Close()
			delete(s.subscribers, conn)
		}
	}
}
