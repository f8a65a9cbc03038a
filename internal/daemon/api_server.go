package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"stemsync/internal/api"
	"stemsync/internal/config"
	"stemsync/internal/frame"
	"stemsync/internal/ogimage"
)

type apiServer struct {
	bind    string
	baseURL string
	logger  *slog.Logger
	daemon  *Daemon

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) (*apiServer, error) {
	if cfg == nil || d == nil {
		return nil, nil
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil, nil
	}

	srv := &apiServer{
		bind:    bind,
		baseURL: cfg.Paths.BaseURL,
		logger:  logger,
		daemon:  d,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", srv.handleStatus)
	mux.HandleFunc("/api/project", srv.handleProject)
	mux.HandleFunc("/api/frame", srv.handleFrame)
	mux.HandleFunc("/api/frame/upload", srv.handleFrameUpload)
	mux.HandleFunc("/api/og", srv.handleOG)
	mux.HandleFunc("/api/og/upload", srv.handleOG)

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

func (s *apiServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", slog.String("error", err.Error()))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", slog.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *apiServer) address() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, api.KindInvalid, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromStatus(s.daemon.WorkflowStatus()))
}

func (s *apiServer) handleProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, api.KindInvalid, "method not allowed")
		return
	}
	p := api.FromProject(s.daemon.WorkflowStatus().Project)
	if p == nil {
		s.writeError(w, http.StatusNotFound, api.KindNoActiveProject, "no active project")
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// frameRequest mirrors the signed frame action payload; only the untrusted
// block is read since no signature verification happens here.
type frameRequest struct {
	UntrustedData struct {
		ButtonIndex int `json:"buttonIndex"`
	} `json:"untrustedData"`
}

func (s *apiServer) handleFrame(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.writeHTML(w, frame.Default(s.baseURL))
	case http.MethodPost:
		var req frameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, api.KindInvalid, "invalid frame payload")
			return
		}
		s.writeHTML(w, frame.Respond(s.baseURL, req.UntrustedData.ButtonIndex))
	default:
		s.writeError(w, http.StatusMethodNotAllowed, api.KindInvalid, "method not allowed")
	}
}

func (s *apiServer) handleFrameUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, api.KindInvalid, "method not allowed")
		return
	}
	// Button presses on the upload card route back to the upload card; the
	// actual file transfer happens out of band through the CLI or IPC.
	s.writeHTML(w, frame.Start(s.baseURL))
}

func (s *apiServer) handleOG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, api.KindInvalid, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=60")
	if err := ogimage.EncodePNG(w, rand.Int63()); err != nil {
		s.logger.Error("failed to render preview image", slog.String("error", err.Error()))
	}
}

func (s *apiServer) writeHTML(w http.ResponseWriter, doc frame.Document) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc.RenderHTML())); err != nil {
		s.logger.Error("failed to write frame response", slog.String("error", err.Error()))
	}
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, kind, message string) {
	s.writeJSON(w, status, api.Error{Kind: kind, Message: message})
}
