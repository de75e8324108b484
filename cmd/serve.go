package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordparser/chord"
	"github.com/jsphweid/chordparser/constants"
	"github.com/jsphweid/chordparser/key"
	"github.com/jsphweid/chordparser/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type ctxKey struct{}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serves the chord API over HTTP",
		Long:  `Serves POST /chords, GET /keys/{key} and GET /health on the configured address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a.cfg, a.logger)
		},
	}
}

func serve(ctx context.Context, cfg constants.Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewHandler(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type server struct {
	cfg    constants.Config
	logger *zap.Logger
}

// NewHandler is the full HTTP API: routes, request ids and CORS.
func NewHandler(cfg constants.Config, logger *zap.Logger) http.Handler {
	s := &server{cfg: cfg, logger: logger}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.withRequestID)
	router.HandleFunc("/chords", s.handleChords).Methods(http.MethodPost)
	router.HandleFunc("/keys/{key}", s.handleKey).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return c.Handler(router)
}

func (s *server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		logger := s.logger.With(zap.String("request_id", id))
		logger.Debug("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, logger)))
	})
}

func (s *server) loggerFor(r *http.Request) *zap.Logger {
	if logger, ok := r.Context().Value(ctxKey{}).(*zap.Logger); ok {
		return logger
	}
	return s.logger
}

func (s *server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// the status is already sent, so a failed write can only be logged
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.loggerFor(r).Warn("failed to write response", zap.Error(err))
	}
}

func (s *server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	s.loggerFor(r).Info("bad request", zap.Error(err))
	s.writeJSON(w, r, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

func (s *server) handleChords(w http.ResponseWriter, r *http.Request) {
	var input model.ParseRequestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		s.badRequest(w, r, fmt.Errorf("could not unmarshal request body: %w", err))
		return
	}
	if len(input.Chords) == 0 {
		s.badRequest(w, r, errors.New("at least one chord is required"))
		return
	}

	res := make([]model.ChordView, 0, len(input.Chords))
	for _, notation := range input.Chords {
		c, err := chord.Parse(notation)
		if err != nil {
			s.badRequest(w, r, err)
			return
		}
		if input.Transpose != nil {
			if c, err = s.transpose(c, *input.Transpose); err != nil {
				s.badRequest(w, r, err)
				return
			}
		}
		res = append(res, chordView(c))
	}
	s.loggerFor(r).Debug("parsed chords", zap.Int("count", len(res)))
	s.writeJSON(w, r, http.StatusOK, res)
}

func (s *server) transpose(c chord.Chord, t model.TransposeRequest) (chord.Chord, error) {
	if t.Letters != nil {
		return c.Transpose(t.Semitones, *t.Letters)
	}
	useFlats := s.cfg.UseFlats
	if t.UseFlats != nil {
		useFlats = *t.UseFlats
	}
	return c.TransposeSimple(t.Semitones, useFlats)
}

func (s *server) handleKey(w http.ResponseWriter, r *http.Request) {
	k, err := key.Parse(mux.Vars(r)["key"])
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	v, err := keyView(k)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, v)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, model.HealthResponse{Status: "ok"})
}
