package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/himakhaitan/cmdkv-store/engine"
	"github.com/himakhaitan/cmdkv-store/pkg/config"
	"github.com/himakhaitan/cmdkv-store/store"
	"github.com/himakhaitan/cmdkv-store/types"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	BasePath    = "/api/keyvalue"
	ActionsPath = "/api/keyvalue-actions"
	StatsPath   = "/api/stats"

	maxBodyBytes = 1 << 20
)

type routes struct {
	handler engine.CommandHandler
	stats   store.StatsReporter
	logger  *zap.Logger
}

// NewRouter binds HTTP verbs and paths to commands
func NewRouter(handler engine.CommandHandler, stats store.StatsReporter, logger *zap.Logger) *mux.Router {
	rt := &routes{handler: handler, stats: stats, logger: logger}
	router := mux.NewRouter().UseEncodedPath()
	router.Use(rt.logRequests)

	// Health Check Route
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	router.HandleFunc(BasePath, rt.readAll).Methods(http.MethodGet)
	router.HandleFunc(BasePath, rt.submit).Methods(http.MethodPost)
	router.HandleFunc(BasePath+"/{key}", rt.read).Methods(http.MethodGet)
	router.HandleFunc(BasePath+"/{key}", rt.update).Methods(http.MethodPut)
	router.HandleFunc(BasePath+"/{key}", rt.delete).Methods(http.MethodDelete)
	router.HandleFunc(ActionsPath, rt.actions).Methods(http.MethodPost)
	router.HandleFunc(StatsPath, rt.statistics).Methods(http.MethodGet)

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, types.BaseResponse{Success: false, Message: "method not allowed", Timestamp: time.Now().Unix()})
	})
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, types.BaseResponse{Success: false, Message: "not found", Timestamp: time.Now().Unix()})
	})

	return router
}

// GET /api/keyvalue
func (rt *routes) readAll(w http.ResponseWriter, r *http.Request) {
	rt.handle(w, engine.NewReadAll())
}

// GET /api/keyvalue/{key}
func (rt *routes) read(w http.ResponseWriter, r *http.Request) {
	rt.handle(w, engine.NewRead(pathKey(r)))
}

// POST /api/keyvalue, dispatched by the command's own type
func (rt *routes) submit(w http.ResponseWriter, r *http.Request) {
	var cmd engine.Command
	if err := decodeBody(w, r, &cmd); err != nil {
		rt.invalidBody(w, err)
		return
	}
	rt.handle(w, cmd)
}

// PUT /api/keyvalue/{key}
func (rt *routes) update(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateRequest
	if err := decodeBody(w, r, &req); err != nil {
		rt.invalidBody(w, err)
		return
	}
	key := pathKey(r)
	rt.handle(w, engine.Command{Type: engine.Update, Key: &key, Value: req.Value})
}

// DELETE /api/keyvalue/{key}
func (rt *routes) delete(w http.ResponseWriter, r *http.Request) {
	rt.handle(w, engine.NewDelete(pathKey(r)))
}

// POST /api/keyvalue-actions runs a batch. The response is always 200; each
// element carries its own status.
func (rt *routes) actions(w http.ResponseWriter, r *http.Request) {
	var cmds []engine.Command
	if err := decodeBody(w, r, &cmds); err != nil {
		rt.invalidBody(w, err)
		return
	}
	if cmds == nil {
		cmds = []engine.Command{{}}
	}
	writeJSON(w, http.StatusOK, rt.handler.HandleAll(cmds))
}

// GET /api/stats
func (rt *routes) statistics(w http.ResponseWriter, r *http.Request) {
	stats := rt.stats.Stats()
	writeJSON(w, http.StatusOK, types.StatsResponse{
		TotalKeys: stats.TotalKeys,
		TotalSize: stats.TotalSize,
		Shards:    stats.Shards,
		BaseResponse: types.BaseResponse{
			Success:   true,
			Timestamp: time.Now().Unix(),
			Message:   "stats fetched successfully",
		},
	})
}

func (rt *routes) handle(w http.ResponseWriter, cmd engine.Command) {
	res := rt.handler.Handle(cmd)
	status := http.StatusOK
	if !res.OK() {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, res)
}

func (rt *routes) invalidBody(w http.ResponseWriter, err error) {
	rt.logger.Debug("Rejected request body", zap.Error(err))
	writeJSON(w, http.StatusBadRequest, engine.Failure("invalid json"))
}

// pathKey returns the unescaped {key} route variable. Routes match on the
// escaped path so keys may contain an encoded slash.
func pathKey(r *http.Request) string {
	raw := mux.Vars(r)["key"]
	key, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return key
}

// decodeBody decodes a JSON body into v. An empty body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (rt *routes) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		rt.logger.Info("Handled request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// NewHTTPServer constructs the http.Server with configured addr
func NewHTTPServer(cfg *config.Config, router *mux.Router) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// RegisterHooks starts and stops the server using fx Lifecycle
func RegisterHooks(lc fx.Lifecycle, server *http.Server, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting command key-value store", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("Server failed to start", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping command key-value store")
			if cfg.ShutdownTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.ShutdownTimeout)
				defer cancel()
			}
			return server.Shutdown(ctx)
		},
	})
}
