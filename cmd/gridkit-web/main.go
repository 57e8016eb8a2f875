package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/gridkit/internal/adapters/http"
	"svw.info/gridkit/internal/domain"
	"svw.info/gridkit/internal/engine"
	"svw.info/gridkit/internal/games"
	"svw.info/gridkit/internal/infrastructure/session"
	"svw.info/gridkit/internal/ports"
	"svw.info/gridkit/internal/usecase"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

// slogSink mirrors propagation traces into the server log at debug level.
type slogSink struct {
	logger *slog.Logger
}

func (s slogSink) Elimination(at domain.Coordinate, value domain.CellContent, rule, scope string) {
	s.logger.Debug("eliminate", "at", at.String(), "value", value.String(), "rule", rule, "scope", scope)
}

func (s slogSink) PassDone(pass, eliminations int) {
	s.logger.Debug("pass", "n", pass, "eliminations", eliminations)
}

func (s slogSink) Finished(res domain.PropagationResult, st ports.Stats) {
	s.logger.Info("propagation finished",
		"result", res.Outcome.String(),
		"passes", st.Passes,
		"eliminations", st.Eliminations,
		"dur", st.Duration.Round(time.Millisecond),
	)
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	catalog, err := games.NewRegistry()
	if err != nil {
		logger.Error("catalog error", "err", err)
		os.Exit(1)
	}

	// Wire providers → use cases → HTTP adapter
	eng := engine.New()
	store := session.NewMemory()
	uc := usecase.NewService(eng, catalog, store)
	h := httpadapter.New(uc, slogSink{logger: logger})

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"service": "gridkit",
			"games":   catalog.Names(),
		})
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "games", len(catalog.Names()))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
