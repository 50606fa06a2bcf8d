package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/nqueens/internal/adapters/http"
	"svw.info/nqueens/internal/generator"
	"svw.info/nqueens/internal/hint"
	"svw.info/nqueens/internal/ports"
	"svw.info/nqueens/internal/solver"
	"svw.info/nqueens/internal/usecase"
	"svw.info/nqueens/internal/validator"
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

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "bitmask", "solver to use: bitmask|basic|parallel")
	workers := flag.Int("workers", 0, "worker count for the parallel solver (0 = NumCPU)")
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

	// Choose solver: bitmask by default, the others via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "basic":
		s = solver.NewBasicSolver()
	case "parallel":
		s = solver.NewParallelSolver(*workers)
	default:
		s = solver.NewBitmaskSolver()
	}

	// Wire providers → use cases → HTTP adapter
	g := generator.NewSolvableGenerator(s)
	v := validator.New()
	hin := hint.NewSingles()
	uc := usecase.NewService(s, g, v, hin)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "solver", *solverKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
