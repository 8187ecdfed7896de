package middleware

import (
	"net/http"
	"time"

	"github.com/skillotech/ambassador-api/internal/logger"
)

// responseStats - код и размер ответа, снятые по ходу обработки
type responseStats struct {
	status int
	size   int
}

// statsWriter - обёртка над http.ResponseWriter, подсматривающая ответ
type statsWriter struct {
	http.ResponseWriter
	stats *responseStats
}

func (w *statsWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.stats.size += size
	return size, err
}

func (w *statsWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.stats.status = statusCode
}

// LogHandle — middleware-логер для входящих HTTP-запросов
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		stats := &responseStats{}
		sw := statsWriter{ResponseWriter: w, stats: stats}

		h.ServeHTTP(&sw, r)

		logger.Info("got incoming HTTP request",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", stats.status,
			"duration", time.Since(start),
			"size", stats.size,
		)
	})
}
