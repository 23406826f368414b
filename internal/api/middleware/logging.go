package middleware

import (
	"net/http"
	"time"
)

// Logging пишет в лог метод, путь, код ответа и длительность каждого запроса
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			logger.Info("%s %s from %s - status=%d, duration=%v",
				r.Method, r.URL.RequestURI(), r.RemoteAddr, rec.status, time.Since(start))
		})
	}
}
