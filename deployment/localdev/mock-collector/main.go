package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

type report struct {
	RawText     string   `json:"raw_text"`
	TLSRelated  bool     `json:"tls_related"`
	Cause       string   `json:"cause"`
	Remediation string   `json:"remediation"`
	TargetHost  string   `json:"target_host"`
	TargetPort  int      `json:"target_port"`
	Phase       string   `json:"phase"`
	Direction   string   `json:"direction"`
	Platform    string   `json:"platform"`
	VPNActive   bool     `json:"vpn_active"`
	ProxyID     string   `json:"proxy_id"`
	Notes       []string `json:"notes"`
	CreatedAt   string   `json:"created_at"`
}

func main() {
	logger := log.New(log.Writer(), "collector-mock ", log.LstdFlags|log.Lmicroseconds)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/api/v1/reports", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var payload report
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		logger.Printf("report: cause=%s target=%s:%d phase=%s tls_related=%t",
			payload.Cause, payload.TargetHost, payload.TargetPort, payload.Phase, payload.TLSRelated)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "accepted"}); err != nil {
			logger.Printf("encode error: %v", err)
		}
	})

	srv := &http.Server{
		Addr:    ":8080",
		Handler: logRequests(logger, mux),
	}

	logger.Println("listening on :8080")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server error: %v", err)
	}
}

func logRequests(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		logger.Printf("%s %s %d %s", r.Method, r.URL.Path, rw.status, time.Since(start))
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
