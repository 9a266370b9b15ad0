package cluster

import (
	"fmt"
	"log"
	"net/http"
)

// NewHealthHandler retorna um liveness check simples: confirma que o
// processo está de pé e o servidor HTTP responde.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Service is alive.")
	}
}

// ServeHealth sobe o endpoint /health em uma porta dedicada, em sua própria
// goroutine. Falha aqui não derruba o jogo, só o health check.
func ServeHealth(port int) {
	mux := http.NewServeMux()
	mux.Handle("/health", NewHealthHandler())

	go func() {
		addr := fmt.Sprintf(":%d", port)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("[cluster] health endpoint on %s failed: %v", addr, err)
		}
	}()
}
