package stats

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Handler returns the HTTP handler for the stats endpoint.
func Handler(c *Collector) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(c.Snapshot())
	}).Methods("GET")
	return cors.Default().Handler(router)
}

// Serve runs the stats endpoint on addr in its own goroutine. It is a
// session-local observer; failure to bind logs and leaves the game
// running without it.
func Serve(addr string, c *Collector, log *zap.Logger) {
	go func() {
		if err := http.ListenAndServe(addr, Handler(c)); err != nil {
			log.Warn("stats endpoint stopped", zap.String("addr", addr), zap.Error(err))
		}
	}()
}
