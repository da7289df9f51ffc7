package api

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	apperrors "pawtrait/internal/errors"
)

func NewRouter(page *PageHandler, catalog *CatalogHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", page.Index).Methods("GET")
	r.HandleFunc("/booking", page.SubmitBooking).Methods("POST")
	r.HandleFunc("/booking/hold.ics", page.DownloadHold).Methods("GET")

	r.HandleFunc("/api/packages", catalog.GetPackages).Methods("GET")
	r.HandleFunc("/healthz", Healthz).Methods("GET")

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		apperrors.WriteError(w, apperrors.ErrMethodNotAllowed("Method not allowed"))
	})

	return r
}

// WithMiddleware wraps the router with panic recovery, gzip and access logs.
func WithMiddleware(next http.Handler) http.Handler {
	h := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(next)
	h = handlers.CompressHandler(h)
	return handlers.LoggingHandler(os.Stdout, h)
}
