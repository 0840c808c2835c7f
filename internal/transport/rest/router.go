package rest

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ankursharma200/QuestForm/internal/config"
	"github.com/ankursharma200/QuestForm/internal/service"
	"github.com/ankursharma200/QuestForm/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	FormService     *service.FormService
	ResponseService *service.ResponseService
	CORS            config.CORSConfig
	Logger          logrus.FieldLogger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	formHandler := handler.NewFormHandler(c.FormService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)

	r.Use(corsMiddleware(c.CORS))
	r.Use(requestLogger(c.Logger))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/forms", formHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms", formHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}", formHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}", formHandler.Update).Methods("PUT", "OPTIONS")
	api.HandleFunc("/forms/{formId}/publish", formHandler.Publish).Methods("POST", "OPTIONS")

	api.HandleFunc("/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	api.HandleFunc("/responses/form/{formId}", responseHandler.ListByForm).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(cors config.CORSConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cors.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cors.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cors.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(log logrus.FieldLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start).String(),
			}).Info("request handled")
		})
	}
}
