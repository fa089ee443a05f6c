package api

import "net/http"

// serviceName identifies this service in the health check body.
const serviceName = "task-service"

// HealthCheck handles GET /health. It requires no authentication and does
// not touch the database; liveness only.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
	})
}
