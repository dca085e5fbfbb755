package region

import (
	"net/http"

	regionUC "articles-api/internal/usecase/region"
)

// Register registers all region-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc regionUC.Service) {
	mux.Handle("GET    /regions", ListHandler{svc})
	mux.Handle("POST   /regions", CreateHandler{svc})
	mux.Handle("GET    /regions/{id}", GetHandler{svc})
	mux.Handle("PUT    /regions/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /regions/{id}", DeleteHandler{svc})
}
