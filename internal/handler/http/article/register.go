package article

import (
	"net/http"

	artUC "articles-api/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc artUC.Service) {
	mux.Handle("GET    /articles", ListHandler{svc})
	mux.Handle("POST   /articles", CreateHandler{svc})
	mux.Handle("GET    /articles/{id}", GetHandler{svc})
	mux.Handle("PUT    /articles/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{svc})
}
