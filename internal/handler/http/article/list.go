package article

import (
	"net/http"

	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type ListHandler struct{ Svc artUC.Service }

// ServeHTTP 記事一覧取得 (地域・著者を含む)
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Fail(w, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
