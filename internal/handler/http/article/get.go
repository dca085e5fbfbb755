package article

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP 記事詳細取得
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}
