package article

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type DeleteHandler struct{ Svc artUC.Service }

// ServeHTTP 記事削除 (関連する地域・著者は残る)
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]int64{"id": id})
}
