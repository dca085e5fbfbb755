package author

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	authorUC "articles-api/internal/usecase/author"
)

type DeleteHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者削除
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
