package author

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	authorUC "articles-api/internal/usecase/author"
)

type GetHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者詳細取得
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	au, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(au))
}
