package author

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/payload"
	"articles-api/internal/handler/http/respond"
	authorUC "articles-api/internal/usecase/author"
)

type UpdateHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者更新 (全フィールド置換)
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	var req request
	if err := payload.Decode(r, payload.Author, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	au, err := h.Svc.Update(r.Context(), id, authorUC.Input{FirstName: req.FirstName, LastName: req.LastName})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(au))
}
