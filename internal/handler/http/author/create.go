package author

import (
	"net/http"

	"articles-api/internal/handler/http/payload"
	"articles-api/internal/handler/http/respond"
	authorUC "articles-api/internal/usecase/author"
)

type CreateHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者作成
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := payload.Decode(r, payload.Author, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	au, err := h.Svc.Create(r.Context(), authorUC.Input{FirstName: req.FirstName, LastName: req.LastName})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(au))
}
