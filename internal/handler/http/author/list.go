package author

import (
	"net/http"

	"articles-api/internal/handler/http/respond"
	authorUC "articles-api/internal/usecase/author"
)

type ListHandler struct{ Svc authorUC.Service }

// ServeHTTP 著者一覧取得
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Fail(w, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, au := range list {
		out = append(out, toDTO(au))
	}
	respond.JSON(w, http.StatusOK, out)
}
