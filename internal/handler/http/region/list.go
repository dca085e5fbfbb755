package region

import (
	"net/http"

	"articles-api/internal/handler/http/respond"
	regionUC "articles-api/internal/usecase/region"
)

type ListHandler struct{ Svc regionUC.Service }

// ServeHTTP 地域一覧取得
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Fail(w, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, reg := range list {
		out = append(out, toDTO(reg))
	}
	respond.JSON(w, http.StatusOK, out)
}
