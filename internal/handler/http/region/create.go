package region

import (
	"net/http"

	"articles-api/internal/handler/http/payload"
	"articles-api/internal/handler/http/respond"
	regionUC "articles-api/internal/usecase/region"
)

type CreateHandler struct{ Svc regionUC.Service }

// ServeHTTP 地域作成
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := payload.Decode(r, payload.Region, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	reg, err := h.Svc.Create(r.Context(), regionUC.Input{Code: req.Code, Name: req.Name})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(reg))
}
