package region

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/payload"
	"articles-api/internal/handler/http/respond"
	regionUC "articles-api/internal/usecase/region"
)

type UpdateHandler struct{ Svc regionUC.Service }

// ServeHTTP 地域更新 (全フィールド置換)
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	var req request
	if err := payload.Decode(r, payload.Region, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	reg, err := h.Svc.Update(r.Context(), id, regionUC.Input{Code: req.Code, Name: req.Name})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(reg))
}
