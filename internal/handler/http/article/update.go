package article

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/payload"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type UpdateHandler struct{ Svc artUC.Service }

// ServeHTTP 記事更新
// 地域・著者の関連は置き換え。省略または [] で全て解除される。
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	var req request
	if err := payload.Decode(r, payload.Article, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	a, err := h.Svc.Update(r.Context(), id, req.input())
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}
