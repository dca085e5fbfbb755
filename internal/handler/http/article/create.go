package article

import (
	"net/http"

	"articles-api/internal/handler/http/payload"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type CreateHandler struct{ Svc artUC.Service }

// ServeHTTP 記事作成
// 地域・著者は {id} なら既存を紐付け、フィールド指定なら新規作成する。
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := payload.Decode(r, payload.Article, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	a, err := h.Svc.Create(r.Context(), req.input())
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(a))
}
