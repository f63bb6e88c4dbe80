package articles

import (
	"encoding/json"
	"net/http"

	"github.com/alphashop/articles-service/app/api"
)

type ArticlesHandler struct {
	service *Service
}

func NewArticlesHandler(s *Service) *ArticlesHandler {
	return &ArticlesHandler{service: s}
}

// HandleSearch serves GET /api/articles?description=...&category=...
func (h *ArticlesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("description")
	category := r.URL.Query().Get("category")

	found, apiErr := h.service.Search(filter, category)
	if apiErr != nil {
		api.WriteError(w, apiErr)
		return
	}
	api.WriteJSON(w, http.StatusOK, found)
}

func (h *ArticlesHandler) HandleGetByCode(w http.ResponseWriter, r *http.Request) {
	article, apiErr := h.service.GetByCode(r.PathValue("code"))
	if apiErr != nil {
		api.WriteError(w, apiErr)
		return
	}
	api.WriteJSON(w, http.StatusOK, article)
}

func (h *ArticlesHandler) HandleGetByBarcode(w http.ResponseWriter, r *http.Request) {
	article, apiErr := h.service.GetByBarcode(r.PathValue("ean"))
	if apiErr != nil {
		api.WriteError(w, apiErr)
		return
	}
	api.WriteJSON(w, http.StatusOK, article)
}

func (h *ArticlesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	created, apiErr := h.service.Create(input)
	if apiErr != nil {
		api.WriteError(w, apiErr)
		return
	}
	api.WriteJSON(w, http.StatusCreated, created)
}

func (h *ArticlesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	updated, apiErr := h.service.Update(input)
	if apiErr != nil {
		api.WriteError(w, apiErr)
		return
	}
	api.WriteJSON(w, http.StatusOK, updated)
}

func (h *ArticlesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	confirmation, apiErr := h.service.Delete(r.PathValue("code"))
	if apiErr != nil {
		api.WriteError(w, apiErr)
		return
	}
	api.WriteJSON(w, http.StatusOK, confirmation)
}

func decodeInput(w http.ResponseWriter, r *http.Request) (*ArticleInput, bool) {
	var input ArticleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, api.NewError("invalid article payload", api.CodeBadRequest))
		return nil, false
	}
	return &input, true
}
