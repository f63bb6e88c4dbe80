package families

import (
	"net/http"

	"github.com/alphashop/articles-service/app/api"
	"github.com/alphashop/articles-service/models"
)

type FamilyResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type FamilyProvider interface {
	ListFamilies() ([]models.AssortmentFamily, error)
}

type FamiliesHandler struct {
	repo FamilyProvider
}

func NewFamiliesHandler(r FamilyProvider) *FamiliesHandler {
	return &FamiliesHandler{repo: r}
}

func (h *FamiliesHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	families, err := h.repo.ListFamilies()
	if err != nil {
		api.WriteError(w, api.NewError("failed to fetch assortment families", api.CodePersistence))
		return
	}
	if len(families) == 0 {
		api.WriteError(w, api.NewError("no assortment family found", api.CodeNotFound))
		return
	}

	response := make([]FamilyResponse, len(families))
	for i, f := range families {
		response[i] = FamilyResponse{
			ID:          f.ID,
			Description: f.Description,
		}
	}
	api.WriteJSON(w, http.StatusOK, response)
}
