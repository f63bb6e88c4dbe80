package taxrates

import (
	"net/http"

	"github.com/alphashop/articles-service/app/api"
	"github.com/alphashop/articles-service/models"
)

type TaxRateResponse struct {
	Description string `json:"description"`
	Rate        int16  `json:"rate"`
}

type TaxRateProvider interface {
	ListTaxRates() ([]models.TaxRate, error)
}

type TaxRatesHandler struct {
	repo TaxRateProvider
}

func NewTaxRatesHandler(r TaxRateProvider) *TaxRatesHandler {
	return &TaxRatesHandler{repo: r}
}

func (h *TaxRatesHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	rates, err := h.repo.ListTaxRates()
	if err != nil {
		api.WriteError(w, api.NewError("failed to fetch tax rates", api.CodePersistence))
		return
	}
	if len(rates) == 0 {
		api.WriteError(w, api.NewError("no tax rate found", api.CodeNotFound))
		return
	}

	response := make([]TaxRateResponse, len(rates))
	for i, t := range rates {
		response[i] = TaxRateResponse{
			Description: t.Description,
			Rate:        t.Rate,
		}
	}
	api.WriteJSON(w, http.StatusOK, response)
}
