package articles

import (
	"strings"
	"time"

	"github.com/alphashop/articles-service/models"
)

type ArticleResponse struct {
	Code        string              `json:"code"`
	Description string              `json:"description"`
	Unit        string              `json:"unit"`
	StatusCode  string              `json:"status_code"`
	PackCount   int16               `json:"pack_count"`
	NetWeight   *float64            `json:"net_weight"`
	StateCode   string              `json:"state_code"`
	CreatedOn   time.Time           `json:"created_on"`
	Category    string              `json:"category"`
	Tax         TaxResponse         `json:"tax"`
	Barcodes    []BarcodeResponse   `json:"barcodes"`
	Ingredients *IngredientResponse `json:"ingredients,omitempty"`
}

type BarcodeResponse struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

type TaxResponse struct {
	Description string `json:"description"`
	Rate        int16  `json:"rate"`
}

type IngredientResponse struct {
	ArticleCode string `json:"article_code"`
	Info        string `json:"info"`
}

// mapArticle projects a hydrated article into its flat boundary shape.
// It is a pure function; the same input always yields the same output.
func mapArticle(a *models.Article) ArticleResponse {
	out := ArticleResponse{
		Code:        a.Code,
		Description: cleanString(a.Description),
		Unit:        cleanString(a.Unit),
		StatusCode:  cleanString(a.StatusCode),
		PackCount:   cleanCount(a.PackCount),
		StateCode:   cleanString(a.StateCode),
		CreatedOn:   a.CreatedOn,
		Barcodes:    make([]BarcodeResponse, len(a.Barcodes)),
	}
	if a.NetWeight.Valid {
		weight := a.NetWeight.Decimal.InexactFloat64()
		out.NetWeight = &weight
	}
	if a.Family != nil {
		out.Category = a.Family.Description
	}
	if a.TaxRate != nil {
		out.Tax = mapTaxRate(a.TaxRate)
	}
	for i, b := range a.Barcodes {
		out.Barcodes[i] = mapBarcode(&b)
	}
	if a.Ingredient != nil {
		out.Ingredients = &IngredientResponse{
			ArticleCode: a.Ingredient.ArticleCode,
			Info:        a.Ingredient.Info,
		}
	}
	return out
}

func mapBarcode(b *models.Barcode) BarcodeResponse {
	return BarcodeResponse{
		Code: b.Code,
		Type: b.TypeCode,
	}
}

func mapTaxRate(t *models.TaxRate) TaxResponse {
	return TaxResponse{
		Description: t.Description,
		Rate:        t.Rate,
	}
}

// cleanString turns null-ish values into the empty string and trims the rest.
func cleanString(s string) string {
	return strings.TrimSpace(s)
}

// cleanCount collapses a missing pack count to zero.
func cleanCount(n *int16) int16 {
	if n == nil {
		return 0
	}
	return *n
}
