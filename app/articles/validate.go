package articles

import (
	"fmt"
	"unicode/utf8"
)

// ArticleInput is the full-record payload accepted by create and update.
type ArticleInput struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
	StatusCode  string   `json:"status_code"`
	PackCount   *int16   `json:"pack_count"`
	NetWeight   *float64 `json:"net_weight"`
	TaxID       int      `json:"tax_id"`
	FamilyID    *int     `json:"family_id"`
	StateCode   string   `json:"state_code"`
}

// validateArticle checks the field-level constraints and returns the list of
// violations. An empty list means the payload is acceptable; nothing is
// persisted while the list is non-empty.
func validateArticle(in *ArticleInput) []string {
	var violations []string

	if n := utf8.RuneCountInString(in.Code); n < 5 || n > 30 {
		violations = append(violations, "code must be between 5 and 30 characters")
	}
	if n := utf8.RuneCountInString(in.Description); n < 5 || n > 80 {
		violations = append(violations, "description must be between 5 and 80 characters")
	}
	if in.PackCount != nil && (*in.PackCount < 0 || *in.PackCount > 100) {
		violations = append(violations, "pack count must be between 0 and 100")
	}
	if in.NetWeight != nil && (*in.NetWeight < 0.1 || *in.NetWeight > 100) {
		violations = append(violations, "net weight must be between 0.1 and 100")
	}
	if in.TaxID <= 0 {
		violations = append(violations, fmt.Sprintf("tax id %d is not a valid reference", in.TaxID))
	}

	return violations
}
