package models

// TaxRate is a VAT rate referenced by many articles.
// Rate is expressed as an integer percentage.
type TaxRate struct {
	ID          int    `gorm:"primaryKey"`
	Description string `gorm:"size:40;not null"`
	Rate        int16  `gorm:"not null"`
}

func (t *TaxRate) TableName() string {
	return "tax_rates"
}
