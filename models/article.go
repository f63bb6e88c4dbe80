package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article represents a catalog product record.
// The article code is its natural primary key and is immutable once created.
type Article struct {
	Code        string              `gorm:"primaryKey;size:30"`
	Description string              `gorm:"size:80;not null"`
	Unit        string              `gorm:"size:10"`
	StatusCode  string              `gorm:"size:10"`
	PackCount   *int16
	NetWeight   decimal.NullDecimal `gorm:"type:decimal(6,2)"`
	TaxID       int                 `gorm:"not null"`
	FamilyID    *int
	StateCode   string `gorm:"size:3"`
	CreatedOn   time.Time

	// Associations are loaded only when a read explicitly preloads them.
	Barcodes   []Barcode         `gorm:"foreignKey:ArticleCode;references:Code"`
	Ingredient *Ingredient       `gorm:"foreignKey:ArticleCode;references:Code"`
	TaxRate    *TaxRate          `gorm:"foreignKey:TaxID"`
	Family     *AssortmentFamily `gorm:"foreignKey:FamilyID"`
}

func (a *Article) TableName() string {
	return "articles"
}
