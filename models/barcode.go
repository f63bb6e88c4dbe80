package models

// Barcode is an EAN code attached to an article.
// A barcode is globally unique and belongs to exactly one article.
type Barcode struct {
	Code        string `gorm:"primaryKey;size:13"`
	ArticleCode string `gorm:"size:30;not null;index"`
	TypeCode    string `gorm:"size:3;not null"`
}

func (b *Barcode) TableName() string {
	return "barcodes"
}
