package models

// AssortmentFamily groups articles into an assortment category.
type AssortmentFamily struct {
	ID          int    `gorm:"primaryKey"`
	Description string `gorm:"size:40;not null"`
}

func (f *AssortmentFamily) TableName() string {
	return "assortment_families"
}
