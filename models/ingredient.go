package models

// Ingredient holds the free-text ingredient note for an article.
// The article code doubles as primary key, enforcing the one-to-one.
type Ingredient struct {
	ArticleCode string `gorm:"primaryKey;size:30"`
	Info        string `gorm:"type:text"`
}

func (i *Ingredient) TableName() string {
	return "ingredients"
}
