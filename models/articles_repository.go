package models

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrArticleNotFound is returned when an article is not found.
var ErrArticleNotFound = errors.New("article not found")

type ArticlesRepository struct {
	db *gorm.DB
}

func NewArticlesRepository(db *gorm.DB) *ArticlesRepository {
	return &ArticlesRepository{
		db: db,
	}
}

// hydrated preloads the full article graph: barcodes, ingredient note,
// tax rate and assortment family.
func (r *ArticlesRepository) hydrated() *gorm.DB {
	return r.db.
		Preload("Barcodes").
		Preload("Ingredient").
		Preload("TaxRate").
		Preload("Family")
}

// FindByDescription returns all articles whose description contains filter,
// ordered by description. Matching is case-sensitive. When category parses
// as an integer the result is further restricted to that assortment family;
// an unparsable category is ignored.
func (r *ArticlesRepository) FindByDescription(filter, category string) ([]Article, error) {
	query := r.hydrated().
		Where("description LIKE ?", "%"+filter+"%").
		Order("description")

	if id, err := strconv.Atoi(category); err == nil {
		query = query.Where("family_id = ?", id)
	}

	var articles []Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *ArticlesRepository) FindByCode(code string) (*Article, error) {
	var article Article
	if err := r.hydrated().
		Where("code = ?", code).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// FindByCodeShallow loads the article row without its related entities.
// Used by the delete path, where hydration would be wasted work.
func (r *ArticlesRepository) FindByCodeShallow(code string) (*Article, error) {
	var article Article
	if err := r.db.
		Where("code = ?", code).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// FindByBarcode resolves an article through one of its barcodes.
func (r *ArticlesRepository) FindByBarcode(barcode string) (*Article, error) {
	var article Article
	if err := r.hydrated().
		Joins("JOIN barcodes ON barcodes.article_code = articles.code").
		Where("barcodes.code = ?", barcode).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticlesRepository) Exists(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&Article{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert writes the article row. Associations are never written here;
// related entities have their own lifecycle.
func (r *ArticlesRepository) Insert(article *Article) error {
	return r.db.Omit(clause.Associations).Create(article).Error
}

// Replace overwrites the whole article row keyed by its code.
func (r *ArticlesRepository) Replace(article *Article) error {
	return r.db.Omit(clause.Associations).Save(article).Error
}

func (r *ArticlesRepository) Remove(article *Article) error {
	return r.db.Delete(article).Error
}

func (r *ArticlesRepository) ListTaxRates() ([]TaxRate, error) {
	var rates []TaxRate
	if err := r.db.Order("rate").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *ArticlesRepository) ListFamilies() ([]AssortmentFamily, error) {
	var families []AssortmentFamily
	if err := r.db.Order("description").Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}
