package articles

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/alphashop/articles-service/app/api"
	"github.com/alphashop/articles-service/models"
)

// Repository is the data access contract the facade depends on.
type Repository interface {
	FindByDescription(filter, category string) ([]models.Article, error)
	FindByCode(code string) (*models.Article, error)
	FindByCodeShallow(code string) (*models.Article, error)
	FindByBarcode(barcode string) (*models.Article, error)
	Exists(code string) (bool, error)
	Insert(article *models.Article) error
	Replace(article *models.Article) error
	Remove(article *models.Article) error
}

// Service orchestrates one unit of work per catalog operation and classifies
// every failure before it reaches the routing shell.
type Service struct {
	repo Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Search returns the articles whose description contains filter, optionally
// restricted to one assortment family.
func (s *Service) Search(filter, category string) ([]ArticleResponse, *api.Error) {
	if strings.TrimSpace(filter) == "" {
		return nil, api.NewError("description filter must not be empty", api.CodeBadRequest)
	}

	found, err := s.repo.FindByDescription(filter, category)
	if err != nil {
		return nil, s.persistenceFailure("search articles", err)
	}
	if len(found) == 0 {
		return nil, api.NewError(
			fmt.Sprintf("no article matches description %q", filter), api.CodeNotFound)
	}

	out := make([]ArticleResponse, len(found))
	for i := range found {
		out[i] = mapArticle(&found[i])
	}
	return out, nil
}

func (s *Service) GetByCode(code string) (*ArticleResponse, *api.Error) {
	if strings.TrimSpace(code) == "" {
		return nil, api.NewError("article code must not be empty", api.CodeBadRequest)
	}

	exists, err := s.repo.Exists(code)
	if err != nil {
		return nil, s.persistenceFailure("check article", err)
	}
	if !exists {
		return nil, notFound(code)
	}

	article, err := s.repo.FindByCode(code)
	if err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			return nil, notFound(code)
		}
		return nil, s.persistenceFailure("load article", err)
	}

	out := mapArticle(article)
	return &out, nil
}

func (s *Service) GetByBarcode(barcode string) (*ArticleResponse, *api.Error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, api.NewError("barcode must not be empty", api.CodeBadRequest)
	}

	article, err := s.repo.FindByBarcode(barcode)
	if err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			return nil, api.NewError(
				fmt.Sprintf("no article carries barcode %s", barcode), api.CodeNotFound)
		}
		return nil, s.persistenceFailure("load article by barcode", err)
	}

	out := mapArticle(article)
	return &out, nil
}

// Create inserts a new article and returns it as re-read from the store.
func (s *Service) Create(in *ArticleInput) (*ArticleResponse, *api.Error) {
	if in == nil {
		return nil, api.NewError("missing article payload", api.CodeBadRequest)
	}
	if violations := validateArticle(in); len(violations) > 0 {
		return nil, api.NewError(strings.Join(violations, "; "), api.CodeBadRequest)
	}

	exists, err := s.repo.Exists(in.Code)
	if err != nil {
		return nil, s.persistenceFailure("check article", err)
	}
	if exists {
		return nil, api.NewError(
			fmt.Sprintf("article %s already exists", in.Code), api.CodeConflict)
	}

	article := toModel(in, s.now())
	if err := s.repo.Insert(article); err != nil {
		return nil, s.persistenceFailure("insert article", err)
	}

	return s.fetchMapped(in.Code)
}

// Update replaces the whole article record keyed by its code.
func (s *Service) Update(in *ArticleInput) (*ArticleResponse, *api.Error) {
	if in == nil {
		return nil, api.NewError("missing article payload", api.CodeBadRequest)
	}
	if violations := validateArticle(in); len(violations) > 0 {
		return nil, api.NewError(strings.Join(violations, "; "), api.CodeBadRequest)
	}

	article := toModel(in, s.now())
	if err := s.repo.Replace(article); err != nil {
		return nil, s.persistenceFailure("replace article", err)
	}

	return s.fetchMapped(in.Code)
}

func (s *Service) Delete(code string) (*api.Confirmation, *api.Error) {
	if strings.TrimSpace(code) == "" {
		return nil, api.NewError("article code must not be empty", api.CodeBadRequest)
	}

	article, err := s.repo.FindByCodeShallow(code)
	if err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			return nil, notFound(code)
		}
		return nil, s.persistenceFailure("load article", err)
	}

	if err := s.repo.Remove(article); err != nil {
		return nil, s.persistenceFailure("remove article", err)
	}

	return &api.Confirmation{
		Timestamp: s.now(),
		Message:   fmt.Sprintf("article %s deleted", code),
	}, nil
}

// fetchMapped re-reads a freshly written article so the caller sees the
// record exactly as the store holds it.
func (s *Service) fetchMapped(code string) (*ArticleResponse, *api.Error) {
	article, err := s.repo.FindByCode(code)
	if err != nil {
		return nil, s.persistenceFailure("reload article", err)
	}
	out := mapArticle(article)
	return &out, nil
}

func (s *Service) persistenceFailure(op string, err error) *api.Error {
	s.log.Error("persistence failure", zap.String("op", op), zap.Error(err))
	return api.NewError(fmt.Sprintf("could not %s: %v", op, err), api.CodePersistence)
}

func notFound(code string) *api.Error {
	return api.NewError(
		fmt.Sprintf("article with code %s was not found", code), api.CodeNotFound)
}

func toModel(in *ArticleInput, createdOn time.Time) *models.Article {
	article := &models.Article{
		Code:        in.Code,
		Description: in.Description,
		Unit:        in.Unit,
		StatusCode:  in.StatusCode,
		PackCount:   in.PackCount,
		TaxID:       in.TaxID,
		FamilyID:    in.FamilyID,
		StateCode:   in.StateCode,
		CreatedOn:   createdOn,
	}
	if in.NetWeight != nil {
		article.NetWeight = decimal.NewNullDecimal(decimal.NewFromFloat(*in.NetWeight))
	}
	return article
}
