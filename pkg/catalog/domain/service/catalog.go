package service

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"storefront/pkg/catalog/domain/model"
	"storefront/pkg/common/domain"
)

const defaultPageSize = 10

// Filter narrows a catalog listing. Search matches name or description
// case-insensitively; Category is an exact match. Both are ANDed.
type Filter struct {
	Search   string
	Category string
}

// Page is one page of a filtered catalog listing. Pagination is 1-indexed.
type Page struct {
	Items      []model.Product
	Total      int
	Page       int
	TotalPages int
}

type CatalogService interface {
	List(filter Filter, page, pageSize int) (Page, error)
	Get(id int64) (model.Product, error)
	Create(draft model.Draft) (model.Product, error)
	Update(id int64, draft model.Draft) (model.Product, error)
	Delete(id int64) error
	AdjustStock(id int64, delta int) error
}

func NewCatalogService(repo model.ProductRepository, dispatcher domain.EventDispatcher) CatalogService {
	return &catalogService{repo: repo, dispatcher: dispatcher}
}

type catalogService struct {
	repo       model.ProductRepository
	dispatcher domain.EventDispatcher
}

func (s *catalogService) List(filter Filter, page, pageSize int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	products, err := s.repo.List()
	if err != nil {
		return Page{}, err
	}

	search := strings.ToLower(filter.Search)
	var filtered []model.Product
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

func (s *catalogService) Get(id int64) (model.Product, error) {
	product, err := s.repo.Find(id)
	if err != nil {
		return model.Product{}, err
	}
	return *product, nil
}

func (s *catalogService) Create(draft model.Draft) (model.Product, error) {
	if err := validateDraft(draft); err != nil {
		return model.Product{}, err
	}

	id, err := s.repo.NextID()
	if err != nil {
		return model.Product{}, err
	}

	product := &model.Product{
		ID:          id,
		Name:        draft.Name,
		Price:       draft.Price,
		Category:    draft.Category,
		Description: draft.Description,
		Image:       draft.Image,
		Stock:       draft.Stock,
	}

	if err := s.repo.Store(product); err != nil {
		return model.Product{}, err
	}

	_ = s.dispatcher.Dispatch(model.ProductCreated{ProductID: id, Name: draft.Name})
	return *product, nil
}

func (s *catalogService) Update(id int64, draft model.Draft) (model.Product, error) {
	if err := validateDraft(draft); err != nil {
		return model.Product{}, err
	}

	product, err := s.repo.Find(id)
	if err != nil {
		return model.Product{}, err
	}

	product.Name = draft.Name
	product.Price = draft.Price
	product.Category = draft.Category
	product.Description = draft.Description
	product.Image = draft.Image
	product.Stock = draft.Stock

	if err := s.repo.Store(product); err != nil {
		return model.Product{}, err
	}

	_ = s.dispatcher.Dispatch(model.ProductUpdated{ProductID: id})
	return *product, nil
}

func (s *catalogService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ProductDeleted{ProductID: id})
	return nil
}

func (s *catalogService) AdjustStock(id int64, delta int) error {
	newStock, err := s.repo.AdjustStock(id, delta)
	if err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ProductStockAdjusted{ProductID: id, Delta: delta, NewStock: newStock})
	return nil
}

func validateDraft(draft model.Draft) error {
	if draft.Price.IsNegative() {
		return errors.Wrap(model.ErrInvalidInput, "price cannot be negative")
	}
	if draft.Stock < 0 {
		return errors.Wrap(model.ErrInvalidInput, "stock cannot be negative")
	}
	return nil
}
