package repository

import (
	"github.com/masterdu/masterdu-backend/internal/jsonstore"
	"github.com/masterdu/masterdu-backend/internal/model"
)

// ProductRepository reads the canonical product collection written by
// the seed tool. Products are not editable through the CMS.
type ProductRepository interface {
	GetAll() ([]model.ProductItem, error)
	SaveAll(items []model.ProductItem) error
	FindByID(id string) (*model.ProductItem, error)
}

type productRepository struct {
	items *jsonstore.Collection[model.ProductItem]
}

func NewProductRepository(dataDir string) ProductRepository {
	return &productRepository{
		items: jsonstore.NewCollection[model.ProductItem](dataDir, "products.json"),
	}
}

func (r *productRepository) GetAll() ([]model.ProductItem, error) {
	return r.items.Load()
}

func (r *productRepository) SaveAll(items []model.ProductItem) error {
	return r.items.Save(items)
}

func (r *productRepository) FindByID(id string) (*model.ProductItem, error) {
	items, err := r.items.Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}
