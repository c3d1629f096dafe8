package service

import (
	"fmt"

	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/masterdu/masterdu-backend/pkg/util"
)

// ProductService serves the canonical product catalog. The bilingual
// source document is normalized once at ingestion (cmd/seed); read
// sites never probe field variants.
type ProductService interface {
	List() ([]model.ProductItem, error)
	ReplaceAll(items []model.ProductItem) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) List() ([]model.ProductItem, error) {
	return s.repo.GetAll()
}

func (s *productService) ReplaceAll(items []model.ProductItem) error {
	return s.repo.SaveAll(items)
}

// NormalizeDocument flattens the category → subcategory → item source
// document into canonical ProductItems, probing the bilingual field
// variants exactly once. Image URLs follow the workbook row mapping
// (/images/row-<n>.png); n counts data rows across the document.
func NormalizeDocument(doc model.ProductDocument) []model.ProductItem {
	var items []model.ProductItem
	row := 0
	for _, cat := range doc.Categories {
		catIndex := 0
		for _, sub := range cat.Subcategories {
			for _, src := range sub.Items {
				row++
				catIndex++
				items = append(items, model.ProductItem{
					ID:          fmt.Sprintf("p-%s-%d", util.Slugify(cat.Name), catIndex),
					Name:        src.Name(),
					Price:       model.ParseAmount(src.RawPrice()),
					Series:      cat.Name,
					Description: src.Description(),
					ImageURL:    fmt.Sprintf("/images/row-%d.png", row),
				})
			}
		}
	}
	return items
}
