package service

import (
	"testing"

	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_ListAndReplaceAll(t *testing.T) {
	repo := repository.NewProductRepository(t.TempDir())
	svc := NewProductService(repo)

	items, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, items)

	seeded := []model.ProductItem{
		{ID: "p-a-1", Name: "開光水晶", Price: 500, Series: "水晶"},
	}
	require.NoError(t, svc.ReplaceAll(seeded))

	items, err = svc.List()
	require.NoError(t, err)
	assert.Equal(t, seeded, items)
}

func TestNormalizeDocument(t *testing.T) {
	doc := model.ProductDocument{
		Categories: []model.ProductCategory{
			{
				Name: "法事儀式",
				Subcategories: []model.ProductSubcategory{
					{
						Name: "祈福",
						Items: []model.SourceProduct{
							{
								RitualName:    "靈符加持",
								RitualPrice:   model.NumericPrice(6800),
								RitualContent: "招財開運",
							},
							{
								RitualName:  "化太歲",
								RitualPrice: model.TextPrice("$1,200"),
							},
						},
					},
				},
			},
			{
				Name: "課程",
				Subcategories: []model.ProductSubcategory{
					{
						Name: "一般",
						Items: []model.SourceProduct{
							{
								CourseName:      "風水課程",
								TuitionPrice:    model.TextPrice("$3,888/ 兩天工作坊"),
								TeachingContent: "羅盤使用方法",
							},
						},
					},
				},
			},
		},
	}

	items := NormalizeDocument(doc)
	require.Len(t, items, 3)

	assert.Equal(t, "p-法事儀式-1", items[0].ID)
	assert.Equal(t, "靈符加持", items[0].Name)
	assert.Equal(t, float64(6800), items[0].Price)
	assert.Equal(t, "法事儀式", items[0].Series)
	assert.Equal(t, "招財開運", items[0].Description)
	assert.Equal(t, "/images/row-1.png", items[0].ImageURL)

	assert.Equal(t, "p-法事儀式-2", items[1].ID)
	assert.Equal(t, float64(1200), items[1].Price)
	assert.Equal(t, "/images/row-2.png", items[1].ImageURL)

	// The category index resets per category, the row counter does not.
	assert.Equal(t, "p-課程-1", items[2].ID)
	assert.Equal(t, "風水課程", items[2].Name)
	assert.Equal(t, float64(3888), items[2].Price)
	assert.Equal(t, "/images/row-3.png", items[2].ImageURL)
}

func TestNormalizeDocument_Empty(t *testing.T) {
	items := NormalizeDocument(model.ProductDocument{})
	assert.Empty(t, items)
}
