package model

import (
	"regexp"
	"strconv"
	"strings"
)

// ProductItem is the canonical catalog record produced by the seed
// tool. API read sites only ever see this shape.
type ProductItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Series      string  `json:"series"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// ProductDocument is the nested source document exported from the
// product workbook: category → subcategory → item, with field names
// that vary by item kind (rituals vs courses).
type ProductDocument struct {
	Categories []ProductCategory `json:"categories"`
}

type ProductCategory struct {
	Name          string               `json:"name"`
	Subcategories []ProductSubcategory `json:"subcategories"`
}

type ProductSubcategory struct {
	Name  string          `json:"name"`
	Items []SourceProduct `json:"items"`
}

// SourceProduct carries the bilingual field variants of a workbook
// row. The probe methods below are the only place in the codebase
// that touches these fields; everything downstream uses ProductItem.
type SourceProduct struct {
	RitualName      string `json:"儀式名稱,omitempty"`
	CourseName      string `json:"課程名稱,omitempty"`
	RitualPrice     Price  `json:"紅兒價錢,omitempty"`
	TuitionPrice    Price  `json:"學費價錢,omitempty"`
	CourseFee       Price  `json:"課程費用,omitempty"`
	RitualContent   string `json:"儀式內容,omitempty"`
	TeachingContent string `json:"教學內容,omitempty"`
	CourseContent   string `json:"課程內容,omitempty"`
	LearningContent string `json:"學習內容,omitempty"`
	Prerequisite    string `json:"必修修件,omitempty"`
	Condition       string `json:"修讀條件,omitempty"`
	InstagramURL    string `json:"Instagram 網址,omitempty"`
}

// Name probes the item-kind name variants.
func (p SourceProduct) Name() string {
	if p.RitualName != "" {
		return p.RitualName
	}
	if p.CourseName != "" {
		return p.CourseName
	}
	return "未命名產品"
}

// Description probes the item-kind content variants.
func (p SourceProduct) Description() string {
	for _, s := range []string{p.RitualContent, p.TeachingContent, p.CourseContent, p.LearningContent} {
		if s != "" {
			return s
		}
	}
	return ""
}

// RawPrice probes the item-kind price variants.
func (p SourceProduct) RawPrice() Price {
	for _, pr := range []Price{p.RitualPrice, p.TuitionPrice, p.CourseFee} {
		if pr.IsNumeric() || pr.Text() != "" {
			return pr
		}
	}
	return Price{}
}

var priceDigits = regexp.MustCompile(`[\d,]+\.?\d*`)

// ParseAmount extracts a numeric amount from a workbook price such
// as "$3,888/ 兩天工作坊" or "6800.0". Unparseable prices are 0.
func ParseAmount(p Price) float64 {
	if p.IsNumeric() {
		return p.Amount()
	}
	match := priceDigits.FindString(p.Text())
	if match == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return amount
}
