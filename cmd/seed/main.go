package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/masterdu/masterdu-backend/config"
	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/masterdu/masterdu-backend/internal/service"
	"github.com/xuri/excelize/v2"
)

// 子分類 column groups workbook rows into subcategories.
const subcategoryHeader = "子分類"

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	productRepo := repository.NewProductRepository(cfg.Store.DataDir)

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	doc, skipped, err := readDocumentFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	items := service.NormalizeDocument(doc)
	fmt.Printf("Total products to import: %d (skipped rows: %d)\n", len(items), skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	if err := productRepo.SaveAll(items); err != nil {
		log.Fatal("Failed to write products collection:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(items))
}

// readDocumentFromXLSX builds the nested source document. Each sheet
// is one category; rows are grouped into subcategories by the 子分類
// column, and the remaining headers map onto the bilingual source
// fields by name.
func readDocumentFromXLSX(filePath string) (model.ProductDocument, int, error) {
	var doc model.ProductDocument

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return doc, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return doc, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	skipped := 0
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return doc, 0, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		if len(rows) < 2 {
			fmt.Printf("Sheet %s has no data rows, skipping\n", sheet)
			continue
		}

		headers := rows[0]
		fmt.Printf("Sheet %s headers: %v\n", sheet, headers)

		category := model.ProductCategory{Name: sheet}
		subIndex := make(map[string]int)

		for _, row := range rows[1:] {
			src, subName, ok := parseRow(headers, row)
			if !ok {
				skipped++
				continue
			}
			if subName == "" {
				subName = "一般"
			}

			idx, exists := subIndex[subName]
			if !exists {
				category.Subcategories = append(category.Subcategories, model.ProductSubcategory{Name: subName})
				idx = len(category.Subcategories) - 1
				subIndex[subName] = idx
			}
			category.Subcategories[idx].Items = append(category.Subcategories[idx].Items, src)
		}

		if len(category.Subcategories) > 0 {
			doc.Categories = append(doc.Categories, category)
		}
	}

	return doc, skipped, nil
}

// parseRow maps one workbook row onto a source product through its
// JSON field tags, so header variants stay declared in one place.
func parseRow(headers, row []string) (model.SourceProduct, string, bool) {
	var src model.SourceProduct

	fields := make(map[string]string)
	subName := ""
	for i, header := range headers {
		if i >= len(row) {
			break
		}
		value := strings.TrimSpace(row[i])
		if value == "" {
			continue
		}
		header = strings.TrimSpace(header)
		if header == subcategoryHeader {
			subName = value
			continue
		}
		fields[header] = value
	}
	if len(fields) == 0 {
		return src, "", false
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return src, "", false
	}
	if err := json.Unmarshal(raw, &src); err != nil {
		return src, "", false
	}

	// Rows with no recognizable name column are noise, not products.
	if src.RitualName == "" && src.CourseName == "" {
		return src, "", false
	}

	return src, subName, true
}
