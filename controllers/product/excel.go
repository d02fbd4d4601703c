package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/chinmay09gowda/e-commerce.website/models"
)

// ImportProductsFromExcel upserts products from an uploaded sheet in the
// same column layout ExportProductsToExcel produces. Rows with an ID
// update the matching product; rows without one create a new product.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if len(row.Cells) < 11 {
				skippedCount++
				continue
			}

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			slug := get(2)
			description := get(3)
			price, err1 := strconv.ParseFloat(get(4), 64)
			stock, _ := strconv.Atoi(get(5))
			featured, _ := strconv.ParseBool(get(6))
			rating, _ := strconv.ParseFloat(get(7), 64)
			reviewsCount, _ := strconv.Atoi(get(8))
			imageURL := get(9)
			categoryID, err2 := uuid.Parse(get(10))

			if name == "" || err1 != nil || err2 != nil {
				skippedCount++
				continue
			}
			if slug == "" {
				slug = Slugify(name)
			}

			product := models.Product{
				Name:         name,
				Slug:         slug,
				Description:  description,
				Price:        price,
				Stock:        stock,
				Featured:     featured,
				Rating:       rating,
				ReviewsCount: reviewsCount,
				ImageURL:     imageURL,
				CategoryID:   categoryID,
			}

			if idStr != "" {
				if id, err := uuid.Parse(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, "id = ?", id).Error; err == nil {
						existing.Name = product.Name
						existing.Slug = product.Slug
						existing.Description = product.Description
						existing.Price = product.Price
						existing.Stock = product.Stock
						existing.Featured = product.Featured
						existing.Rating = product.Rating
						existing.ReviewsCount = product.ReviewsCount
						existing.ImageURL = product.ImageURL
						existing.CategoryID = product.CategoryID

						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			// Insert new product
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
