// controllers/category.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"laundrypos-backend/config"
	"laundrypos-backend/models"
	"laundrypos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCategoryInput defines the expected JSON structure for creating a category
type CreateCategoryInput struct {
	Type      string `json:"type" binding:"required,oneof=washing drying addon package"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	NameEn    string `json:"nameEn" binding:"required"`
	NameFr    string `json:"nameFr"`
	NameRw    string `json:"nameRw"`
	SortOrder int    `json:"sortOrder"`
}

// UpdateCategoryInput defines the expected JSON structure for updating a category
type UpdateCategoryInput struct {
	Type      *string `json:"type" binding:"omitempty,oneof=washing drying addon package"`
	Icon      *string `json:"icon"`
	Color     *string `json:"color"`
	NameEn    *string `json:"nameEn"`
	NameFr    *string `json:"nameFr"`
	NameRw    *string `json:"nameRw"`
	SortOrder *int    `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}

func (in UpdateCategoryInput) empty() bool {
	return in.Type == nil && in.Icon == nil && in.Color == nil &&
		in.NameEn == nil && in.NameFr == nil && in.NameRw == nil &&
		in.SortOrder == nil && in.IsActive == nil
}

// CreateCategory creates a new service category
func CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category := models.ServiceCategory{
		Type:      input.Type,
		Icon:      input.Icon,
		Color:     input.Color,
		NameEn:    input.NameEn,
		NameFr:    input.NameFr,
		NameRw:    input.NameRw,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, category)
}

// GetCategories retrieves all categories ordered by sort order
func GetCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := config.DB.Order("sort_order ASC").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	utils.RespondWithData(c, http.StatusOK, categories)
}

// GetActiveCategories retrieves active categories only, ordered by sort order
func GetActiveCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := config.DB.Where("is_active = ?", true).
		Order("sort_order ASC").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	utils.RespondWithData(c, http.StatusOK, categories)
}

// GetCategoriesByType retrieves categories matching a type tag, case-insensitively
func GetCategoriesByType(c *gin.Context) {
	categoryType := strings.ToLower(c.Param("type"))

	var categories []models.ServiceCategory
	if err := config.DB.Where("LOWER(type) = ? AND is_active = ?", categoryType, true).
		Order("sort_order ASC").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	utils.RespondWithData(c, http.StatusOK, categories)
}

// GetCategory retrieves a specific category by ID
func GetCategory(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var category models.ServiceCategory
	if err := config.DB.First(&category, "id = ?", categoryUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, category)
}

// UpdateCategory updates an existing category
func UpdateCategory(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var input UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.empty() {
		utils.RespondWithError(c, http.StatusBadRequest, "Update payload is empty")
		return
	}

	var category models.ServiceCategory
	if err := config.DB.First(&category, "id = ?", categoryUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Type != nil {
		category.Type = *input.Type
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}
	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.NameEn != nil {
		category.NameEn = *input.NameEn
	}
	if input.NameFr != nil {
		category.NameFr = *input.NameFr
	}
	if input.NameRw != nil {
		category.NameRw = *input.NameRw
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	utils.RespondWithData(c, http.StatusOK, category)
}

// DeleteCategory deactivates a category. Rows are never removed: historical
// transaction items keep resolving through them.
func DeleteCategory(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	result := config.DB.Model(&models.ServiceCategory{}).
		Where("id = ?", categoryUUID).
		Update("is_active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate category")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Category deactivated successfully")
}
