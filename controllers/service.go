// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"laundrypos-backend/config"
	"laundrypos-backend/models"
	"laundrypos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	CategoryID    uuid.UUID       `json:"categoryId" binding:"required"`
	NameEn        string          `json:"nameEn" binding:"required"`
	NameFr        string          `json:"nameFr"`
	NameRw        string          `json:"nameRw"`
	DescriptionEn string          `json:"descriptionEn"`
	DescriptionFr string          `json:"descriptionFr"`
	DescriptionRw string          `json:"descriptionRw"`
	Price         decimal.Decimal `json:"price"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	CategoryID    *uuid.UUID       `json:"categoryId"`
	NameEn        *string          `json:"nameEn"`
	NameFr        *string          `json:"nameFr"`
	NameRw        *string          `json:"nameRw"`
	DescriptionEn *string          `json:"descriptionEn"`
	DescriptionFr *string          `json:"descriptionFr"`
	DescriptionRw *string          `json:"descriptionRw"`
	Price         *decimal.Decimal `json:"price"`
	Icon          *string          `json:"icon"`
	Color         *string          `json:"color"`
	IsAvailable   *bool            `json:"isAvailable"`
}

func (in UpdateServiceInput) empty() bool {
	return in.CategoryID == nil && in.NameEn == nil && in.NameFr == nil &&
		in.NameRw == nil && in.DescriptionEn == nil && in.DescriptionFr == nil &&
		in.DescriptionRw == nil && in.Price == nil && in.Icon == nil &&
		in.Color == nil && in.IsAvailable == nil
}

// CreateService creates a new catalog service
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
		return
	}

	// Validate the category exists
	var category models.ServiceCategory
	if err := config.DB.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	service := models.Service{
		CategoryID:    input.CategoryID,
		NameEn:        input.NameEn,
		NameFr:        input.NameFr,
		NameRw:        input.NameRw,
		DescriptionEn: input.DescriptionEn,
		DescriptionFr: input.DescriptionFr,
		DescriptionRw: input.DescriptionRw,
		Price:         input.Price,
		Icon:          input.Icon,
		Color:         input.Color,
		IsAvailable:   true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, service)
}

// GetServices retrieves all services
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	utils.RespondWithData(c, http.StatusOK, services)
}

// GetAvailableServices retrieves available services only
func GetAvailableServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("is_available = ?", true).Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	utils.RespondWithData(c, http.StatusOK, services)
}

// GetServicesByCategory retrieves available services belonging to a category
func GetServicesByCategory(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var services []models.Service
	if err := config.DB.Where("category_id = ? AND is_available = ?", categoryUUID, true).
		Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	utils.RespondWithData(c, http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.empty() {
		utils.RespondWithError(c, http.StatusBadRequest, "Update payload is empty")
		return
	}
	if input.Price != nil && input.Price.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CategoryID != nil {
		var category models.ServiceCategory
		if err := config.DB.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Category not found")
			return
		}
		service.CategoryID = *input.CategoryID
	}
	if input.NameEn != nil {
		service.NameEn = *input.NameEn
	}
	if input.NameFr != nil {
		service.NameFr = *input.NameFr
	}
	if input.NameRw != nil {
		service.NameRw = *input.NameRw
	}
	if input.DescriptionEn != nil {
		service.DescriptionEn = *input.DescriptionEn
	}
	if input.DescriptionFr != nil {
		service.DescriptionFr = *input.DescriptionFr
	}
	if input.DescriptionRw != nil {
		service.DescriptionRw = *input.DescriptionRw
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Icon != nil {
		service.Icon = *input.Icon
	}
	if input.Color != nil {
		service.Color = *input.Color
	}
	if input.IsAvailable != nil {
		service.IsAvailable = *input.IsAvailable
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	utils.RespondWithData(c, http.StatusOK, service)
}

// DeleteService marks a service unavailable. The row stays so historical
// transaction items keep resolving.
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Model(&models.Service{}).
		Where("id = ?", serviceUUID).
		Update("is_available", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Service deactivated successfully")
}
