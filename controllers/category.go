// controllers/category.go
package controllers

import (
	"errors"
	"net/http"
	"salon-admin/config"
	"salon-admin/models"
	"salon-admin/utils"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateCategory creates a new service category
func CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Category name cannot be empty")
		return
	}

	category := models.Category{
		Name:        name,
		Description: input.Description,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Category already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetCategories retrieves all categories
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// UpdateCategory updates a category's name and description. Services keep
// referencing categories by name, so renames also rewrite the service rows
// that pointed at the old name.
func UpdateCategory(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Category name cannot be empty")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, "id = ?", categoryUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	oldName := category.Name
	category.Name = name
	category.Description = input.Description

	tx := config.DB.Begin()
	if err := tx.Save(&category).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}
	if oldName != name {
		if err := tx.Model(&models.Service{}).Where("category = ?", oldName).
			Update("category", name).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update category")
			return
		}
	}
	tx.Commit()

	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category. Existing services keep their category
// name string; the panel shows it until the service is edited.
func DeleteCategory(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	result := config.DB.Delete(&models.Category{}, "id = ?", categoryUUID)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
