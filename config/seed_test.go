package config

import (
	"fmt"
	"testing"

	"laundrypos-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeedCatalogIsIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ServiceCategory{}, &models.Service{}))
	DB = db

	SeedCatalog()

	var categories, services int64
	DB.Model(&models.ServiceCategory{}).Count(&categories)
	DB.Model(&models.Service{}).Count(&services)
	assert.EqualValues(t, 4, categories)
	assert.EqualValues(t, 10, services)

	// Second run must not duplicate the fixture.
	SeedCatalog()
	DB.Model(&models.ServiceCategory{}).Count(&categories)
	DB.Model(&models.Service{}).Count(&services)
	assert.EqualValues(t, 4, categories)
	assert.EqualValues(t, 10, services)
}

func TestSeedCatalogSkipsNonEmptyCatalog(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ServiceCategory{}, &models.Service{}))
	DB = db

	custom := models.ServiceCategory{Type: models.CategoryWashing, NameEn: "Custom", IsActive: true}
	require.NoError(t, DB.Create(&custom).Error)

	SeedCatalog()

	var categories int64
	DB.Model(&models.ServiceCategory{}).Count(&categories)
	assert.EqualValues(t, 1, categories)
}
