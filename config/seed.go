package config

import (
	"log"

	"laundrypos-backend/models"

	"github.com/shopspring/decimal"
)

// SeedCatalog loads the starter catalog on first run. It is a fixture, not
// business logic: if any category already exists the seed is skipped.
func SeedCatalog() {
	var count int64
	if err := DB.Model(&models.ServiceCategory{}).Count(&count).Error; err != nil {
		log.Printf("Seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	categories := []models.ServiceCategory{
		{Type: models.CategoryWashing, Icon: "washing-machine", Color: "#2196F3", NameEn: "Washing", NameFr: "Lavage", NameRw: "Kumesa", SortOrder: 1, IsActive: true},
		{Type: models.CategoryDrying, Icon: "tumble-dryer", Color: "#FF9800", NameEn: "Drying", NameFr: "Sechage", NameRw: "Kumisha", SortOrder: 2, IsActive: true},
		{Type: models.CategoryAddon, Icon: "plus-circle", Color: "#4CAF50", NameEn: "Add-ons", NameFr: "Supplements", NameRw: "Inyongera", SortOrder: 3, IsActive: true},
		{Type: models.CategoryPackage, Icon: "package-variant", Color: "#9C27B0", NameEn: "Packages", NameFr: "Forfaits", NameRw: "Paki", SortOrder: 4, IsActive: true},
	}

	if err := DB.Create(&categories).Error; err != nil {
		log.Printf("Failed to seed categories: %v", err)
		return
	}

	byType := map[string]*models.ServiceCategory{}
	for i := range categories {
		byType[categories[i].Type] = &categories[i]
	}

	rwf := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	services := []models.Service{
		{CategoryID: byType[models.CategoryWashing].ID, NameEn: "Hot Wash", NameFr: "Lavage a chaud", NameRw: "Kumesa n'amazi ashyushye", DescriptionEn: "60C cycle for whites and heavy soil", Price: rwf(5000), Icon: "thermometer-high", Color: "#E53935", IsAvailable: true},
		{CategoryID: byType[models.CategoryWashing].ID, NameEn: "Cold Wash", NameFr: "Lavage a froid", NameRw: "Kumesa n'amazi akonje", DescriptionEn: "30C cycle for colours and delicates", Price: rwf(3000), Icon: "snowflake", Color: "#1E88E5", IsAvailable: true},
		{CategoryID: byType[models.CategoryWashing].ID, NameEn: "Delicate Wash", NameFr: "Lavage delicat", NameRw: "Kumesa ibyoroshye", DescriptionEn: "Gentle cycle for wool and silk", Price: rwf(6000), Icon: "feather", Color: "#8E24AA", IsAvailable: true},
		{CategoryID: byType[models.CategoryDrying].ID, NameEn: "Express Dry", NameFr: "Sechage express", NameRw: "Kumisha vuba", DescriptionEn: "30 minute high-heat dry", Price: rwf(4000), Icon: "fast-forward", Color: "#FB8C00", IsAvailable: true},
		{CategoryID: byType[models.CategoryDrying].ID, NameEn: "Standard Dry", NameFr: "Sechage standard", NameRw: "Kumisha bisanzwe", DescriptionEn: "60 minute standard dry", Price: rwf(2500), Icon: "weather-sunny", Color: "#FDD835", IsAvailable: true},
		{CategoryID: byType[models.CategoryAddon].ID, NameEn: "Premium Detergent", NameFr: "Lessive premium", NameRw: "Isabune nziza", Price: rwf(1500), Icon: "bottle-tonic", Color: "#43A047", IsAvailable: true},
		{CategoryID: byType[models.CategoryAddon].ID, NameEn: "Fabric Softener", NameFr: "Adoucissant", NameRw: "Yoroshya imyenda", Price: rwf(1000), Icon: "water", Color: "#00ACC1", IsAvailable: true},
		{CategoryID: byType[models.CategoryAddon].ID, NameEn: "Ironing", NameFr: "Repassage", NameRw: "Gutera ipasi", Price: rwf(2000), Icon: "iron", Color: "#6D4C41", IsAvailable: true},
		{CategoryID: byType[models.CategoryPackage].ID, NameEn: "Wash & Dry", NameFr: "Lavage et sechage", NameRw: "Kumesa no kumisha", DescriptionEn: "Cold wash plus standard dry", Price: rwf(8000), Icon: "autorenew", Color: "#5E35B1", IsAvailable: true},
		{CategoryID: byType[models.CategoryPackage].ID, NameEn: "Full Service", NameFr: "Service complet", NameRw: "Serivisi yuzuye", DescriptionEn: "Wash, dry, softener and ironing", Price: rwf(12000), Icon: "star", Color: "#D81B60", IsAvailable: true},
	}

	if err := DB.Create(&services).Error; err != nil {
		log.Printf("Failed to seed services: %v", err)
		return
	}

	log.Printf("Seeded %d categories and %d services", len(categories), len(services))
}
