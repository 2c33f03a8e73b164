package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category types for the laundromat catalog.
const (
	CategoryWashing = "washing"
	CategoryDrying  = "drying"
	CategoryAddon   = "addon"
	CategoryPackage = "package"
)

type ServiceCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Type string    `gorm:"type:varchar(20);index;not null"` // washing, drying, addon, package

	Icon  string
	Color string

	NameEn string `gorm:"not null"`
	NameFr string
	NameRw string

	SortOrder int  `gorm:"default:0"`
	IsActive  bool `gorm:"default:true"`

	Services []Service `gorm:"foreignKey:CategoryID"`
}

func (sc *ServiceCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	return
}
