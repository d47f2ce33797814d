package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the UUID primary key shared by all models
type BaseModel struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}
