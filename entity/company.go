package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Company struct {
	ID                   uuid.UUID                     `json:"id" gorm:"type:uuid;primaryKey"`
	Name                 string                        `json:"name" binding:"required" gorm:"not null"`
	LogoURL              string                        `json:"logo_url" gorm:"type:varchar(1024)"`
	Description          string                        `json:"description" gorm:"type:text"`
	EmployeesNumberRange string                        `json:"employees_number_range" gorm:"type:varchar(64)"`
	SiretNumber          string                        `json:"siret_number" gorm:"type:varchar(32)"`
	AddressIDList        datatypes.JSONSlice[uuid.UUID] `json:"address_id_list" gorm:"not null"`
	DocumentsURL         datatypes.JSONSlice[string]    `json:"documents_url" gorm:"not null"`
	Version              int64                         `json:"version" gorm:"not null;default:0"`
	CreatedAt            time.Time                     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time                     `json:"updated_at" gorm:"autoUpdateTime"`
}

// CompanyMinimized is the id/name projection used by listing endpoints.
type CompanyMinimized struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CompanyDetails is the hydrated read model: the company's own fields plus
// the address records resolved from the address service, in the same order
// as AddressIDList. It is built per request and never persisted.
type CompanyDetails struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	LogoURL              string    `json:"logo_url"`
	Description          string    `json:"description"`
	EmployeesNumberRange string    `json:"employees_number_range"`
	SiretNumber          string    `json:"siret_number"`
	Addresses            []Address `json:"addresses"`
	DocumentsURL         []string  `json:"documents_url"`
}
