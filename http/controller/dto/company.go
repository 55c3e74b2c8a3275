package dto

import "github.com/google/uuid"

type CreateCompanyRequest struct {
	Name                 string      `json:"name" binding:"required"`
	Description          string      `json:"description"`
	EmployeesNumberRange string      `json:"employees_number_range"`
	SiretNumber          string      `json:"siret_number"`
	AddressIDList        []uuid.UUID `json:"address_id_list"`
}

type UpdateCompanyRequest struct {
	ID                   uuid.UUID   `json:"id" binding:"required"`
	Name                 string      `json:"name" binding:"required"`
	Description          string      `json:"description"`
	EmployeesNumberRange string      `json:"employees_number_range"`
	SiretNumber          string      `json:"siret_number"`
	AddressIDList        []uuid.UUID `json:"address_id_list"`
	Version              int64       `json:"version"`
}
