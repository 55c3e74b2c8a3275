package entity

import "github.com/google/uuid"

// Address is owned by the address microservice. It is fetched by id and
// never mutated here.
type Address struct {
	ID      uuid.UUID `json:"id"`
	Street  string    `json:"street"`
	Number  string    `json:"number"`
	City    string    `json:"city"`
	ZipCode string    `json:"zip_code"`
	Country string    `json:"country"`
}
