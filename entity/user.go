package entity

import "github.com/google/uuid"

// UserAccount is the slice of the user microservice's record needed for
// membership checks.
type UserAccount struct {
	ID        uuid.UUID  `json:"id"`
	Role      string     `json:"role"`
	CompanyID *uuid.UUID `json:"company_id"`
}

const RoleRecruiter = "recruiter"
