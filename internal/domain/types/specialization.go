package types

import "time"

// Specialization is a skill cluster that question sets are attached to.
type Specialization struct {
	ID        string               `json:"_id"`
	Name      string               `json:"name"`
	Status    SpecializationStatus `json:"status"`
	Skills    []string             `json:"skills"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// SpecializationPayload is the body of create and update calls.
type SpecializationPayload struct {
	Name   string               `json:"name"`
	Status SpecializationStatus `json:"status,omitempty"`
	Skills []string             `json:"skills,omitempty"`
}
