// internal/model/relation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Relation is a directed superior -> subordinate edge between two roles of one structure.
type Relation struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SuperiorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_relations_superior_subordinate_structure" json:"superior_id"`
	SubordinateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_relations_superior_subordinate_structure" json:"subordinate_id"`
	StructureID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_relations_superior_subordinate_structure" json:"structure_id"`
	CreatedAt     time.Time `json:"created_at"`

	Superior    *Role `gorm:"foreignKey:SuperiorID;constraint:OnDelete:CASCADE" json:"superior,omitempty"`
	Subordinate *Role `gorm:"foreignKey:SubordinateID;constraint:OnDelete:CASCADE" json:"subordinate,omitempty"`
}
