package domain

import (
	"time"

	"gorm.io/datatypes"
)

// BoardSnapshot is the relational storage slot holding a whole serialized board collection
type BoardSnapshot struct {
	Slot      string         `gorm:"type:varchar(255);primaryKey" json:"slot"`
	Payload   datatypes.JSON `gorm:"not null" json:"payload"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for BoardSnapshot
func (BoardSnapshot) TableName() string {
	return "board_snapshots"
}
