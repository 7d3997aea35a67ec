package snapshot

import (
	"time"

	"gorm.io/datatypes"
)

// StoreSnapshot holds one serialized store collection (rows plus next id).
type StoreSnapshot struct {
	Collection string         `gorm:"column:collection;primaryKey;size:64"`
	Data       datatypes.JSON `gorm:"column:data;type:jsonb;not null"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (StoreSnapshot) TableName() string {
	return "store_snapshots"
}
