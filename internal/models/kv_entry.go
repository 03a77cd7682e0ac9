package models

import "time"

// KVEntry is one persisted blob in the key-value table.
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;size:128"`
	Value     []byte    `gorm:"column:entry_value;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name used by the migrations.
func (KVEntry) TableName() string {
	return "kv_entries"
}
