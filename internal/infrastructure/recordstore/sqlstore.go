package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecordModel is one element of a collection. Position preserves list order.
type RecordModel struct {
	ID         uint           `gorm:"primaryKey"`
	Collection string         `gorm:"size:64;not null;index:idx_records_collection_position,priority:1"`
	Position   int            `gorm:"not null;index:idx_records_collection_position,priority:2"`
	Payload    datatypes.JSON `gorm:"not null"`
	UpdatedAt  time.Time
}

func (RecordModel) TableName() string {
	return "records"
}

// SQLStore stores collections as rows of the records table.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var rows []RecordModel
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}

	out := make([]json.RawMessage, len(rows))
	for i, r := range rows {
		out[i] = json.RawMessage(r.Payload)
	}
	return out, nil
}

// Put replaces the collection inside one database transaction.
func (s *SQLStore) Put(ctx context.Context, collection string, records []json.RawMessage) error {
	now := time.Now().UTC()
	rows := make([]RecordModel, len(records))
	for i, r := range records {
		rows[i] = RecordModel{
			Collection: collection,
			Position:   i,
			Payload:    datatypes.JSON(r),
			UpdatedAt:  now,
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", collection).Delete(&RecordModel{}).Error; err != nil {
			return fmt.Errorf("clear %s: %w", collection, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("insert %s: %w", collection, err)
		}
		return nil
	})
}
