package store

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Collection names. These mirror the logical stores of the original
// storefront and are the only keys the record table ever holds.
const (
	CollectionMenu         = "cb_menu_items"
	CollectionOrders       = "cb_orders"
	CollectionReservations = "cb_reservations"
	CollectionCatering     = "cb_catering"
	CollectionSubscribers  = "cb_subscribers"
	CollectionTransactions = "cb_transactions"
	CollectionUsers        = "cb_users"
)

// record is one named collection serialized as a JSON document. The table is
// a key-value store standing in for a database, not a relational schema.
type record struct {
	Collection string    `gorm:"primaryKey;column:collection"`
	Payload    string    `gorm:"column:payload"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (record) TableName() string { return "records" }

// Store is the local record store: typed collections serialized into a
// single SQLite-backed key-value table.
type Store struct {
	db *gorm.DB
}

// Open connects the backing file and migrates the record table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) readRaw(collection string) ([]byte, bool) {
	var rec record
	err := s.db.First(&rec, "collection = ?", collection).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("store: read %s: %v", collection, err)
		}
		return nil, false
	}
	return []byte(rec.Payload), true
}

func (s *Store) writeRaw(collection string, payload []byte) error {
	rec := record{Collection: collection, Payload: string(payload), UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
}

// Read returns the deserialized collection. Absent or corrupt data decodes
// to nil — the store self-heals instead of propagating parse errors.
func Read[T any](s *Store, collection string) []T {
	raw, ok := s.readRaw(collection)
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("store: corrupt payload in %s, treating as empty: %v", collection, err)
		return nil
	}
	return items
}

// Write overwrites the stored collection in a single write.
func Write[T any](s *Store, collection string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.writeRaw(collection, payload)
}
