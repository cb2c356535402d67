package database

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"threatscout/internal/domain"
)

// ErrStoreClosed is returned when an operation runs before Open or after
// Close. Callers treat it as a programming error and fail fast.
var ErrStoreClosed = errors.New("database: store is not open")

// Store is the append-only, deduplicating persistence layer for IoC records.
// It holds a single sqlite connection; (value, type) is unique across the
// corpus and rows are never updated or deleted.
type Store struct {
	dsn string
	db  *gorm.DB
}

func NewStore(dsn string) *Store {
	return &Store{dsn: dsn}
}

// Open establishes the connection, enables WAL journaling so readers are not
// blocked by an in-flight write, and creates the schema when absent. It is
// idempotent with respect to the schema.
func (s *Store) Open() error {
	silent := logger.New(
		log.Default(),
		logger.Config{
			LogLevel: logger.Silent,
		},
	)

	db, err := gorm.Open(sqlite.Open(s.dsn), &gorm.Config{
		Logger: silent,
	})
	if err != nil {
		return fmt.Errorf("database: open %s: %w", s.dsn, err)
	}

	if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return fmt.Errorf("database: enable WAL: %w", err)
	}
	if err := db.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
		return fmt.Errorf("database: set busy timeout: %w", err)
	}

	if err := db.AutoMigrate(&domain.IoC{}); err != nil {
		return fmt.Errorf("database: migrate schema: %w", err)
	}

	s.db = db
	log.Debug("Store opened", "dsn", s.dsn)
	return nil
}

// Close releases the connection. Subsequent operations fail until reopened.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrStoreClosed
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("database: close: %w", err)
	}
	s.db = nil

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("database: close: %w", err)
	}
	log.Debug("Store closed")
	return nil
}

// Insert persists one record. It returns true when the record is new and
// false when a row with the same (value, type) already exists; duplicates are
// an expected steady-state condition, not an error.
func (s *Store) Insert(record domain.IoC) (bool, error) {
	if s.db == nil {
		return false, ErrStoreClosed
	}

	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "value"}, {Name: "type"}},
		DoNothing: true,
	}).Create(&record)

	if result.Error != nil {
		return false, fmt.Errorf("database: insert %q: %w", record.Value, result.Error)
	}

	return result.RowsAffected == 1, nil
}

// InsertMany applies Insert to each record in order and returns the count of
// newly inserted rows. A duplicate inside the batch never aborts the rest.
func (s *Store) InsertMany(records []domain.IoC) (int, error) {
	if s.db == nil {
		return 0, ErrStoreClosed
	}

	inserted := 0
	for _, record := range records {
		ok, err := s.Insert(record)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}

	log.Info("Batch stored", "new", inserted, "received", len(records))
	return inserted, nil
}

// FetchAll returns every stored record in ascending insertion order.
func (s *Store) FetchAll() ([]domain.IoC, error) {
	if s.db == nil {
		return nil, ErrStoreClosed
	}

	var records []domain.IoC
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("database: fetch all: %w", err)
	}
	return records, nil
}

// Count returns the total number of stored records.
func (s *Store) Count() (int64, error) {
	if s.db == nil {
		return 0, ErrStoreClosed
	}

	var count int64
	if err := s.db.Model(&domain.IoC{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("database: count: %w", err)
	}
	return count, nil
}

// CountByType returns per-type record counts.
func (s *Store) CountByType() (map[domain.IoCType]int64, error) {
	rows, err := s.countGrouped("type")
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.IoCType]int64, len(rows))
	for _, row := range rows {
		iocType, err := domain.ParseIoCType(row.Key)
		if err != nil {
			return nil, err
		}
		counts[iocType] = row.Count
	}
	return counts, nil
}

// CountBySource returns per-feed record counts.
func (s *Store) CountBySource() (map[string]int64, error) {
	rows, err := s.countGrouped("source")
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// CountByRiskLevel returns per-severity record counts.
func (s *Store) CountByRiskLevel() (map[domain.RiskLevel]int64, error) {
	rows, err := s.countGrouped("risk_level")
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.RiskLevel]int64, len(rows))
	for _, row := range rows {
		risk, err := domain.ParseRiskLevel(row.Key)
		if err != nil {
			return nil, err
		}
		counts[risk] = row.Count
	}
	return counts, nil
}

type groupedCount struct {
	Key   string
	Count int64
}

func (s *Store) countGrouped(column string) ([]groupedCount, error) {
	if s.db == nil {
		return nil, ErrStoreClosed
	}

	var rows []groupedCount
	err := s.db.Model(&domain.IoC{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("database: count by %s: %w", column, err)
	}
	return rows, nil
}
