package domain

import (
	"errors"
	"time"
)

// ErrEmptyValue rejects indicators that are blank after trimming.
var ErrEmptyValue = errors.New("domain: IoC value must not be empty")

// IoC is a single Indicator of Compromise entry. Records are immutable once
// constructed; the store never updates or deletes them.
type IoC struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Value     string    `gorm:"not null;uniqueIndex:idx_ioc_value_type"`
	Type      IoCType   `gorm:"size:16;not null;uniqueIndex:idx_ioc_value_type"`
	Source    string    `gorm:"not null"`
	Timestamp UTCTime   `gorm:"type:text;not null"`
	RiskLevel RiskLevel `gorm:"size:16;not null"`
}

// TableName keeps the table name aligned with the historical schema.
func (IoC) TableName() string {
	return "iocs"
}

// NewIoC builds a validated record. It is the final construction guard; the
// Normalizer is responsible for trimming, inference and canonicalization
// before calling it.
func NewIoC(value string, iocType IoCType, source string, ts time.Time, risk RiskLevel) (IoC, error) {
	if value == "" {
		return IoC{}, ErrEmptyValue
	}
	if _, err := ParseIoCType(string(iocType)); err != nil {
		return IoC{}, err
	}
	if _, err := ParseRiskLevel(string(risk)); err != nil {
		return IoC{}, err
	}

	return IoC{
		Value:     value,
		Type:      iocType,
		Source:    source,
		Timestamp: UTCTime(ts.UTC()),
		RiskLevel: risk,
	}, nil
}

// CollectedAt returns the collection instant in UTC.
func (ioc IoC) CollectedAt() time.Time {
	return ioc.Timestamp.Time()
}
