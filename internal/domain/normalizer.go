package domain

import (
	"strings"
	"time"
)

// NormalizeOptions carries the optional fields a feed may supply alongside the
// raw value. Zero values mean "not provided".
type NormalizeOptions struct {
	Type      IoCType
	RiskLevel RiskLevel
	Timestamp time.Time
}

// Normalize turns a raw feed string into a validated IoC record.
//
// The value is trimmed, the type is inferred when the feed did not supply one,
// domain values are lowercased so dedup and storage operate on the canonical
// form, and timestamp/risk default to now (UTC) and medium. It performs no
// I/O.
func Normalize(value, source string, opts NormalizeOptions) (IoC, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return IoC{}, ErrEmptyValue
	}

	iocType := opts.Type
	if iocType == "" {
		inferred, err := InferType(value)
		if err != nil {
			return IoC{}, err
		}
		iocType = inferred
	}

	if iocType == TypeDomain {
		value = strings.ToLower(value)
	}

	risk := opts.RiskLevel
	if risk == "" {
		risk = RiskMedium
	}

	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	return NewIoC(value, iocType, source, ts, risk)
}
