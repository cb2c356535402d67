package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeTrimsAndInfers(t *testing.T) {
	record, err := Normalize("  1.2.3.4  ", "unit", NormalizeOptions{})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if record.Value != "1.2.3.4" {
		t.Fatalf("Value = %q, want trimmed 1.2.3.4", record.Value)
	}
	if record.Type != TypeIP {
		t.Fatalf("Type = %s, want ip", record.Type)
	}
	if record.Source != "unit" {
		t.Fatalf("Source = %q, want unit", record.Source)
	}
	if record.RiskLevel != RiskMedium {
		t.Fatalf("RiskLevel = %s, want default medium", record.RiskLevel)
	}
	if record.CollectedAt().IsZero() {
		t.Fatal("Timestamp was not defaulted")
	}
}

func TestNormalizeLowercasesDomains(t *testing.T) {
	record, err := Normalize("EXAMPLE.com", "unit", NormalizeOptions{})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if record.Type != TypeDomain {
		t.Fatalf("Type = %s, want domain", record.Type)
	}
	if record.Value != "example.com" {
		t.Fatalf("Value = %q, want canonical example.com", record.Value)
	}

	// Non-domain types stay verbatim after trimming.
	record, err = Normalize("ABCDEF0123456789ABCDEF0123456789", "unit", NormalizeOptions{})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if record.Value != "ABCDEF0123456789ABCDEF0123456789" {
		t.Fatalf("hash value was case-folded: %q", record.Value)
	}
}

func TestNormalizeExplicitFields(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	record, err := Normalize("dst_ip", "unit", NormalizeOptions{
		Type:      TypeIP,
		RiskLevel: RiskCritical,
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	// Explicit type skips inference entirely.
	if record.Type != TypeIP {
		t.Fatalf("Type = %s, want explicit ip", record.Type)
	}
	if record.RiskLevel != RiskCritical {
		t.Fatalf("RiskLevel = %s, want critical", record.RiskLevel)
	}
	if !record.CollectedAt().Equal(ts) {
		t.Fatalf("Timestamp = %v, want %v", record.CollectedAt(), ts)
	}
}

func TestNormalizeRejectsEmpty(t *testing.T) {
	for _, value := range []string{"", "   ", "\t\n"} {
		if _, err := Normalize(value, "unit", NormalizeOptions{}); !errors.Is(err, ErrEmptyValue) {
			t.Fatalf("Normalize(%q) error = %v, want ErrEmptyValue", value, err)
		}
	}
}

func TestNormalizePropagatesInferenceFailure(t *testing.T) {
	_, err := Normalize("not-a-valid-ioc!!", "unit", NormalizeOptions{})

	var unclassifiable *UnclassifiableError
	if !errors.As(err, &unclassifiable) {
		t.Fatalf("expected UnclassifiableError, got %v", err)
	}
}
