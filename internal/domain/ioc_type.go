package domain

import "fmt"

// IoCType is the closed set of indicator categories. The string values are the
// canonical codes persisted in the database and written by the exporters.
type IoCType string

const (
	TypeIP     IoCType = "ip"
	TypeURL    IoCType = "url"
	TypeHash   IoCType = "hash"
	TypeDomain IoCType = "domain"
)

// RiskLevel is the qualitative severity attached to an indicator.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

func (t IoCType) String() string {
	return string(t)
}

func (r RiskLevel) String() string {
	return string(r)
}

// ParseIoCType decodes a persisted type code. It is the exact inverse of
// IoCType.String for the four canonical codes.
func ParseIoCType(s string) (IoCType, error) {
	switch IoCType(s) {
	case TypeIP, TypeURL, TypeHash, TypeDomain:
		return IoCType(s), nil
	default:
		return "", fmt.Errorf("domain: unknown IoC type %q", s)
	}
}

// ParseRiskLevel decodes a persisted risk level code.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return RiskLevel(s), nil
	default:
		return "", fmt.Errorf("domain: unknown risk level %q", s)
	}
}
