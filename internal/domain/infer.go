package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	ipv4Pattern = regexp.MustCompile(
		`^(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)$`)

	// MD5, SHA-1 and SHA-256 digests. The three lengths never overlap, so a
	// single HASH outcome is enough; the algorithm itself is not retained.
	hashPattern = regexp.MustCompile(
		`^(?:[0-9A-Fa-f]{32}|[0-9A-Fa-f]{40}|[0-9A-Fa-f]{64})$`)

	// Labels of 1-63 letters/digits/hyphens without edge hyphens, at least two
	// of them, final label alphabetic and at least two characters long.
	domainPattern = regexp.MustCompile(
		`^(?:[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,63}$`)
)

// UnclassifiableError reports a value that matched no known indicator pattern.
type UnclassifiableError struct {
	Value string
}

func (e *UnclassifiableError) Error() string {
	return fmt.Sprintf("domain: cannot infer IoC type for value %q", e.Value)
}

// InferType classifies a trimmed, non-empty string into exactly one IoCType.
//
// The cascade is ordered and the order is part of the contract: URL wins over
// IP, IP over HASH, HASH over DOMAIN. Reordering would change outcomes for
// crafted inputs even though common cases are mutually exclusive.
func InferType(value string) (IoCType, error) {
	if hasURLScheme(value) {
		return TypeURL, nil
	}
	if ipv4Pattern.MatchString(value) {
		return TypeIP, nil
	}
	if hashPattern.MatchString(value) {
		return TypeHash, nil
	}
	if domainPattern.MatchString(value) {
		return TypeDomain, nil
	}
	return "", &UnclassifiableError{Value: value}
}

func hasURLScheme(value string) bool {
	lowered := strings.ToLower(value)
	return strings.HasPrefix(lowered, "http://") || strings.HasPrefix(lowered, "https://")
}
