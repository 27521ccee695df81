// Package identity normalizes the identifier namespaces WhatsApp uses for the
// same account. Phone JIDs (@s.whatsapp.net) and linked-device JIDs (@lid) both
// refer to a physical user; game state must converge on one of them so progress
// is not fragmented by whichever namespace the transport reported for a message.
package identity

import (
	"strings"
)

const (
	PhoneSuffix = "@s.whatsapp.net"
	LIDSuffix   = "@lid"
	GroupSuffix = "@g.us"
)

// Normalizer folds case/alias variants of a JID the way the transport framework
// does. It may fail on malformed input; callers fall back to the raw value.
type Normalizer func(jid string) (string, error)

type Canonicalizer struct {
	normalize Normalizer
}

func NewCanonicalizer(normalize Normalizer) *Canonicalizer {
	return &Canonicalizer{normalize: normalize}
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

func IsGroup(jid string) bool { return hasSuffixFold(jid, GroupSuffix) }
func IsLID(jid string) bool   { return hasSuffixFold(jid, LIDSuffix) }
func IsPhone(jid string) bool { return hasSuffixFold(jid, PhoneSuffix) }

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Canonical maps any identifier to its canonical form. Groups pass through
// untouched, linked-device JIDs stay opaque, and bare numbers become phone
// JIDs. Input that yields no digits is returned unchanged; callers own the
// empty/malformed case.
func (c *Canonicalizer) Canonical(raw string) string {
	jid := strings.TrimSpace(raw)
	if jid == "" {
		return ""
	}

	if IsGroup(jid) {
		return jid
	}

	if strings.Contains(jid, "@") && c.normalize != nil {
		if normalized, err := c.normalize(jid); err == nil && normalized != "" {
			jid = normalized
		}
	}

	if IsLID(jid) {
		return jid
	}

	if !strings.Contains(jid, "@") {
		if num := digitsOnly(jid); num != "" {
			return num + PhoneSuffix
		}
		return jid
	}

	return jid
}

// ensureUser forces user-identity treatment on values with an unknown shape:
// anything without one of the three known suffixes is reduced to its digits.
// Used when re-canonicalizing resolver answers, which may be bare numbers.
func (c *Canonicalizer) ensureUser(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if IsPhone(s) || IsLID(s) || IsGroup(s) {
		return c.Canonical(s)
	}
	if num := digitsOnly(s); num != "" {
		return num + PhoneSuffix
	}
	return c.Canonical(s)
}
