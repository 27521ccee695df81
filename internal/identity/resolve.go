package identity

import (
	"context"
	"time"
)

// Resolver maps a linked-device JID to the phone number of the same account.
// Implementations must treat unknown LIDs as absence, not failure.
type Resolver interface {
	PhoneForLID(ctx context.Context, lid string) (string, error)
}

// Resolution reports how ResolveToPhone arrived at its answer, so the
// fallback-to-original policy is an explicit branch instead of a swallowed
// error.
type Resolution int

const (
	// ResolvedPhone means the LID was mapped to a phone JID.
	ResolvedPhone Resolution = iota
	// NotLinked means the input was not a linked-device JID to begin with.
	NotLinked
	// NotFound means no mapping exists (or no resolver is available).
	NotFound
	// Failed means the resolver errored or timed out.
	Failed
)

func (r Resolution) String() string {
	switch r {
	case ResolvedPhone:
		return "resolved"
	case NotLinked:
		return "not_linked"
	case NotFound:
		return "not_found"
	default:
		return "failed"
	}
}

const resolveTimeout = 3 * time.Second

// ResolveToPhone canonicalizes the identifier and, if it is a linked-device
// JID, asks the resolver for the phone number. Resolution is strictly
// best-effort: on absence, failure, or a resolver answer that does not reduce
// to a phone JID, the original LID is returned unchanged.
func (c *Canonicalizer) ResolveToPhone(ctx context.Context, resolver Resolver, raw string) (string, Resolution) {
	jid := c.Canonical(raw)
	if jid == "" || !IsLID(jid) {
		return jid, NotLinked
	}
	if resolver == nil {
		return jid, NotFound
	}

	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	pn, err := resolver.PhoneForLID(ctx, jid)
	if err != nil {
		return jid, Failed
	}
	if pn == "" {
		return jid, NotFound
	}

	phoneJID := c.ensureUser(pn)
	if !IsPhone(phoneJID) {
		return jid, NotFound
	}
	return phoneJID, ResolvedPhone
}
