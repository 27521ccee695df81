package economy

import (
	"regexp"

	"florbot/internal/identity"
	"florbot/internal/providers"
)

// Historic data stored linked-device identities under phone-shaped keys. Real
// phone numbers never exceed 15 digits (E.164), so a 16+ digit "phone" key can
// only be a misfiled LID.
var legacyLIDKey = regexp.MustCompile(`(?i)^([0-9]{16,})@s\.whatsapp\.net$`)

// emptyUserRecord is a merge target with nothing set: CreatedAt stays zero so
// the incoming record's value wins.
func emptyUserRecord() *UserRecord {
	return &UserRecord{
		Stats:     make(map[string]int64),
		Cooldowns: make(map[string]int64),
		Invest:    Invest{Multiplier: 1},
		Waifus:    []string{},
	}
}

// mergeUserInto folds incoming into target under max-wins rules. The two
// records are snapshots of the same real account, so balances take the greater
// value, never the sum. Merging the same record twice is a no-op.
func mergeUserInto(target, incoming *UserRecord) {
	if incoming == nil {
		return
	}
	if target.CreatedAt == 0 {
		target.CreatedAt = incoming.CreatedAt
	}

	target.Wallet = max(target.Wallet, incoming.Wallet)
	target.Bank = max(target.Bank, incoming.Bank)

	if target.Stats == nil {
		target.Stats = make(map[string]int64)
	}
	for k, v := range incoming.Stats {
		target.Stats[k] = max(target.Stats[k], v)
	}

	if target.Cooldowns == nil {
		target.Cooldowns = make(map[string]int64)
	}
	for k, v := range incoming.Cooldowns {
		target.Cooldowns[k] = max(target.Cooldowns[k], v)
	}

	target.Daily.Streak = max(target.Daily.Streak, incoming.Daily.Streak)
	target.Daily.LastClaimAt = max(target.Daily.LastClaimAt, incoming.Daily.LastClaimAt)

	// Amount and multiplier travel together; matureAt maxes independently so a
	// larger investment's maturity is never shortened.
	if incoming.Invest.Amount > target.Invest.Amount {
		target.Invest.Amount = incoming.Invest.Amount
		target.Invest.Multiplier = incoming.Invest.Multiplier
	}
	target.Invest.MatureAt = max(target.Invest.MatureAt, incoming.Invest.MatureAt)

	if len(incoming.Waifus) > 0 {
		target.Waifus = dedupe(append(target.Waifus, incoming.Waifus...))
	}

	if incoming.LastRoll.At > target.LastRoll.At {
		target.LastRoll = incoming.LastRoll
	}
}

// migrate rewrites legacy keys and folds deprecated partitions forward. It runs
// on every load, after shape repair, and is idempotent. A bad entry is skipped,
// never allowed to abort the rest of the document.
func migrate(doc *Document, logger providers.Logger) {
	foldLegacyLIDKeys(doc, logger)
	foldPartitions(doc, logger)
}

// foldLegacyLIDKeys moves every 16+ digit phone-shaped user key under the
// corresponding @lid key. The rest of the system resolves @lid back to a phone
// identity at read time.
func foldLegacyLIDKeys(doc *Document, logger providers.Logger) {
	for key, rec := range doc.Users {
		m := legacyLIDKey.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		if rec == nil {
			delete(doc.Users, key)
			continue
		}

		lidKey := m[1] + identity.LIDSuffix
		target, ok := doc.Users[lidKey]
		if !ok {
			target = emptyUserRecord()
			doc.Users[lidKey] = target
		}
		mergeUserInto(target, rec)
		delete(doc.Users, key)

		if logger != nil {
			logger.Infof(providers.TypeApp, "Folded legacy user key %s into %s", key, lidKey)
		}
	}
}

// foldPartitions merges every per-subbot user record into the canonical
// top-level mapping. The partitions themselves stay in place; only their
// content moves forward.
func foldPartitions(doc *Document, logger providers.Logger) {
	for sid, part := range doc.BySubbot {
		if part == nil || part.Users == nil {
			continue
		}
		for jid, rec := range part.Users {
			if rec == nil {
				continue
			}
			target, ok := doc.Users[jid]
			if !ok {
				target = emptyUserRecord()
				doc.Users[jid] = target
			}
			mergeUserInto(target, rec)
		}
		if logger != nil && len(part.Users) > 0 {
			logger.Debugf(providers.TypeApp, "Folded %d records from legacy partition %s", len(part.Users), sid)
		}
	}
}
