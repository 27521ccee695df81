package economy

import (
	"strings"
	"time"
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func newUserRecord(createdAt int64) *UserRecord {
	u := emptyUserRecord()
	u.CreatedAt = createdAt
	for _, k := range StatKeys {
		u.Stats[k] = 0
	}
	return u
}

// backfill repairs a record built outside the load-time normalization pass
// (callers may hand-construct records, or tests may leave fields zeroed).
// It only ever adds structure; data already present is untouched.
func backfill(u *UserRecord) {
	if u.Stats == nil {
		u.Stats = make(map[string]int64)
	}
	for _, k := range StatKeys {
		if _, ok := u.Stats[k]; !ok {
			u.Stats[k] = 0
		}
	}
	if u.Cooldowns == nil {
		u.Cooldowns = make(map[string]int64)
	}
	if u.Waifus == nil {
		u.Waifus = []string{}
	}
	if u.Invest.Multiplier <= 0 {
		u.Invest.Multiplier = 1
	}
}

// GetUser returns the record for an identity, creating it on first access.
// The identity is canonicalized first, so phone-number strings, JIDs and
// linked-device JIDs for the same account land on the same record.
func (s *Store) GetUser(doc *Document, jidOrNum string) *UserRecord {
	uid := s.canon.Canonical(strings.TrimSpace(jidOrNum))
	if doc.Users == nil {
		doc.Users = make(map[string]*UserRecord)
	}

	u, ok := doc.Users[uid]
	if !ok || u == nil {
		u = newUserRecord(nowMillis())
		doc.Users[uid] = u
	}
	backfill(u)
	return u
}

// GetWaifuState returns the ownership record for a character, creating an
// unclaimed one on first query. The owner is canonicalized on every read to
// absorb values stored before canonicalization existed.
func (s *Store) GetWaifuState(doc *Document, waifuID string) *OwnershipRecord {
	if doc.Waifus == nil {
		doc.Waifus = make(map[string]*OwnershipRecord)
	}
	id := strings.TrimSpace(waifuID)

	w, ok := doc.Waifus[id]
	if !ok || w == nil {
		w = &OwnershipRecord{}
		doc.Waifus[id] = w
	}
	w.Owner = s.canon.Canonical(w.Owner)
	return w
}

// GetMarketEntry returns the listing for a character, or nil when it is not
// for sale. Presence in the market mapping is the only "for sale" flag.
func (s *Store) GetMarketEntry(doc *Document, waifuID string) *ListingRecord {
	if doc.Market == nil {
		doc.Market = make(map[string]*ListingRecord)
	}
	return doc.Market[strings.TrimSpace(waifuID)]
}

// SetMarketEntry creates or replaces a listing; a nil entry delists. Price is
// floored and clamped non-negative, the seller canonicalized.
func (s *Store) SetMarketEntry(doc *Document, waifuID string, entry *ListingRecord) {
	if doc.Market == nil {
		doc.Market = make(map[string]*ListingRecord)
	}
	id := strings.TrimSpace(waifuID)
	if entry == nil {
		delete(doc.Market, id)
		return
	}

	price := entry.Price
	if price < 0 {
		price = 0
	}
	listedAt := entry.ListedAt
	if listedAt == 0 {
		listedAt = nowMillis()
	}
	doc.Market[id] = &ListingRecord{
		WaifuID:  id,
		Price:    price,
		Seller:   s.canon.Canonical(strings.TrimSpace(entry.Seller)),
		ListedAt: listedAt,
	}
}
