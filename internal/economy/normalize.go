package economy

import (
	"math"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// The backing file is decoded loosely and rebuilt into fully-typed records in
// one pass, so no consumer ever sees a missing or mistyped field. Anything the
// file got wrong (strings where numbers belong, absent sub-objects) is repaired
// here, never surfaced as an error.

func decodeDocument(raw []byte) *Document {
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return normalizeDocument(m)
}

func normalizeDocument(m map[string]interface{}) *Document {
	doc := NewDocument()
	if m == nil {
		return doc
	}

	for jid, v := range cast.ToStringMap(m["users"]) {
		doc.Users[jid] = normalizeUser(v)
	}

	for sid, v := range cast.ToStringMap(m["bySubbot"]) {
		part := &Partition{Users: make(map[string]*UserRecord)}
		for jid, u := range cast.ToStringMap(cast.ToStringMap(v)["users"]) {
			part.Users[jid] = normalizeUser(u)
		}
		doc.BySubbot[sid] = part
	}

	for id, v := range cast.ToStringMap(m["waifus"]) {
		w := cast.ToStringMap(v)
		doc.Waifus[id] = &OwnershipRecord{
			Owner:     cast.ToString(w["owner"]),
			ClaimedAt: cast.ToInt64(w["claimedAt"]),
		}
	}

	for id, v := range cast.ToStringMap(m["market"]) {
		e := cast.ToStringMap(v)
		doc.Market[id] = &ListingRecord{
			WaifuID:  id,
			Price:    flooredPrice(e["price"]),
			Seller:   cast.ToString(e["seller"]),
			ListedAt: cast.ToInt64(e["listedAt"]),
		}
	}

	return doc
}

func flooredPrice(v interface{}) int64 {
	price := int64(math.Floor(cast.ToFloat64(v)))
	if price < 0 {
		return 0
	}
	return price
}

func normalizeUser(v interface{}) *UserRecord {
	m := cast.ToStringMap(v)
	u := &UserRecord{
		Wallet:      cast.ToInt64(m["wallet"]),
		Bank:        cast.ToInt64(m["bank"]),
		CreatedAt:   cast.ToInt64(m["createdAt"]),
		Stats:       make(map[string]int64),
		Cooldowns:   make(map[string]int64),
		FavWaifu:    cast.ToString(m["favWaifu"]),
		Birth:       cast.ToString(m["birth"]),
		BirthISO:    cast.ToString(m["birthISO"]),
		BirthYear:   cast.ToInt64(m["birthYear"]),
		Genre:       cast.ToString(m["genre"]),
		Description: cast.ToString(m["description"]),
		Marry:       cast.ToString(m["marry"]),
	}

	// Unknown stat keys survive; the fixed set is always present.
	for k, s := range cast.ToStringMap(m["stats"]) {
		u.Stats[k] = cast.ToInt64(s)
	}
	for _, k := range StatKeys {
		if _, ok := u.Stats[k]; !ok {
			u.Stats[k] = 0
		}
	}

	for k, cd := range cast.ToStringMap(m["cooldowns"]) {
		u.Cooldowns[k] = cast.ToInt64(cd)
	}

	daily := cast.ToStringMap(m["daily"])
	u.Daily = Daily{
		Streak:      cast.ToInt64(daily["streak"]),
		LastClaimAt: cast.ToInt64(daily["lastClaimAt"]),
	}

	inv := cast.ToStringMap(m["invest"])
	u.Invest = Invest{
		Amount:     cast.ToInt64(inv["amount"]),
		MatureAt:   cast.ToInt64(inv["matureAt"]),
		Multiplier: cast.ToFloat64(inv["multiplier"]),
	}
	if u.Invest.Multiplier <= 0 {
		u.Invest.Multiplier = 1
	}

	u.Waifus = dedupe(cast.ToStringSlice(m["waifus"]))

	roll := cast.ToStringMap(m["lastRoll"])
	u.LastRoll = LastRoll{
		ID: cast.ToString(roll["id"]),
		At: cast.ToInt64(roll["at"]),
	}

	return u
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
