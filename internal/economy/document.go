// Package economy owns the persistent game state: a single JSON-backed
// document holding user records, character ownership and market listings,
// guarded by a per-store serialization queue.
package economy

const DocumentVersion = 2

// StatKeys is the fixed set of activity counters every user record carries.
var StatKeys = []string{
	"work", "crime", "slut", "rob", "slot", "beg",
	"weekly", "pay", "coinflip", "roulette", "invest", "collect",
}

type Document struct {
	Version  int                         `json:"version"`
	Users    map[string]*UserRecord      `json:"users"`
	BySubbot map[string]*Partition       `json:"bySubbot"`
	Waifus   map[string]*OwnershipRecord `json:"waifus"`
	Market   map[string]*ListingRecord   `json:"market"`
}

// Partition is a deprecated per-subbot subdivision. Its contents are folded
// into the top-level users mapping on load and never written to again.
type Partition struct {
	Users map[string]*UserRecord `json:"users"`
}

type Daily struct {
	Streak      int64 `json:"streak"`
	LastClaimAt int64 `json:"lastClaimAt"`
}

type Invest struct {
	Amount     int64   `json:"amount"`
	MatureAt   int64   `json:"matureAt"`
	Multiplier float64 `json:"multiplier"`
}

type LastRoll struct {
	ID string `json:"id"`
	At int64  `json:"at"`
}

type UserRecord struct {
	Wallet      int64            `json:"wallet"`
	Bank        int64            `json:"bank"`
	CreatedAt   int64            `json:"createdAt"`
	Stats       map[string]int64 `json:"stats"`
	Cooldowns   map[string]int64 `json:"cooldowns"`
	Daily       Daily            `json:"daily"`
	Invest      Invest           `json:"invest"`
	Waifus      []string         `json:"waifus"`
	LastRoll    LastRoll         `json:"lastRoll"`
	FavWaifu    string           `json:"favWaifu"`
	Birth       string           `json:"birth"`
	BirthISO    string           `json:"birthISO"`
	BirthYear   int64            `json:"birthYear"`
	Genre       string           `json:"genre"`
	Description string           `json:"description"`
	Marry       string           `json:"marry"`
}

type OwnershipRecord struct {
	Owner     string `json:"owner"`
	ClaimedAt int64  `json:"claimedAt"`
}

type ListingRecord struct {
	WaifuID  string `json:"waifuId"`
	Price    int64  `json:"price"`
	Seller   string `json:"seller"`
	ListedAt int64  `json:"listedAt"`
}

// NewDocument returns an empty document with all top-level mappings present.
func NewDocument() *Document {
	return &Document{
		Version:  DocumentVersion,
		Users:    make(map[string]*UserRecord),
		BySubbot: make(map[string]*Partition),
		Waifus:   make(map[string]*OwnershipRecord),
		Market:   make(map[string]*ListingRecord),
	}
}

// repairShape guarantees the four top-level mappings exist regardless of what
// the backing file contained.
func (d *Document) repairShape() {
	d.Version = DocumentVersion
	if d.Users == nil {
		d.Users = make(map[string]*UserRecord)
	}
	if d.BySubbot == nil {
		d.BySubbot = make(map[string]*Partition)
	}
	if d.Waifus == nil {
		d.Waifus = make(map[string]*OwnershipRecord)
	}
	if d.Market == nil {
		d.Market = make(map[string]*ListingRecord)
	}
}
