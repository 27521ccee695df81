package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser_CreatesWithFullStatSet(t *testing.T) {
	store, _, _ := newTestStore(t)
	doc := NewDocument()

	u := store.GetUser(doc, "123")

	require.NotNil(t, u)
	assert.NotZero(t, u.CreatedAt)
	assert.Len(t, u.Stats, len(StatKeys))
	for _, k := range StatKeys {
		assert.Contains(t, u.Stats, k)
	}
	assert.Equal(t, float64(1), u.Invest.Multiplier)
	assert.NotNil(t, u.Waifus)
}

func TestGetUser_SameRecordAcrossIdentifierShapes(t *testing.T) {
	store, _, _ := newTestStore(t)
	doc := NewDocument()

	a := store.GetUser(doc, "5215512345678")
	a.Wallet = 900
	b := store.GetUser(doc, "  5215512345678@s.whatsapp.net ")

	assert.Same(t, a, b)
	assert.Len(t, doc.Users, 1)
}

func TestGetUser_BackfillPreservesExistingData(t *testing.T) {
	store, _, _ := newTestStore(t)
	doc := NewDocument()
	doc.Users["1@s.whatsapp.net"] = &UserRecord{
		Wallet: 777,
		Stats:  map[string]int64{"work": 5, "custom": 2},
	}

	u := store.GetUser(doc, "1")

	assert.Equal(t, int64(777), u.Wallet)
	assert.Equal(t, int64(5), u.Stats["work"])
	assert.Equal(t, int64(2), u.Stats["custom"], "unknown stat keys survive")
	assert.Contains(t, u.Stats, "crime")
}

func TestGetWaifuState_CreatesUnclaimed(t *testing.T) {
	store, _, _ := newTestStore(t)
	doc := NewDocument()

	w := store.GetWaifuState(doc, "104")

	require.NotNil(t, w)
	assert.Empty(t, w.Owner)
	assert.Zero(t, w.ClaimedAt)
}

func TestGetWaifuState_CanonicalizesStoredOwner(t *testing.T) {
	store, _, _ := newTestStore(t)
	doc := NewDocument()
	doc.Waifus["104"] = &OwnershipRecord{Owner: "5215512345678", ClaimedAt: 10}

	w := store.GetWaifuState(doc, "104")

	assert.Equal(t, "5215512345678@s.whatsapp.net", w.Owner)
}

func TestMarketEntry_Lifecycle(t *testing.T) {
	store, _, _ := newTestStore(t)
	doc := NewDocument()

	assert.Nil(t, store.GetMarketEntry(doc, "104"))

	store.SetMarketEntry(doc, "104", &ListingRecord{Price: 500, Seller: "123"})
	entry := store.GetMarketEntry(doc, "104")
	require.NotNil(t, entry)
	assert.Equal(t, "104", entry.WaifuID)
	assert.Equal(t, int64(500), entry.Price)
	assert.Equal(t, "123@s.whatsapp.net", entry.Seller)
	assert.NotZero(t, entry.ListedAt)

	store.SetMarketEntry(doc, "104", nil)
	assert.Nil(t, store.GetMarketEntry(doc, "104"))
}

func TestSetMarketEntry_ClampsNegativePrice(t *testing.T) {
	store, _, _ := newTestStore(t)
	doc := NewDocument()

	store.SetMarketEntry(doc, "104", &ListingRecord{Price: -50, Seller: "123"})

	assert.Equal(t, int64(0), store.GetMarketEntry(doc, "104").Price)
}
