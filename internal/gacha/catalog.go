// Package gacha holds the character catalog: a static JSON list with values,
// percentile-derived rarity tiers and weighted rolls.
package gacha

import (
	"math/rand"
	"os"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"florbot/internal/providers"
	"florbot/internal/structures"
)

type Rarity string

const (
	RarityC  Rarity = "C"
	RarityR  Rarity = "R"
	RaritySR Rarity = "SR"
	RarityUR Rarity = "UR"
	RarityLR Rarity = "LR"
)

var RarityNames = map[Rarity]string{
	RarityC:  "Común",
	RarityR:  "Rara",
	RaritySR: "Súper Rara",
	RarityUR: "Ultra Rara",
	RarityLR: "Legendaria",
}

// Roll weights per tier; commons dominate, legendaries are 1-in-100.
var rarityWeights = []struct {
	rarity Rarity
	weight int
}{
	{RarityC, 65},
	{RarityR, 22},
	{RaritySR, 9},
	{RarityUR, 3},
	{RarityLR, 1},
}

type Character struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Gender string   `json:"gender"`
	Source string   `json:"source"`
	Value  int64    `json:"value"`
	Img    []string `json:"img"`
	Rarity Rarity   `json:"-"`
}

type Catalog struct {
	chars    []*Character
	byID     map[string]*Character
	byRarity map[Rarity][]*Character
}

// NewCatalog loads characters from the configured path. A missing or corrupt
// catalog degrades to an empty one; gacha commands then report no characters
// instead of the bot failing to start.
func NewCatalog(conf *structures.Config, logger providers.Logger) *Catalog {
	c := &Catalog{
		byID:     make(map[string]*Character),
		byRarity: make(map[Rarity][]*Character),
	}

	raw, err := os.ReadFile(conf.Bot.CatalogPath)
	if err != nil {
		logger.Warnf(providers.TypeApp, "Character catalog unavailable: %s", err)
		return c
	}

	var entries []*Character
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Warnf(providers.TypeApp, "Character catalog is not valid JSON: %s", err)
		return c
	}

	for _, e := range entries {
		if e == nil || e.ID == "" || e.Name == "" {
			continue
		}
		e.ID = strings.TrimSpace(e.ID)
		if e.Gender == "" {
			e.Gender = "Desconocido"
		}
		if e.Source == "" {
			e.Source = "Desconocido"
		}
		c.chars = append(c.chars, e)
		c.byID[e.ID] = e
	}

	c.assignRarities()
	logger.Infof(providers.TypeApp, "Loaded %d characters from %s", len(c.chars), conf.Bot.CatalogPath)
	return c
}

// assignRarities derives each tier from value percentiles of the loaded set:
// the top 1% by value is legendary, the next 4% ultra rare, and so on. This
// keeps tiers meaningful whatever the catalog's value scale is.
func (c *Catalog) assignRarities() {
	if len(c.chars) == 0 {
		return
	}

	values := make([]int64, len(c.chars))
	for i, ch := range c.chars {
		values[i] = ch.Value
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	percentile := func(p float64) int64 {
		idx := int(float64(len(values)-1) * p)
		if idx < 0 {
			idx = 0
		}
		if idx >= len(values) {
			idx = len(values) - 1
		}
		return values[idx]
	}

	tC := percentile(0.60)
	tR := percentile(0.85)
	tSR := percentile(0.95)
	tUR := percentile(0.99)

	for _, ch := range c.chars {
		switch {
		case ch.Value >= tUR:
			ch.Rarity = RarityLR
		case ch.Value >= tSR:
			ch.Rarity = RarityUR
		case ch.Value >= tR:
			ch.Rarity = RaritySR
		case ch.Value >= tC:
			ch.Rarity = RarityR
		default:
			ch.Rarity = RarityC
		}
		c.byRarity[ch.Rarity] = append(c.byRarity[ch.Rarity], ch)
	}
}

func (c *Catalog) Len() int { return len(c.chars) }

func (c *Catalog) ByID(id string) (*Character, bool) {
	ch, ok := c.byID[strings.TrimSpace(id)]
	return ch, ok
}

// Search matches characters by name or source, case-insensitive substring.
func (c *Catalog) Search(query string) []*Character {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []*Character
	for _, ch := range c.chars {
		if strings.Contains(strings.ToLower(ch.Name), q) || strings.Contains(strings.ToLower(ch.Source), q) {
			out = append(out, ch)
		}
	}
	return out
}

// Roll draws a random character: first a rarity tier by weight, then a uniform
// pick inside the tier. Tiers that happen to be empty fall through to commons.
func (c *Catalog) Roll(rng *rand.Rand) *Character {
	if len(c.chars) == 0 {
		return nil
	}

	total := 0
	for _, rw := range rarityWeights {
		total += rw.weight
	}
	n := rng.Intn(total)
	var tier Rarity = RarityC
	for _, rw := range rarityWeights {
		if n < rw.weight {
			tier = rw.rarity
			break
		}
		n -= rw.weight
	}

	pool := c.byRarity[tier]
	if len(pool) == 0 {
		pool = c.chars
	}
	return pool[rng.Intn(len(pool))]
}
