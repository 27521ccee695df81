package bot

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"florbot/internal/identity"
	"florbot/internal/providers"
	"florbot/internal/structures"
)

// StoreResolver answers LID→phone lookups from the whatsmeow session
// database's lid map, fronted by the shared cache. Absence of a mapping is not
// an error; identity resolution is best-effort by contract.
type StoreResolver struct {
	db     *sql.DB
	cache  providers.CacheProviderInterface
	logger providers.Logger
}

func NewResolver(conf *structures.Config, cache providers.CacheProviderInterface, logger providers.Logger) (identity.Resolver, error) {
	db, err := sql.Open("sqlite3", sessionDSN(conf))
	if err != nil {
		return nil, err
	}
	return &StoreResolver{db: db, cache: cache, logger: logger}, nil
}

func (r *StoreResolver) PhoneForLID(ctx context.Context, lid string) (string, error) {
	if lid == "" {
		return "", nil
	}

	cacheKey := "lid:" + lid
	if pn, ok := r.cache.Get(cacheKey); ok {
		return string(pn), nil
	}

	// The lid column has stored both bare users and full JIDs across
	// whatsmeow versions; match either.
	user := strings.TrimSuffix(lid, identity.LIDSuffix)
	var pn string
	err := r.db.QueryRowContext(ctx,
		`SELECT pn FROM whatsmeow_lid_map WHERE lid IN (?, ?) LIMIT 1`,
		user, lid,
	).Scan(&pn)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.logger.Warnf(providers.TypeApp, "LID lookup failed for %s: %s", lid, err)
		return "", err
	}

	r.cache.Set(cacheKey, []byte(pn))
	return pn, nil
}
