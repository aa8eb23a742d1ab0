package engine

import (
	"context"
	"sync"
	"time"

	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/google/uuid"
)

// Directory is a read-through cache of the reference data the engine
// consumes but does not own: active currencies, branches and vaults. Screens
// used to fetch these ad hoc; the coordinators share one cache instead.
type Directory struct {
	store db.Store
	ttl   time.Duration

	mu         sync.RWMutex
	loadedAt   time.Time
	currencies map[uuid.UUID]db.Currency
	byCode     map[string]db.Currency
	branches   map[uuid.UUID]db.Branch
	vaults     map[uuid.UUID]db.Vault
}

func NewDirectory(store db.Store, ttl time.Duration) *Directory {
	return &Directory{store: store, ttl: ttl}
}

func (d *Directory) refresh(ctx context.Context) error {
	d.mu.RLock()
	fresh := !d.loadedAt.IsZero() && time.Since(d.loadedAt) < d.ttl
	d.mu.RUnlock()
	if fresh {
		return nil
	}

	currencies, err := d.store.ListActiveCurrencies(ctx)
	if err != nil {
		return err
	}
	branches, err := d.store.ListBranches(ctx)
	if err != nil {
		return err
	}
	vaults, err := d.store.ListVaults(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.currencies = make(map[uuid.UUID]db.Currency, len(currencies))
	d.byCode = make(map[string]db.Currency, len(currencies))
	for _, c := range currencies {
		d.currencies[c.ID] = c
		d.byCode[c.Code] = c
	}
	d.branches = make(map[uuid.UUID]db.Branch, len(branches))
	for _, b := range branches {
		d.branches[b.ID] = b
	}
	d.vaults = make(map[uuid.UUID]db.Vault, len(vaults))
	for _, v := range vaults {
		d.vaults[v.ID] = v
	}
	d.loadedAt = time.Now()
	return nil
}

// Currency looks up an active currency by id.
func (d *Directory) Currency(ctx context.Context, id uuid.UUID) (db.Currency, bool, error) {
	if err := d.refresh(ctx); err != nil {
		return db.Currency{}, false, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.currencies[id]
	return c, ok, nil
}

// CurrencyByCode looks up an active currency by its three-letter code.
func (d *Directory) CurrencyByCode(ctx context.Context, code string) (db.Currency, bool, error) {
	if err := d.refresh(ctx); err != nil {
		return db.Currency{}, false, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.byCode[code]
	return c, ok, nil
}

// Branch looks up a branch by id.
func (d *Directory) Branch(ctx context.Context, id uuid.UUID) (db.Branch, bool, error) {
	if err := d.refresh(ctx); err != nil {
		return db.Branch{}, false, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	b, ok := d.branches[id]
	return b, ok, nil
}

// Vault looks up a vault by id.
func (d *Directory) Vault(ctx context.Context, id uuid.UUID) (db.Vault, bool, error) {
	if err := d.refresh(ctx); err != nil {
		return db.Vault{}, false, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.vaults[id]
	return v, ok, nil
}
