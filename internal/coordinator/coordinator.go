// Package coordinator mediates state-changing actions against the backing
// store and keeps a local snapshot reconciled afterward.
package coordinator

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
	"github.com/ChromaDiv/supply-chain-app/internal/store"
)

// DefaultReorderQuantity is used when the caller passes a non-positive
// quantity. The reorder amount is otherwise caller policy, not engine policy.
const DefaultReorderQuantity = 50

// Coordinator owns the local snapshot and the two mutating actions. After any
// successful mutation it reloads both collections wholesale instead of
// patching locally, so server-computed adjustments can never drift out of the
// snapshot. Mutations are single-attempt: a reorder is a user-initiated,
// at-most-once action, and an automatic retry could file a duplicate
// purchase order.
type Coordinator struct {
	store store.Store

	mu         sync.Mutex
	snapshot   domain.Snapshot
	generation uint64 // of the snapshot currently held
	nextGen    uint64 // stamped at reload start; later loads win
}

// New builds a Coordinator over the given store. The snapshot is empty until
// the first Load.
func New(s store.Store) *Coordinator {
	return &Coordinator{store: s}
}

// Load fetches inventory and suppliers concurrently and replaces the local
// snapshot. Both fetches must succeed; a failure in either surfaces as a
// single load error and leaves the previous snapshot in place. Load is
// idempotent and safe to call repeatedly; when loads overlap, the one that
// started last wins the write to local state.
func (c *Coordinator) Load(ctx context.Context) (domain.Snapshot, error) {
	c.mu.Lock()
	c.nextGen++
	gen := c.nextGen
	c.mu.Unlock()

	var (
		items     []domain.InventoryItem
		suppliers []domain.Supplier
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = c.store.FetchInventory(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		suppliers, err = c.store.FetchSuppliers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}

	snap := domain.Snapshot{Items: items, Suppliers: suppliers}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen > c.generation {
		c.snapshot = snap
		c.generation = gen
	}
	return snap, nil
}

// Snapshot returns the snapshot from the most recent successful load.
func (c *Coordinator) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Reorder issues a single reorder command and, on success, reloads both
// collections. On failure nothing local changes and the caller decides
// whether to retry manually.
func (c *Coordinator) Reorder(ctx context.Context, productID int64, quantity int) (domain.ReorderOutcome, error) {
	if quantity <= 0 {
		quantity = DefaultReorderQuantity
	}

	outcome, err := c.store.Reorder(ctx, productID, quantity)
	if err != nil {
		return domain.ReorderOutcome{}, err
	}

	if _, err := c.Load(ctx); err != nil {
		// The order went through; only the refresh failed. Report the
		// outcome and let the next load reconcile.
		log.Warn().Err(err).Int64("product_id", productID).Msg("reload after reorder failed")
	}
	return outcome, nil
}

// DeleteProduct issues a single delete command and, on success, reloads both
// collections. Explicit confirmation is a precondition the caller satisfies
// before calling; the coordinator does not prompt.
func (c *Coordinator) DeleteProduct(ctx context.Context, productID int64) error {
	if err := c.store.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	if _, err := c.Load(ctx); err != nil {
		log.Warn().Err(err).Int64("product_id", productID).Msg("reload after delete failed")
	}
	return nil
}
