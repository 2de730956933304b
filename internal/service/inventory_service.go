package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChromaDiv/supply-chain-app/internal/analytics"
	"github.com/ChromaDiv/supply-chain-app/internal/cache"
	"github.com/ChromaDiv/supply-chain-app/internal/domain"
	"github.com/ChromaDiv/supply-chain-app/internal/repository"
)

// DefaultLeadTimeDays applies when a product has no lead time recorded.
const DefaultLeadTimeDays = 7

// etaFormat matches what the dashboard shows in its confirmation banner.
const etaFormat = "January 02, 2006"

// InventoryService implements the backing-store operations over the
// repositories: collection reads, the reorder command, product and supplier
// lifecycle, and the server-computed dashboard.
type InventoryService struct {
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	cache     cache.DashboardCache
	now       func() time.Time
}

func NewInventoryService(products repository.ProductRepository, suppliers repository.SupplierRepository, cacheImpl cache.DashboardCache) *InventoryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopDashboardCache()
	}
	return &InventoryService{
		products:  products,
		suppliers: suppliers,
		cache:     cacheImpl,
		now:       time.Now,
	}
}

func (s *InventoryService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *InventoryService) ListSuppliers(ctx context.Context) ([]domain.SupplierRecord, error) {
	return s.suppliers.ListSuppliers(ctx)
}

// Reorder books quantity units onto the product's stock and projects the
// delivery date from its lead time (7 days when unset). The returned outcome
// carries the formatted ETA.
func (s *InventoryService) Reorder(ctx context.Context, productID int64, quantity int) (domain.ReorderOutcome, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.ReorderOutcome{}, err
	}

	waitDays := product.LeadTimeDays
	if waitDays <= 0 {
		waitDays = DefaultLeadTimeDays
	}
	projected := s.now().AddDate(0, 0, waitDays)

	updated, err := s.products.ApplyReorder(ctx, productID, quantity, projected)
	if err != nil {
		return domain.ReorderOutcome{}, err
	}

	s.invalidateDashboard(ctx)
	log.Info().Str("sku", updated.SKU).Int("quantity", quantity).Msg("reorder booked")
	return domain.ReorderOutcome{ETA: projected.Format(etaFormat)}, nil
}

// CreateProduct stores a new product, defaulting the lead time and stamping
// the first projected delivery from it.
func (s *InventoryService) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.LeadTimeDays <= 0 {
		p.LeadTimeDays = DefaultLeadTimeDays
	}
	next := s.now().AddDate(0, 0, p.LeadTimeDays)
	p.NextDelivery = &next

	created, err := s.products.CreateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}

	s.invalidateDashboard(ctx)
	return created, nil
}

// DeleteProduct removes a product. Deleting a missing product succeeds.
func (s *InventoryService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

func (s *InventoryService) CreateSupplier(ctx context.Context, sup domain.SupplierRecord) (domain.SupplierRecord, error) {
	created, err := s.suppliers.CreateSupplier(ctx, sup)
	if err != nil {
		return domain.SupplierRecord{}, err
	}
	s.invalidateDashboard(ctx)
	return created, nil
}

// Dashboard computes the analytics dashboard from the current rows. The
// cached copy is only served between mutations; every write path invalidates
// it.
func (s *InventoryService) Dashboard(ctx context.Context) (analytics.Dashboard, error) {
	if dash, ok, err := s.cache.Get(ctx); err == nil && ok {
		return dash, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("dashboard cache get failed")
	}

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return analytics.Dashboard{}, err
	}
	suppliers, err := s.suppliers.ListSuppliers(ctx)
	if err != nil {
		return analytics.Dashboard{}, err
	}

	snap := domain.Snapshot{
		Items:     make([]domain.InventoryItem, 0, len(products)),
		Suppliers: make([]domain.Supplier, 0, len(suppliers)),
	}
	for _, p := range products {
		snap.Items = append(snap.Items, p.Item())
	}
	for _, sup := range suppliers {
		snap.Suppliers = append(snap.Suppliers, sup.Supplier())
	}

	dash := analytics.BuildDashboard(snap)

	if err := s.cache.Set(ctx, dash); err != nil {
		log.Warn().Err(err).Msg("dashboard cache set failed")
	}
	return dash, nil
}

func (s *InventoryService) invalidateDashboard(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("dashboard cache invalidate failed")
	}
}
