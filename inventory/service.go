// Package inventory implements the equipment-domain workflows: stock and
// maintenance monitoring, alerting, and restock request creation.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/raddesk/raddesk/seed"
	"github.com/raddesk/raddesk/storage"
	"github.com/raddesk/raddesk/store"
	"github.com/raddesk/raddesk/types"
)

const (
	// expiryWindow is how far ahead expiration alerts look.
	expiryWindow = 30 * 24 * time.Hour

	// maintenanceWindow is how far ahead maintenance-due alerts look.
	maintenanceWindow = 7 * 24 * time.Hour

	// restockFactor scales a consumable's minimum quantity into the
	// default requested quantity on a new restock request.
	restockFactor = 2

	dateLayout = "2006-01-02"
)

// Service owns the five equipment-domain stores and the derived checks
// that raise alerts from their contents.
type Service struct {
	Equipment   *store.Store[*types.Equipment]
	Consumables *store.Store[*types.Consumable]
	Maintenance *store.Store[*types.MaintenanceRecord]
	Restocks    *store.Store[*types.RestockRequest]
	Alerts      *store.Store[*types.Alert]

	now func() time.Time
	log zerolog.Logger
}

// Config wires a Service. Storage is required; Now defaults to time.Now.
type Config struct {
	Storage storage.Storage
	Logger  *zerolog.Logger
	Now     func() time.Time
}

// New builds the Service and its stores. Stores start empty; call Hydrate
// or Fetch before running checks.
func New(cfg Config) (*Service, error) {
	if cfg.Storage == nil {
		return nil, fmt.Errorf("inventory requires a storage backend")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("component", "inventory").Logger()
	}

	equipment, err := store.New(store.Config[*types.Equipment]{
		Name: "equipment", Key: "equipment-storage", Storage: cfg.Storage,
		Seed: seed.Equipment, Logger: cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	consumables, err := store.New(store.Config[*types.Consumable]{
		Name: "consumables", Key: "consumables-storage", Storage: cfg.Storage,
		Seed: seed.Consumables, Logger: cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	maintenance, err := store.New(store.Config[*types.MaintenanceRecord]{
		Name: "maintenance records", Key: "maintenance-storage", Storage: cfg.Storage,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	restocks, err := store.New(store.Config[*types.RestockRequest]{
		Name: "restock requests", Key: "restock-storage", Storage: cfg.Storage,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	alerts, err := store.New(store.Config[*types.Alert]{
		Name: "alerts", Key: "alerts-storage", Storage: cfg.Storage,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Service{
		Equipment:   equipment,
		Consumables: consumables,
		Maintenance: maintenance,
		Restocks:    restocks,
		Alerts:      alerts,
		now:         now,
		log:         log,
	}, nil
}

// Hydrate loads every store's persisted snapshot.
func (s *Service) Hydrate(ctx context.Context) error {
	for _, hydrate := range []func(context.Context) error{
		s.Equipment.Hydrate, s.Consumables.Hydrate, s.Maintenance.Hydrate,
		s.Restocks.Hydrate, s.Alerts.Hydrate,
	} {
		if err := hydrate(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Flush persists every store's current collection.
func (s *Service) Flush() error {
	for _, flush := range []func() error{
		s.Equipment.Flush, s.Consumables.Flush, s.Maintenance.Flush,
		s.Restocks.Flush, s.Alerts.Flush,
	} {
		if err := flush(); err != nil {
			return err
		}
	}
	return nil
}

// CheckLowStock raises a high-priority low_stock alert for every
// consumable at or below its minimum quantity. Consumables that already
// carry an active low_stock alert are skipped so repeated checks do not
// pile up duplicates. Returns the number of alerts raised.
func (s *Service) CheckLowStock(ctx context.Context) (int, error) {
	raised := 0
	for _, c := range s.Consumables.Items() {
		if c.Quantity > c.MinimumQuantity {
			continue
		}
		if s.hasActiveAlert(types.AlertLowStock, c.UUID()) {
			continue
		}
		alert := &types.Alert{
			Type:      types.AlertLowStock,
			Status:    types.AlertActive,
			Message:   fmt.Sprintf("Low stock alert: %s quantity is below minimum threshold", c.Name),
			CreatedAt: s.now().Format(time.RFC3339),
			RelatedID: c.UUID(),
			Priority:  types.PriorityHigh,
		}
		if err := s.Alerts.Add(ctx, alert); err != nil {
			return raised, err
		}
		raised++
	}
	s.log.Debug().Int("raised", raised).Msg("low stock check complete")
	return raised, nil
}

// CheckExpiringItems raises an expiring alert for every consumable whose
// expiration date falls within the next 30 days. Already-expired items get
// high priority, the rest medium. Unparseable dates are skipped.
func (s *Service) CheckExpiringItems(ctx context.Context) (int, error) {
	now := s.now()
	cutoff := now.Add(expiryWindow)
	raised := 0
	for _, c := range s.Consumables.Items() {
		if c.ExpirationDate == "" {
			continue
		}
		expires, err := time.ParseInLocation(dateLayout, c.ExpirationDate, now.Location())
		if err != nil {
			s.log.Warn().Str("id", c.UUID()).Str("date", c.ExpirationDate).Msg("skipping unparseable expiration date")
			continue
		}
		if expires.After(cutoff) {
			continue
		}
		if s.hasActiveAlert(types.AlertExpiring, c.UUID()) {
			continue
		}
		priority := types.PriorityMedium
		if !expires.After(now) {
			priority = types.PriorityHigh
		}
		alert := &types.Alert{
			Type:      types.AlertExpiring,
			Status:    types.AlertActive,
			Message:   fmt.Sprintf("Expiration alert: %s will expire on %s", c.Name, c.ExpirationDate),
			CreatedAt: now.Format(time.RFC3339),
			RelatedID: c.UUID(),
			Priority:  priority,
		}
		if err := s.Alerts.Add(ctx, alert); err != nil {
			return raised, err
		}
		raised++
	}
	s.log.Debug().Int("raised", raised).Msg("expiry check complete")
	return raised, nil
}

// CheckMaintenanceDue raises a maintenance_due alert for every asset whose
// next maintenance date falls within the next 7 days. Overdue assets get
// high priority, the rest medium.
func (s *Service) CheckMaintenanceDue(ctx context.Context) (int, error) {
	now := s.now()
	cutoff := now.Add(maintenanceWindow)
	raised := 0
	for _, e := range s.Equipment.Items() {
		if e.NextMaintenanceDate == "" {
			continue
		}
		due, err := time.ParseInLocation(dateLayout, e.NextMaintenanceDate, now.Location())
		if err != nil {
			s.log.Warn().Str("id", e.UUID()).Str("date", e.NextMaintenanceDate).Msg("skipping unparseable maintenance date")
			continue
		}
		if due.After(cutoff) {
			continue
		}
		if s.hasActiveAlert(types.AlertMaintenanceDue, e.UUID()) {
			continue
		}
		priority := types.PriorityMedium
		if !due.After(now) {
			priority = types.PriorityHigh
		}
		alert := &types.Alert{
			Type:      types.AlertMaintenanceDue,
			Status:    types.AlertActive,
			Message:   fmt.Sprintf("Maintenance due: %s requires maintenance by %s", e.Name, e.NextMaintenanceDate),
			CreatedAt: now.Format(time.RFC3339),
			RelatedID: e.UUID(),
			Priority:  priority,
		}
		if err := s.Alerts.Add(ctx, alert); err != nil {
			return raised, err
		}
		raised++
	}
	s.log.Debug().Int("raised", raised).Msg("maintenance check complete")
	return raised, nil
}

// NewRestockRequest creates a pending restock request for a consumable.
// The requested quantity defaults to twice the consumable's minimum
// quantity. Only creation is supported; approval transitions live in a
// back-office system.
func (s *Service) NewRestockRequest(ctx context.Context, consumableID, requestedBy string) (*types.RestockRequest, error) {
	c := s.Consumables.Get(consumableID)
	if c == nil {
		return nil, fmt.Errorf("unknown consumable %q", consumableID)
	}
	request := &types.RestockRequest{
		ConsumableID:      c.UUID(),
		RequestedQuantity: restockFactor * c.MinimumQuantity,
		RequestedBy:       requestedBy,
		RequestDate:       s.now().Format(dateLayout),
		Status:            types.RestockPending,
	}
	if err := s.Restocks.Add(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// AcknowledgeAlert marks an alert acknowledged. Missing ids no-op, like
// any store update.
func (s *Service) AcknowledgeAlert(ctx context.Context, id string) error {
	status := types.AlertAcknowledged
	return s.Alerts.Update(ctx, id, types.AlertUpdate{Status: &status})
}

// ResolveAlert marks an alert resolved, stamping who resolved it and when.
func (s *Service) ResolveAlert(ctx context.Context, id, resolvedBy string) error {
	status := types.AlertResolved
	resolvedAt := s.now().Format(time.RFC3339)
	return s.Alerts.Update(ctx, id, types.AlertUpdate{
		Status:     &status,
		ResolvedAt: &resolvedAt,
		ResolvedBy: &resolvedBy,
	})
}

// ActiveAlerts returns every alert still in the active state.
func (s *Service) ActiveAlerts() []*types.Alert {
	return s.Alerts.Filter(func(a *types.Alert) bool {
		return a.Status == types.AlertActive
	})
}

func (s *Service) hasActiveAlert(kind types.AlertType, relatedID string) bool {
	matches := s.Alerts.Filter(func(a *types.Alert) bool {
		return a.Type == kind && a.RelatedID == relatedID && a.Status == types.AlertActive
	})
	return len(matches) > 0
}
