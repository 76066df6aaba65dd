// Package checklist implements the pre-procedure patient safety checklist:
// one checklist per patient/study pairing, seeded with the standard set of
// required verifications, completed only when every required item passes.
package checklist

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/raddesk/raddesk/storage"
	"github.com/raddesk/raddesk/store"
	"github.com/raddesk/raddesk/types"
)

// Service owns the checklist store and the workflow rules around it.
type Service struct {
	Checklists *store.Store[*types.Checklist]

	now func() time.Time
	log zerolog.Logger
}

// Config wires a Service. Storage is required; Now defaults to time.Now.
type Config struct {
	Storage storage.Storage
	Logger  *zerolog.Logger
	Now     func() time.Time
}

// New builds the Service. The store starts empty; call Hydrate before use.
func New(cfg Config) (*Service, error) {
	if cfg.Storage == nil {
		return nil, fmt.Errorf("checklist requires a storage backend")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("component", "checklist").Logger()
	}
	checklists, err := store.New(store.Config[*types.Checklist]{
		Name: "checklists", Key: "checklist-storage", Storage: cfg.Storage,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Service{Checklists: checklists, now: now, log: log}, nil
}

// Hydrate loads the persisted checklists.
func (s *Service) Hydrate(ctx context.Context) error {
	return s.Checklists.Hydrate(ctx)
}

// Flush persists the current checklists.
func (s *Service) Flush() error {
	return s.Checklists.Flush()
}

// DefaultItems returns the standard pre-procedure verification set. Every
// item starts pending and required; renal function carries its contrast
// administration threshold.
func DefaultItems() []types.ChecklistItem {
	return []types.ChecklistItem{
		{
			ID: "1", Type: types.ItemConsent,
			Title:       "Signed Informed Consent",
			Description: "Verify that the patient has signed the informed consent form",
			Status:      types.ItemPending, Required: true,
		},
		{
			ID: "2", Type: types.ItemRenalFunction,
			Title:       "Renal Function Status",
			Description: "Check if renal function is within acceptable range for contrast administration",
			Status:      types.ItemPending, Required: true,
			Threshold: 60, Unit: "mL/min",
		},
		{
			ID: "3", Type: types.ItemMetalScreening,
			Title:       "Metal Implants Screening",
			Description: "Screen for any metal implants or devices that may be contraindicated",
			Status:      types.ItemPending, Required: true,
		},
		{
			ID: "4", Type: types.ItemNPOStatus,
			Title:       "NPO Status",
			Description: "Verify patient has been fasting for the required duration",
			Status:      types.ItemPending, Required: true,
		},
		{
			ID: "5", Type: types.ItemPregnancy,
			Title:       "Pregnancy Status",
			Description: "Confirm pregnancy status for female patients of childbearing age",
			Status:      types.ItemPending, Required: true,
		},
		{
			ID: "6", Type: types.ItemPreMedication,
			Title:       "Pre-Medication Requirements",
			Description: "Check if any pre-medication is required and has been administered",
			Status:      types.ItemPending, Required: true,
		},
	}
}

// Start creates an in-progress checklist for a patient/study pairing,
// seeded with the default verification set.
func (s *Service) Start(ctx context.Context, patientID, studyID, startedBy string) (*types.Checklist, error) {
	c := &types.Checklist{
		PatientID: patientID,
		StudyID:   studyID,
		Items:     DefaultItems(),
		Status:    types.ChecklistInProgress,
		StartedAt: s.now().Format(time.RFC3339),
		StartedBy: startedBy,
	}
	if err := s.Checklists.Add(ctx, c); err != nil {
		return nil, err
	}
	s.log.Debug().Str("id", c.UUID()).Str("patient", patientID).Msg("checklist started")
	return c, nil
}

// UpdateItem applies a tagged item update to one item and persists the
// parent checklist. A missing checklist or item is a silent no-op, like
// any store update. A completed item without a verification stamp gets one.
func (s *Service) UpdateItem(ctx context.Context, checklistID, itemID string, update types.ChecklistItemUpdate) error {
	c := s.Checklists.Get(checklistID)
	if c == nil || c.Item(itemID) == nil {
		return nil
	}

	items := make([]types.ChecklistItem, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		update.Apply(&items[i])
		if items[i].Status == types.ItemCompleted && items[i].VerifiedAt == "" {
			items[i].VerifiedAt = s.now().Format(time.RFC3339)
		}
		break
	}
	return s.Checklists.Update(ctx, checklistID, types.ChecklistUpdate{Items: &items})
}

// Validate reports every rule the checklist still violates: required items
// not completed, and completed measured items whose recorded value is
// missing, non-numeric, or below the threshold.
func Validate(c *types.Checklist) []string {
	var problems []string
	for _, item := range c.Items {
		if item.Required && item.Status != types.ItemCompleted {
			problems = append(problems, fmt.Sprintf("%s is required but not completed", item.Title))
		}
		if item.Status == types.ItemCompleted && item.Threshold > 0 {
			value, err := strconv.ParseFloat(item.Value, 64)
			if err != nil || value < item.Threshold {
				problems = append(problems, fmt.Sprintf("%s value (%s %s) is below threshold (%g %s)",
					item.Title, item.Value, item.Unit, item.Threshold, item.Unit))
			}
		}
	}
	return problems
}

// Complete marks the checklist completed, stamping who signed it off and
// when. It refuses while Validate still reports problems, so a checklist
// cannot be signed off with required verifications outstanding.
func (s *Service) Complete(ctx context.Context, checklistID, completedBy string) error {
	c := s.Checklists.Get(checklistID)
	if c == nil {
		return fmt.Errorf("unknown checklist %q", checklistID)
	}
	if problems := Validate(c); len(problems) > 0 {
		return fmt.Errorf("checklist not ready: %s", strings.Join(problems, "; "))
	}
	status := types.ChecklistCompleted
	completedAt := s.now().Format(time.RFC3339)
	return s.Checklists.Update(ctx, checklistID, types.ChecklistUpdate{
		Status:      &status,
		CompletedAt: &completedAt,
		CompletedBy: &completedBy,
	})
}

// ForStudy returns the checklist for a patient/study pairing, or nil.
func (s *Service) ForStudy(patientID, studyID string) *types.Checklist {
	matches := s.Checklists.Filter(func(c *types.Checklist) bool {
		return c.PatientID == patientID && c.StudyID == studyID
	})
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
