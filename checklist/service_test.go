package checklist

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/raddesk/raddesk/storage"
	"github.com/raddesk/raddesk/types"
)

var testNow = time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(Config{
		Storage: storage.NewMemory(),
		Now:     func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return svc
}

func completeAllItems(t *testing.T, svc *Service, id string) {
	t.Helper()
	ctx := context.Background()
	done := types.ItemCompleted
	for _, item := range svc.Checklists.Get(id).Items {
		update := types.ChecklistItemUpdate{Status: &done}
		if item.Threshold > 0 {
			value := "85"
			update.Value = &value
		}
		if err := svc.UpdateItem(ctx, id, item.ID, update); err != nil {
			t.Fatalf("UpdateItem(%s) error: %v", item.ID, err)
		}
	}
}

func TestStart(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	c, err := svc.Start(ctx, "p1", "s1", "R. Patel")
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if c.UUID() == "" {
		t.Error("checklist was not assigned an id")
	}
	if c.Status != types.ChecklistInProgress {
		t.Errorf("Status = %q, want in_progress", c.Status)
	}
	if c.StartedBy != "R. Patel" || c.StartedAt == "" {
		t.Errorf("start stamp missing: by=%q at=%q", c.StartedBy, c.StartedAt)
	}
	if len(c.Items) != 6 {
		t.Fatalf("len(Items) = %d, want 6 default verifications", len(c.Items))
	}
	for _, item := range c.Items {
		if item.Status != types.ItemPending {
			t.Errorf("item %s starts %q, want pending", item.ID, item.Status)
		}
		if !item.Required {
			t.Errorf("default item %s is not required", item.ID)
		}
	}
	renal := c.Item("2")
	if renal == nil || renal.Threshold != 60 || renal.Unit != "mL/min" {
		t.Errorf("renal function item missing its threshold: %+v", renal)
	}
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	c, err := svc.Start(ctx, "p1", "s1", "R. Patel")
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	done := types.ItemCompleted
	by := "J. Moreno"
	if err := svc.UpdateItem(ctx, c.UUID(), "1", types.ChecklistItemUpdate{Status: &done, VerifiedBy: &by}); err != nil {
		t.Fatalf("UpdateItem() error: %v", err)
	}

	got := svc.Checklists.Get(c.UUID())
	item := got.Item("1")
	if item.Status != types.ItemCompleted {
		t.Errorf("item status = %q, want completed", item.Status)
	}
	if item.VerifiedBy != "J. Moreno" {
		t.Errorf("VerifiedBy = %q", item.VerifiedBy)
	}
	if item.VerifiedAt == "" {
		t.Error("completing an item did not stamp VerifiedAt")
	}
	for _, other := range got.Items[1:] {
		if other.Status != types.ItemPending {
			t.Errorf("item %s changed: %q", other.ID, other.Status)
		}
	}

	// Missing checklist and missing item follow the silent no-op convention.
	if err := svc.UpdateItem(ctx, "no-such-id", "1", types.ChecklistItemUpdate{Status: &done}); err != nil {
		t.Errorf("UpdateItem(missing checklist) error: %v", err)
	}
	if err := svc.UpdateItem(ctx, c.UUID(), "99", types.ChecklistItemUpdate{Status: &done}); err != nil {
		t.Errorf("UpdateItem(missing item) error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	c, err := svc.Start(ctx, "p1", "s1", "R. Patel")
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	problems := Validate(svc.Checklists.Get(c.UUID()))
	if len(problems) != 6 {
		t.Errorf("fresh checklist has %d problems, want 6 outstanding items: %v", len(problems), problems)
	}

	// A completed measured item below its threshold is still a problem.
	done := types.ItemCompleted
	low := "45"
	if err := svc.UpdateItem(ctx, c.UUID(), "2", types.ChecklistItemUpdate{Status: &done, Value: &low}); err != nil {
		t.Fatalf("UpdateItem() error: %v", err)
	}
	problems = Validate(svc.Checklists.Get(c.UUID()))
	found := false
	for _, p := range problems {
		if strings.Contains(p, "below threshold") {
			found = true
		}
	}
	if !found {
		t.Errorf("below-threshold value not reported: %v", problems)
	}
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	c, err := svc.Start(ctx, "p1", "s1", "R. Patel")
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	id := c.UUID()

	t.Run("refuses with required items outstanding", func(t *testing.T) {
		err := svc.Complete(ctx, id, "R. Patel")
		if err == nil {
			t.Fatal("Complete() succeeded with pending required items")
		}
		if !strings.Contains(err.Error(), "required but not completed") {
			t.Errorf("unexpected error: %v", err)
		}
		if got := svc.Checklists.Get(id); got.Status != types.ChecklistInProgress {
			t.Errorf("refused Complete changed status to %q", got.Status)
		}
	})

	t.Run("completes once every item passes", func(t *testing.T) {
		completeAllItems(t, svc, id)
		if err := svc.Complete(ctx, id, "R. Patel"); err != nil {
			t.Fatalf("Complete() error: %v", err)
		}
		got := svc.Checklists.Get(id)
		if got.Status != types.ChecklistCompleted {
			t.Errorf("Status = %q, want completed", got.Status)
		}
		if got.CompletedBy != "R. Patel" || got.CompletedAt == "" {
			t.Errorf("completion stamp missing: by=%q at=%q", got.CompletedBy, got.CompletedAt)
		}
	})

	t.Run("unknown checklist errors", func(t *testing.T) {
		if err := svc.Complete(ctx, "no-such-id", "R. Patel"); err == nil {
			t.Error("Complete() of unknown checklist succeeded")
		}
	})
}

func TestForStudy(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.Start(ctx, "p1", "s1", "R. Patel")
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if _, err := svc.Start(ctx, "p1", "s2", "R. Patel"); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	got := svc.ForStudy("p1", "s1")
	if got == nil || got.UUID() != first.UUID() {
		t.Errorf("ForStudy(p1, s1) = %v, want the first checklist", got)
	}
	if svc.ForStudy("p1", "s9") != nil {
		t.Error("ForStudy of an unknown study returned a checklist")
	}
}

func TestHydrateRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()

	first, err := New(Config{Storage: mem, Now: func() time.Time { return testNow }})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	c, err := first.Start(ctx, "p1", "s1", "R. Patel")
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	done := types.ItemCompleted
	if err := first.UpdateItem(ctx, c.UUID(), "1", types.ChecklistItemUpdate{Status: &done}); err != nil {
		t.Fatalf("UpdateItem() error: %v", err)
	}

	second, err := New(Config{Storage: mem, Now: func() time.Time { return testNow }})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := second.Hydrate(ctx); err != nil {
		t.Fatalf("Hydrate() error: %v", err)
	}
	got := second.Checklists.Get(c.UUID())
	if got == nil {
		t.Fatal("checklist missing after rehydration")
	}
	if got.Item("1").Status != types.ItemCompleted {
		t.Error("item progress lost across rehydration")
	}
	if len(got.Items) != 6 {
		t.Errorf("len(Items) = %d after rehydration, want 6", len(got.Items))
	}
}
