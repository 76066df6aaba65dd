package store_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/raddesk/raddesk/storage"
	"github.com/raddesk/raddesk/store"
	"github.com/raddesk/raddesk/types"
)

func newTestStore(t *testing.T, st storage.Storage) *store.Store[*types.RadiologyTest] {
	t.Helper()
	s, err := store.New(store.Config[*types.RadiologyTest]{
		Name:    "tests",
		Key:     "tests-storage",
		Storage: st,
		Seed: func() ([]*types.RadiologyTest, error) {
			return []*types.RadiologyTest{
				{Record: types.Record{ID: "s1"}, Name: "CT Chest", Modality: types.ModalityCT, BodyPart: "Chest", Description: "CT scan of chest", Duration: 30},
				{Record: types.Record{ID: "s2"}, Name: "MRI Brain", Modality: types.ModalityMRI, BodyPart: "Head", Description: "MRI of the brain", Duration: 45},
			}, nil
		},
	})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s
}

func sampleTest() *types.RadiologyTest {
	return &types.RadiologyTest{
		Name:        "X-Ray Right Knee",
		Modality:    types.ModalityXRay,
		BodyPart:    "Knee",
		Description: "Plain film of the right knee",
		Duration:    15,
		Price:       120,
	}
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, storage.NewMemory())

	t.Run("grows collection by one with a fresh id", func(t *testing.T) {
		if err := s.Fetch(ctx); err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		before := s.Items()

		entity := sampleTest()
		if err := s.Add(ctx, entity); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if s.Len() != len(before)+1 {
			t.Errorf("Len = %d, want %d", s.Len(), len(before)+1)
		}
		if entity.UUID() == "" {
			t.Error("Add did not assign an id")
		}
		for _, prior := range before {
			if prior.UUID() == entity.UUID() {
				t.Errorf("id %q collides with a pre-existing entity", entity.UUID())
			}
		}
	})

	t.Run("appends in insertion order", func(t *testing.T) {
		items := s.Items()
		last := items[len(items)-1]
		if last.Name != "X-Ray Right Knee" {
			t.Errorf("last item = %q, want the most recently added", last.Name)
		}
	})

	t.Run("rejects invalid entities", func(t *testing.T) {
		before := s.Len()
		err := s.Add(ctx, &types.RadiologyTest{Name: "", Modality: types.ModalityCT, Duration: 10})
		if err == nil {
			t.Fatal("expected a validation error")
		}
		if s.Len() != before {
			t.Error("failed Add must not grow the collection")
		}
		if s.Err() == "" {
			t.Error("failed Add should record an error message")
		}
	})

	t.Run("rolls back when persistence fails", func(t *testing.T) {
		st := storage.NewMemory()
		broken := newTestStore(t, st)
		_ = st.Close()

		before := broken.Len()
		if err := broken.Add(ctx, sampleTest()); err == nil {
			t.Fatal("expected an error when storage is closed")
		}
		if broken.Len() != before {
			t.Error("failed Add left the appended entity behind")
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, storage.NewMemory())

	entity := sampleTest()
	if err := s.Add(ctx, entity); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	id := entity.UUID()

	t.Run("applies only the tagged fields", func(t *testing.T) {
		name := "X-Ray Left Knee"
		price := 135.0
		if err := s.Update(ctx, id, types.TestUpdate{Name: &name, Price: &price}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		got := s.Select(id)
		if got == nil {
			t.Fatal("Select returned nil after update")
		}
		if got.Name != name {
			t.Errorf("Name = %q, want %q", got.Name, name)
		}
		if got.Price != price {
			t.Errorf("Price = %v, want %v", got.Price, price)
		}
		if got.Duration != 15 || got.BodyPart != "Knee" {
			t.Error("fields outside the update changed")
		}
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		name := "never applied"
		if err := s.Update(ctx, "no-such-id", types.TestUpdate{Name: &name}); err != nil {
			t.Fatalf("Update of missing id returned error: %v", err)
		}
		if s.Err() != "" {
			t.Errorf("missing id populated the error state: %q", s.Err())
		}
	})

	t.Run("rolls back zero-valued optional fields when persistence fails", func(t *testing.T) {
		st := storage.NewMemory()
		broken := newTestStore(t, st)

		// Price, CPTCode and Contraindications are zero here and omitted
		// from the persisted JSON; the rollback must still reset them.
		entity := &types.RadiologyTest{
			Name:     "US Abdomen",
			Modality: types.ModalityUltrasound,
			BodyPart: "Abdomen",
			Duration: 20,
		}
		if err := broken.Add(ctx, entity); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		broken.Select(entity.UUID())
		_ = st.Close()

		price := 135.0
		cpt := "76700"
		contra := []string{"open wound"}
		err := broken.Update(ctx, entity.UUID(), types.TestUpdate{
			Price: &price, CPTCode: &cpt, Contraindications: &contra,
		})
		if err == nil {
			t.Fatal("expected an error when storage is closed")
		}

		got := broken.Get(entity.UUID())
		if got == nil {
			t.Fatal("entity vanished after failed update")
		}
		if got.Price != 0 || got.CPTCode != "" || got.Contraindications != nil {
			t.Errorf("failed Update left partial mutation behind: Price=%v CPTCode=%q Contraindications=%v",
				got.Price, got.CPTCode, got.Contraindications)
		}
		if sel := broken.Selected(); sel == nil || sel.Price != 0 || sel.CPTCode != "" {
			t.Errorf("selection points at a stale mutated entity: %+v", sel)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, storage.NewMemory())

	entity := sampleTest()
	if err := s.Add(ctx, entity); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	id := entity.UUID()

	t.Run("removes the entity", func(t *testing.T) {
		if err := s.Delete(ctx, id); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if s.Len() != 0 {
			t.Errorf("Len = %d after delete, want 0", s.Len())
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		if err := s.Delete(ctx, id); err != nil {
			t.Fatalf("second Delete returned error: %v", err)
		}
		if s.Err() != "" {
			t.Errorf("second Delete populated the error state: %q", s.Err())
		}
	})

	t.Run("clears the selection when the selected entity goes", func(t *testing.T) {
		kept := sampleTest()
		doomed := sampleTest()
		if err := s.Add(ctx, kept); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if err := s.Add(ctx, doomed); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		s.Select(doomed.UUID())
		if err := s.Delete(ctx, doomed.UUID()); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if got := s.Selected(); got != nil {
			t.Errorf("selection survived its entity's deletion: %v", got)
		}
		s.Select(kept.UUID())
		if err := s.Delete(ctx, doomed.UUID()); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if got := s.Selected(); got == nil || got.UUID() != kept.UUID() {
			t.Error("deleting another entity disturbed the selection")
		}
	})
}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, storage.NewMemory())

	entity := sampleTest()
	if err := s.Add(ctx, entity); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if got := s.Select(entity.UUID()); got == nil || got.UUID() != entity.UUID() {
		t.Error("Select by id did not return the entity")
	}
	if got := s.Selected(); got == nil || got.UUID() != entity.UUID() {
		t.Error("Selected did not hold the selection")
	}
	if got := s.Select("unknown"); got != nil {
		t.Error("Select of an unknown id should yield nil, silently")
	}
	if got := s.Selected(); got != nil {
		t.Error("a failed Select should clear the selection")
	}
	s.Select(entity.UUID())
	if got := s.Select(""); got != nil {
		t.Error("Select with an empty id should clear the selection")
	}
}

func TestSearchAndFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, storage.NewMemory())
	if err := s.Fetch(ctx); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	t.Run("empty query returns the full collection", func(t *testing.T) {
		got := s.Search("")
		if !reflect.DeepEqual(got, s.Items()) {
			t.Error("Search(\"\") differs from Items()")
		}
	})

	t.Run("matches case-insensitively across text fields", func(t *testing.T) {
		got := s.Search("brain")
		if len(got) != 1 || got[0].Name != "MRI Brain" {
			t.Errorf("Search(brain) = %v results, want the MRI entry", len(got))
		}
		got = s.Search("ct")
		if len(got) != 1 || got[0].Name != "CT Chest" {
			t.Errorf("Search(ct) = %v results, want the CT entry", len(got))
		}
	})

	t.Run("filter by exact modality", func(t *testing.T) {
		got := s.Filter(func(e *types.RadiologyTest) bool {
			return e.Modality == types.ModalityMRI
		})
		if len(got) != 1 || got[0].Name != "MRI Brain" {
			t.Errorf("Filter(MRI) = %d results, want 1", len(got))
		}
	})

	t.Run("reads do not disturb selection", func(t *testing.T) {
		items := s.Items()
		s.Select(items[0].UUID())
		_ = s.Search("brain")
		_ = s.Filter(func(e *types.RadiologyTest) bool { return true })
		if got := s.Selected(); got == nil || got.UUID() != items[0].UUID() {
			t.Error("pure reads changed the selection")
		}
	})
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("populates from the seed provider", func(t *testing.T) {
		s := newTestStore(t, storage.NewMemory())
		if err := s.Fetch(ctx); err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if s.Len() != 2 {
			t.Errorf("Len = %d, want 2", s.Len())
		}
		if s.IsLoading() {
			t.Error("loading flag stuck after Fetch")
		}
	})

	t.Run("failure leaves prior items untouched", func(t *testing.T) {
		st := storage.NewMemory()
		s, err := store.New(store.Config[*types.RadiologyTest]{
			Name:    "tests",
			Key:     "tests-storage",
			Storage: st,
			Seed: func() ([]*types.RadiologyTest, error) {
				return nil, errors.New("boom")
			},
		})
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		if err := s.Add(ctx, sampleTest()); err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		if err := s.Fetch(ctx); err == nil {
			t.Fatal("expected Fetch to fail")
		}
		if s.Len() != 1 {
			t.Errorf("failed Fetch disturbed the collection: Len = %d", s.Len())
		}
		if s.Err() != "failed to fetch tests" {
			t.Errorf("Err = %q, want generic fetch message", s.Err())
		}
		if s.IsLoading() {
			t.Error("loading flag stuck after failed Fetch")
		}
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()

	first := newTestStore(t, st)
	if err := first.Fetch(ctx); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	added := sampleTest()
	if err := first.Add(ctx, added); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	want := first.Items()

	// Simulate a fresh process start against the same storage.
	second := newTestStore(t, st)
	if err := second.Hydrate(ctx); err != nil {
		t.Fatalf("Hydrate failed: %v", err)
	}
	got := second.Items()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("rehydrated collection differs:\n got %+v\nwant %+v", got, want)
	}
}

func TestHydrate(t *testing.T) {
	ctx := context.Background()

	t.Run("absent snapshot yields empty collection", func(t *testing.T) {
		s := newTestStore(t, storage.NewMemory())
		if err := s.Hydrate(ctx); err != nil {
			t.Fatalf("Hydrate failed: %v", err)
		}
		if s.Len() != 0 {
			t.Errorf("Len = %d, want 0", s.Len())
		}
	})

	t.Run("corrupt snapshot falls back to empty without error", func(t *testing.T) {
		st := storage.NewMemory()
		if err := st.Set("tests-storage", []byte("{not json")); err != nil {
			t.Fatal(err)
		}
		s := newTestStore(t, st)
		if err := s.Hydrate(ctx); err != nil {
			t.Fatalf("Hydrate of corrupt snapshot returned error: %v", err)
		}
		if s.Len() != 0 {
			t.Errorf("Len = %d, want 0", s.Len())
		}
	})
}

func TestFlush(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	s := newTestStore(t, st)

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	data, found, err := st.Get("tests-storage")
	if err != nil || !found {
		t.Fatalf("snapshot missing after Flush: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty store snapshot = %s, want []", data)
	}

	if err := s.Add(ctx, sampleTest()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
}

func TestNewConfigValidation(t *testing.T) {
	if _, err := store.New(store.Config[*types.RadiologyTest]{Storage: storage.NewMemory()}); err == nil {
		t.Error("New without a key should fail")
	}
	if _, err := store.New(store.Config[*types.RadiologyTest]{Key: "tests-storage"}); err == nil {
		t.Error("New without storage should fail")
	}
}
