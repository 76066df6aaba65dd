// Package raddesk is the client-side state layer for a radiology
// department workflow application: persisted entity stores for exams,
// patients, studies, appointments and equipment, plus the scheduling
// helpers the UI renders countdowns with.
package raddesk

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/raddesk/raddesk/checklist"
	"github.com/raddesk/raddesk/inventory"
	"github.com/raddesk/raddesk/seed"
	"github.com/raddesk/raddesk/storage"
	"github.com/raddesk/raddesk/store"
	"github.com/raddesk/raddesk/types"
)

// Options configures App construction. Storage is required.
type Options struct {
	Storage storage.Storage
	Logger  *zerolog.Logger

	// Now is the clock used for seeded appointment dates and inventory
	// checks. Defaults to time.Now.
	Now func() time.Time
}

// App is the composition root: every store wired over one shared storage
// backend. Construct it once and pass it down.
type App struct {
	Tests        *store.Store[*types.RadiologyTest]
	Patients     *store.Store[*types.Patient]
	Studies      *store.Store[*types.Study]
	Appointments *store.Store[*types.Appointment]
	Inventory    *inventory.Service
	Checklists   *checklist.Service

	storage storage.Storage
	log     zerolog.Logger
}

// New wires all stores. Collections start empty; call Hydrate to load
// persisted snapshots, or Fetch on individual stores to seed them.
func New(opts Options) (*App, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	tests, err := store.New(store.Config[*types.RadiologyTest]{
		Name: "tests", Key: "tests-storage", Storage: opts.Storage,
		Seed: seed.Tests, Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	patients, err := store.New(store.Config[*types.Patient]{
		Name: "patients", Key: "patient-storage", Storage: opts.Storage,
		Seed: seed.Patients, Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	studies, err := store.New(store.Config[*types.Study]{
		Name: "studies", Key: "studies-storage", Storage: opts.Storage,
		Seed: seed.Studies, Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	appointments, err := store.New(store.Config[*types.Appointment]{
		Name: "appointments", Key: "appointments-storage", Storage: opts.Storage,
		Seed: func() ([]*types.Appointment, error) { return seed.Appointments(now()) },
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	inv, err := inventory.New(inventory.Config{
		Storage: opts.Storage, Logger: opts.Logger, Now: now,
	})
	if err != nil {
		return nil, err
	}
	checklists, err := checklist.New(checklist.Config{
		Storage: opts.Storage, Logger: opts.Logger, Now: now,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Tests:        tests,
		Patients:     patients,
		Studies:      studies,
		Appointments: appointments,
		Inventory:    inv,
		Checklists:   checklists,
		storage:      opts.Storage,
		log:          log,
	}, nil
}

// Open builds an App over a freshly opened storage backend. Close releases
// the backend.
func Open(driver storage.Driver, path string, logger *zerolog.Logger) (*App, error) {
	backend, err := storage.Open(driver, path)
	if err != nil {
		return nil, err
	}
	app, err := New(Options{Storage: backend, Logger: logger})
	if err != nil {
		backend.Close()
		return nil, err
	}
	return app, nil
}

// Hydrate loads every store's persisted snapshot.
func (a *App) Hydrate(ctx context.Context) error {
	if err := a.Tests.Hydrate(ctx); err != nil {
		return err
	}
	if err := a.Patients.Hydrate(ctx); err != nil {
		return err
	}
	if err := a.Studies.Hydrate(ctx); err != nil {
		return err
	}
	if err := a.Appointments.Hydrate(ctx); err != nil {
		return err
	}
	if err := a.Inventory.Hydrate(ctx); err != nil {
		return err
	}
	return a.Checklists.Hydrate(ctx)
}

// Seed fetches seed data into any store that hydrated empty, so a fresh
// data directory starts populated.
func (a *App) Seed(ctx context.Context) error {
	if a.Tests.Len() == 0 {
		if err := a.Tests.Fetch(ctx); err != nil {
			return err
		}
	}
	if a.Patients.Len() == 0 {
		if err := a.Patients.Fetch(ctx); err != nil {
			return err
		}
	}
	if a.Studies.Len() == 0 {
		if err := a.Studies.Fetch(ctx); err != nil {
			return err
		}
	}
	if a.Appointments.Len() == 0 {
		if err := a.Appointments.Fetch(ctx); err != nil {
			return err
		}
	}
	if a.Inventory.Equipment.Len() == 0 {
		if err := a.Inventory.Equipment.Fetch(ctx); err != nil {
			return err
		}
	}
	if a.Inventory.Consumables.Len() == 0 {
		if err := a.Inventory.Consumables.Fetch(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes every store and releases the storage backend.
func (a *App) Close() error {
	if err := a.Tests.Flush(); err != nil {
		return err
	}
	if err := a.Patients.Flush(); err != nil {
		return err
	}
	if err := a.Studies.Flush(); err != nil {
		return err
	}
	if err := a.Appointments.Flush(); err != nil {
		return err
	}
	if err := a.Inventory.Flush(); err != nil {
		return err
	}
	if err := a.Checklists.Flush(); err != nil {
		return err
	}
	return a.storage.Close()
}

// FilterTestsByModality returns the exam catalog entries for one modality.
func (a *App) FilterTestsByModality(m types.Modality) []*types.RadiologyTest {
	return a.Tests.Filter(func(t *types.RadiologyTest) bool { return t.Modality == m })
}

// FilterTestsByBodyPart returns the exam catalog entries for one body part,
// matched case-insensitively.
func (a *App) FilterTestsByBodyPart(part string) []*types.RadiologyTest {
	return a.Tests.Filter(func(t *types.RadiologyTest) bool {
		return strings.EqualFold(t.BodyPart, part)
	})
}

// SearchTests searches the exam catalog by name, description, modality
// or body part.
func (a *App) SearchTests(query string) []*types.RadiologyTest {
	return a.Tests.Search(query)
}

// PatientAppointments returns the appointments booked for one patient.
func (a *App) PatientAppointments(patientID string) []*types.Appointment {
	return a.Appointments.Filter(func(ap *types.Appointment) bool {
		return ap.PatientID == patientID
	})
}

// PatientStudies returns the studies recorded for one patient.
func (a *App) PatientStudies(patientID string) []*types.Study {
	return a.Studies.Filter(func(s *types.Study) bool {
		return s.PatientID == patientID
	})
}
