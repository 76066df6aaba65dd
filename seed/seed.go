// Package seed supplies the static entity collections the stores load on
// Fetch. It stands in for the remote backend a production deployment would
// call; the fixtures are embedded so the binary is self-contained.
package seed

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/raddesk/raddesk/types"
)

//go:embed data/*.yaml
var fixtures embed.FS

func load[T any](name string) ([]T, error) {
	data, err := fixtures.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	var out []T
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", name, err)
	}
	return out, nil
}

// Tests returns the radiology test catalog.
func Tests() ([]*types.RadiologyTest, error) {
	return load[*types.RadiologyTest]("tests.yaml")
}

// Patients returns the registered patient list.
func Patients() ([]*types.Patient, error) {
	return load[*types.Patient]("patients.yaml")
}

// Studies returns the imaging study worklist.
func Studies() ([]*types.Study, error) {
	return load[*types.Study]("studies.yaml")
}

// Equipment returns the tracked asset list.
func Equipment() ([]*types.Equipment, error) {
	return load[*types.Equipment]("equipment.yaml")
}

// Consumables returns the stocked supply list.
func Consumables() ([]*types.Consumable, error) {
	return load[*types.Consumable]("consumables.yaml")
}

// seedAppointment carries the day offset the fixture stores instead of an
// absolute date.
type seedAppointment struct {
	types.Appointment `yaml:",inline"`
	DayOffset         int `yaml:"dayOffset"`
}

// Appointments returns the appointment schedule. Fixture entries carry a
// day offset rather than an absolute date; dates are materialized against
// now so relative countdowns stay meaningful however old the fixture is.
func Appointments(now time.Time) ([]*types.Appointment, error) {
	raw, err := load[*seedAppointment]("appointments.yaml")
	if err != nil {
		return nil, err
	}
	out := make([]*types.Appointment, len(raw))
	for i, r := range raw {
		appt := r.Appointment
		appt.Date = now.AddDate(0, 0, r.DayOffset).Format("2006-01-02")
		out[i] = &appt
	}
	return out, nil
}
