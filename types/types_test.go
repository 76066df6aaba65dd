package types

import (
	"encoding/json"
	"testing"
)

func TestEffectiveReportStatus(t *testing.T) {
	tests := []struct {
		name  string
		study Study
		want  string
	}{
		{
			"report status wins when present",
			Study{Status: StudyCompleted, ReportStatus: ReportPreliminary},
			"Preliminary",
		},
		{
			"falls back to study status",
			Study{Status: StudyInProgress},
			"In Progress",
		},
		{
			"final report",
			Study{Status: StudyReported, ReportStatus: ReportFinal},
			"Final",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.study.EffectiveReportStatus(); got != tt.want {
				t.Errorf("EffectiveReportStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entity  Entity
		wantErr bool
	}{
		{"valid test", &RadiologyTest{Name: "CT Chest", Modality: ModalityCT, BodyPart: "Chest", Duration: 15}, false},
		{"test missing name", &RadiologyTest{Modality: ModalityCT, Duration: 15}, true},
		{"test unknown modality", &RadiologyTest{Name: "Scan", Modality: "Thermography", Duration: 15}, true},
		{"test zero duration", &RadiologyTest{Name: "Scan", Modality: ModalityCT}, true},
		{"test negative price", &RadiologyTest{Name: "Scan", Modality: ModalityCT, Duration: 15, Price: -1}, true},

		{"valid patient", &Patient{Name: "Jo Berg", PatientID: "MRN-1"}, false},
		{"patient missing name", &Patient{PatientID: "MRN-1"}, true},

		{"valid study", &Study{PatientID: "p1", Modality: ModalityMRI, Status: StudyScheduled}, false},
		{"study missing patient", &Study{Modality: ModalityMRI}, true},

		{"valid appointment", &Appointment{PatientID: "p1", TestID: "t1", Date: "2024-03-20", Time: "9:30 AM", Status: AppointmentScheduled}, false},
		{"appointment bad date", &Appointment{PatientID: "p1", Date: "03/20/2024", Time: "9:30 AM"}, true},
		{"appointment bad time", &Appointment{PatientID: "p1", Date: "2024-03-20", Time: "25:00"}, true},

		{"valid consumable", &Consumable{Name: "Contrast", Quantity: 5, MinimumQuantity: 2}, false},
		{"consumable negative quantity", &Consumable{Name: "Contrast", Quantity: -1}, true},

		{"valid restock", &RestockRequest{ConsumableID: "c1", RequestedQuantity: 10}, false},
		{"restock zero quantity", &RestockRequest{ConsumableID: "c1"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecordIdentity(t *testing.T) {
	p := &Patient{Name: "Jo Berg"}
	if p.UUID() != "" {
		t.Errorf("fresh record has id %q", p.UUID())
	}
	p.SetUUID("abc-123")
	if p.UUID() != "abc-123" {
		t.Errorf("UUID() = %q after SetUUID", p.UUID())
	}
}

func TestEntityJSONShape(t *testing.T) {
	p := &Patient{Name: "Jo Berg", PatientID: "MRN-7", Age: 44}
	p.SetUUID("abc-123")

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if fields["id"] != "abc-123" {
		t.Errorf(`id field = %v, want "abc-123"`, fields["id"])
	}
	if fields["patientId"] != "MRN-7" {
		t.Errorf(`patientId field = %v, want "MRN-7"`, fields["patientId"])
	}
	if _, present := fields["dob"]; present {
		t.Error("empty optional field serialized")
	}
}
