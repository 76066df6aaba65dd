package types

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string          { return &s }
func intPtr(i int) *int                { return &i }
func statusPtr(s StudyStatus) *StudyStatus { return &s }

func TestTestUpdateAppliesOnlySetFields(t *testing.T) {
	exam := &RadiologyTest{
		Name: "CT Chest", Modality: ModalityCT, BodyPart: "Chest",
		Duration: 15, Price: 450, CPTCode: "71260",
	}
	TestUpdate{Price: func() *float64 { v := 495.0; return &v }()}.Apply(exam)

	if exam.Price != 495 {
		t.Errorf("Price = %v, want 495", exam.Price)
	}
	if exam.Name != "CT Chest" || exam.Duration != 15 || exam.CPTCode != "71260" {
		t.Errorf("untouched fields changed: %+v", exam)
	}
}

func TestSliceFieldsReplaceWholesale(t *testing.T) {
	p := &Patient{Name: "Jo Berg", Allergies: []string{"iodine", "latex"}}
	PatientUpdate{Allergies: &[]string{"gadolinium"}}.Apply(p)

	if !reflect.DeepEqual(p.Allergies, []string{"gadolinium"}) {
		t.Errorf("Allergies = %v, want wholesale replacement", p.Allergies)
	}
}

func TestZeroUpdateIsNoOp(t *testing.T) {
	before := Study{
		PatientID: "p1", Modality: ModalityMRI, Status: StudyScheduled,
		Radiologist: "Dr. Okafor",
	}
	after := before
	StudyUpdate{}.Apply(&after)

	if !reflect.DeepEqual(before, after) {
		t.Errorf("zero update changed the study:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestStudyWorkflowUpdate(t *testing.T) {
	s := &Study{PatientID: "p1", Modality: ModalityCT, Status: StudyInProgress}
	StudyUpdate{
		Status:       statusPtr(StudyReported),
		ReportStatus: func() *ReportStatus { v := ReportPreliminary; return &v }(),
		Findings:     strPtr("No acute findings."),
	}.Apply(s)

	if s.Status != StudyReported {
		t.Errorf("Status = %q, want Reported", s.Status)
	}
	if s.EffectiveReportStatus() != "Preliminary" {
		t.Errorf("EffectiveReportStatus() = %q, want Preliminary", s.EffectiveReportStatus())
	}
	if s.Findings != "No acute findings." {
		t.Errorf("Findings = %q", s.Findings)
	}
}

func TestConsumableQuantityUpdate(t *testing.T) {
	c := &Consumable{Name: "Contrast", Quantity: 12, MinimumQuantity: 5}
	ConsumableUpdate{Quantity: intPtr(3)}.Apply(c)

	if c.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", c.Quantity)
	}
	if c.MinimumQuantity != 5 {
		t.Errorf("MinimumQuantity = %d, want untouched 5", c.MinimumQuantity)
	}
}
