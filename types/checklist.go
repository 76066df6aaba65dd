package types

import (
	"github.com/raddesk/raddesk/internal/validation"
)

// ChecklistItemStatus is the verification state of one safety item.
type ChecklistItemStatus string

const (
	ItemPending       ChecklistItemStatus = "pending"
	ItemCompleted     ChecklistItemStatus = "completed"
	ItemFlagged       ChecklistItemStatus = "flagged"
	ItemNotApplicable ChecklistItemStatus = "not_applicable"
)

// ChecklistItemType names the safety concern an item verifies.
type ChecklistItemType string

const (
	ItemConsent        ChecklistItemType = "consent"
	ItemRenalFunction  ChecklistItemType = "renal_function"
	ItemMetalScreening ChecklistItemType = "metal_screening"
	ItemNPOStatus      ChecklistItemType = "npo_status"
	ItemPregnancy      ChecklistItemType = "pregnancy_status"
	ItemPreMedication  ChecklistItemType = "pre_medication"
	ItemAllergies      ChecklistItemType = "allergies"
	ItemMedicalHistory ChecklistItemType = "medical_history"
	ItemLabResults     ChecklistItemType = "lab_results"
	ItemCustom         ChecklistItemType = "custom"
)

// ChecklistStatus tracks a checklist as a whole.
type ChecklistStatus string

const (
	ChecklistPending    ChecklistStatus = "pending"
	ChecklistInProgress ChecklistStatus = "in_progress"
	ChecklistCompleted  ChecklistStatus = "completed"
	ChecklistFlagged    ChecklistStatus = "flagged"
)

// ChecklistItem is one pre-procedure safety verification. Threshold and
// Unit carry the acceptance bound for measured items (e.g. renal function
// in mL/min); Value holds the recorded measurement.
type ChecklistItem struct {
	ID          string              `json:"id" yaml:"id"`
	Type        ChecklistItemType   `json:"type" yaml:"type"`
	Title       string              `json:"title" yaml:"title"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Status      ChecklistItemStatus `json:"status" yaml:"status"`
	Value       string              `json:"value,omitempty" yaml:"value,omitempty"`
	Threshold   float64             `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Unit        string              `json:"unit,omitempty" yaml:"unit,omitempty"`
	Notes       string              `json:"notes,omitempty" yaml:"notes,omitempty"`
	VerifiedBy  string              `json:"verifiedBy,omitempty" yaml:"verifiedBy,omitempty"`
	VerifiedAt  string              `json:"verifiedAt,omitempty" yaml:"verifiedAt,omitempty"`
	Required    bool                `json:"isRequired" yaml:"isRequired"`
}

// Checklist is the pre-procedure safety checklist for one patient/study
// pairing. Items are stored inline; they have no life outside their
// checklist.
type Checklist struct {
	Record      `yaml:",inline"`
	PatientID   string          `json:"patientId" yaml:"patientId"`
	StudyID     string          `json:"studyId" yaml:"studyId"`
	Items       []ChecklistItem `json:"items" yaml:"items"`
	Status      ChecklistStatus `json:"status" yaml:"status"`
	StartedAt   string          `json:"startedAt" yaml:"startedAt"`
	CompletedAt string          `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	StartedBy   string          `json:"startedBy" yaml:"startedBy"`
	CompletedBy string          `json:"completedBy,omitempty" yaml:"completedBy,omitempty"`
}

func (c *Checklist) SearchText() []string {
	return []string{c.PatientID, c.StudyID, c.StartedBy}
}

func (c *Checklist) Validate() error {
	if err := validation.Required("patientId", c.PatientID); err != nil {
		return err
	}
	return validation.Required("studyId", c.StudyID)
}

// Item returns the item with the given id, or nil.
func (c *Checklist) Item(itemID string) *ChecklistItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// ChecklistUpdate mutates a Checklist in place.
type ChecklistUpdate struct {
	Items       *[]ChecklistItem
	Status      *ChecklistStatus
	CompletedAt *string
	CompletedBy *string
}

func (u ChecklistUpdate) Apply(c *Checklist) {
	if u.Items != nil {
		c.Items = *u.Items
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.CompletedAt != nil {
		c.CompletedAt = *u.CompletedAt
	}
	if u.CompletedBy != nil {
		c.CompletedBy = *u.CompletedBy
	}
}

// ChecklistItemUpdate mutates one ChecklistItem in place. Item updates are
// applied through the checklist service, which persists the parent
// checklist wholesale.
type ChecklistItemUpdate struct {
	Status     *ChecklistItemStatus
	Value      *string
	Notes      *string
	VerifiedBy *string
	VerifiedAt *string
}

func (u ChecklistItemUpdate) Apply(item *ChecklistItem) {
	if u.Status != nil {
		item.Status = *u.Status
	}
	if u.Value != nil {
		item.Value = *u.Value
	}
	if u.Notes != nil {
		item.Notes = *u.Notes
	}
	if u.VerifiedBy != nil {
		item.VerifiedBy = *u.VerifiedBy
	}
	if u.VerifiedAt != nil {
		item.VerifiedAt = *u.VerifiedAt
	}
}
