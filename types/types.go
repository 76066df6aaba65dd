package types

import (
	"github.com/raddesk/raddesk/internal/validation"
)

// Modality is the imaging technique category attached to a test or study.
type Modality string

const (
	ModalityXRay        Modality = "X-Ray"
	ModalityCT          Modality = "CT"
	ModalityMRI         Modality = "MRI"
	ModalityUltrasound  Modality = "Ultrasound"
	ModalityPET         Modality = "PET"
	ModalityMammography Modality = "Mammography"
	ModalityFluoroscopy Modality = "Fluoroscopy"
)

// Modalities lists every supported imaging modality.
var Modalities = []Modality{
	ModalityXRay,
	ModalityCT,
	ModalityMRI,
	ModalityUltrasound,
	ModalityPET,
	ModalityMammography,
	ModalityFluoroscopy,
}

// StudyStatus tracks a study through its reading workflow.
type StudyStatus string

const (
	StudyScheduled  StudyStatus = "Scheduled"
	StudyInProgress StudyStatus = "In Progress"
	StudyCompleted  StudyStatus = "Completed"
	StudyReported   StudyStatus = "Reported"
	StudyVerified   StudyStatus = "Verified"
	StudyCancelled  StudyStatus = "Cancelled"
	StudyNoShow     StudyStatus = "No Show"
)

// ReportStatus tracks the dictation state of a study's report.
type ReportStatus string

const (
	ReportPending     ReportStatus = "Pending"
	ReportPreliminary ReportStatus = "Preliminary"
	ReportFinal       ReportStatus = "Final"
)

// AppointmentStatus tracks a scheduled appointment slot.
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "Scheduled"
	AppointmentCheckedIn  AppointmentStatus = "Checked In"
	AppointmentInProgress AppointmentStatus = "In Progress"
	AppointmentCompleted  AppointmentStatus = "Completed"
	AppointmentCancelled  AppointmentStatus = "Cancelled"
	AppointmentNoShow     AppointmentStatus = "No Show"
)

// RadiologyTest is a catalog entry describing an orderable imaging exam.
type RadiologyTest struct {
	Record                  `yaml:",inline"`
	Name                    string   `json:"name" yaml:"name"`
	Modality                Modality `json:"modality" yaml:"modality"`
	BodyPart                string   `json:"bodyPart" yaml:"bodyPart"`
	Description             string   `json:"description" yaml:"description"`
	PreparationInstructions string   `json:"preparationInstructions,omitempty" yaml:"preparationInstructions,omitempty"`
	Duration                int      `json:"duration" yaml:"duration"` // minutes
	Price                   float64  `json:"price,omitempty" yaml:"price,omitempty"`
	CPTCode                 string   `json:"cptCode,omitempty" yaml:"cptCode,omitempty"`
	Contraindications       []string `json:"contraindications,omitempty" yaml:"contraindications,omitempty"`
}

func (t *RadiologyTest) SearchText() []string {
	return []string{t.Name, t.Description, string(t.Modality), t.BodyPart}
}

func (t *RadiologyTest) Validate() error {
	if err := validation.Required("name", t.Name); err != nil {
		return err
	}
	if err := validation.OneOf("modality", string(t.Modality), modalityStrings()); err != nil {
		return err
	}
	if err := validation.Positive("duration", t.Duration); err != nil {
		return err
	}
	return validation.NonNegative("price", t.Price)
}

// Patient is a person registered with the department. PatientID is the
// external identifier (MRN style); it is a lookup key but uniqueness is
// not enforced here.
type Patient struct {
	Record              `yaml:",inline"`
	Name                string   `json:"name" yaml:"name"`
	Age                 int      `json:"age,omitempty" yaml:"age,omitempty"`
	Gender              string   `json:"gender,omitempty" yaml:"gender,omitempty"`
	DOB                 string   `json:"dob,omitempty" yaml:"dob,omitempty"`
	PatientID           string   `json:"patientId" yaml:"patientId"`
	ContactNumber       string   `json:"contactNumber,omitempty" yaml:"contactNumber,omitempty"`
	Email               string   `json:"email,omitempty" yaml:"email,omitempty"`
	Address             string   `json:"address,omitempty" yaml:"address,omitempty"`
	InsuranceInfo       string   `json:"insuranceInfo,omitempty" yaml:"insuranceInfo,omitempty"`
	MedicalHistory      string   `json:"medicalHistory,omitempty" yaml:"medicalHistory,omitempty"`
	Allergies           []string `json:"allergies,omitempty" yaml:"allergies,omitempty"`
	LastVisit           string   `json:"lastVisit,omitempty" yaml:"lastVisit,omitempty"`
	UpcomingAppointment string   `json:"upcomingAppointment,omitempty" yaml:"upcomingAppointment,omitempty"`
}

func (p *Patient) SearchText() []string {
	return []string{p.Name, p.PatientID}
}

func (p *Patient) Validate() error {
	return validation.Required("name", p.Name)
}

// Study is a single imaging exam performed (or scheduled) for a patient.
// PatientID is a plain reference; dangling references are tolerated.
type Study struct {
	Record             `yaml:",inline"`
	PatientID          string       `json:"patientId" yaml:"patientId"`
	PatientName        string       `json:"patientName,omitempty" yaml:"patientName,omitempty"`
	StudyDate          string       `json:"studyDate" yaml:"studyDate"`
	Modality           Modality     `json:"modality" yaml:"modality"`
	BodyPart           string       `json:"bodyPart" yaml:"bodyPart"`
	AccessionNumber    string       `json:"accessionNumber,omitempty" yaml:"accessionNumber,omitempty"`
	ReferringPhysician string       `json:"referringPhysician,omitempty" yaml:"referringPhysician,omitempty"`
	Status             StudyStatus  `json:"status" yaml:"status"`
	Priority           string       `json:"priority,omitempty" yaml:"priority,omitempty"` // STAT or Routine
	ReportStatus       ReportStatus `json:"reportStatus,omitempty" yaml:"reportStatus,omitempty"`
	Radiologist        string       `json:"radiologist,omitempty" yaml:"radiologist,omitempty"`
	Technologist       string       `json:"technologist,omitempty" yaml:"technologist,omitempty"`
	Room               string       `json:"room,omitempty" yaml:"room,omitempty"`
	EstimatedDuration  int          `json:"estimatedDuration,omitempty" yaml:"estimatedDuration,omitempty"` // minutes
	Findings           string       `json:"findings,omitempty" yaml:"findings,omitempty"`
	Impression         string       `json:"impression,omitempty" yaml:"impression,omitempty"`
}

func (s *Study) SearchText() []string {
	return []string{s.PatientName, string(s.Modality), s.BodyPart, s.AccessionNumber}
}

func (s *Study) Validate() error {
	if err := validation.Required("patientId", s.PatientID); err != nil {
		return err
	}
	return validation.OneOf("modality", string(s.Modality), modalityStrings())
}

// EffectiveReportStatus returns the report status, falling back to the
// study status when no report status has been recorded yet.
func (s *Study) EffectiveReportStatus() string {
	if s.ReportStatus != "" {
		return string(s.ReportStatus)
	}
	return string(s.Status)
}

// Appointment is a scheduled slot binding a patient to a catalog test.
// Date is "YYYY-MM-DD" and Time is a 12-hour "H:MM AM/PM" wall-clock string.
type Appointment struct {
	Record      `yaml:",inline"`
	PatientID   string            `json:"patientId" yaml:"patientId"`
	PatientName string            `json:"patientName,omitempty" yaml:"patientName,omitempty"`
	TestID      string            `json:"testId" yaml:"testId"`
	TestName    string            `json:"testName,omitempty" yaml:"testName,omitempty"`
	Date        string            `json:"date" yaml:"date"`
	Time        string            `json:"time" yaml:"time"`
	Status      AppointmentStatus `json:"status" yaml:"status"`
	Notes       string            `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func (a *Appointment) SearchText() []string {
	return []string{a.PatientName, a.TestName, a.Notes}
}

func (a *Appointment) Validate() error {
	if err := validation.Required("patientId", a.PatientID); err != nil {
		return err
	}
	if err := validation.Date("date", a.Date); err != nil {
		return err
	}
	return validation.Time12h("time", a.Time)
}

func modalityStrings() []string {
	out := make([]string, len(Modalities))
	for i, m := range Modalities {
		out[i] = string(m)
	}
	return out
}
