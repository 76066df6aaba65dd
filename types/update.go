package types

// Tagged-field update structs. A nil field is left untouched; a non-nil
// field replaces the matching scalar on the target. Slices are replaced
// wholesale, never deep-merged.

// TestUpdate mutates a RadiologyTest in place.
type TestUpdate struct {
	Name                    *string
	Modality                *Modality
	BodyPart                *string
	Description             *string
	PreparationInstructions *string
	Duration                *int
	Price                   *float64
	CPTCode                 *string
	Contraindications       *[]string
}

func (u TestUpdate) Apply(t *RadiologyTest) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Modality != nil {
		t.Modality = *u.Modality
	}
	if u.BodyPart != nil {
		t.BodyPart = *u.BodyPart
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.PreparationInstructions != nil {
		t.PreparationInstructions = *u.PreparationInstructions
	}
	if u.Duration != nil {
		t.Duration = *u.Duration
	}
	if u.Price != nil {
		t.Price = *u.Price
	}
	if u.CPTCode != nil {
		t.CPTCode = *u.CPTCode
	}
	if u.Contraindications != nil {
		t.Contraindications = *u.Contraindications
	}
}

// PatientUpdate mutates a Patient in place.
type PatientUpdate struct {
	Name                *string
	Age                 *int
	Gender              *string
	DOB                 *string
	PatientID           *string
	ContactNumber       *string
	Email               *string
	Address             *string
	InsuranceInfo       *string
	MedicalHistory      *string
	Allergies           *[]string
	LastVisit           *string
	UpcomingAppointment *string
}

func (u PatientUpdate) Apply(p *Patient) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.DOB != nil {
		p.DOB = *u.DOB
	}
	if u.PatientID != nil {
		p.PatientID = *u.PatientID
	}
	if u.ContactNumber != nil {
		p.ContactNumber = *u.ContactNumber
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.InsuranceInfo != nil {
		p.InsuranceInfo = *u.InsuranceInfo
	}
	if u.MedicalHistory != nil {
		p.MedicalHistory = *u.MedicalHistory
	}
	if u.Allergies != nil {
		p.Allergies = *u.Allergies
	}
	if u.LastVisit != nil {
		p.LastVisit = *u.LastVisit
	}
	if u.UpcomingAppointment != nil {
		p.UpcomingAppointment = *u.UpcomingAppointment
	}
}

// StudyUpdate mutates a Study in place.
type StudyUpdate struct {
	PatientID          *string
	PatientName        *string
	StudyDate          *string
	Modality           *Modality
	BodyPart           *string
	AccessionNumber    *string
	ReferringPhysician *string
	Status             *StudyStatus
	Priority           *string
	ReportStatus       *ReportStatus
	Radiologist        *string
	Technologist       *string
	Room               *string
	EstimatedDuration  *int
	Findings           *string
	Impression         *string
}

func (u StudyUpdate) Apply(s *Study) {
	if u.PatientID != nil {
		s.PatientID = *u.PatientID
	}
	if u.PatientName != nil {
		s.PatientName = *u.PatientName
	}
	if u.StudyDate != nil {
		s.StudyDate = *u.StudyDate
	}
	if u.Modality != nil {
		s.Modality = *u.Modality
	}
	if u.BodyPart != nil {
		s.BodyPart = *u.BodyPart
	}
	if u.AccessionNumber != nil {
		s.AccessionNumber = *u.AccessionNumber
	}
	if u.ReferringPhysician != nil {
		s.ReferringPhysician = *u.ReferringPhysician
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.Priority != nil {
		s.Priority = *u.Priority
	}
	if u.ReportStatus != nil {
		s.ReportStatus = *u.ReportStatus
	}
	if u.Radiologist != nil {
		s.Radiologist = *u.Radiologist
	}
	if u.Technologist != nil {
		s.Technologist = *u.Technologist
	}
	if u.Room != nil {
		s.Room = *u.Room
	}
	if u.EstimatedDuration != nil {
		s.EstimatedDuration = *u.EstimatedDuration
	}
	if u.Findings != nil {
		s.Findings = *u.Findings
	}
	if u.Impression != nil {
		s.Impression = *u.Impression
	}
}

// AppointmentUpdate mutates an Appointment in place.
type AppointmentUpdate struct {
	PatientID   *string
	PatientName *string
	TestID      *string
	TestName    *string
	Date        *string
	Time        *string
	Status      *AppointmentStatus
	Notes       *string
}

func (u AppointmentUpdate) Apply(a *Appointment) {
	if u.PatientID != nil {
		a.PatientID = *u.PatientID
	}
	if u.PatientName != nil {
		a.PatientName = *u.PatientName
	}
	if u.TestID != nil {
		a.TestID = *u.TestID
	}
	if u.TestName != nil {
		a.TestName = *u.TestName
	}
	if u.Date != nil {
		a.Date = *u.Date
	}
	if u.Time != nil {
		a.Time = *u.Time
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
}

// EquipmentUpdate mutates an Equipment asset in place.
type EquipmentUpdate struct {
	Name                *string
	Type                *EquipmentType
	SerialNumber        *string
	Location            *string
	Status              *EquipmentStatus
	PurchaseDate        *string
	LastMaintenanceDate *string
	NextMaintenanceDate *string
	Manufacturer        *string
	Model               *string
	Notes               *string
}

func (u EquipmentUpdate) Apply(e *Equipment) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Type != nil {
		e.Type = *u.Type
	}
	if u.SerialNumber != nil {
		e.SerialNumber = *u.SerialNumber
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.PurchaseDate != nil {
		e.PurchaseDate = *u.PurchaseDate
	}
	if u.LastMaintenanceDate != nil {
		e.LastMaintenanceDate = *u.LastMaintenanceDate
	}
	if u.NextMaintenanceDate != nil {
		e.NextMaintenanceDate = *u.NextMaintenanceDate
	}
	if u.Manufacturer != nil {
		e.Manufacturer = *u.Manufacturer
	}
	if u.Model != nil {
		e.Model = *u.Model
	}
	if u.Notes != nil {
		e.Notes = *u.Notes
	}
}

// ConsumableUpdate mutates a Consumable in place.
type ConsumableUpdate struct {
	Name            *string
	Type            *ConsumableType
	Quantity        *int
	MinimumQuantity *int
	Location        *string
	PurchaseDate    *string
	ExpirationDate  *string
	Supplier        *string
	LotNumber       *string
	Notes           *string
}

func (u ConsumableUpdate) Apply(c *Consumable) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Type != nil {
		c.Type = *u.Type
	}
	if u.Quantity != nil {
		c.Quantity = *u.Quantity
	}
	if u.MinimumQuantity != nil {
		c.MinimumQuantity = *u.MinimumQuantity
	}
	if u.Location != nil {
		c.Location = *u.Location
	}
	if u.PurchaseDate != nil {
		c.PurchaseDate = *u.PurchaseDate
	}
	if u.ExpirationDate != nil {
		c.ExpirationDate = *u.ExpirationDate
	}
	if u.Supplier != nil {
		c.Supplier = *u.Supplier
	}
	if u.LotNumber != nil {
		c.LotNumber = *u.LotNumber
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
}

// MaintenanceUpdate mutates a MaintenanceRecord in place.
type MaintenanceUpdate struct {
	Date                *string
	Technician          *string
	Description         *string
	Cost                *float64
	NextMaintenanceDate *string
	Status              *string
}

func (u MaintenanceUpdate) Apply(m *MaintenanceRecord) {
	if u.Date != nil {
		m.Date = *u.Date
	}
	if u.Technician != nil {
		m.Technician = *u.Technician
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	if u.Cost != nil {
		m.Cost = *u.Cost
	}
	if u.NextMaintenanceDate != nil {
		m.NextMaintenanceDate = *u.NextMaintenanceDate
	}
	if u.Status != nil {
		m.Status = *u.Status
	}
}

// RestockUpdate mutates a RestockRequest in place.
type RestockUpdate struct {
	RequestedQuantity *int
	Status            *RestockStatus
	ApprovedBy        *string
	ApprovalDate      *string
	Notes             *string
}

func (u RestockUpdate) Apply(r *RestockRequest) {
	if u.RequestedQuantity != nil {
		r.RequestedQuantity = *u.RequestedQuantity
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
	if u.ApprovedBy != nil {
		r.ApprovedBy = *u.ApprovedBy
	}
	if u.ApprovalDate != nil {
		r.ApprovalDate = *u.ApprovalDate
	}
	if u.Notes != nil {
		r.Notes = *u.Notes
	}
}

// AlertUpdate mutates an Alert in place.
type AlertUpdate struct {
	Status     *AlertStatus
	ResolvedAt *string
	ResolvedBy *string
	Priority   *AlertPriority
}

func (u AlertUpdate) Apply(a *Alert) {
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.ResolvedAt != nil {
		a.ResolvedAt = *u.ResolvedAt
	}
	if u.ResolvedBy != nil {
		a.ResolvedBy = *u.ResolvedBy
	}
	if u.Priority != nil {
		a.Priority = *u.Priority
	}
}
