package types

import (
	"github.com/raddesk/raddesk/internal/validation"
)

// EquipmentType classifies a tracked asset.
type EquipmentType string

const (
	EquipmentMachine EquipmentType = "machine"
	EquipmentTool    EquipmentType = "tool"
	EquipmentDevice  EquipmentType = "device"
)

// EquipmentStatus is the operational state of an asset.
type EquipmentStatus string

const (
	EquipmentActive      EquipmentStatus = "active"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentInactive    EquipmentStatus = "inactive"
)

// ConsumableType classifies a stocked consumable.
type ConsumableType string

const (
	ConsumableContrast ConsumableType = "contrast"
	ConsumableCatheter ConsumableType = "catheter"
	ConsumableSyringe  ConsumableType = "syringe"
	ConsumableGlove    ConsumableType = "glove"
	ConsumableOther    ConsumableType = "other"
)

// AlertType names the condition that raised an inventory alert.
type AlertType string

const (
	AlertLowStock       AlertType = "low_stock"
	AlertExpiring       AlertType = "expiring"
	AlertMaintenanceDue AlertType = "maintenance_due"
)

// AlertStatus is the triage state of an alert.
type AlertStatus string

const (
	AlertActive       AlertStatus = "active"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertResolved     AlertStatus = "resolved"
)

// AlertPriority ranks an alert for display ordering.
type AlertPriority string

const (
	PriorityLow    AlertPriority = "low"
	PriorityMedium AlertPriority = "medium"
	PriorityHigh   AlertPriority = "high"
)

// RestockStatus tracks a restock request through its approval workflow.
// Only request creation is implemented here; the approval transitions
// belong to a back-office system.
type RestockStatus string

const (
	RestockPending   RestockStatus = "pending"
	RestockApproved  RestockStatus = "approved"
	RestockCompleted RestockStatus = "completed"
	RestockCancelled RestockStatus = "cancelled"
)

// Equipment is a department asset with a maintenance schedule.
type Equipment struct {
	Record              `yaml:",inline"`
	Name                string          `json:"name" yaml:"name"`
	Type                EquipmentType   `json:"type" yaml:"type"`
	SerialNumber        string          `json:"serialNumber,omitempty" yaml:"serialNumber,omitempty"`
	Location            string          `json:"location,omitempty" yaml:"location,omitempty"`
	Status              EquipmentStatus `json:"status" yaml:"status"`
	PurchaseDate        string          `json:"purchaseDate,omitempty" yaml:"purchaseDate,omitempty"`
	LastMaintenanceDate string          `json:"lastMaintenanceDate,omitempty" yaml:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate string          `json:"nextMaintenanceDate,omitempty" yaml:"nextMaintenanceDate,omitempty"`
	Manufacturer        string          `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model               string          `json:"model,omitempty" yaml:"model,omitempty"`
	Notes               string          `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func (e *Equipment) SearchText() []string {
	return []string{e.Name, e.SerialNumber, e.Location, e.Manufacturer, e.Model}
}

func (e *Equipment) Validate() error {
	return validation.Required("name", e.Name)
}

// Consumable is a stocked supply with a reorder threshold.
type Consumable struct {
	Record          `yaml:",inline"`
	Name            string         `json:"name" yaml:"name"`
	Type            ConsumableType `json:"type" yaml:"type"`
	Quantity        int            `json:"quantity" yaml:"quantity"`
	MinimumQuantity int            `json:"minimumQuantity" yaml:"minimumQuantity"`
	Location        string         `json:"location,omitempty" yaml:"location,omitempty"`
	PurchaseDate    string         `json:"purchaseDate,omitempty" yaml:"purchaseDate,omitempty"`
	ExpirationDate  string         `json:"expirationDate,omitempty" yaml:"expirationDate,omitempty"`
	Supplier        string         `json:"supplier,omitempty" yaml:"supplier,omitempty"`
	LotNumber       string         `json:"lotNumber,omitempty" yaml:"lotNumber,omitempty"`
	Notes           string         `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func (c *Consumable) SearchText() []string {
	return []string{c.Name, c.Supplier, c.LotNumber, c.Location}
}

func (c *Consumable) Validate() error {
	if err := validation.Required("name", c.Name); err != nil {
		return err
	}
	if err := validation.NonNegativeInt("quantity", c.Quantity); err != nil {
		return err
	}
	return validation.NonNegativeInt("minimumQuantity", c.MinimumQuantity)
}

// MaintenanceRecord logs one service event against a piece of equipment.
type MaintenanceRecord struct {
	Record              `yaml:",inline"`
	EquipmentID         string  `json:"equipmentId" yaml:"equipmentId"`
	Date                string  `json:"date" yaml:"date"`
	Technician          string  `json:"technician,omitempty" yaml:"technician,omitempty"`
	Description         string  `json:"description,omitempty" yaml:"description,omitempty"`
	Cost                float64 `json:"cost,omitempty" yaml:"cost,omitempty"`
	NextMaintenanceDate string  `json:"nextMaintenanceDate,omitempty" yaml:"nextMaintenanceDate,omitempty"`
	Status              string  `json:"status" yaml:"status"` // completed, scheduled, cancelled
}

func (m *MaintenanceRecord) SearchText() []string {
	return []string{m.Technician, m.Description}
}

func (m *MaintenanceRecord) Validate() error {
	if err := validation.Required("equipmentId", m.EquipmentID); err != nil {
		return err
	}
	return validation.NonNegative("cost", m.Cost)
}

// RestockRequest asks for a consumable to be reordered.
type RestockRequest struct {
	Record            `yaml:",inline"`
	ConsumableID      string        `json:"consumableId" yaml:"consumableId"`
	RequestedQuantity int           `json:"requestedQuantity" yaml:"requestedQuantity"`
	RequestedBy       string        `json:"requestedBy,omitempty" yaml:"requestedBy,omitempty"`
	RequestDate       string        `json:"requestDate" yaml:"requestDate"`
	Status            RestockStatus `json:"status" yaml:"status"`
	ApprovedBy        string        `json:"approvedBy,omitempty" yaml:"approvedBy,omitempty"`
	ApprovalDate      string        `json:"approvalDate,omitempty" yaml:"approvalDate,omitempty"`
	Notes             string        `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func (r *RestockRequest) SearchText() []string {
	return []string{r.RequestedBy, r.Notes}
}

func (r *RestockRequest) Validate() error {
	if err := validation.Required("consumableId", r.ConsumableID); err != nil {
		return err
	}
	return validation.Positive("requestedQuantity", r.RequestedQuantity)
}

// Alert flags an inventory or maintenance condition that needs attention.
// RelatedID points at the equipment or consumable that raised it.
type Alert struct {
	Record     `yaml:",inline"`
	Type       AlertType     `json:"type" yaml:"type"`
	Status     AlertStatus   `json:"status" yaml:"status"`
	Message    string        `json:"message" yaml:"message"`
	CreatedAt  string        `json:"createdAt" yaml:"createdAt"`
	ResolvedAt string        `json:"resolvedAt,omitempty" yaml:"resolvedAt,omitempty"`
	ResolvedBy string        `json:"resolvedBy,omitempty" yaml:"resolvedBy,omitempty"`
	RelatedID  string        `json:"relatedId" yaml:"relatedId"`
	Priority   AlertPriority `json:"priority" yaml:"priority"`
}

func (a *Alert) SearchText() []string {
	return []string{a.Message, a.RelatedID}
}

func (a *Alert) Validate() error {
	return validation.Required("message", a.Message)
}
