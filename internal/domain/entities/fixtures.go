package entities

type WarningLevel string

const (
	LevelCritical WarningLevel = "critical"
	LevelHigh     WarningLevel = "high"
	LevelMedium   WarningLevel = "medium"
	LevelLow      WarningLevel = "low"
)

type HandlingStatus string

const (
	StatusPending    HandlingStatus = "pending"
	StatusProcessing HandlingStatus = "processing"
	StatusResolved   HandlingStatus = "resolved"
)

type FaultWarning struct {
	ID         string         `json:"id" bson:"_id"`
	DeviceID   string         `json:"deviceId" bson:"deviceId"`
	DeviceName string         `json:"deviceName" bson:"deviceName"`
	DeviceType DeviceType     `json:"deviceType" bson:"deviceType"`
	Status     DeviceStatus   `json:"deviceStatus" bson:"deviceStatus"`
	Level      WarningLevel   `json:"level" bson:"level"`
	Message    string         `json:"message" bson:"message"`
	Location   string         `json:"location" bson:"location"`
	Timestamp  string         `json:"timestamp" bson:"timestamp"`
	Handling   HandlingStatus `json:"handlingStatus" bson:"handlingStatus"`
	Assignee   string         `json:"assignee,omitempty" bson:"assignee,omitempty"`
}

type DeviceLinkage struct {
	ID            string   `json:"id" bson:"_id"`
	Name          string   `json:"name" bson:"name"`
	TriggerDevice string   `json:"triggerDevice" bson:"triggerDevice"`
	Condition     string   `json:"condition" bson:"condition"`
	Actions       []string `json:"actions" bson:"actions"`
	Enabled       bool     `json:"enabled" bson:"enabled"`
	LastTriggered string   `json:"lastTriggered,omitempty" bson:"lastTriggered,omitempty"`
}

type User struct {
	ID         string `json:"id" bson:"_id"`
	Name       string `json:"name" bson:"name"`
	Username   string `json:"username" bson:"username"`
	Role       string `json:"role" bson:"role"`
	Department string `json:"department" bson:"department"`
	Phone      string `json:"phone" bson:"phone"`
	Email      string `json:"email" bson:"email"`
	Active     bool   `json:"active" bson:"active"`
}

type OrganizationUnit struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	ParentID    string `json:"parentId,omitempty" bson:"parentId,omitempty"`
	Manager     string `json:"manager" bson:"manager"`
	MemberCount int    `json:"memberCount" bson:"memberCount"`
}

type SafetyEvent struct {
	ID          string         `json:"id" bson:"_id"`
	Type        string         `json:"type" bson:"type"`
	Level       WarningLevel   `json:"level" bson:"level"`
	Location    string         `json:"location" bson:"location"`
	Description string         `json:"description" bson:"description"`
	Timestamp   string         `json:"timestamp" bson:"timestamp"`
	Status      HandlingStatus `json:"status" bson:"status"`
	Handler     string         `json:"handler,omitempty" bson:"handler,omitempty"`
}

type InspectionRecord struct {
	ID         string `json:"id" bson:"_id"`
	Area       string `json:"area" bson:"area"`
	Inspector  string `json:"inspector" bson:"inspector"`
	Date       string `json:"date" bson:"date"`
	Result     string `json:"result" bson:"result"`
	IssueCount int    `json:"issueCount" bson:"issueCount"`
	Notes      string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type RectificationItem struct {
	ID           string         `json:"id" bson:"_id"`
	InspectionID string         `json:"inspectionId" bson:"inspectionId"`
	Issue        string         `json:"issue" bson:"issue"`
	Responsible  string         `json:"responsible" bson:"responsible"`
	Deadline     string         `json:"deadline" bson:"deadline"`
	Status       HandlingStatus `json:"status" bson:"status"`
	Progress     int            `json:"progress" bson:"progress"`
}
