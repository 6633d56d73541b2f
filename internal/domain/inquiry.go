package domain

import "time"

// InquiryStatus tracks how far an inquiry has been handled.
type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusInProgress InquiryStatus = "in-progress"
	InquiryStatusResolved   InquiryStatus = "resolved"
)

// InquiryStatuses lists every valid status in workflow order.
var InquiryStatuses = []InquiryStatus{InquiryStatusNew, InquiryStatusInProgress, InquiryStatusResolved}

// Valid reports whether s is a known status.
func (s InquiryStatus) Valid() bool {
	for _, known := range InquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ServiceCategory is the closed set of services a visitor can ask about.
type ServiceCategory string

const (
	ServiceInfrastructureAudit ServiceCategory = "Infrastructure Audit"
	ServiceStrategicAdvisory   ServiceCategory = "Strategic Advisory"
	ServiceCloudMigration      ServiceCategory = "Cloud Migration"
	ServiceComplianceReview    ServiceCategory = "Compliance Review"
	ServiceOther               ServiceCategory = "Other"
)

// ServiceCategories lists the accepted categories in display order.
var ServiceCategories = []ServiceCategory{
	ServiceInfrastructureAudit,
	ServiceStrategicAdvisory,
	ServiceCloudMigration,
	ServiceComplianceReview,
	ServiceOther,
}

// Valid reports whether c belongs to the closed set.
func (c ServiceCategory) Valid() bool {
	for _, known := range ServiceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// CompanyNotProvided replaces a blank company on stored inquiries.
const CompanyNotProvided = "N/A"

// Inquiry is a contact-form submission. Only Status changes after creation.
type Inquiry struct {
	ID        string
	Name      string
	Company   string
	Email     string
	Service   ServiceCategory
	Message   string
	Status    InquiryStatus
	CreatedAt time.Time
}
