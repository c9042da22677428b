package domain

type ApplicationStatus string

// Well-known labels. Status is free-form and never checked against this list.
const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusApproved ApplicationStatus = "Approved"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

// Crew is a crew-membership application. CrewID is assigned on insert and
// never changes; ApplicationStatus is the only mutable field.
type Crew struct {
	CrewID            int32             `json:"crew_id"`
	ApplicationStatus ApplicationStatus `json:"application_status"`
	User              *User             `json:"user"`
}
