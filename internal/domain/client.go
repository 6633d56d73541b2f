package domain

import "time"

// ClientStatus describes the commercial relationship with a client.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusProspect ClientStatus = "prospect"
)

// Client is an administrator-managed customer record.
type Client struct {
	ID        string
	Name      string
	Company   string
	Email     string
	Phone     string
	Status    ClientStatus
	Since     string
	Revenue   string
	CreatedAt time.Time
}
