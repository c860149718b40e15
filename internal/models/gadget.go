package models

import (
	"time"

	"github.com/google/uuid"
)

// Gadget statuses. AVAILABLE is the initial status; DESTROYED and
// DECOMMISSIONED are terminal. DEPLOYED is part of the enumeration but no
// lifecycle operation produces it.
const (
	StatusAvailable      = "AVAILABLE"
	StatusDeployed       = "DEPLOYED"
	StatusDestroyed      = "DESTROYED"
	StatusDecommissioned = "DECOMMISSIONED"
)

// ValidStatus reports whether s is one of the known gadget statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusDeployed, StatusDestroyed, StatusDecommissioned:
		return true
	}
	return false
}

// TerminalStatus reports whether s is a status no gadget leaves.
func TerminalStatus(s string) bool {
	return s == StatusDestroyed || s == StatusDecommissioned
}

// GadgetDB represents a gadget record in the database
type GadgetDB struct {
	GadgetID         uuid.UUID  `json:"id" db:"gadget_id"`                        // Primary key
	Name             string     `json:"name" db:"name"`                           // Display name
	Codename         string     `json:"codename" db:"codename"`                   // Unique codename
	Description      string     `json:"description" db:"description"`             // Free text
	Status           string     `json:"status" db:"status"`                       // Lifecycle status
	DecommissionedAt *time.Time `json:"decommissionedAt" db:"decommissioned_at"`  // Null until decommissioned
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`                // Creation timestamp
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`                // Last update timestamp
}

// Gadget is the outward representation of a gadget: the stored record plus
// the mission success probability generated fresh on every read. The
// probability is decorative and is never persisted.
type Gadget struct {
	GadgetDB
	MissionSuccessProbability string `json:"missionSuccessProbability"`
}
