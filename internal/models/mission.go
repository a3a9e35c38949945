package models

import "regexp"

// Mission types accepted by the service.
const (
	TypeOptical = "OPTICAL"
	TypeSAR     = "SAR"
)

// cosparIDPattern matches international designators such as "2023-001AB":
// launch year, three-digit launch sequence number, two piece letters.
var cosparIDPattern = regexp.MustCompile(`^\d{4}-\d{3}[A-Z]{2}$`)

// MissionConfig is one satellite mission configuration record. The id is
// assigned by the service on creation and never changes.
type MissionConfig struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	CosparID string `json:"cospar_id"`
}

// MissionPayload is the client-supplied portion of a mission config, used
// for both create and update requests.
type MissionPayload struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	CosparID string `json:"cospar_id"`
}
