package models

import "errors"

// Admission rule failures. The API layer prefixes these with
// "invalid request due to " when building the error envelope.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrTypeRequired     = errors.New("payload type is required")
	ErrCosparIDRequired = errors.New("cospar ID is required")
	ErrInvalidType      = errors.New("invalid payload type")
	ErrInvalidCosparID  = errors.New("invalid COSPAR ID")
)

// Validate checks the payload against the admission rules. The rules run in
// a fixed order and the first failure wins: required fields (name, type,
// cospar ID), then the type enumeration, then the COSPAR ID format.
func (p *MissionPayload) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Type == "" {
		return ErrTypeRequired
	}
	if p.CosparID == "" {
		return ErrCosparIDRequired
	}
	if p.Type != TypeOptical && p.Type != TypeSAR {
		return ErrInvalidType
	}
	if !cosparIDPattern.MatchString(p.CosparID) {
		return ErrInvalidCosparID
	}
	return nil
}
