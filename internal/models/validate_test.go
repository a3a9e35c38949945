package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsWellFormedPayloads(t *testing.T) {
	for _, missionType := range []string{TypeOptical, TypeSAR} {
		p := MissionPayload{Name: "Survey Mission", Type: missionType, CosparID: "2023-001AB"}
		assert.NoError(t, p.Validate())
	}
}

func TestValidateRuleOrder(t *testing.T) {
	cases := []struct {
		name    string
		payload MissionPayload
		want    error
	}{
		{"empty payload", MissionPayload{}, ErrNameRequired},
		{"missing name beats bad type", MissionPayload{Type: "BOGUS", CosparID: "nope"}, ErrNameRequired},
		{"missing type", MissionPayload{Name: "M"}, ErrTypeRequired},
		{"missing type beats bad cospar", MissionPayload{Name: "M", CosparID: "nope"}, ErrTypeRequired},
		{"missing cospar", MissionPayload{Name: "M", Type: TypeSAR}, ErrCosparIDRequired},
		{"bad type", MissionPayload{Name: "M", Type: "RADAR", CosparID: "2023-001AB"}, ErrInvalidType},
		{"bad type beats bad cospar", MissionPayload{Name: "M", Type: "RADAR", CosparID: "nope"}, ErrInvalidType},
		{"bad cospar", MissionPayload{Name: "M", Type: TypeOptical, CosparID: "2000-999ABC"}, ErrInvalidCosparID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.payload.Validate(), tc.want)
		})
	}
}

func TestCosparIDFormat(t *testing.T) {
	valid := []string{"2023-001AB", "1999-999ZZ", "0001-000AA"}
	invalid := []string{
		"2023-001ab",
		"23-001AB",
		"2023-01AB",
		"2023-0001AB",
		"2023-001A",
		"2023-001ABC",
		"2023001AB",
		"2023-001AB ",
		" 2023-001AB",
		"2023-001-AB",
	}

	for _, id := range valid {
		p := MissionPayload{Name: "M", Type: TypeOptical, CosparID: id}
		assert.NoError(t, p.Validate(), "expected %q to be accepted", id)
	}
	for _, id := range invalid {
		p := MissionPayload{Name: "M", Type: TypeOptical, CosparID: id}
		assert.ErrorIs(t, p.Validate(), ErrInvalidCosparID, "expected %q to be rejected", id)
	}
}
