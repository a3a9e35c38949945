package client

import (
	"encoding/json"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Envelope is the uniform {meta, data, errors} wrapper the service puts
// around every response. Meta and Data are kept as arbitrary JSON values
// because data is a union: a record, an array of records, a message object,
// or null depending on the endpoint and outcome.
type Envelope struct {
	Meta   ldvalue.Value `json:"meta"`
	Data   ldvalue.Value `json:"data"`
	Errors []ErrorDetail `json:"errors"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Source  string `json:"source"`
}

// MissionConfig mirrors the service's record shape.
type MissionConfig struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	CosparID string `json:"cospar_id"`
}

// MissionPayload is the request body for create and update operations. Empty
// fields are omitted from the JSON so tests can exercise the service's
// missing-field rules.
type MissionPayload struct {
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	CosparID string `json:"cospar_id,omitempty"`
}

// DataMessage returns data.message, or "" if data is not a message object.
func (e Envelope) DataMessage() string {
	return e.Data.GetByKey("message").StringValue()
}

// DataConfig decodes data as a single mission config record.
func (e Envelope) DataConfig() (MissionConfig, error) {
	var m MissionConfig
	err := json.Unmarshal([]byte(e.Data.JSONString()), &m)
	return m, err
}

// DataConfigs decodes data as an array of records.
func (e Envelope) DataConfigs() ([]MissionConfig, error) {
	var ms []MissionConfig
	err := json.Unmarshal([]byte(e.Data.JSONString()), &ms)
	return ms, err
}

// ErrorMessage returns the first error message, or "" if there are no errors.
func (e Envelope) ErrorMessage() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}
