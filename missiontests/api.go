package missiontests

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisjeriha/mission-config-contract-tests/client"
	"github.com/alexisjeriha/mission-config-contract-tests/framework"
)

// Messages the behavioral contract requires word for word. They are spelled
// out here rather than shared with the reference implementation so the suite
// stays black-box.
const (
	msgCreated = "Mission config created successfully"
	msgUpdated = "Mission config updated successfully"
	msgDeleted = "Mission config deleted successfully"

	errNameRequired     = "invalid request due to name is required"
	errTypeRequired     = "invalid request due to payload type is required"
	errCosparIDRequired = "invalid request due to cospar ID is required"
	errInvalidType      = "invalid request due to invalid payload type"
	errInvalidCosparID  = "invalid request due to invalid COSPAR ID"
	errDatabaseFull     = "invalid request due to mission config database is full"
)

func missionNotFoundMessage(id string) string {
	return fmt.Sprintf("'resource '%s' of type 'Mission'' does not exist", id)
}

func pageNotFoundMessage(path string) string {
	return fmt.Sprintf("'resource '%s' of type 'page'' does not exist", path)
}

type environment struct {
	client   *client.MissionServiceClient
	capacity int
}

// T adds the suite's environment (the service client and the capacity the
// service is configured with) to the framework test context.
type T struct {
	*framework.Context
	env *environment
}

func (t *T) Run(name string, action func(*T)) {
	t.Context.Run(name, func(c *framework.Context) {
		action(&T{Context: c, env: t.env})
	})
}

// resetService clears the service state so the test starts from an empty
// store and fresh id assignment, and returns a client whose request log is
// captured as this test's debug output.
func resetService(t *T) *client.MissionServiceClient {
	c := t.env.client.WithLogger(t.DebugLogger())
	require.NoError(t, c.Reset())
	return c
}

func mustCreate(t *T, c *client.MissionServiceClient, payload client.MissionPayload) {
	resp, err := c.CreateConfig(payload)
	require.NoError(t, err)
	requireSuccessMessage(t, resp, msgCreated)
}

func listConfigs(t *T, c *client.MissionServiceClient) []client.MissionConfig {
	resp, err := c.ListConfigs()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)
	configs, err := resp.Envelope.DataConfigs()
	require.NoError(t, err)
	return configs
}

func requireSuccessMessage(t *T, resp client.Response, expected string) {
	require.Equal(t, http.StatusOK, resp.Status)
	assert.True(t, resp.Envelope.Meta.IsNull(), "meta should be null on success")
	assert.Nil(t, resp.Envelope.Errors, "errors should be null on success")
	assert.Equal(t, expected, resp.Envelope.DataMessage())
}

func requireErrorResponse(t *T, resp client.Response, status int, message string) {
	require.Equal(t, status, resp.Status)
	assert.True(t, resp.Envelope.Data.IsNull(), "data should be null on error")
	assert.True(t, resp.Envelope.Meta.IsNull(), "meta should be null on error")
	require.Len(t, resp.Envelope.Errors, 1)
	assert.Equal(t, message, resp.Envelope.Errors[0].Message)
}

// envelopeKeys decodes the raw response body as a JSON object so tests can
// assert which keys were actually present on the wire.
func envelopeKeys(t *T, resp client.Response) map[string]json.RawMessage {
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Body, &keys))
	return keys
}

// validPayload generates distinct valid payloads, alternating mission types.
func validPayload(i int) client.MissionPayload {
	missionType := "OPTICAL"
	if i%2 == 1 {
		missionType = "SAR"
	}
	return client.MissionPayload{
		Name:     fmt.Sprintf("Imaging Constellation %d", i+1),
		Type:     missionType,
		CosparID: fmt.Sprintf("2023-%03dAB", i+1),
	}
}
