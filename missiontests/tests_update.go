package missiontests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisjeriha/mission-config-contract-tests/client"
)

func DoUpdateTests(t *T) {
	t.Run("replaces all fields and preserves the id", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))

		replacement := client.MissionPayload{
			Name:     "Renamed Survey Mission",
			Type:     "SAR",
			CosparID: "2024-105CD",
		}
		resp, err := c.UpdateConfig("1", replacement)
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgUpdated)

		got, err := c.GetConfig("1")
		require.NoError(t, err)
		config, err := got.Envelope.DataConfig()
		require.NoError(t, err)
		assert.Equal(t, client.MissionConfig{
			ID:       1,
			Name:     "Renamed Survey Mission",
			Type:     "SAR",
			CosparID: "2024-105CD",
		}, config)
	})

	t.Run("id in the request body is ignored", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))

		body := map[string]interface{}{
			"id":        42,
			"name":      "Relabeled Mission",
			"type":      "OPTICAL",
			"cospar_id": "2024-002AB",
		}
		resp, err := c.Do(http.MethodPut, "/configs/1", body)
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgUpdated)

		configs := listConfigs(t, c)
		require.Len(t, configs, 1)
		assert.Equal(t, 1, configs[0].ID)
		assert.Equal(t, "Relabeled Mission", configs[0].Name)
	})

	t.Run("unknown id returns 404", func(t *T) {
		c := resetService(t)
		resp, err := c.UpdateConfig("7", validPayload(0))
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, missionNotFoundMessage("7"))
	})

	t.Run("deleted id returns 404", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))
		resp, err := c.DeleteConfig("1")
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgDeleted)

		resp, err = c.UpdateConfig("1", validPayload(1))
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, missionNotFoundMessage("1"))
	})

	t.Run("validation failure wins over unknown id", func(t *T) {
		c := resetService(t)
		resp, err := c.UpdateConfig("99", client.MissionPayload{Type: "OPTICAL", CosparID: "2023-001AB"})
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusBadRequest, errNameRequired)
	})

	t.Run("invalid payload leaves the record unchanged", func(t *T) {
		c := resetService(t)
		payload := validPayload(0)
		mustCreate(t, c, payload)

		resp, err := c.UpdateConfig("1", client.MissionPayload{
			Name:     "Broken Update",
			Type:     "OPTICAL",
			CosparID: "not-a-cospar-id",
		})
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusBadRequest, errInvalidCosparID)

		configs := listConfigs(t, c)
		require.Len(t, configs, 1)
		assert.Equal(t, payload.Name, configs[0].Name)
		assert.Equal(t, payload.CosparID, configs[0].CosparID)
	})
}
