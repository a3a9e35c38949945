package missiontests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisjeriha/mission-config-contract-tests/client"
)

func DoCreateTests(t *T) {
	t.Run("create and read back one config", func(t *T) {
		c := resetService(t)
		payload := client.MissionPayload{
			Name:     "Test Satellites 322",
			Type:     "OPTICAL",
			CosparID: "2023-001AB",
		}
		resp, err := c.CreateConfig(payload)
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgCreated)

		configs := listConfigs(t, c)
		require.Len(t, configs, 1)
		assert.Equal(t, client.MissionConfig{
			ID:       1,
			Name:     "Test Satellites 322",
			Type:     "OPTICAL",
			CosparID: "2023-001AB",
		}, configs[0])
	})

	t.Run("ids are assigned sequentially from 1", func(t *T) {
		c := resetService(t)
		for i := 0; i < 3; i++ {
			mustCreate(t, c, validPayload(i))
		}
		configs := listConfigs(t, c)
		require.Len(t, configs, 3)
		for i, config := range configs {
			assert.Equal(t, i+1, config.ID)
		}
	})

	t.Run("ids are not reused after a delete", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))
		mustCreate(t, c, validPayload(1))

		resp, err := c.DeleteConfig("1")
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgDeleted)

		mustCreate(t, c, validPayload(2))
		configs := listConfigs(t, c)
		require.Len(t, configs, 2)
		assert.Equal(t, 2, configs[0].ID)
		assert.Equal(t, 3, configs[1].ID)
	})

	t.Run("rejected create does not consume an id", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))

		resp, err := c.CreateConfig(client.MissionPayload{Type: "OPTICAL", CosparID: "2023-002AB"})
		require.NoError(t, err)
		requireErrorResponse(t, resp, 400, errNameRequired)

		mustCreate(t, c, validPayload(1))
		configs := listConfigs(t, c)
		require.Len(t, configs, 2)
		assert.Equal(t, 2, configs[1].ID)
	})

	t.Run("created record is returned by get", func(t *T) {
		c := resetService(t)
		payload := validPayload(0)
		mustCreate(t, c, payload)

		resp, err := c.GetConfig("1")
		require.NoError(t, err)
		require.Equal(t, 200, resp.Status)
		config, err := resp.Envelope.DataConfig()
		require.NoError(t, err)
		assert.Equal(t, payload.Name, config.Name)
		assert.Equal(t, payload.Type, config.Type)
		assert.Equal(t, payload.CosparID, config.CosparID)
	})
}
