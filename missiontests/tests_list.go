package missiontests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoListTests(t *T) {
	t.Run("empty store returns an empty array", func(t *T) {
		c := resetService(t)
		resp, err := c.ListConfigs()
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, ldvalue.ArrayType, resp.Envelope.Data.Type(), "data should be an array, not null")
		assert.Equal(t, 0, resp.Envelope.Data.Count())
		assert.Nil(t, resp.Envelope.Errors)
	})

	t.Run("returns records in creation order", func(t *T) {
		c := resetService(t)
		var names []string
		for i := 0; i < 4; i++ {
			payload := validPayload(i)
			names = append(names, payload.Name)
			mustCreate(t, c, payload)
		}

		configs := listConfigs(t, c)
		require.Len(t, configs, 4)
		for i, config := range configs {
			assert.Equal(t, names[i], config.Name)
		}
	})

	t.Run("repeated list calls return identical data", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))
		mustCreate(t, c, validPayload(1))

		first, err := c.ListConfigs()
		require.NoError(t, err)
		second, err := c.ListConfigs()
		require.NoError(t, err)
		assert.Equal(t, first.Status, second.Status)
		assert.Equal(t, string(first.Body), string(second.Body))
	})

	t.Run("deleted records no longer appear", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))
		mustCreate(t, c, validPayload(1))
		mustCreate(t, c, validPayload(2))

		resp, err := c.DeleteConfig("2")
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgDeleted)

		configs := listConfigs(t, c)
		require.Len(t, configs, 2)
		assert.Equal(t, 1, configs[0].ID)
		assert.Equal(t, 3, configs[1].ID)
	})
}
