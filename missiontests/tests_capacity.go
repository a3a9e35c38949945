package missiontests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoCapacityTests(t *T) {
	t.Run("create fails once the store is full", func(t *T) {
		c := resetService(t)
		for i := 0; i < t.env.capacity; i++ {
			mustCreate(t, c, validPayload(i))
		}

		resp, err := c.CreateConfig(validPayload(t.env.capacity))
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusBadRequest, errDatabaseFull)
		assert.Len(t, listConfigs(t, c), t.env.capacity, "store size must not change")
	})

	t.Run("deleting frees capacity but not the deleted id", func(t *T) {
		c := resetService(t)
		for i := 0; i < t.env.capacity; i++ {
			mustCreate(t, c, validPayload(i))
		}

		resp, err := c.DeleteConfig("1")
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgDeleted)

		mustCreate(t, c, validPayload(t.env.capacity))
		configs := listConfigs(t, c)
		require.Len(t, configs, t.env.capacity)
		assert.Equal(t, t.env.capacity+1, configs[len(configs)-1].ID)
	})

	t.Run("updates are allowed at capacity", func(t *T) {
		c := resetService(t)
		for i := 0; i < t.env.capacity; i++ {
			mustCreate(t, c, validPayload(i))
		}

		resp, err := c.UpdateConfig("1", validPayload(t.env.capacity))
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgUpdated)
	})

	t.Run("capacity error repeats on every further create", func(t *T) {
		c := resetService(t)
		for i := 0; i < t.env.capacity; i++ {
			mustCreate(t, c, validPayload(i))
		}

		for attempt := 0; attempt < 2; attempt++ {
			resp, err := c.CreateConfig(validPayload(t.env.capacity + attempt))
			require.NoError(t, err)
			requireErrorResponse(t, resp, http.StatusBadRequest, errDatabaseFull)
		}
		configs := listConfigs(t, c)
		require.Len(t, configs, t.env.capacity)
		assert.Equal(t, t.env.capacity, configs[len(configs)-1].ID)
	})
}
