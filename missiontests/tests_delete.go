package missiontests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoDeleteTests(t *T) {
	t.Run("deletion is final", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))

		resp, err := c.DeleteConfig("1")
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgDeleted)

		got, err := c.GetConfig("1")
		require.NoError(t, err)
		requireErrorResponse(t, got, http.StatusNotFound, missionNotFoundMessage("1"))
	})

	t.Run("double delete returns 404", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))

		resp, err := c.DeleteConfig("1")
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgDeleted)

		resp, err = c.DeleteConfig("1")
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, missionNotFoundMessage("1"))
	})

	t.Run("never-existing id returns 404", func(t *T) {
		c := resetService(t)
		resp, err := c.DeleteConfig("12")
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, missionNotFoundMessage("12"))
	})

	t.Run("non-numeric id returns 404", func(t *T) {
		c := resetService(t)
		resp, err := c.DeleteConfig("latest")
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, missionNotFoundMessage("latest"))
	})

	t.Run("other records are unaffected", func(t *T) {
		c := resetService(t)
		for i := 0; i < 3; i++ {
			mustCreate(t, c, validPayload(i))
		}

		resp, err := c.DeleteConfig("2")
		require.NoError(t, err)
		requireSuccessMessage(t, resp, msgDeleted)

		configs := listConfigs(t, c)
		require.Len(t, configs, 2)
		assert.Equal(t, 1, configs[0].ID)
		assert.Equal(t, 3, configs[1].ID)
	})
}
