package missiontests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoGetTests(t *T) {
	t.Run("returns the record by id", func(t *T) {
		c := resetService(t)
		payload := validPayload(0)
		mustCreate(t, c, payload)
		mustCreate(t, c, validPayload(1))

		resp, err := c.GetConfig("1")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		config, err := resp.Envelope.DataConfig()
		require.NoError(t, err)
		assert.Equal(t, 1, config.ID)
		assert.Equal(t, payload.Name, config.Name)
	})

	t.Run("repeated reads return identical data", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))

		first, err := c.GetConfig("1")
		require.NoError(t, err)
		second, err := c.GetConfig("1")
		require.NoError(t, err)
		assert.Equal(t, string(first.Body), string(second.Body))
	})

	t.Run("unknown id returns 404", func(t *T) {
		c := resetService(t)
		resp, err := c.GetConfig("2")
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, missionNotFoundMessage("2"))
	})

	t.Run("non-numeric id returns 404", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))
		resp, err := c.GetConfig("first")
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, missionNotFoundMessage("first"))
	})

	t.Run("success envelope has null meta and errors", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))

		resp, err := c.GetConfig("1")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		assert.True(t, resp.Envelope.Meta.IsNull())
		assert.Nil(t, resp.Envelope.Errors)
	})
}
