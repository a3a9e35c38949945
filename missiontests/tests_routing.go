package missiontests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoRoutingTests(t *T) {
	t.Run("misspelled collection path", func(t *T) {
		c := resetService(t)
		resp, err := c.Do(http.MethodGet, "/configss", nil)
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, pageNotFoundMessage("/configss"))
	})

	t.Run("unknown nested path", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))
		resp, err := c.Do(http.MethodGet, "/configs/1/history", nil)
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, pageNotFoundMessage("/configs/1/history"))
	})

	t.Run("root path", func(t *T) {
		c := resetService(t)
		resp, err := c.Do(http.MethodGet, "/", nil)
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, pageNotFoundMessage("/"))
	})

	t.Run("unsupported method on the collection", func(t *T) {
		// There are no partial-update semantics; PATCH is just an unknown route.
		c := resetService(t)
		resp, err := c.Do(http.MethodPatch, "/configs", nil)
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, pageNotFoundMessage("/configs"))
	})

	t.Run("success envelope carries all three keys", func(t *T) {
		c := resetService(t)
		mustCreate(t, c, validPayload(0))

		resp, err := c.ListConfigs()
		require.NoError(t, err)
		keys := envelopeKeys(t, resp)
		assert.Contains(t, keys, "meta")
		assert.Contains(t, keys, "data")
		assert.Contains(t, keys, "errors")
		assert.Equal(t, "null", string(keys["meta"]))
		assert.Equal(t, "null", string(keys["errors"]))
	})

	t.Run("error envelope carries all three keys", func(t *T) {
		c := resetService(t)
		resp, err := c.GetConfig("5")
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.Status)

		keys := envelopeKeys(t, resp)
		assert.Contains(t, keys, "meta")
		assert.Contains(t, keys, "data")
		assert.Contains(t, keys, "errors")
		assert.Equal(t, "null", string(keys["meta"]))
		assert.Equal(t, "null", string(keys["data"]))
	})

	t.Run("error objects carry message and source strings", func(t *T) {
		c := resetService(t)
		resp, err := c.GetConfig("5")
		require.NoError(t, err)
		require.Len(t, resp.Envelope.Errors, 1)
		assert.NotEmpty(t, resp.Envelope.Errors[0].Message)
		// The source field's content is unconstrained by the contract; it only
		// has to be a string, which decoding into ErrorDetail already proved.
	})
}
