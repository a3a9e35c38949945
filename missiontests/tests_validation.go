package missiontests

import (
	"net/http"

	"github.com/stretchr/testify/require"

	"github.com/alexisjeriha/mission-config-contract-tests/client"
)

func DoValidationTests(t *T) {
	requireRejected := func(t *T, c *client.MissionServiceClient, payload client.MissionPayload, message string) {
		resp, err := c.CreateConfig(payload)
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusBadRequest, message)
		require.Len(t, listConfigs(t, c), 0, "rejected record must not be admitted")
	}

	t.Run("missing name", func(t *T) {
		c := resetService(t)
		requireRejected(t, c, client.MissionPayload{Type: "OPTICAL", CosparID: "2023-001AB"}, errNameRequired)
	})

	t.Run("missing type", func(t *T) {
		c := resetService(t)
		requireRejected(t, c, client.MissionPayload{Name: "Sentinel Follow-on", CosparID: "2023-001AB"}, errTypeRequired)
	})

	t.Run("missing cospar id", func(t *T) {
		c := resetService(t)
		requireRejected(t, c, client.MissionPayload{Name: "Sentinel Follow-on", Type: "SAR"}, errCosparIDRequired)
	})

	t.Run("invalid type", func(t *T) {
		c := resetService(t)
		requireRejected(t, c, client.MissionPayload{Name: "Sentinel Follow-on", Type: "RADAR", CosparID: "2023-001AB"}, errInvalidType)
	})

	t.Run("invalid cospar id", func(t *T) {
		// The suffix has three letters instead of two.
		c := resetService(t)
		requireRejected(t, c, client.MissionPayload{Name: "Sentinel Follow-on", Type: "OPTICAL", CosparID: "2000-999ABC"}, errInvalidCosparID)
	})

	t.Run("missing name wins over every later rule", func(t *T) {
		c := resetService(t)
		requireRejected(t, c, client.MissionPayload{Type: "BOGUS", CosparID: "nope"}, errNameRequired)
	})

	t.Run("missing type wins over invalid cospar id", func(t *T) {
		c := resetService(t)
		requireRejected(t, c, client.MissionPayload{Name: "Sentinel Follow-on", CosparID: "nope"}, errTypeRequired)
	})

	t.Run("invalid type wins over invalid cospar id", func(t *T) {
		c := resetService(t)
		requireRejected(t, c, client.MissionPayload{Name: "Sentinel Follow-on", Type: "RADAR", CosparID: "nope"}, errInvalidType)
	})

	t.Run("cospar id format", func(t *T) {
		badIDs := map[string]string{
			"lowercase letters":   "2023-001ab",
			"two-digit year":      "23-001AB",
			"two-digit sequence":  "2023-01AB",
			"one piece letter":    "2023-001A",
			"missing hyphen":      "2023001AB",
			"letters in year":     "202A-001AB",
			"trailing whitespace": "2023-001AB ",
			"embedded designator": "x2023-001AB",
		}
		for name, id := range badIDs {
			badID := id
			t.Run(name, func(t *T) {
				c := resetService(t)
				requireRejected(t, c, client.MissionPayload{Name: "Sentinel Follow-on", Type: "SAR", CosparID: badID}, errInvalidCosparID)
			})
		}
	})

	t.Run("type must match exactly", func(t *T) {
		for _, badType := range []string{"optical", "sar", "Optical", "OPTICAL "} {
			badType := badType
			t.Run(badType, func(t *T) {
				c := resetService(t)
				requireRejected(t, c, client.MissionPayload{Name: "Sentinel Follow-on", Type: badType, CosparID: "2023-001AB"}, errInvalidType)
			})
		}
	})

	t.Run("empty body", func(t *T) {
		c := resetService(t)
		requireRejected(t, c, client.MissionPayload{}, errNameRequired)
	})

	t.Run("non-object body", func(t *T) {
		c := resetService(t)
		resp, err := c.Do(http.MethodPost, "/configs", []int{1, 2, 3})
		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusBadRequest, errNameRequired)
		require.Len(t, listConfigs(t, c), 0)
	})
}
