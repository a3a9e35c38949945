package missiontests

import (
	"github.com/alexisjeriha/mission-config-contract-tests/client"
	"github.com/alexisjeriha/mission-config-contract-tests/framework"
)

// RunTestSuite runs the full contract test suite against the service the
// client points at. capacity is the record limit the service is configured
// with; the capacity tests fill the store up to it.
func RunTestSuite(
	serviceClient *client.MissionServiceClient,
	capacity int,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			Context: c,
			env: &environment{
				client:   serviceClient,
				capacity: capacity,
			},
		}

		t.Run("create", DoCreateTests)
		t.Run("list", DoListTests)
		t.Run("get", DoGetTests)
		t.Run("update", DoUpdateTests)
		t.Run("delete", DoDeleteTests)
		t.Run("validation", DoValidationTests)
		t.Run("capacity", DoCapacityTests)
		t.Run("routing", DoRoutingTests)
	})
}
