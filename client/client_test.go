package client

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jsonHeaders = http.Header{"Content-Type": []string{"application/json"}}

const emptyListEnvelope = `{"meta":null,"data":[],"errors":null}`

// newTestClient starts a server that answers the availability poll New
// performs with an empty list, then serves the canned response for every
// later request. Returns the client plus the recorded-request channel, with
// the poll request already drained.
func newTestClient(t *testing.T, status int, body string) (*MissionServiceClient, <-chan httphelpers.HTTPRequestInfo) {
	t.Helper()
	probe := httphelpers.HandlerWithResponse(200, jsonHeaders, []byte(emptyListEnvelope))
	canned := httphelpers.HandlerWithResponse(status, jsonHeaders, []byte(body))
	var polled int32
	handler, requestsCh := httphelpers.RecordingHandler(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.CompareAndSwapInt32(&polled, 0, 1) {
				probe.ServeHTTP(w, r)
				return
			}
			canned.ServeHTTP(w, r)
		}))
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(server.URL, time.Second, nil)
	require.NoError(t, err)
	<-requestsCh // the availability poll
	return c, requestsCh
}

func TestNewVerifiesServiceIsResponding(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(200, jsonHeaders, []byte(`{"meta":null,"data":[],"errors":null}`)))
	server := httptest.NewServer(handler)
	defer server.Close()

	_, err := New(server.URL, time.Second, nil)
	require.NoError(t, err)

	info := <-requestsCh
	assert.Equal(t, "GET", info.Request.Method)
	assert.Equal(t, "/configs", info.Request.URL.Path)
}

func TestNewFailsWhenServiceNotResponding(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(503))
	defer server.Close()

	_, err := New(server.URL, time.Millisecond*100, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 503")
}

func TestGetConfigDecodesRecordEnvelope(t *testing.T) {
	c, requestsCh := newTestClient(t, 200,
		`{"meta":null,"data":{"id":1,"name":"Test Satellites 322","type":"OPTICAL","cospar_id":"2023-001AB"},"errors":null}`)

	resp, err := c.GetConfig("1")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)

	config, err := resp.Envelope.DataConfig()
	require.NoError(t, err)
	assert.Equal(t, MissionConfig{ID: 1, Name: "Test Satellites 322", Type: "OPTICAL", CosparID: "2023-001AB"}, config)

	info := <-requestsCh
	assert.Equal(t, "GET", info.Request.Method)
	assert.Equal(t, "/configs/1", info.Request.URL.Path)
}

func TestListConfigsDecodesArrayEnvelope(t *testing.T) {
	c, _ := newTestClient(t, 200,
		`{"meta":null,"data":[{"id":1,"name":"A","type":"OPTICAL","cospar_id":"2023-001AB"},{"id":2,"name":"B","type":"SAR","cospar_id":"2023-002CD"}],"errors":null}`)

	resp, err := c.ListConfigs()
	require.NoError(t, err)
	configs, err := resp.Envelope.DataConfigs()
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "B", configs[1].Name)
}

func TestCreateConfigSendsJSONPayload(t *testing.T) {
	c, requestsCh := newTestClient(t, 200,
		`{"meta":null,"data":{"message":"Mission config created successfully"},"errors":null}`)

	resp, err := c.CreateConfig(MissionPayload{Name: "A", Type: "OPTICAL", CosparID: "2023-001AB"})
	require.NoError(t, err)
	assert.Equal(t, "Mission config created successfully", resp.Envelope.DataMessage())

	info := <-requestsCh
	assert.Equal(t, "POST", info.Request.Method)
	assert.Equal(t, "/configs", info.Request.URL.Path)
	assert.Equal(t, "application/json", info.Request.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"name":"A","type":"OPTICAL","cospar_id":"2023-001AB"}`, string(info.Body))
}

func TestPayloadOmitsEmptyFields(t *testing.T) {
	c, requestsCh := newTestClient(t, 400,
		`{"meta":null,"data":null,"errors":[{"message":"invalid request due to name is required","source":"/configs"}]}`)

	resp, err := c.CreateConfig(MissionPayload{Type: "OPTICAL"})
	require.NoError(t, err)
	assert.Equal(t, 400, resp.Status)
	assert.Equal(t, "invalid request due to name is required", resp.Envelope.ErrorMessage())
	assert.True(t, resp.Envelope.Data.IsNull())

	info := <-requestsCh
	assert.JSONEq(t, `{"type":"OPTICAL"}`, string(info.Body))
}

func TestUpdateAndDeleteUseIDPaths(t *testing.T) {
	c, requestsCh := newTestClient(t, 200,
		`{"meta":null,"data":{"message":"ok"},"errors":null}`)

	_, err := c.UpdateConfig("3", MissionPayload{Name: "A", Type: "SAR", CosparID: "2023-003EF"})
	require.NoError(t, err)
	info := <-requestsCh
	assert.Equal(t, "PUT", info.Request.Method)
	assert.Equal(t, "/configs/3", info.Request.URL.Path)

	_, err = c.DeleteConfig("3")
	require.NoError(t, err)
	info = <-requestsCh
	assert.Equal(t, "DELETE", info.Request.Method)
	assert.Equal(t, "/configs/3", info.Request.URL.Path)
}

func TestResetPostsToAdminEndpoint(t *testing.T) {
	c, requestsCh := newTestClient(t, 200,
		`{"meta":null,"data":{"message":"Mission config store reset"},"errors":null}`)

	require.NoError(t, c.Reset())
	info := <-requestsCh
	assert.Equal(t, "POST", info.Request.Method)
	assert.Equal(t, "/__admin/reset", info.Request.URL.Path)
}

func TestResetFailsOnNonOKStatus(t *testing.T) {
	c, _ := newTestClient(t, 404,
		`{"meta":null,"data":null,"errors":[{"message":"'resource '/__admin/reset' of type 'page'' does not exist","source":"/__admin/reset"}]}`)

	err := c.Reset()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestMalformedEnvelopeIsAnError(t *testing.T) {
	c, _ := newTestClient(t, 200, `not json at all`)

	_, err := c.ListConfigs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed response envelope")
}
