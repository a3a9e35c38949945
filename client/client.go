package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alexisjeriha/mission-config-contract-tests/framework"
)

const (
	configsPath = "/configs"
	resetPath   = "/__admin/reset"
)

// MissionServiceClient performs requests against a mission configuration
// service and decodes the response envelope.
type MissionServiceClient struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// Response is the decoded result of one request. Body keeps the raw bytes so
// tests can make assertions about the exact envelope shape on the wire.
type Response struct {
	Status   int
	Envelope Envelope
	Body     []byte
}

// New creates a MissionServiceClient, verifying that the service is
// responding by polling the list endpoint (which by contract never errors)
// until it returns 200 or the timeout elapses.
func New(baseURL string, timeout time.Duration, logger framework.Logger) (*MissionServiceClient, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	c := &MissionServiceClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     logger,
	}

	deadline := time.Now().Add(timeout)
	for {
		c.logger.Printf("Querying %s", c.baseURL+configsPath)
		resp, err := c.httpClient.Get(c.baseURL + configsPath)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return c, nil
			}
			err = fmt.Errorf("status code %d", resp.StatusCode)
		}
		if !time.Now().Before(deadline) {
			return nil, fmt.Errorf("service not available at %s: result of last query was: %s", baseURL, err)
		}
		time.Sleep(time.Millisecond * 20)
	}
}

// WithLogger returns a copy of the client that writes its debug output to the
// given logger. The harness uses this to capture per-test request logs.
func (c *MissionServiceClient) WithLogger(logger framework.Logger) *MissionServiceClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &MissionServiceClient{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		logger:     logger,
	}
}

func (c *MissionServiceClient) ListConfigs() (Response, error) {
	return c.do(http.MethodGet, configsPath, nil)
}

func (c *MissionServiceClient) GetConfig(id string) (Response, error) {
	return c.do(http.MethodGet, configsPath+"/"+id, nil)
}

func (c *MissionServiceClient) CreateConfig(payload MissionPayload) (Response, error) {
	return c.do(http.MethodPost, configsPath, payload)
}

func (c *MissionServiceClient) UpdateConfig(id string, payload MissionPayload) (Response, error) {
	return c.do(http.MethodPut, configsPath+"/"+id, payload)
}

func (c *MissionServiceClient) DeleteConfig(id string) (Response, error) {
	return c.do(http.MethodDelete, configsPath+"/"+id, nil)
}

// Reset tells the service to empty its store and restart id assignment,
// giving the next test a fresh instance.
func (c *MissionServiceClient) Reset() error {
	resp, err := c.do(http.MethodPost, resetPath, nil)
	if err != nil {
		return err
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("reset returned status %d", resp.Status)
	}
	return nil
}

// Do issues an arbitrary request. Tests use it to probe unknown routes and to
// send bodies that the typed payload cannot express.
func (c *MissionServiceClient) Do(method, path string, body interface{}) (Response, error) {
	return c.do(method, path, body)
}

func (c *MissionServiceClient) do(method, path string, body interface{}) (Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Response{}, err
		}
		c.logger.Printf("%s %s %s", method, path, string(data))
		reader = bytes.NewReader(data)
	} else {
		c.logger.Printf("%s %s", method, path)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return Response{}, err
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}
	c.logger.Printf("Received %d: %s", resp.StatusCode, string(data))

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Response{}, fmt.Errorf("malformed response envelope from service: %s", string(data))
	}
	return Response{Status: resp.StatusCode, Envelope: env, Body: data}, nil
}
