package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/endpoints"
)

// ResponseError is returned by the Client for unsuccessful requests
type ResponseError struct {
	StatusCode int
	Result     Result
}

func (e *ResponseError) Error() string {
	if len(e.Result.Message) > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Result.Name, e.StatusCode, e.Result.Message)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Client talks to a running daemon
type Client struct {
	baseUrl    string
	mountPoint string
	http       *http.Client
}

func NewClient(config configuration.ApiConfig) *Client {
	host := config.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	baseUrl := "http://" + net.JoinHostPort(host, strconv.Itoa(config.Port))
	return NewClientWithUrl(baseUrl, config.MountPoint)
}

func NewClientWithUrl(baseUrl string, mountPoint string) *Client {
	return &Client{
		baseUrl:    strings.TrimSuffix(baseUrl, "/"),
		mountPoint: endpoints.NewTree(mountPoint).MountPoint(),
		http:       &http.Client{Timeout: 5 * time.Second},
	}
}

// Read returns the content of the given endpoint
func (c *Client) Read(name string) (string, error) {
	body, err := c.do(http.MethodGet, c.mountPoint+"/"+name+"/", nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Write sends value to the given endpoint
func (c *Client) Write(name string, value string) error {
	_, err := c.do(http.MethodPut, c.mountPoint+"/"+name+"/", strings.NewReader(value))
	return err
}

func (c *Client) GetState() (*StateResponse, error) {
	body, err := c.do(http.MethodGet, EndpointPathState, nil)
	if err != nil {
		return nil, err
	}
	var result StateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetHistory() (*HistoryResponse, error) {
	body, err := c.do(http.MethodGet, EndpointPathHistory, nil)
	if err != nil {
		return nil, err
	}
	var result HistoryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(method string, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequest(method, c.baseUrl+path, body)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("is rpifan running? %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseErr := &ResponseError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(content, &responseErr.Result)
		return nil, responseErr
	}
	return content, nil
}
