// Package rpc implements the JSON-RPC 2.0 gateway to the remote node.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/interfaces"
	"github.com/ToufeeqP/offline-election/internal/models"
)

var (
	// ErrConnection marks transport-level failures: the endpoint is
	// unreachable or the request could not be delivered.
	ErrConnection = errors.New("rpc: connection failure")
	// ErrProtocol marks structurally invalid or error responses from a
	// reachable endpoint.
	ErrProtocol = errors.New("rpc: protocol failure")
)

// Ensure Client implements interfaces.Gateway
var _ interfaces.Gateway = (*Client)(nil)

// Client is a JSON-RPC 2.0 client over HTTP. The underlying connection is
// established lazily on the first call. Result payloads are read without a
// size cap since a full-state pair fetch is unbounded.
type Client struct {
	uri    string
	client *http.Client
	logger *zap.Logger
}

// Dial creates a client for the given endpoint. No network I/O happens here.
func Dial(uri string, logger *zap.Logger) *Client {
	return &Client{
		uri: uri,
		// No client-level timeout: bulk pair fetches can legitimately run
		// for minutes. Callers bound calls through ctx.
		client: &http.Client{},
		logger: logger,
	}
}

// FinalizedHead returns the hash of the latest finalized block.
func (c *Client) FinalizedHead(ctx context.Context) (models.Hash, error) {
	var hex string
	if err := c.call(ctx, "chain_getFinalizedHead", nil, &hex); err != nil {
		return models.Hash{}, err
	}
	hash, err := models.ParseHash(hex)
	if err != nil {
		return models.Hash{}, fmt.Errorf("%w: chain_getFinalizedHead: %v", ErrProtocol, err)
	}
	return hash, nil
}

// ChainName returns the display name of the chain.
func (c *Client) ChainName(ctx context.Context) (string, error) {
	var name string
	if err := c.call(ctx, "system_chain", nil, &name); err != nil {
		return "", err
	}
	return name, nil
}

// StoragePairs relays state_getPairs: all (key, value) pairs under prefix at
// the given block. Note that this is an unsafe RPC and must be enabled on the
// target node.
func (c *Client) StoragePairs(ctx context.Context, prefix models.StorageKey, at models.Hash) ([]models.KeyValuePair, error) {
	params := []interface{}{models.HexStr(prefix), at.Hex()}

	var raw [][]string
	if err := c.call(ctx, "state_getPairs", params, &raw); err != nil {
		return nil, err
	}

	pairs := make([]models.KeyValuePair, 0, len(raw))
	for i, entry := range raw {
		if len(entry) != 2 {
			return nil, fmt.Errorf("%w: state_getPairs entry %d has %d elements, expected 2", ErrProtocol, i, len(entry))
		}
		key, err := models.ParseHexBytes(entry[0])
		if err != nil {
			return nil, fmt.Errorf("%w: state_getPairs entry %d key: %v", ErrProtocol, i, err)
		}
		value, err := models.ParseHexBytes(entry[1])
		if err != nil {
			return nil, fmt.Errorf("%w: state_getPairs entry %d value: %v", ErrProtocol, i, err)
		}
		pairs = append(pairs, models.KeyValuePair{Key: key, Value: value})
	}
	return pairs, nil
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}

// call performs one JSON-RPC request and decodes its result into out.
func (c *Client) call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	if params == nil {
		params = []interface{}{}
	}

	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: marshaling request: %v", ErrProtocol, method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uri, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %s: creating request: %v", ErrConnection, method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("issuing rpc call", zap.String("method", method), zap.String("uri", c.uri))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConnection, method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: unexpected status code %d", ErrProtocol, method, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: reading response: %v", ErrConnection, method, err)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return fmt.Errorf("%w: %s: parsing response: %v", ErrProtocol, method, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("%w: %s: remote error: %s (code %d)", ErrProtocol, method, envelope.Error.Message, envelope.Error.Code)
	}
	if envelope.Result == nil {
		return fmt.Errorf("%w: %s: response has no result", ErrProtocol, method)
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("%w: %s: decoding result: %v", ErrProtocol, method, err)
	}
	return nil
}
