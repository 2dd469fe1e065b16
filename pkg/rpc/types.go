/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package rpc

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voedger/docmodel/pkg/protocol"
	"github.com/voedger/docmodel/pkg/schema"
)

// Wire request: `{"method": ..., "params": ...}`
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Wire response: either result or error
type Response struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type FindParams struct {
	Class schema.ClassRef `json:"class"`
	Query schema.Query    `json:"query,omitempty"`
}

type FindOneResult struct {
	Object schema.Container `json:"object,omitempty"`
	Found  bool             `json:"found"`
}

type LoadDomainParams struct {
	Domain    string             `json:"domain"`
	Index     string             `json:"index,omitempty"`
	Direction protocol.Direction `json:"direction,omitempty"`
}

type ServerParams struct {
	// Listen address, e.g. ":8080". Port 0 picks a free port
	Listen string

	// Metrics served at /metrics. Not served if nil
	Gatherer prometheus.Gatherer
}

// HTTP server of the core protocol
type Server struct {
	params   ServerParams
	backend  protocol.ICoreProtocol
	router   *mux.Router
	server   *http.Server
	listener net.Listener
}

// Core protocol over HTTP.
//
// # Implements:
//   - protocol.ICoreProtocol
type Client struct {
	url  string
	http *http.Client
}

type ClientOption func(*Client)

// Request timeout of client. Zero means no timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// Uses specified http client, e.g. from httptest server
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}
