/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package rpc

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/voedger/docmodel/pkg/protocol"
)

// Creates server of backend. Call Prepare and Run to serve, or use Handler
func NewServer(params ServerParams, backend protocol.ICoreProtocol) *Server {
	s := &Server{
		params:  params,
		backend: backend,
		router:  mux.NewRouter(),
	}
	s.router.HandleFunc(Path_RPC, s.handleRPC).Methods(http.MethodPost)
	if params.Gatherer != nil {
		s.router.Handle(Path_Metrics, newMetricsHandler(s)).Methods(http.MethodGet)
	}
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}
	return s
}

// Creates client of server at url, e.g. "http://localhost:8080"
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:  strings.TrimSuffix(url, "/"),
		http: &http.Client{Timeout: defaultClientTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
