/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/untillpro/goutils/logger"
	"github.com/valyala/bytebufferpool"

	"github.com/voedger/docmodel/pkg/protocol"
	"github.com/voedger/docmodel/pkg/schema"
)

// Opens listener
func (s *Server) Prepare() (err error) {
	if s.listener, err = net.Listen("tcp", s.params.Listen); err == nil {
		logger.Info("rpc server listening port:", s.ListeningPort())
	}
	return err
}

// Serves until ctx is done. Prepare must be called before
func (s *Server) Run(ctx context.Context) error {
	var serveErr error
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("rpc server started:", s.listener.Addr().String())
		if err := s.server.Serve(s.listener); err != http.ErrServerClosed {
			serveErr = err
		}
		logger.Info("rpc server stopped")
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("rpc server shutdown failed", err)
		_ = s.server.Close()
	}

	wg.Wait()
	return serveErr
}

func (s *Server) ListeningPort() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Returns router, e.g. for httptest
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req := Request{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, http.StatusBadRequest, nil, errBadRequest(err))
		return
	}

	result, err := s.dispatch(r.Context(), req)
	if err != nil {
		wireErr := errorToWire(err)
		status := http.StatusOK
		if wireErr.Code == Code_BadRequest {
			status = http.StatusBadRequest
		}
		if wireErr.Code == Code_Internal {
			logger.Error(fmt.Sprintf("rpc «%s» failed: %v", req.Method, err))
		}
		writeResponse(w, status, nil, wireErr)
		return
	}
	writeResponse(w, http.StatusOK, result, nil)
}

func (s *Server) dispatch(ctx context.Context, req Request) (any, error) {
	switch req.Method {
	case protocol.Method_Find:
		p := FindParams{}
		if err := decodeParams(req, &p); err != nil {
			return nil, err
		}
		return s.backend.Find(ctx, p.Class, p.Query)
	case protocol.Method_FindOne:
		p := FindParams{}
		if err := decodeParams(req, &p); err != nil {
			return nil, err
		}
		c, ok, err := s.backend.FindOne(ctx, p.Class, p.Query)
		if err != nil {
			return nil, err
		}
		return FindOneResult{Object: c, Found: ok}, nil
	case protocol.Method_Tx:
		tx := protocol.Tx{}
		if err := decodeParams(req, &tx); err != nil {
			return nil, err
		}
		return nil, s.backend.Tx(ctx, tx)
	case protocol.Method_LoadDomain:
		p := LoadDomainParams{}
		if err := decodeParams(req, &p); err != nil {
			return nil, err
		}
		return s.backend.LoadDomain(ctx, p.Domain, p.Index, p.Direction)
	}
	return nil, schema.EnrichError(schema.ErrNotImplemented, "rpc method «%s»", req.Method)
}

func decodeParams(req Request, p any) error {
	if len(req.Params) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params, p); err != nil {
		return schema.EnrichError(schema.ErrConvert, "params of «%s»: %v", req.Method, err)
	}
	return nil
}

func writeResponse(w http.ResponseWriter, status int, result any, wireErr *Error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	resp := Response{Error: wireErr}
	if wireErr == nil && result != nil {
		b, err := json.Marshal(result)
		if err != nil {
			resp.Error = errorToWire(schema.EnrichError(schema.ErrConvert, "result: %v", err))
		} else {
			resp.Result = b
		}
	}
	if err := json.NewEncoder(buf).Encode(resp); err != nil {
		// notest
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(buf.B); err != nil {
		logger.Error("rpc response write failed", err)
	}
}

func newMetricsHandler(s *Server) http.Handler {
	return promhttp.HandlerFor(s.params.Gatherer, promhttp.HandlerOpts{})
}
