/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/valyala/bytebufferpool"

	"github.com/voedger/docmodel/pkg/protocol"
	"github.com/voedger/docmodel/pkg/schema"
)

func (c *Client) Find(ctx context.Context, class schema.ClassRef, query schema.Query) ([]schema.Container, error) {
	res := make([]schema.Container, 0)
	if err := c.call(ctx, protocol.Method_Find, FindParams{Class: class, Query: query}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) FindOne(ctx context.Context, class schema.ClassRef, query schema.Query) (schema.Container, bool, error) {
	res := FindOneResult{}
	if err := c.call(ctx, protocol.Method_FindOne, FindParams{Class: class, Query: query}, &res); err != nil {
		return nil, false, err
	}
	return res.Object, res.Found, nil
}

func (c *Client) Tx(ctx context.Context, tx protocol.Tx) error {
	return c.call(ctx, protocol.Method_Tx, tx, nil)
}

func (c *Client) LoadDomain(ctx context.Context, domain string, index string, direction protocol.Direction) ([]schema.Container, error) {
	res := make([]schema.Container, 0)
	if err := c.call(ctx, protocol.Method_LoadDomain, LoadDomainParams{Domain: domain, Index: index, Direction: direction}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) call(ctx context.Context, method string, params any, result any) error {
	p, err := json.Marshal(params)
	if err != nil {
		return schema.EnrichError(schema.ErrConvert, "params of «%s»: %v", method, err)
	}
	body, err := json.Marshal(Request{Method: method, Params: p})
	if err != nil {
		// notest
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+Path_RPC, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	httpResp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rpc «%s»: %w", method, err)
	}
	defer httpResp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(httpResp.Body); err != nil {
		return fmt.Errorf("rpc «%s»: %w", method, err)
	}

	resp := Response{}
	if err := json.Unmarshal(buf.B, &resp); err != nil {
		return fmt.Errorf("%w: %d on «%s»: %v", ErrUnexpectedStatus, httpResp.StatusCode, method, err)
	}
	if resp.Error != nil {
		return resp.Error.Err()
	}
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d on «%s»", ErrUnexpectedStatus, httpResp.StatusCode, method)
	}
	if result == nil || len(resp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return schema.EnrichError(schema.ErrConvert, "result of «%s»: %v", method, err)
	}
	return nil
}
