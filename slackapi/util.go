// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackapi

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/theckman/slackfn/internal/json"
)

const contentTypeJSON = "application/json"

// setAuth sets the headers Slack expects on every Web API call. The
// Content-Type is sent on GET requests too; Slack ignores it there.
func setAuth(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentTypeJSON)
}

func getReq(ctx context.Context, url string, val url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if len(val) > 0 {
		req.URL.RawQuery = val.Encode()
	}

	return req, nil
}

func postJSONReq(ctx context.Context, url string, body interface{}) (*http.Request, error) {
	p, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(p))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentTypeJSON)

	return req, nil
}
