// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackfn

import (
	"github.com/pkg/errors"

	"github.com/theckman/slackfn/internal/json"
	"github.com/theckman/slackfn/slackapi"
)

// TextResponse is what every function returns to the dispatcher: the Slack
// response, serialized back to JSON text.
type TextResponse struct {
	Text string `json:"text"`
}

// Decode parses the text back into the value Slack returned.
func (r TextResponse) Decode() (slackapi.Value, error) {
	var v slackapi.Value

	if err := json.Unmarshal([]byte(r.Text), &v); err != nil {
		return nil, errors.Wrap(err, "failed to decode response text")
	}

	return v, nil
}

// wrap turns the result of a slackapi call in to a TextResponse. Errors are
// passed back as-is and no response is built.
func wrap(v slackapi.Value, err error) (TextResponse, error) {
	if err != nil {
		return TextResponse{}, err
	}

	p, err := json.MarshalUnescaped(v)
	if err != nil {
		return TextResponse{}, errors.Wrap(err, "failed to encode response")
	}

	return TextResponse{Text: string(p)}, nil
}
