// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

// Package json wraps json-iterator with the subset of the encoding/json API
// this module uses.
package json

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// text matches json, but leaves <, > and & alone so that Slack markup such
// as <@U123> reads the same as it does in the API response.
var text = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var (
	Marshal       = json.Marshal
	MarshalIndent = json.MarshalIndent
	Unmarshal     = json.Unmarshal
	NewEncoder    = json.NewEncoder

	// MarshalUnescaped is Marshal without HTML escaping.
	MarshalUnescaped = text.Marshal
)
