// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

// Package slackfn exposes a handful of Slack Web API calls as functions an
// LLM tool-calling layer, or any other name-based dispatcher, can call.
//
// Each function has a FunctionDefinition in the catalog returned by
// Definitions, with parameters in the same order as the Go method. A
// dispatcher can render those as JSON schemas with Schema, and route calls
// back by name with (*Functions).Invoke.
//
// Every function returns a TextResponse holding the Slack response serialized
// as JSON. Responses are not inspected: if Slack answers with "ok": false, that
// is in the text for the caller to read. Only transport failures, non-2xx
// statuses, and malformed JSON are returned as errors; see package slackapi.
//
// Optional parameters are Nullable: they must always be passed, either as a
// value or as an explicit null meaning "use the default". Invoke enforces the
// same rule on its argument map, rejecting a missing key.
package slackfn
