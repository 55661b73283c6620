// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackapi

import "fmt"

// StatusError is returned when Slack responds with a non-2xx HTTP status. The
// response body is kept verbatim for the caller to inspect.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %q unexpected status: %s", e.Method, e.URL, e.Status)
}
