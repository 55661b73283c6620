// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

// Package slackapi is a small client for the parts of the Slack Web API a bot
// needs to take part in conversations: listing channels and users, reading
// channel history and threads, posting messages and replies, adding reactions,
// and looking up user profiles.
//
// Responses are decoded into generic JSON values and returned without looking
// at them. In particular a response with "ok": false is returned as a value,
// not an error; only transport failures, non-2xx statuses, and bodies that are
// not JSON are reported as errors. Nothing is retried, and pagination is left
// to the caller, who can read the next cursor from the response.
package slackapi
