// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackfn

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestFunctions_Invoke(t *testing.T) {
	tests := []struct {
		n     string
		fn    string
		args  map[string]interface{}
		path  string
		query url.Values
		body  string
		e     string
	}{
		{
			n:    "listChannels_explicit_nulls",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": nil, "cursor": nil},
			path: "/conversations.list",
			query: url.Values{
				"types":            []string{"public_channel"},
				"exclude_archived": []string{"true"},
				"limit":            []string{"100"},
				"team_id":          []string{testTeam},
			},
		},
		{
			n:    "listChannels_json_number",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": float64(500), "cursor": "abc"},
			path: "/conversations.list",
			query: url.Values{
				"types":            []string{"public_channel"},
				"exclude_archived": []string{"true"},
				"limit":            []string{"200"},
				"team_id":          []string{testTeam},
				"cursor":           []string{"abc"},
			},
		},
		{
			n:    "listChannels_zero_limit",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": 0, "cursor": nil},
			path: "/conversations.list",
			query: url.Values{
				"types":            []string{"public_channel"},
				"exclude_archived": []string{"true"},
				"limit":            []string{"0"},
				"team_id":          []string{testTeam},
			},
		},
		{
			n:    "listChannels_negative_limit",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": -5, "cursor": nil},
			path: "/conversations.list",
			query: url.Values{
				"types":            []string{"public_channel"},
				"exclude_archived": []string{"true"},
				"limit":            []string{"-5"},
				"team_id":          []string{testTeam},
			},
		},
		{
			n:    "listChannels_huge_limit",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": 1e19, "cursor": nil},
			path: "/conversations.list",
			query: url.Values{
				"types":            []string{"public_channel"},
				"exclude_archived": []string{"true"},
				"limit":            []string{"200"},
				"team_id":          []string{testTeam},
			},
		},
		{
			n:    "listChannels_max_int_limit",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": math.MaxInt, "cursor": nil},
			path: "/conversations.list",
			query: url.Values{
				"types":            []string{"public_channel"},
				"exclude_archived": []string{"true"},
				"limit":            []string{"200"},
				"team_id":          []string{testTeam},
			},
		},
		{
			n:    "listChannels_huge_uint64_limit",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": uint64(math.MaxUint64), "cursor": nil},
			path: "/conversations.list",
			query: url.Values{
				"types":            []string{"public_channel"},
				"exclude_archived": []string{"true"},
				"limit":            []string{"200"},
				"team_id":          []string{testTeam},
			},
		},
		{
			n:    "listChannels_huge_negative_limit",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": -1e19, "cursor": nil},
			path: "/conversations.list",
			query: url.Values{
				"types":            []string{"public_channel"},
				"exclude_archived": []string{"true"},
				"limit":            []string{strconv.Itoa(math.MinInt)},
				"team_id":          []string{testTeam},
			},
		},
		{
			n:    "getUsers_huge_limit",
			fn:   "getUsers",
			args: map[string]interface{}{"limit": float64(1<<62) * 4, "cursor": nil},
			path: "/users.list",
			query: url.Values{
				"limit":   []string{"200"},
				"team_id": []string{testTeam},
			},
		},
		{
			n:    "getUsers_max_int_limit",
			fn:   "getUsers",
			args: map[string]interface{}{"limit": math.MaxInt, "cursor": nil},
			path: "/users.list",
			query: url.Values{
				"limit":   []string{"200"},
				"team_id": []string{testTeam},
			},
		},
		{
			n:    "getUsers_negative_limit",
			fn:   "getUsers",
			args: map[string]interface{}{"limit": float64(-5), "cursor": nil},
			path: "/users.list",
			query: url.Values{
				"limit":   []string{"-5"},
				"team_id": []string{testTeam},
			},
		},
		{
			n:    "listChannels_nan_limit",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": math.NaN(), "cursor": nil},
			e:    `listChannels: argument "limit" must be a number`,
		},
		{
			n:    "listChannels_missing_cursor",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": 10},
			e:    `listChannels: argument "cursor" is required`,
		},
		{
			n:    "listChannels_bad_limit",
			fn:   "listChannels",
			args: map[string]interface{}{"limit": "lots", "cursor": nil},
			e:    `listChannels: argument "limit" must be a number`,
		},
		{
			n:    "postMessage",
			fn:   "postMessage",
			args: map[string]interface{}{"channelId": "C123", "text": "hi", "unfurl": true},
			path: "/chat.postMessage",
			body: `{"channel":"C123","text":"hi"}`,
		},
		{
			n:    "postMessage_null_text",
			fn:   "postMessage",
			args: map[string]interface{}{"channelId": "C123", "text": nil},
			e:    `postMessage: argument "text" must not be null`,
		},
		{
			n:    "postMessage_object_text",
			fn:   "postMessage",
			args: map[string]interface{}{"channelId": "C123", "text": map[string]interface{}{}},
			e:    `postMessage: argument "text" must be a string`,
		},
		{
			n:    "replyToThread",
			fn:   "replyToThread",
			args: map[string]interface{}{"channelId": "C123", "threadTs": "170.1", "text": "ok"},
			path: "/chat.postMessage",
			body: `{"channel":"C123","thread_ts":"170.1","text":"ok"}`,
		},
		{
			n:    "addReaction",
			fn:   "addReaction",
			args: map[string]interface{}{"channelId": "C123", "timestamp": "170.1", "reaction": "eyes"},
			path: "/reactions.add",
			body: `{"channel":"C123","timestamp":"170.1","name":"eyes"}`,
		},
		{
			n:    "addReaction_missing_reaction",
			fn:   "addReaction",
			args: map[string]interface{}{"channelId": "C123", "timestamp": "170.1"},
			e:    `addReaction: argument "reaction" is required`,
		},
		{
			n:    "getChannelHistory_string_limit",
			fn:   "getChannelHistory",
			args: map[string]interface{}{"channelId": "C123", "limit": "5"},
			path: "/conversations.history",
			query: url.Values{
				"channel": []string{"C123"},
				"limit":   []string{"5"},
			},
		},
		{
			n:    "getChannelHistory_missing_limit",
			fn:   "getChannelHistory",
			args: map[string]interface{}{"channelId": "C123"},
			e:    `getChannelHistory: argument "limit" is required`,
		},
		{
			n:    "getThreadReplies",
			fn:   "getThreadReplies",
			args: map[string]interface{}{"channelId": "C123", "threadTs": "170.1"},
			path: "/conversations.replies",
			query: url.Values{
				"channel": []string{"C123"},
				"ts":      []string{"170.1"},
			},
		},
		{
			n:    "getUsers",
			fn:   "getUsers",
			args: map[string]interface{}{"limit": nil, "cursor": "next"},
			path: "/users.list",
			query: url.Values{
				"limit":   []string{"100"},
				"team_id": []string{testTeam},
				"cursor":  []string{"next"},
			},
		},
		{
			n:    "getUsers_nil_args",
			fn:   "getUsers",
			args: nil,
			e:    `getUsers: argument "limit" is required`,
		},
		{
			n:    "getUserProfile",
			fn:   "getUserProfile",
			args: map[string]interface{}{"userId": "U123"},
			path: "/users.profile.get",
			query: url.Values{
				"user":           []string{"U123"},
				"include_labels": []string{"true"},
			},
		},
		{
			n:  "unknown_function",
			fn: "deleteChannel",
			e:  `unknown function "deleteChannel"`,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.n, func(t *testing.T) {
			fs := newFakeSlack(t, http.StatusOK, `{"ok":true}`)
			f := newTestFunctions(t, fs)

			resp, err := f.Invoke(context.Background(), tt.fn, tt.args)
			if err != nil {
				if len(tt.e) == 0 {
					t.Fatalf("Invoke(%q) unexpected error: %s", tt.fn, err)
				}

				if !strings.Contains(err.Error(), tt.e) {
					t.Fatalf("%q not found in error %q", tt.e, err)
				}

				if n := len(fs.requests()); n != 0 {
					t.Fatalf("server saw %d requests after a rejected call, want 0", n)
				}

				return
			}

			if len(tt.e) > 0 {
				t.Fatalf("error %q did not occur as expected", tt.e)
			}

			if resp.Text != `{"ok":true}` {
				t.Errorf("resp.Text = %q, want %q", resp.Text, `{"ok":true}`)
			}

			reqs := fs.requests()
			if len(reqs) != 1 {
				t.Fatalf("server saw %d requests, want 1", len(reqs))
			}

			if reqs[0].path != tt.path {
				t.Errorf("path = %q, want %q", reqs[0].path, tt.path)
			}

			wantQuery := tt.query
			if wantQuery == nil {
				wantQuery = url.Values{}
			}

			if diff := cmp.Diff(wantQuery, reqs[0].query); diff != "" {
				t.Errorf("query differs: (-want +got)\n%s", diff)
			}

			if reqs[0].body != tt.body {
				t.Errorf("body = %q, want %q", reqs[0].body, tt.body)
			}
		})
	}
}

func TestFunctions_Invoke_errorTypes(t *testing.T) {
	f := &Functions{}

	_, err := f.Invoke(context.Background(), "nope", nil)

	var ufe *UnknownFunctionError
	if !errors.As(err, &ufe) {
		t.Fatalf("error is %T, want *UnknownFunctionError", err)
	}

	if ufe.Name != "nope" {
		t.Fatalf("ufe.Name = %q, want %q", ufe.Name, "nope")
	}

	_, err = f.Invoke(context.Background(), "getChannelHistory", map[string]interface{}{"channelId": "C1", "limit": []int{1}})

	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("error is %T, want *ArgumentError", err)
	}

	if ae.Function != "getChannelHistory" || ae.Parameter != "limit" {
		t.Fatalf("ae = %+v, want getChannelHistory/limit", ae)
	}

	if ae.Unwrap() == nil {
		t.Fatal("ae.Unwrap() = <nil>, want the conversion error")
	}
}

func TestNullable(t *testing.T) {
	var zero Nullable[int]

	if !zero.IsNull() {
		t.Fatal("zero Nullable is not null")
	}

	if v, ok := Null[string]().Get(); ok || v != "" {
		t.Fatalf("Null().Get() = (%q, %t), want (\"\", false)", v, ok)
	}

	s := Some(0)

	if s.IsNull() {
		t.Fatal("Some(0) is null")
	}

	if v, ok := s.Get(); !ok || v != 0 {
		t.Fatalf("Some(0).Get() = (%d, %t), want (0, true)", v, ok)
	}

	if got := s.Or(100); got != 0 {
		t.Fatalf("Some(0).Or(100) = %d, want 0", got)
	}

	if got := zero.Or(100); got != 100 {
		t.Fatalf("Null().Or(100) = %d, want 100", got)
	}
}
