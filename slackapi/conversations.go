// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackapi

import (
	"context"
	"net/url"
	"strconv"
)

// GetChannels lists the team's public, unarchived channels via
// conversations.list. A limit above MaxListLimit is clamped; an empty cursor
// requests the first page.
func (c *Client) GetChannels(ctx context.Context, limit int, cursor string) (Value, error) {
	v := url.Values{
		"types":            []string{"public_channel"},
		"exclude_archived": []string{"true"},
		"limit":            []string{strconv.Itoa(clampLimit(limit))},
		"team_id":          []string{c.teamID},
	}

	if len(cursor) > 0 {
		v.Set("cursor", cursor)
	}

	return c.get(ctx, "conversations.list", v)
}

// GetChannelHistory fetches the most recent messages of a channel via
// conversations.history. The limit is sent as given.
func (c *Client) GetChannelHistory(ctx context.Context, channelID string, limit int) (Value, error) {
	v := url.Values{
		"channel": []string{channelID},
		"limit":   []string{strconv.Itoa(limit)},
	}

	return c.get(ctx, "conversations.history", v)
}

// GetThreadReplies fetches a thread, parent message included, via
// conversations.replies. threadTS is the timestamp of the parent message.
func (c *Client) GetThreadReplies(ctx context.Context, channelID, threadTS string) (Value, error) {
	v := url.Values{
		"channel": []string{channelID},
		"ts":      []string{threadTS},
	}

	return c.get(ctx, "conversations.replies", v)
}
