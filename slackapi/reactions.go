// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackapi

import "context"

type reactionBody struct {
	Channel   string `json:"channel"`
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
}

// AddReaction adds the emoji reaction to the message at timestamp. The
// reaction is the emoji name without the surrounding colons, e.g. "thumbsup".
func (c *Client) AddReaction(ctx context.Context, channelID, timestamp, reaction string) (Value, error) {
	return c.postJSON(ctx, "reactions.add", reactionBody{
		Channel:   channelID,
		Timestamp: timestamp,
		Name:      reaction,
	})
}
