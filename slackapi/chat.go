// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackapi

import "context"

type postMessageBody struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type replyBody struct {
	Channel  string `json:"channel"`
	ThreadTS string `json:"thread_ts"`
	Text     string `json:"text"`
}

// PostMessage posts text as a new message in the channel.
func (c *Client) PostMessage(ctx context.Context, channelID, text string) (Value, error) {
	return c.postJSON(ctx, "chat.postMessage", postMessageBody{
		Channel: channelID,
		Text:    text,
	})
}

// ReplyToThread posts text as a reply in the thread started by the message at
// threadTS.
func (c *Client) ReplyToThread(ctx context.Context, channelID, threadTS, text string) (Value, error) {
	return c.postJSON(ctx, "chat.postMessage", replyBody{
		Channel:  channelID,
		ThreadTS: threadTS,
		Text:     text,
	})
}
