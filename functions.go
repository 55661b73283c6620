// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackfn

import (
	"context"

	"github.com/pkg/errors"

	"github.com/theckman/slackfn/slackapi"
)

// Functions exposes a slackapi.Client as callable functions. Each method has
// a matching entry in Definitions, with its parameters in the same order, and
// can also be reached by name through Invoke.
type Functions struct {
	client *slackapi.Client
}

// New returns the functions backed by client.
func New(client *slackapi.Client) (*Functions, error) {
	if client == nil {
		return nil, errors.New("must provide a slackapi client")
	}

	return &Functions{client: client}, nil
}

// NewFromCredentials builds the slackapi.Client as well. Note the argument
// order: the team ID comes first.
func NewFromCredentials(teamID, botToken string, opts ...slackapi.Option) (*Functions, error) {
	c, err := slackapi.New(botToken, teamID, opts...)
	if err != nil {
		return nil, err
	}

	return New(c)
}

// ListChannels lists public channels. A null limit means
// slackapi.DefaultListLimit; a null cursor requests the first page.
func (f *Functions) ListChannels(ctx context.Context, limit Nullable[int], cursor Nullable[string]) (TextResponse, error) {
	return wrap(f.client.GetChannels(ctx, limit.Or(slackapi.DefaultListLimit), cursor.Or("")))
}

// PostMessage posts a new message to a channel.
func (f *Functions) PostMessage(ctx context.Context, channelID, text string) (TextResponse, error) {
	return wrap(f.client.PostMessage(ctx, channelID, text))
}

// ReplyToThread replies in the thread whose parent message is at threadTS.
func (f *Functions) ReplyToThread(ctx context.Context, channelID, threadTS, text string) (TextResponse, error) {
	return wrap(f.client.ReplyToThread(ctx, channelID, threadTS, text))
}

// AddReaction adds an emoji reaction, named without colons, to a message.
func (f *Functions) AddReaction(ctx context.Context, channelID, timestamp, reaction string) (TextResponse, error) {
	return wrap(f.client.AddReaction(ctx, channelID, timestamp, reaction))
}

// GetChannelHistory gets recent messages from a channel. A null limit means
// slackapi.DefaultHistoryLimit.
func (f *Functions) GetChannelHistory(ctx context.Context, channelID string, limit Nullable[int]) (TextResponse, error) {
	return wrap(f.client.GetChannelHistory(ctx, channelID, limit.Or(slackapi.DefaultHistoryLimit)))
}

// GetThreadReplies gets every message in a thread.
func (f *Functions) GetThreadReplies(ctx context.Context, channelID, threadTS string) (TextResponse, error) {
	return wrap(f.client.GetThreadReplies(ctx, channelID, threadTS))
}

// GetUsers lists the users in the workspace. A null limit means
// slackapi.DefaultListLimit; a null cursor requests the first page.
func (f *Functions) GetUsers(ctx context.Context, limit Nullable[int], cursor Nullable[string]) (TextResponse, error) {
	return wrap(f.client.GetUsers(ctx, limit.Or(slackapi.DefaultListLimit), cursor.Or("")))
}

// GetUserProfile gets a user's profile.
func (f *Functions) GetUserProfile(ctx context.Context, userID string) (TextResponse, error) {
	return wrap(f.client.GetUserProfile(ctx, userID))
}
