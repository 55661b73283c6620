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

// GetUsers lists the members of the team via users.list. A limit above
// MaxListLimit is clamped; an empty cursor requests the first page.
func (c *Client) GetUsers(ctx context.Context, limit int, cursor string) (Value, error) {
	v := url.Values{
		"limit":   []string{strconv.Itoa(clampLimit(limit))},
		"team_id": []string{c.teamID},
	}

	if len(cursor) > 0 {
		v.Set("cursor", cursor)
	}

	return c.get(ctx, "users.list", v)
}

// GetUserProfile fetches a user's profile, custom field labels included, via
// users.profile.get.
func (c *Client) GetUserProfile(ctx context.Context, userID string) (Value, error) {
	v := url.Values{
		"user":           []string{userID},
		"include_labels": []string{"true"},
	}

	return c.get(ctx, "users.profile.get", v)
}
