// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackfn

import "context"

// ParameterType is the JSON type a parameter is declared with.
type ParameterType string

const (
	// String parameters take JSON strings.
	String ParameterType = "string"

	// Number parameters take JSON numbers.
	Number ParameterType = "number"
)

// Parameter describes a single function parameter.
//
// A parameter that is both Nullable and Required must always be passed, but
// may be passed as null to get the default. Every optional parameter of these
// functions is declared that way.
type Parameter struct {
	Name        string        `json:"name"`
	Type        ParameterType `json:"type"`
	Description string        `json:"description"`
	Nullable    bool          `json:"nullable"`
	Required    bool          `json:"required"`
}

// FunctionDefinition describes a function for a dispatcher: its name, what it
// does, and its parameters in call order.
type FunctionDefinition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

type invokeFunc func(ctx context.Context, f *Functions, a arguments) (TextResponse, error)

// operation pairs a definition with the code that calls the matching method.
type operation struct {
	def    FunctionDefinition
	invoke invokeFunc
}

func str(name, desc string) Parameter {
	return Parameter{Name: name, Type: String, Description: desc, Required: true}
}

func nullable(p Parameter) Parameter {
	p.Nullable = true
	return p
}

func num(name, desc string) Parameter {
	return Parameter{Name: name, Type: Number, Description: desc, Required: true}
}

// operations is the catalog. Order here is the order Definitions returns.
var operations = []operation{
	{
		def: FunctionDefinition{
			Name:        "listChannels",
			Description: "List public channels in the workspace with pagination.",
			Parameters: []Parameter{
				nullable(num("limit", "Maximum number of channels to return (default 100, max 200)")),
				nullable(str("cursor", "Pagination cursor for next page of results")),
			},
		},
		invoke: func(ctx context.Context, f *Functions, a arguments) (TextResponse, error) {
			limit, err := a.nullableInt("limit")
			if err != nil {
				return TextResponse{}, err
			}

			cursor, err := a.nullableString("cursor")
			if err != nil {
				return TextResponse{}, err
			}

			return f.ListChannels(ctx, limit, cursor)
		},
	},
	{
		def: FunctionDefinition{
			Name:        "postMessage",
			Description: "Post a new message to a Slack channel.",
			Parameters: []Parameter{
				str("channelId", "The ID of the channel to post to"),
				str("text", "The message text to post"),
			},
		},
		invoke: func(ctx context.Context, f *Functions, a arguments) (TextResponse, error) {
			s, err := a.strings("channelId", "text")
			if err != nil {
				return TextResponse{}, err
			}

			return f.PostMessage(ctx, s[0], s[1])
		},
	},
	{
		def: FunctionDefinition{
			Name:        "replyToThread",
			Description: "Reply to a specific message thread in Slack.",
			Parameters: []Parameter{
				str("channelId", "The ID of the channel containing the thread"),
				str("threadTs", "The timestamp of the parent message"),
				str("text", "The reply text"),
			},
		},
		invoke: func(ctx context.Context, f *Functions, a arguments) (TextResponse, error) {
			s, err := a.strings("channelId", "threadTs", "text")
			if err != nil {
				return TextResponse{}, err
			}

			return f.ReplyToThread(ctx, s[0], s[1], s[2])
		},
	},
	{
		def: FunctionDefinition{
			Name:        "addReaction",
			Description: "Add a reaction emoji to a Slack message.",
			Parameters: []Parameter{
				str("channelId", "The ID of the channel containing the message"),
				str("timestamp", "The timestamp of the message to react to"),
				str("reaction", "The name of the emoji reaction (without colons)"),
			},
		},
		invoke: func(ctx context.Context, f *Functions, a arguments) (TextResponse, error) {
			s, err := a.strings("channelId", "timestamp", "reaction")
			if err != nil {
				return TextResponse{}, err
			}

			return f.AddReaction(ctx, s[0], s[1], s[2])
		},
	},
	{
		def: FunctionDefinition{
			Name:        "getChannelHistory",
			Description: "Get recent messages from a Slack channel.",
			Parameters: []Parameter{
				str("channelId", "The ID of the channel"),
				nullable(num("limit", "Number of messages to retrieve (default 10)")),
			},
		},
		invoke: func(ctx context.Context, f *Functions, a arguments) (TextResponse, error) {
			s, err := a.strings("channelId")
			if err != nil {
				return TextResponse{}, err
			}

			limit, err := a.nullableInt("limit")
			if err != nil {
				return TextResponse{}, err
			}

			return f.GetChannelHistory(ctx, s[0], limit)
		},
	},
	{
		def: FunctionDefinition{
			Name:        "getThreadReplies",
			Description: "Get all replies in a Slack message thread.",
			Parameters: []Parameter{
				str("channelId", "The ID of the channel containing the thread"),
				str("threadTs", "The timestamp of the parent message"),
			},
		},
		invoke: func(ctx context.Context, f *Functions, a arguments) (TextResponse, error) {
			s, err := a.strings("channelId", "threadTs")
			if err != nil {
				return TextResponse{}, err
			}

			return f.GetThreadReplies(ctx, s[0], s[1])
		},
	},
	{
		def: FunctionDefinition{
			Name:        "getUsers",
			Description: "Get a list of users in the Slack workspace.",
			Parameters: []Parameter{
				nullable(num("limit", "Maximum number of users to return (default 100, max 200)")),
				nullable(str("cursor", "Pagination cursor for next page of results")),
			},
		},
		invoke: func(ctx context.Context, f *Functions, a arguments) (TextResponse, error) {
			limit, err := a.nullableInt("limit")
			if err != nil {
				return TextResponse{}, err
			}

			cursor, err := a.nullableString("cursor")
			if err != nil {
				return TextResponse{}, err
			}

			return f.GetUsers(ctx, limit, cursor)
		},
	},
	{
		def: FunctionDefinition{
			Name:        "getUserProfile",
			Description: "Get detailed profile information for a specific Slack user.",
			Parameters: []Parameter{
				str("userId", "The ID of the user"),
			},
		},
		invoke: func(ctx context.Context, f *Functions, a arguments) (TextResponse, error) {
			s, err := a.strings("userId")
			if err != nil {
				return TextResponse{}, err
			}

			return f.GetUserProfile(ctx, s[0])
		},
	},
}

var operationsByName = func() map[string]operation {
	m := make(map[string]operation, len(operations))

	for _, op := range operations {
		if _, dup := m[op.def.Name]; dup {
			panic("duplicate function name: " + op.def.Name)
		}

		m[op.def.Name] = op
	}

	return m
}()

// Definitions returns the definition of every function, in a fixed order. The
// returned slice is a copy and can be modified freely.
func Definitions() []FunctionDefinition {
	defs := make([]FunctionDefinition, len(operations))

	for i, op := range operations {
		defs[i] = op.def
		defs[i].Parameters = append([]Parameter(nil), op.def.Parameters...)
	}

	return defs
}

// Definitions returns the package-level Definitions, for dispatchers that hold
// a *Functions rather than importing the package.
func (f *Functions) Definitions() []FunctionDefinition { return Definitions() }
