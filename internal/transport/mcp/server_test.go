package mcp

import (
	"context"
	"errors"
	"testing"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/sandevgo/sensei/internal/service/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type askerFunc func(ctx context.Context, message, name string) (string, error)

func (f askerFunc) Ask(ctx context.Context, message, name string) (string, error) {
	return f(ctx, message, name)
}

func callRequest(args map[string]any) mcpproto.CallToolRequest {
	req := mcpproto.CallToolRequest{}
	req.Params.Name = ToolName
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcpproto.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	switch c := res.Content[0].(type) {
	case mcpproto.TextContent:
		return c.Text
	case *mcpproto.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content %T", res.Content[0])
	return ""
}

func TestHandleAsk(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		answer  string
		err     error
		want    string
		isError bool
	}{
		{
			name:   "answer",
			args:   map[string]any{"message": "What is your name?", "name": "Ana"},
			answer: "My name is Sensei.",
			want:   "My name is Sensei.",
		},
		{
			name:    "missing message",
			args:    map[string]any{},
			isError: true,
		},
		{
			name:    "empty message",
			args:    map[string]any{"message": " "},
			err:     chat.ErrEmptyMessage,
			want:    chat.ErrEmptyMessage.Error(),
			isError: true,
		},
		{
			name:    "pipeline failure",
			args:    map[string]any{"message": "hi"},
			err:     errors.New("boom"),
			want:    "internal error",
			isError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotName string
			s := NewServer(askerFunc(func(ctx context.Context, message, name string) (string, error) {
				gotName = name
				return tt.answer, tt.err
			}))

			res, err := s.handleAsk(context.Background(), callRequest(tt.args))
			require.NoError(t, err)
			assert.Equal(t, tt.isError, res.IsError)
			text := resultText(t, res)
			if tt.want != "" {
				assert.Equal(t, tt.want, text)
			}
			if tt.name == "answer" {
				assert.Equal(t, "Ana", gotName)
			}
		})
	}
}

func TestAskTool(t *testing.T) {
	tool := askTool()
	assert.Equal(t, ToolName, tool.Name)
	assert.Contains(t, tool.InputSchema.Required, "message")
	assert.Contains(t, tool.InputSchema.Properties, "name")
}
