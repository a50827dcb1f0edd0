package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/todo/pkg/filter"
)

const tasksURI = "todo://tasks"

func registerResources(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		tasksURI,
		"Tasks",
		mcp.WithResourceDescription("Every task in insertion order with counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		res, err := svc.ListTasks(ctx, filter.All)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, res)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
