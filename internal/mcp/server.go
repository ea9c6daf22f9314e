// Package mcp provides Model Context Protocol server functionality.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jordienr/docsite/domain/nav"
	"github.com/jordienr/docsite/domain/page"
	"github.com/jordienr/docsite/domain/reference"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NavigationProvider serves the navigation tree for MCP tools.
type NavigationProvider interface {
	TopLevelSections(ctx context.Context) []nav.Item
	SectionTree(ctx context.Context, level string) (nav.Item, error)
	Levels(ctx context.Context) []string
}

// ReferenceProvider serves the reference registry for MCP tools.
type ReferenceProvider interface {
	Groups(ctx context.Context) []reference.Group
}

// PageProvider serves page metadata for MCP tools.
type PageProvider interface {
	Get(ctx context.Context, slug string) (page.Meta, error)
}

// Server wraps the MCP server with docsite-specific tools.
type Server struct {
	mcpServer  *server.MCPServer
	navigation NavigationProvider
	references ReferenceProvider
	pages      PageProvider
	logger     *slog.Logger
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(navigation NavigationProvider, references ReferenceProvider, pages PageProvider, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		navigation: navigation,
		references: references,
		pages:      pages,
		logger:     logger,
	}

	mcpServer := server.NewMCPServer(
		"docsite",
		version,
		server.WithToolCapabilities(true),
	)

	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

// registerTools registers all docsite tools with the MCP server.
func (s *Server) registerTools(mcpServer *server.MCPServer) {
	sectionsTool := mcp.NewTool("get_navigation",
		mcp.WithDescription("Get the top-level documentation sections shown on the home sidebar"),
	)
	mcpServer.AddTool(sectionsTool, s.handleGetNavigation)

	treeTool := mcp.NewTool("get_section_tree",
		mcp.WithDescription("Get the full sidebar subtree for a documentation section"),
		mcp.WithString("level",
			mcp.Required(),
			mcp.Description("The section's level tag, e.g. 'auth' or 'database'"),
		),
	)
	mcpServer.AddTool(treeTool, s.handleGetSectionTree)

	refsTool := mcp.NewTool("get_reference_entries",
		mcp.WithDescription("Get the reference documentation registry: client libraries, platform tools, and self-hosted servers"),
	)
	mcpServer.AddTool(refsTool, s.handleGetReferences)

	pageTool := mcp.NewTool("get_page",
		mcp.WithDescription("Get the metadata of a documentation page by slug"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The page slug, e.g. 'guides/auth/row-level-security'"),
		),
	)
	mcpServer.AddTool(pageTool, s.handleGetPage)
}

type itemResult struct {
	Label string       `json:"label"`
	Href  string       `json:"href,omitempty"`
	Level string       `json:"level,omitempty"`
	Items []itemResult `json:"items,omitempty"`
}

func itemToResult(it nav.Item) itemResult {
	children := it.Items()
	out := itemResult{
		Label: it.Label(),
		Href:  it.Href(),
		Level: it.Level(),
	}
	for _, c := range children {
		out.Items = append(out.Items, itemToResult(c))
	}
	return out
}

// handleGetNavigation handles the get_navigation tool invocation.
func (s *Server) handleGetNavigation(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sections := s.navigation.TopLevelSections(ctx)

	results := make([]itemResult, len(sections))
	for i, it := range sections {
		results[i] = itemToResult(it)
	}

	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleGetSectionTree handles the get_section_tree tool invocation.
func (s *Server) handleGetSectionTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level, err := request.RequireString("level")
	if err != nil {
		return mcp.NewToolResultError("level is required"), nil
	}

	root, err := s.navigation.SectionTree(ctx, level)
	if err != nil {
		s.logger.Error("section tree lookup failed", slog.String("level", level), slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("unknown level %q, known levels: %v", level, s.navigation.Levels(ctx))), nil
	}

	jsonBytes, err := json.Marshal(itemToResult(root))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleGetReferences handles the get_reference_entries tool invocation.
func (s *Server) handleGetReferences(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type entryResult struct {
		Name     string   `json:"name"`
		Library  string   `json:"library,omitempty"`
		Versions []string `json:"versions"`
	}
	type groupResult struct {
		Name    string        `json:"name"`
		Entries []entryResult `json:"entries"`
	}

	groups := s.references.Groups(ctx)
	results := make([]groupResult, len(groups))
	for i, g := range groups {
		entries := g.Entries()
		gr := groupResult{Name: string(g.Name()), Entries: make([]entryResult, len(entries))}
		for j, e := range entries {
			gr.Entries[j] = entryResult{
				Name:     e.Name(),
				Library:  e.Library(),
				Versions: e.Versions(),
			}
		}
		results[i] = gr
	}

	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleGetPage handles the get_page tool invocation.
func (s *Server) handleGetPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError("slug is required"), nil
	}

	meta, err := s.pages.Get(ctx, slug)
	if err != nil {
		s.logger.Error("page lookup failed", slog.String("slug", slug), slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to get page: %v", err)), nil
	}

	type pageResult struct {
		Slug         string   `json:"slug"`
		Title        string   `json:"title"`
		Subtitle     string   `json:"subtitle,omitempty"`
		Description  string   `json:"description,omitempty"`
		SidebarLabel string   `json:"sidebarLabel,omitempty"`
		Breadcrumb   []string `json:"breadcrumb,omitempty"`
		HideToc      bool     `json:"hideToc,omitempty"`
	}

	jsonBytes, err := json.Marshal(pageResult{
		Slug:         meta.Slug(),
		Title:        meta.Title(),
		Subtitle:     meta.Subtitle(),
		Description:  meta.Description(),
		SidebarLabel: meta.SidebarLabel(),
		Breadcrumb:   meta.Breadcrumb(),
		HideToc:      meta.HideToc(),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// MCPServer returns the underlying MCP server for stdio serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
