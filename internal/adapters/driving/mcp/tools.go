package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
	"github.com/gitscout-dev/gitscout/internal/logger"
	"github.com/gitscout-dev/gitscout/internal/report"
)

// TrendingInput is the input schema for the get_github_trending tool.
type TrendingInput struct {
	Since    string `json:"since,omitempty" jsonschema:"time range: daily, weekly or monthly (default daily)"`
	Language string `json:"language,omitempty" jsonschema:"programming language filter, e.g. go, python, javascript (default all languages)"`
}

// ReadmeInput is the input schema for the get_repository_readme tool.
type ReadmeInput struct {
	Repositories []string `json:"repositories" jsonschema:"repository names in owner/repository-name form"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_github_trending",
		Description: "Get GitHub trending repositories with names, descriptions, languages, star counts and star growth",
	}, s.handleTrending)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_repository_readme",
		Description: "Get README documentation content for the specified GitHub repositories",
	}, s.handleReadme)
}

// handleTrending handles the get_github_trending tool invocation.
// Every failure class renders as text inside the report; the handler
// itself never returns an error.
func (s *Server) handleTrending(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TrendingInput,
) (*mcp.CallToolResult, any, error) {
	requestID := uuid.NewString()
	logger.Debug("get_github_trending %s: since=%q language=%q", requestID, input.Since, input.Language)

	since := input.Since
	if since == "" {
		since = domain.SinceDaily.String()
	}
	query := domain.TrendingQuery{
		Since:    domain.Since(since),
		Language: input.Language,
	}
	query = query.Normalise()

	entries, err := s.ports.Trending.Trending(ctx, query)
	if err != nil {
		logger.Warn("get_github_trending %s: failed: %v", requestID, err)
		return textResult(report.TrendingError(err)), nil, nil
	}

	logger.Info("get_github_trending %s: %d entries", requestID, len(entries))
	return textResult(report.Trending(query, entries, s.now())), nil, nil
}

// handleReadme handles the get_repository_readme tool invocation.
func (s *Server) handleReadme(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadmeInput,
) (*mcp.CallToolResult, any, error) {
	requestID := uuid.NewString()
	logger.Debug("get_repository_readme %s: %d repositories", requestID, len(input.Repositories))

	results, err := s.ports.Readme.Readmes(ctx, input.Repositories)
	if err != nil {
		logger.Warn("get_repository_readme %s: failed: %v", requestID, err)
		return textResult(report.ReadmesError(err)), nil, nil
	}

	logger.Info("get_repository_readme %s: %d results", requestID, len(results))
	return textResult(report.Readmes(results)), nil, nil
}

// textResult wraps a report in a plain text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
