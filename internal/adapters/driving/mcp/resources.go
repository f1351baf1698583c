package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for textdesk resources.
	uriScheme = "textdesk://"

	defaultHistoryLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "buffer",
		Name:        "buffer",
		Description: "The current working text",
		MIMEType:    "text/plain",
	}, s.handleBufferResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "buffer/original",
		Name:        "buffer-original",
		Description: "The text as it was loaded, before any edits",
		MIMEType:    "text/plain",
	}, s.handleBufferResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stopwords",
		Name:        "stopwords",
		Description: "Stopwords excluded from word frequency analysis",
		MIMEType:    "application/json",
	}, s.handleStopwordsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{limit}",
		Name:        "history",
		Description: "The most recent revisions of the buffer, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleBufferResource returns the working or original text.
func (s *Server) handleBufferResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	buf, err := s.ports.Editor.Buffer(ctx)
	if errors.Is(err, domain.ErrNoBuffer) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading buffer: %w", err)
	}

	text := buf.Current
	if strings.HasSuffix(req.Params.URI, "/original") {
		text = buf.Original
	}
	return textResult(req.Params.URI, "text/plain", text), nil
}

// handleStopwordsResource returns the stopword list as JSON.
func (s *Server) handleStopwordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Stopwords == nil {
		return textResult(req.Params.URI, "application/json", "[]"), nil
	}

	words, err := s.ports.Stopwords.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stopwords: %w", err)
	}
	if words == nil {
		words = []string{}
	}

	data, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stopwords: %w", err)
	}
	return textResult(req.Params.URI, "application/json", string(data)), nil
}

// handleHistoryResource returns recent revisions without their full text.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	limit, ok := extractHistoryLimit(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	revisions, err := s.ports.Editor.History(ctx, limit)
	if errors.Is(err, domain.ErrNoBuffer) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	type revisionInfo struct {
		ID         string `json:"id"`
		Reason     string `json:"reason"`
		Characters int    `json:"characters"`
		CreatedAt  string `json:"created_at"`
	}

	infos := make([]revisionInfo, len(revisions))
	for i, rev := range revisions {
		infos[i] = revisionInfo{
			ID:         rev.ID,
			Reason:     rev.Reason,
			Characters: len([]rune(rev.Text)),
			CreatedAt:  rev.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}
	return textResult(req.Params.URI, "application/json", string(data)), nil
}

// extractHistoryLimit parses the limit from a URI like textdesk://history/{limit}.
// An empty limit uses the default.
func extractHistoryLimit(uri string) (int, bool) {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	raw := strings.TrimPrefix(uri, prefix)
	if raw == "" {
		return defaultHistoryLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func textResult(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}
