// Package mcp exposes the engine as a Model Context Protocol server so
// agents can score and attune text over stdio.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	novena "github.com/ninefold/novena"
	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/planner"
)

// AnalyzeResponse is the structured payload of the analyze_text tool.
type AnalyzeResponse struct {
	Total    int            `json:"total" jsonschema_description:"Sum of all character energies"`
	Root     int            `json:"dr" jsonschema_description:"Digital root of the total, 1..9"`
	Triads   map[string]int `json:"triads" jsonschema_description:"Character counts per harmonic triad"`
	Profile  map[int]int    `json:"profile" jsonschema_description:"Character counts per energy digit"`
	Analysis any            `json:"analysis,omitempty" jsonschema_description:"Full hierarchical breakdown when detail is requested"`
}

// AttuneResponse is the structured payload of the attune_text tool.
type AttuneResponse struct {
	Text string        `json:"text" jsonschema_description:"The attuned text"`
	Plan *planner.Plan `json:"plan" jsonschema_description:"The insertion plan that was applied"`
}

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    *novena.Engine
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers its tools.
func NewServer(engine *novena.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("novena-mcp", strings.TrimSpace(novena.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	analyzeTool := mcp.NewTool("analyze_text",
		mcp.WithDescription("Compute the ninefold energy of a text: total, digital root, harmonic triads and energy profile."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to analyze")),
		mcp.WithBoolean("detail", mcp.Description("Include the full char/word/sentence/paragraph breakdown")),
		mcp.WithOutputSchema[AnalyzeResponse](),
	)
	s.mcpServer.AddTool(analyzeTool, mcp.NewStructuredToolHandler(s.handleAnalyze))

	attuneTool := mcp.NewTool("attune_text",
		mcp.WithDescription("Insert the fewest symbols needed to move a text's digital root to a target 1..9."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to attune")),
		mcp.WithNumber("target", mcp.Required(), mcp.Description("Target digital root, 1..9")),
		mcp.WithString("symbols", mcp.Description("Allowed insertion symbols (default \""+planner.DefaultAllowedSymbols+"\")")),
		mcp.WithString("method", mcp.Description("Placement: append, prepend or intersperse (default append)")),
		mcp.WithOutputSchema[AttuneResponse](),
	)
	s.mcpServer.AddTool(attuneTool, mcp.NewStructuredToolHandler(s.handleAttune))
}

func (s *Server) handleAnalyze(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (AnalyzeResponse, error) {
	text, ok := args["text"].(string)
	if !ok {
		return AnalyzeResponse{}, fmt.Errorf("text argument is required")
	}

	total, root := s.engine.Checksum(text)
	resp := AnalyzeResponse{
		Total:   total,
		Root:    root,
		Triads:  energy.HarmonicTriads(text, s.engine.Principle()),
		Profile: energy.Profile(text, s.engine.Principle()),
	}
	if detail, _ := args["detail"].(bool); detail {
		resp.Analysis = s.engine.Analyze(text)
	}
	return resp, nil
}

func (s *Server) handleAttune(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (AttuneResponse, error) {
	text, ok := args["text"].(string)
	if !ok {
		return AttuneResponse{}, fmt.Errorf("text argument is required")
	}
	targetF, ok := args["target"].(float64)
	if !ok {
		return AttuneResponse{}, fmt.Errorf("target argument is required")
	}
	symbols, _ := args["symbols"].(string)
	method := planner.MethodAppend
	if m, ok := args["method"].(string); ok && m != "" {
		method = planner.InsertMethod(m)
	}

	attuned, plan, err := s.engine.Attune(text, int(targetF), symbols, method)
	if err != nil {
		return AttuneResponse{}, fmt.Errorf("attunement failed: %w", err)
	}
	return AttuneResponse{Text: attuned, Plan: plan}, nil
}
