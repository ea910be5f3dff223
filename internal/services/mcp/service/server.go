package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/clidocs/internal/content"
	"github.com/louisbranch/clidocs/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	serverName    = "clidocs"
	serverVersion = "0.1.0"
)

// Config defines the inputs for the MCP docs server.
type Config struct {
	// Store defaults to the embedded page set.
	Store  *content.Store
	Logger *zap.Logger
}

// Server hosts the MCP docs server.
type Server struct {
	mcpServer *mcp.Server
	logger    *zap.Logger
}

// New builds an MCP server with the docs resources and tools registered.
func New(cfg Config) (*Server, error) {
	store := cfg.Store
	if store == nil {
		store = content.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerHandlers(mcpServer, store)
	return &Server{mcpServer: mcpServer, logger: logger}, nil
}

func registerHandlers(server *mcp.Server, store *content.Store) {
	server.AddResource(domain.PagesResource(), domain.PagesResourceHandler(store))
	server.AddResourceTemplate(domain.PageResourceTemplate(), domain.PageResourceHandler(store))
	mcp.AddTool(server, domain.ResolvePageTool(), domain.ResolvePageHandler(store))
}

// Run builds a server from cfg and serves it on stdio until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if transport == nil {
		return fmt.Errorf("MCP transport is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	s.logger.Info("mcp docs server starting", zap.String("name", serverName), zap.String("version", serverVersion))
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve mcp: %w", err)
	}
	return nil
}
