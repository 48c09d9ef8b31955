// Package lsp is a diagnostics-only Language Server Protocol frontend: it
// lexes and parses whatever the editor has open and republishes every
// LexError/SyntaxError as an LSP Diagnostic. Built-in method implementations
// and IDE features beyond diagnostics (completion, hover, go-to-definition)
// are out of scope here the same way they're out of scope for the core
// itself.
package lsp

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"
)

// document is the server's in-memory record of one open editor buffer.
type document struct {
	content string
	version int
}

// Server implements a diagnostics-only LSP server over jsonrpc2's
// stdio transport.
type Server struct {
	id     uuid.UUID
	logger *zap.Logger

	conn   jsonrpc2.Conn
	client protocol.Client

	workspaceRoot string
	capabilities  protocol.ServerCapabilities

	mu        sync.RWMutex
	documents map[string]*document

	cancel context.CancelFunc
}

// NewServer creates a Server. A nil logger disables logging entirely.
func NewServer(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		id:        uuid.New(),
		logger:    logger,
		documents: make(map[string]*document),
		capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
				Save:      &protocol.SaveOptions{IncludeText: false},
			},
		},
	}
}

// ID is this server instance's correlation id, logged once when Run starts
// serving.
func (s *Server) ID() uuid.UUID { return s.id }

// Run starts the LSP server over stdin/stdout and blocks until ctx is
// cancelled or the connection closes.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting natalie language server", zap.String("server_id", s.id.String()))

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	stream := jsonrpc2.NewStream(stdrwc{})
	conn := jsonrpc2.NewConn(stream)
	s.conn = conn
	s.client = protocol.ClientDispatcher(conn, s.logger)

	conn.Go(ctx, s.handler())

	<-ctx.Done()
	s.logger.Info("shutting down natalie language server")
	return conn.Close()
}

func (s *Server) handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		switch req.Method() {
		case protocol.MethodInitialize:
			return s.handleInitialize(ctx, reply, req)
		case protocol.MethodInitialized:
			return reply(ctx, nil, nil)
		case protocol.MethodShutdown:
			return reply(ctx, nil, nil)
		case protocol.MethodExit:
			return s.handleExit(ctx, reply)
		case protocol.MethodTextDocumentDidOpen:
			return s.handleDidOpen(ctx, reply, req)
		case protocol.MethodTextDocumentDidChange:
			return s.handleDidChange(ctx, reply, req)
		case protocol.MethodTextDocumentDidClose:
			return s.handleDidClose(ctx, reply, req)
		case protocol.MethodTextDocumentDidSave:
			return s.handleDidSave(ctx, reply, req)
		default:
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}
	}
}

func (s *Server) handleInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.InitializeParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse initialize params")
	}

	switch {
	case len(params.WorkspaceFolders) > 0:
		s.workspaceRoot = uri.URI(params.WorkspaceFolders[0].URI).Filename()
	case params.RootURI != "":
		s.workspaceRoot = params.RootURI.Filename()
	case params.RootPath != "":
		s.workspaceRoot = params.RootPath
	}
	s.logger.Debug("initialized", zap.String("workspace_root", s.workspaceRoot))

	return reply(ctx, protocol.InitializeResult{
		Capabilities: s.capabilities,
		ServerInfo:   &protocol.ServerInfo{Name: "natalie-lsp", Version: "0.1.0"},
	}, nil)
}

func (s *Server) handleExit(ctx context.Context, reply jsonrpc2.Replier) error {
	err := reply(ctx, nil, nil)
	if s.cancel != nil {
		s.cancel()
	}
	return err
}

func (s *Server) handleDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse didOpen params")
	}

	docURI := string(params.TextDocument.URI)
	s.setDocument(docURI, params.TextDocument.Text, int(params.TextDocument.Version))
	s.publishDiagnostics(ctx, docURI)
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse didChange params")
	}
	if len(params.ContentChanges) == 0 {
		return reply(ctx, nil, nil)
	}

	docURI := string(params.TextDocument.URI)
	// Full document sync (TextDocumentSyncKindFull): the last change carries
	// the entire new text.
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.setDocument(docURI, content, int(params.TextDocument.Version))
	s.publishDiagnostics(ctx, docURI)
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse didClose params")
	}

	s.mu.Lock()
	delete(s.documents, string(params.TextDocument.URI))
	s.mu.Unlock()
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidSave(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidSaveTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "failed to parse didSave params")
	}
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return reply(ctx, nil, nil)
}

func (s *Server) setDocument(docURI, content string, version int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[docURI] = &document{content: content, version: version}
}

func (s *Server) documentContent(docURI string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[docURI]
	if !ok {
		return "", false
	}
	return doc.content, true
}

func (s *Server) publishDiagnostics(ctx context.Context, docURI string) {
	content, ok := s.documentContent(docURI)
	if !ok {
		return
	}

	diags := diagnose(docURI, content)
	s.logger.Debug("publishing diagnostics",
		zap.String("uri", docURI), zap.Int("count", len(diags)))

	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(docURI),
		Diagnostics: diags,
	})
	if err != nil {
		s.logger.Warn("failed to publish diagnostics", zap.Error(err))
	}
}

func (s *Server) replyWithError(ctx context.Context, reply jsonrpc2.Replier, code jsonrpc2.Code, message string) error {
	return reply(ctx, nil, &jsonrpc2.Error{Code: code, Message: message})
}

// stdrwc adapts stdin/stdout to io.ReadWriteCloser for jsonrpc2.NewStream.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
