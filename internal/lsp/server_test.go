package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
)

func TestNewServer_NilLoggerDoesNotPanic(t *testing.T) {
	s := NewServer(nil)
	require.NotNil(t, s)
	assert.NotNil(t, s.logger)
}

func TestNewServer_AssignsUniqueID(t *testing.T) {
	a := NewServer(nil)
	b := NewServer(nil)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewServer_CapabilitiesAdvertiseFullTextSync(t *testing.T) {
	s := NewServer(nil)
	sync, ok := s.capabilities.TextDocumentSync.(protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.True(t, sync.OpenClose)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, sync.Change)
}

func TestServer_SetDocumentThenDocumentContentRoundTrips(t *testing.T) {
	s := NewServer(nil)
	s.setDocument("file:///a.rb", "1 + 1", 1)

	content, ok := s.documentContent("file:///a.rb")
	require.True(t, ok)
	assert.Equal(t, "1 + 1", content)
}

func TestServer_DocumentContentMissingReturnsFalse(t *testing.T) {
	s := NewServer(nil)
	_, ok := s.documentContent("file:///missing.rb")
	assert.False(t, ok)
}

func TestServer_SetDocumentOverwritesPreviousVersion(t *testing.T) {
	s := NewServer(nil)
	s.setDocument("file:///a.rb", "1", 1)
	s.setDocument("file:///a.rb", "2", 2)

	content, ok := s.documentContent("file:///a.rb")
	require.True(t, ok)
	assert.Equal(t, "2", content)
	assert.Equal(t, 2, s.documents["file:///a.rb"].version)
}

func TestStdrwc_ImplementsReadWriteCloser(t *testing.T) {
	var _ = stdrwc{}
}
