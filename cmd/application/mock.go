package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/walletlist"
)

// Mock is a configurable Application for command tests.
// Nil funcs fall back to zero values.
type Mock struct {
	ManagerFunc func(opts ...walletlist.Option) (walletlist.Manager, error)
	LoggerFunc  func() *zerolog.Logger
	Format      string
	VersionInfo string
}

var _ Application = (*Mock)(nil)

// Manager implements Application.
func (m *Mock) Manager(opts ...walletlist.Option) (walletlist.Manager, error) {
	if m.ManagerFunc != nil {
		return m.ManagerFunc(opts...)
	}
	return walletlist.New(opts...)
}

// Logger implements Application.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat implements Application.
func (m *Mock) OutputFormat() string { return m.Format }

// Version implements Application.
func (m *Mock) Version() string { return m.VersionInfo }

// Commit implements Application.
func (m *Mock) Commit() string { return "" }

// Date implements Application.
func (m *Mock) Date() string { return "" }

// BuiltBy implements Application.
func (m *Mock) BuiltBy() string { return "" }
