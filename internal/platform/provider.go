package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Querier WindowQuerier
	Spawner DemoSpawner
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("window-viewer is not supported on %s/%s; supported: windows/amd64, windows/386, windows/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/windows/init.go for the Win32 registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
