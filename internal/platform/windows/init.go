//go:build windows

package windows

import "github.com/mj1618/window-viewer/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		if err := user32.Load(); err != nil {
			return nil, err
		}
		return &platform.Provider{
			Querier: NewQuerier(),
			Spawner: NewSpawner(),
		}, nil
	}
}
