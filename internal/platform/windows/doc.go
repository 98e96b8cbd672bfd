// Package windows provides the Win32 backend: window queries through user32
// and the demo windows created with the lxn/win bindings. On other systems the
// package is empty and platform.NewProvider reports ErrUnsupported.
package windows
