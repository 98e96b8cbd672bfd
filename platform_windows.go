package main

import _ "github.com/mj1618/window-viewer/internal/platform/windows"
