package main

import "github.com/mj1618/window-viewer/cmd"

func main() {
	cmd.Execute()
}
