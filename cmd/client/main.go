package main

import (
	"pixelz/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
