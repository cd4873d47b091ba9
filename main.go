package main

import (
	"parley/cmd"
)

func main() {
	cmd.Execute()
}
