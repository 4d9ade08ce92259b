package main

import (
	"github.com/agentres/agentres/pkg/cmd"
)

func main() {
	cmd.Execute()
}
