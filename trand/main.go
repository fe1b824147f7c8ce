package main

import (
	"github.com/tutils/trand/cmd"
)

func main() {
	cmd.Execute()
}
