package main

import (
	"github.com/PeterDeWeirdt/combibuild/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
