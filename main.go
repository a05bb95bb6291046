package main

import "github.com/peekknuf/modelfit/cmd"

func main() {
	cmd.Execute()
}
