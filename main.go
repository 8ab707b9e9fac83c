package main

import "github.com/gsinfogaurav-sudo/music/cmd"

func main() {
	cmd.Execute()
}
