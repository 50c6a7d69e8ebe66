package main

import "github.com/josephlewis42/echocat/cmd"

func main() {
	cmd.Execute()
}
