package main

import "github.com/ToLiMaTh/wabt/cmd"

func main() {
	cmd.Execute()
}
