package main

import "github.com/user/mitrenav/cmd"

func main() {
	cmd.Execute()
}
