package main

import "github.com/ZacxDev/docnav/cmd"

func main() {
	cmd.Execute()
}
