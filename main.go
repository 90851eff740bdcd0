package main

import "github.com/Rorical/TextValidator/cmd"

func main() {
	cmd.Execute()
}
