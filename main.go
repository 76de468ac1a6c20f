package main

import "github.com/Emilio24-dev/Laboratorio/cmd"

func main() {
	cmd.Execute()
}
