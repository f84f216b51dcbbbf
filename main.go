package main

import "lpixmove/cmd"

func main() {
	cmd.Execute()
}
