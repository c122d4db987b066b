package main

import "decoreco/cmd"

func main() {
	cmd.Execute()
}
