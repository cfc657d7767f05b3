package main

import "search-provisioner/cmd"

func main() {
	cmd.Execute()
}
