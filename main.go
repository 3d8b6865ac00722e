package main

import "catalog-engine/cmd"

func main() {
	cmd.Execute()
}
