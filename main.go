package main

import "datavet/cmd"

func main() {
	cmd.Execute()
}
