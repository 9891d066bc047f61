package main

import "sales-assistant/cmd"

func main() {
	cmd.Execute()
}
