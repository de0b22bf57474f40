package main

import "github.com/danielengelsman/Isratest/cmd"

func main() {
	cmd.Execute()
}
