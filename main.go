package main

import (
	"soundcheck/cmd"
)

func main() {
	cmd.Execute()
}
