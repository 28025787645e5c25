package main

import (
	cmd "github.com/kerbaras/authorquiz/cmd/authorquiz"
)

func main() {
	cmd.Execute()
}
