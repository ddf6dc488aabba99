package main

import "eatsandthinks/internal/cli"

func main() {
	cli.Execute()
}
