package main

import "github.com/andrescamacho/trip-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
