package main

import "github.com/MeKo-Tech/iriscolor/internal/cmd"

func main() {
	cmd.Execute()
}
