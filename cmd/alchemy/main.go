package main

import "go.minekube.com/alchemy/pkg/cmd/alchemy"

func main() {
	alchemy.Execute()
}
