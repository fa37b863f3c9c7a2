package main

import (
	"github.com/bylickilabs/GithubRepoCatalog/cmd"
)

func main() {
	cmd.Execute()
}
