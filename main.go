package main

import (
	"embed"

	"github.com/azeroual/comptable/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
