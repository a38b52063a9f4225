// cmd/reformat-csv/main.go
package main

import (
	"github.com/cancerit/QUANTS-sub000/internal/appshell"
	"github.com/cancerit/QUANTS-sub000/internal/reformatapp"
)

func main() {
	appshell.Main(reformatapp.RunContext)
}
