// cmd/oligo-library/main.go
package main

import (
	"github.com/cancerit/QUANTS-sub000/internal/appshell"
	"github.com/cancerit/QUANTS-sub000/internal/oligoapp"
)

func main() {
	appshell.Main(oligoapp.RunContext)
}
