// cmd/check-samplesheet/main.go
package main

import (
	"github.com/cancerit/QUANTS-sub000/internal/appshell"
	"github.com/cancerit/QUANTS-sub000/internal/samplesheetapp"
)

func main() {
	appshell.Main(samplesheetapp.RunContext)
}
