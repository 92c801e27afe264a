package main

import (
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/gardening-directions/internal/cli"
	"github.com/ytget/gardening-directions/internal/ui"
)

func main() {
	os.Exit(cli.Execute(launch))
}

func launch(dataFile string) error {
	a := app.NewWithID(ui.AppID)
	ui.Launch(a, dataFile)
	a.Run()
	return nil
}
