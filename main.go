package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/morikazuSuma/symbol-grounding/internal/catalog"
	"github.com/morikazuSuma/symbol-grounding/internal/config"
	"github.com/morikazuSuma/symbol-grounding/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.morikazusuma.symbol-grounding"
	AppName = "記号接地待ち"

	WindowWidth  = 1280
	WindowHeight = 800
)

func main() {
	// Log version information
	fmt.Printf("Symbol Grounding Gallery v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply the dark gallery theme
	myApp.Settings().SetTheme(ui.NewGalleryTheme())

	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	client, err := catalog.NewClient(settings.GetDataSourceURL())
	if err != nil {
		log.Fatalf("Invalid data source URL: %v", err)
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, nil)

	// Show and run
	myWindow.ShowAndRun()
}
