package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"transit-items-service/internal/client"
	"transit-items-service/internal/config"
	"transit-items-service/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api", config.Get("API_URL", "http://localhost:3001"), "base URL of the items API")
	timeout := flag.Duration("timeout", client.DefaultTimeout, "per-request timeout")
	flag.Parse()

	c, err := client.New(*apiURL, *timeout)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := tea.NewProgram(tui.New(c), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
