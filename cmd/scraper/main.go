package main

import (
	"flag"
	"log"

	"ZoonScraper/internal/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	task := flag.String("task", "scrape", "Task to run: scrape")
	configPath := flag.String("config", "config.yml", "Path to the YAML config file")
	flag.Parse()

	application := app.New(*configPath)
	defer application.Close()

	log.Printf("Running task: %s", *task)

	switch *task {
	case "scrape":
		application.RunCatalogScraper()

	default:
		log.Fatalf("Unknown task: %s.", *task)
	}
}
