package main

import "github.com/court-monitor/scraper/internal/cli"

func main() {
	cli.Execute()
}
