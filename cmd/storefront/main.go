package main

import (
	"os"

	"github.com/ZeyadMahfouzz/supermarket-client/api"
	"github.com/ZeyadMahfouzz/supermarket-client/initializers"
	"github.com/ZeyadMahfouzz/supermarket-client/stock"
	"github.com/ZeyadMahfouzz/supermarket-client/store"
	"github.com/ZeyadMahfouzz/supermarket-client/views"
)

func init() {
	initializers.LoadEnv()
}

func main() {
	cfg := initializers.LoadConfig()

	client := api.NewClient(cfg.APIBaseURL)
	session := store.NewSessionStore(client, cfg.SessionFile)
	checker := stock.NewChecker(client.Items)
	cart := store.NewCartStore(client, session, checker)

	app := views.NewApp(client, session, cart, os.Stdin, os.Stdout)
	app.Run()
}
