package main

import (
	"log"

	"github.com/ZeyadMahfouzz/supermarket-client/initializers"
	"github.com/ZeyadMahfouzz/supermarket-client/sandbox"
)

func init() {
	initializers.LoadEnv()
}

func main() {
	cfg := initializers.LoadConfig()

	server := sandbox.New(cfg.JWTSecret)
	log.Printf("Sandbox backend listening on :%s (admin login: %s)", cfg.Port, sandbox.AdminEmail)
	if err := server.Router().Run(":" + cfg.Port); err != nil {
		log.Fatalln("Sandbox server error:", err)
	}
}
