package main

import (
	_ "bitcoinswitch/docs"
	"bitcoinswitch/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bitcoin Switch API
// @version         1.0
// @description     Payment-activated GPIO switches: LNURL-pay quoting, Taproot Asset RFQ and device activation.

// @license.name  MIT

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey WalletKey
// @in header
// @name X-Api-Key
// @description Wallet invoice or admin key of the device owner.

func main() {
	routes.Run()
}
