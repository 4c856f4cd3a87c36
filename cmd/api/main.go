// Package main Blackjack API
//
// Blackjack is a player-versus-dealer card game service built for frame
// clients. Each player has at most one game running at a time; finished
// games feed a statistics leaderboard.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/farplay/blackjack/docs"
	"github.com/farplay/blackjack/internal/app"
)

// @title Blackjack API Service
// @version 1.0
// @description Blackjack is a player-versus-dealer card game service driven by signed frame actions.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
