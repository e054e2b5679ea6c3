package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/bookreview-service/bookreview/app"
	"github.com/Astemirdum/bookreview-service/bookreview/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// @title    Book review API
// @version  1.0
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
		config.WithPageSize(10),
	)

	app.Run(cfg)
}
