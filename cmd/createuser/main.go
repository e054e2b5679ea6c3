// Package main creates service accounts from the command line.
//
// Usage:
//
//	go run ./cmd/createuser -username reader -password 'correct-horse'
//	CREATEUSER_PASSWORD='correct-horse' go run ./cmd/createuser -username admin -superuser
package main

import (
	"context"
	"flag"
	"fmt"
	stdLog "log"
	"os"

	"github.com/Astemirdum/bookreview-service/bookreview/app"
	"github.com/Astemirdum/bookreview-service/pkg/logger"
	"github.com/Astemirdum/bookreview-service/pkg/postgres"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	username  = flag.String("username", "", "login of the new user")
	password  = flag.String("password", "", "password; falls back to $CREATEUSER_PASSWORD")
	superuser = flag.Bool("superuser", false, "create a superuser (staff, active)")
)

func main() {
	flag.Parse()
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if *password == "" {
		*password = os.Getenv("CREATEUSER_PASSWORD")
	}
	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	var dbCfg postgres.DB
	if err := envconfig.Process("", &dbCfg); err != nil {
		stdLog.Fatal("db config ", err)
	}
	log := logger.NewLogger(logger.Log{LogLevel: zapcore.InfoLevel}, "createuser")

	user, err := app.CreateUser(context.Background(), &dbCfg, log, *username, *password, *superuser)
	if err != nil {
		log.Fatal("create user", zap.Error(err))
	}
	fmt.Printf("created user %q (id=%d, superuser=%v)\n", user.Username, user.ID, user.Superuser)
}
