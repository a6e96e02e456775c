package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"myq-smarthome-adapter/internal/app"
	"myq-smarthome-adapter/internal/config"
	"myq-smarthome-adapter/internal/logging"
)

var version = "dev"

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.Logging, version)

	a := app.New(cfg, logger.Logger)
	logger.Info("lambda handler ready", "endpoint", cfg.Endpoint)
	lambda.Start(a.Entry.Handle)
}
