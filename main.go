package main

import (
	"context"
	"log"
	"os"

	"dataclean-service/logger"
	"dataclean-service/service"
	"dataclean-service/service/config"
)

var DATASET = "all"

func init() {
	if val := os.Getenv("DATASET"); val != "" {
		DATASET = val
	}
}

func main() {
	logger.InitLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	svc := service.NewPipelineService(cfg)
	ctx := context.Background()

	switch DATASET {
	case "telco":
		if _, err := svc.RunTelco(ctx); err != nil {
			log.Fatalf("error: %v", err)
		}
	case "ecommerce":
		if _, err := svc.RunEcommerce(ctx); err != nil {
			log.Fatalf("error: %v", err)
		}
	case "all":
		if _, err := svc.RunTelco(ctx); err != nil {
			log.Fatalf("error: %v", err)
		}
		if _, err := svc.RunEcommerce(ctx); err != nil {
			log.Fatalf("error: %v", err)
		}
	default:
		log.Fatalf("未知数据集: %s", DATASET)
	}
}
