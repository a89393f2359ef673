package main

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"
	"os"

	"github.com/zlnvch/noteverse/api"
	"github.com/zlnvch/noteverse/cache/redis"
	"github.com/zlnvch/noteverse/store/dynamo"
)

const DynamoDBTable = "Noteverse"

func main() {
	ctx := context.Background()
	devMode := os.Getenv("DEV_MODE") == "true"

	noteverseStore, err := dynamo.NewDynamoNoteverseStore(ctx, devMode, os.Getenv("DYNAMODB_ENDPOINT"), DynamoDBTable)
	if err != nil {
		log.Fatalf("Failed to create dynamodb store: %v", err)
	}

	noteverseCache, err := redis.NewRedisNoteverseCache(ctx, devMode, os.Getenv("REDIS_ENDPOINT"))
	if err != nil {
		log.Fatalf("Failed to create redis cache: %v", err)
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("Failed to decode base64 jwtSecret: %v", err)
	}
	if len(jwtSecret) == 0 {
		log.Fatalf("JWT_SECRET must be set")
	}

	noteverseAPI := api.NewNoteverseAPI(noteverseStore, noteverseCache, jwtSecret)

	mux := http.NewServeMux()
	handler := noteverseAPI.RegisterRoutes(mux, os.Getenv("ALLOWED_ORIGIN"))

	hostPort := "8080"
	if p := os.Getenv("HOST_PORT"); p != "" {
		hostPort = p
	}
	log.Printf("Starting server on host port: %s\n", hostPort)
	log.Fatal(http.ListenAndServe(":"+hostPort, handler))
}
