package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"google.golang.org/api/option"

	"github.com/Vivek212004/bake-cart-manager/internal/config"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	cfg := config.LoadConfig()

	port := os.Getenv("PORT")
	if port == "" {
		if cfg.Server.Address != "" {
			port = cfg.Server.Address
		} else {
			port = ":4001"
		}
	} else {
		port = ":" + port
	}

	addr := flag.String("addr", port, "HTTP network address")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	db, err := openDB(cfg.Database.DSN)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		errorLog.Fatal(err)
	}
	defer rdb.Close()

	fcmClient := newFCMClient(cfg.FCM.CredentialsFile, infoLog, errorLog)

	app := initializeApp(cfg, db, rdb, fcmClient, errorLog, infoLog)

	go app.wsManager.Run(app.orderEvents)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startOrderSweeper(ctx, app.orderRepo, infoLog, errorLog)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Refresh-Token"},
	})

	srv := &http.Server{
		Addr:         *addr,
		ErrorLog:     errorLog,
		Handler:      c.Handler(app.routes()),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		errorLog.Fatal(err)
	}
}

// newFCMClient initializes the push client. Pushes are optional: a missing
// credentials file disables them instead of failing startup.
func newFCMClient(credentialsFile string, infoLog, errorLog *log.Logger) *messaging.Client {
	if credentialsFile == "" {
		infoLog.Println("FCM credentials not configured, push notifications disabled")
		return nil
	}

	fbApp, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		errorLog.Printf("Failed to initialize firebase app: %v", err)
		return nil
	}

	client, err := fbApp.Messaging(context.Background())
	if err != nil {
		errorLog.Printf("Failed to initialize FCM client: %v", err)
		return nil
	}
	return client
}
