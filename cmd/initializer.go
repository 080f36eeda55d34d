package main

import (
	"database/sql"
	"log"

	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/Vivek212004/bake-cart-manager/internal/config"
	"github.com/Vivek212004/bake-cart-manager/internal/delivery"
	"github.com/Vivek212004/bake-cart-manager/internal/handlers"
	"github.com/Vivek212004/bake-cart-manager/internal/models"
	"github.com/Vivek212004/bake-cart-manager/internal/repositories"
	"github.com/Vivek212004/bake-cart-manager/internal/services"
	"github.com/Vivek212004/bake-cart-manager/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	cfg          config.Config
	db           *sql.DB
	tokenManager *utils.Manager
	wsManager    *WebSocketManager
	orderEvents  chan models.OrderEvent

	userRepo  *repositories.UserRepository
	orderRepo *repositories.OrderRepository

	userHandler     *handlers.UserHandler
	productHandler  *handlers.ProductHandler
	categoryHandler *handlers.CategoryHandler
	cartHandler     *handlers.CartHandler
	orderHandler    *handlers.OrderHandler
	reviewHandler   *handlers.ReviewHandler
}

func initializeApp(cfg config.Config, db *sql.DB, rdb *redis.Client, fcmClient *messaging.Client, errorLog, infoLog *log.Logger) *application {
	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	productRepo := repositories.ProductRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	orderRepo := repositories.OrderRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}
	cartRepo := repositories.CartRepository{RDB: rdb}

	calculator := delivery.NewCalculator(
		models.GeoPoint{Latitude: cfg.Bakery.Latitude, Longitude: cfg.Bakery.Longitude},
		cfg.Bakery.MaxDeliveryKm,
		cfg.Bakery.RoadDistanceFactor,
	)

	orderEvents := make(chan models.OrderEvent, 64)

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager}
	productService := &services.ProductService{ProductRepo: &productRepo}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo}
	cartService := &services.CartService{CartRepo: &cartRepo, ProductRepo: &productRepo}
	razorpayService := &services.RazorpayService{
		KeyID:     cfg.Razorpay.KeyID,
		KeySecret: cfg.Razorpay.KeySecret,
		BaseURL:   cfg.Razorpay.BaseURL,
	}
	notificationService := &services.NotificationService{
		Client:   fcmClient,
		UserRepo: &userRepo,
		ErrorLog: errorLog,
	}
	orderService := &services.OrderService{
		OrderRepo:   &orderRepo,
		CartRepo:    &cartRepo,
		ProductRepo: &productRepo,
		Calculator:  calculator,
		Razorpay:    razorpayService,
		Notifier:    notificationService,
		Events:      orderEvents,
	}
	reviewService := &services.ReviewService{ReviewRepo: &reviewRepo, ProductRepo: &productRepo}

	var uploader *utils.S3Uploader
	if cfg.Storage.Bucket != "" {
		uploader = utils.NewS3Uploader(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			cfg.Storage.Bucket,
			cfg.Storage.Region,
			cfg.Storage.Endpoint,
		)
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	productHandler := &handlers.ProductHandler{Service: productService, Uploader: uploader}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	cartHandler := &handlers.CartHandler{Service: cartService}
	orderHandler := &handlers.OrderHandler{Service: orderService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		cfg:             cfg,
		db:              db,
		tokenManager:    tokenManager,
		wsManager:       NewWebSocketManager(),
		orderEvents:     orderEvents,
		userRepo:        &userRepo,
		orderRepo:       &orderRepo,
		userHandler:     userHandler,
		productHandler:  productHandler,
		categoryHandler: categoryHandler,
		cartHandler:     cartHandler,
		orderHandler:    orderHandler,
		reviewHandler:   reviewHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
