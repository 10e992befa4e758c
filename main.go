package main

import (
	"fmt"
	"go-storefront/controllers"
	"go-storefront/routes"
	"go-storefront/store"
	"go-storefront/utils"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// newStore picks the persistence backend from STORE_BACKEND.
func newStore() (store.Store, error) {
	switch backend := os.Getenv("STORE_BACKEND"); backend {
	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		return store.NewRedisStore(addr)
	case "mongo":
		uri := os.Getenv("MONGO_URI")
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		return store.NewMongoStore(uri)
	case "", "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}
}

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.JwtKey = []byte(secret)
	}

	// Initialize EmailService; mail is optional in development
	var emailService *utils.EmailService
	if os.Getenv("POSTMARK_API_TOKEN") != "" {
		emailService = utils.NewEmailService()
	} else {
		log.Println("POSTMARK_API_TOKEN not set. Email disabled.")
	}

	// Connect to the persistent store
	kv, err := newStore()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize controllers
	userController := controllers.NewUserController(kv, emailService)
	productController := controllers.NewProductController(kv)
	cartController := controllers.NewCartController(kv)
	orderController := controllers.NewOrderController(kv, emailService)
	listingController := controllers.NewListingController(kv)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, cartController, orderController, listingController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
