package routes

import (
	"go-storefront/controllers"
	"go-storefront/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, cartController *controllers.CartController, orderController *controllers.OrderController, listingController *controllers.ListingController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")

	// Catalog routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/category/{category}", productController.GetProductsByCategory).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/logout", userController.Logout).Methods("POST")
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/profile/name", userController.GetDisplayName).Methods("GET")
	protected.HandleFunc("/profile/name", userController.SetDisplayName).Methods("PUT")

	// Cart routes
	protected.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	protected.HandleFunc("/cart/{product_id}", cartController.RemoveFromCart).Methods("DELETE")

	// Order routes
	protected.HandleFunc("/order", orderController.CreateOrder).Methods("POST")
	protected.HandleFunc("/order/confirmation", orderController.ConfirmOrder).Methods("GET")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")

	// Seller routes
	seller := router.PathPrefix("/seller").Subrouter()
	seller.Use(middleware.AuthMiddleware)
	seller.Use(middleware.SellerMiddleware)
	seller.HandleFunc("/products", productController.GetSellerProducts).Methods("GET")
	seller.HandleFunc("/listing", listingController.StartListing).Methods("POST")
	seller.HandleFunc("/listing", listingController.GetListing).Methods("GET")
	seller.HandleFunc("/listing/category", listingController.SelectCategory).Methods("POST")
	seller.HandleFunc("/listing/shop-name", listingController.SetShopName).Methods("POST")
	seller.HandleFunc("/listing/image", listingController.UploadImage).Methods("POST")
	seller.HandleFunc("/listing/price", listingController.SetPrice).Methods("POST")
	seller.HandleFunc("/listing/back", listingController.Back).Methods("POST")
}
