package controllers

import (
	"encoding/json"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/store"
	"go-storefront/utils"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var mobileNumberRe = regexp.MustCompile(`^\d{10}$`)

// UserController handles registration, login and profile requests
type UserController struct {
	Store        store.Store
	EmailService *utils.EmailService
}

// NewUserController creates a new UserController
func NewUserController(s store.Store, emailService *utils.EmailService) *UserController {
	return &UserController{
		Store:        s,
		EmailService: emailService,
	}
}

type registerRequest struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ShopName     string `json:"shopName"`
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	// Decode the request body
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// Validate the registration fields
	errs := make(map[string]string)
	if strings.TrimSpace(req.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	} else if !strings.Contains(req.Email, "@") {
		errs["email"] = "Please enter a valid email address"
	}
	if !mobileNumberRe.MatchString(req.MobileNumber) {
		errs["mobileNumber"] = "Please enter a valid 10-digit mobile number"
	}
	if len(req.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if req.Role != models.RoleCustomer && req.Role != models.RoleSeller {
		errs["role"] = "Role must be customer or seller"
	}
	if len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{"errors": errs})
		return
	}

	// Load the registered user list
	var users []models.RegisteredUser
	ctx := r.Context()
	if _, err := store.ReadJSON(ctx, uc.Store, store.KeyRegisteredUsers, &users); err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}

	// Check if user already exists
	for _, u := range users {
		if strings.EqualFold(u.Email, req.Email) && u.Role == req.Role {
			http.Error(w, "User already exists", http.StatusBadRequest)
			return
		}
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	user := models.RegisteredUser{
		Identity: models.Identity{
			ID:           uuid.New().String(),
			FullName:     req.FullName,
			Email:        req.Email,
			MobileNumber: req.MobileNumber,
			Role:         req.Role,
			ShopName:     strings.TrimSpace(req.ShopName),
		},
		PasswordHash: string(hashedPassword),
	}

	// Append to the registered user list
	users = append(users, user)
	if err := store.WriteJSON(ctx, uc.Store, store.KeyRegisteredUsers, users); err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	// Send welcome email
	if uc.EmailService != nil {
		go func(email, name string) {
			if err := uc.EmailService.SendWelcomeEmail(email, name); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(user.Email, user.FullName)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user.Identity)
}

// Login handles user authentication
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	// Decode the request body
	err := json.NewDecoder(r.Body).Decode(&creds)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// Look the user up by email and role
	var users []models.RegisteredUser
	ctx := r.Context()
	if _, err := store.ReadJSON(ctx, uc.Store, store.KeyRegisteredUsers, &users); err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}

	var user *models.RegisteredUser
	for i := range users {
		if strings.EqualFold(users[i].Email, creds.Email) && users[i].Role == creds.Role {
			user = &users[i]
			break
		}
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusUnauthorized)
		return
	}

	// Compare the hashed password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password))
	if err != nil {
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	// Persist the current identity for this session
	if err := store.WriteJSON(ctx, uc.Store, store.CurrentIdentityKey(user.ID), user.Identity); err != nil {
		http.Error(w, "Error starting session", http.StatusInternalServerError)
		return
	}

	// Generate JWT token
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user.Identity,
	})
}

// Logout clears the persisted identity for the authenticated user
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := uc.Store.Delete(r.Context(), store.CurrentIdentityKey(claims.UserID)); err != nil {
		http.Error(w, "Error ending session", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode("Logged out")
}

// GetProfile retrieves the authenticated user's persisted identity
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Could not parse user from context", http.StatusUnauthorized)
		return
	}

	var identity models.Identity
	found, err := store.ReadJSON(r.Context(), uc.Store, store.CurrentIdentityKey(claims.UserID), &identity)
	if err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "No active session", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(identity)
}

// displayNameKey picks the dashboard name key matching the user's role.
func displayNameKey(claims *utils.Claims) string {
	if claims.Role == models.RoleSeller {
		return store.SellerNameKey(claims.UserID)
	}
	return store.CustomerNameKey(claims.UserID)
}

// GetDisplayName returns the dashboard display name, falling back to the
// registered full name when none was saved
func (uc *UserController) GetDisplayName(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx := r.Context()
	var name string
	found, err := store.ReadJSON(ctx, uc.Store, displayNameKey(claims), &name)
	if err != nil {
		http.Error(w, "Store error", http.StatusInternalServerError)
		return
	}
	if !found {
		var identity models.Identity
		if ok, err := store.ReadJSON(ctx, uc.Store, store.CurrentIdentityKey(claims.UserID), &identity); err == nil && ok {
			name = identity.FullName
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"name": name})
}

// SetDisplayName saves the dashboard display name
func (uc *UserController) SetDisplayName(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	if err := store.WriteJSON(r.Context(), uc.Store, displayNameKey(claims), name); err != nil {
		http.Error(w, "Error saving name", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"name": name})
}
