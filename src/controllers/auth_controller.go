package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/devfolio/Backend-Dev-Folio/src/apperror"
	"github.com/devfolio/Backend-Dev-Folio/src/config"
	"github.com/devfolio/Backend-Dev-Folio/src/lib"
	"github.com/devfolio/Backend-Dev-Folio/src/models"
)

const bcryptCost = 11

type AuthController struct {
	users    *mongo.Collection
	profiles *mongo.Collection
	cfg      *config.Config
}

func NewAuthController(db *mongo.Database, cfg *config.Config) *AuthController {
	return &AuthController{
		users:    db.Collection("users"),
		profiles: db.Collection("profiles"),
		cfg:      cfg,
	}
}

// Register creates the User and its Profile in one request and returns a
// token. Email is stored lowercase; a duplicate answers 409.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}

	if v := req.Validate(); !v.Empty() {
		return apperror.Validation("Validation failed", v)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := ac.users.FindOne(c.Context(), bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return apperror.Conflict("Email already registered")
	}
	if err != mongo.ErrNoDocuments {
		return apperror.Internal("Error checking existing user", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return apperror.Internal("Error hashing password", err)
	}

	now := time.Now()
	user := models.User{
		Id:        primitive.NewObjectID(),
		Email:     email,
		Password:  string(hashed),
		IsActive:  true,
		CreatedAt: now,
	}

	if _, err := ac.users.InsertOne(c.Context(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("Email already registered")
		}
		return apperror.Internal("Error creating user", err)
	}

	profile := models.Profile{
		Id:         primitive.NewObjectID(),
		UserId:     user.Id,
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Skills:     []string{},
		Projects:   []models.Project{},
		Experience: []models.WorkExperience{},
		IsPublic:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := ac.profiles.InsertOne(c.Context(), profile); err != nil {
		return apperror.Internal("Error creating profile", err)
	}

	token, err := lib.GenerateJWT(user.Id.Hex(), ac.cfg.JWTSecret, ac.cfg.JWTTTL)
	if err != nil {
		return apperror.Internal("Error generating token", err)
	}

	return lib.Created(c, "User registered successfully", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.Id.Hex(),
			"email": user.Email,
			"name":  profile.Name,
		},
	})
}

// Login verifies credentials and returns a fresh token. A wrong password is
// always a plain 401, there is no lockout after repeated failures.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}

	if v := req.Validate(); !v.Empty() {
		return apperror.Validation("Validation failed", v)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := ac.users.FindOne(c.Context(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperror.Unauthorized("Invalid credentials")
		}
		return apperror.Internal("Error looking up user", err)
	}

	if !user.IsActive {
		return apperror.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return apperror.Unauthorized("Invalid credentials")
	}

	_, err = ac.users.UpdateOne(c.Context(),
		bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"lastLogin": time.Now()}})
	if err != nil {
		return apperror.Internal("Error updating last login", err)
	}

	token, err := lib.GenerateJWT(user.Id.Hex(), ac.cfg.JWTSecret, ac.cfg.JWTTTL)
	if err != nil {
		return apperror.Internal("Error generating token", err)
	}

	return lib.OKMessage(c, "Login successful", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.Id.Hex(),
			"email": user.Email,
		},
	})
}

// Me returns the authenticated user loaded by the middleware.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	return lib.OK(c, currentUser(c))
}

// Deactivate flips the active flag; the user record itself is never deleted.
// Subsequent requests with an existing token are rejected by the middleware.
func (ac *AuthController) Deactivate(c *fiber.Ctx) error {
	user := currentUser(c)

	_, err := ac.users.UpdateOne(c.Context(),
		bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		return apperror.Internal("Error deactivating account", err)
	}

	return lib.OKMessage(c, "Account deactivated", nil)
}
