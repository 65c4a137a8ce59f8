package controllers

import (
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/theleywin/Backend-Dev-Connect/src/lib"
	"github.com/theleywin/Backend-Dev-Connect/src/models"
	"github.com/theleywin/Backend-Dev-Connect/src/store"
)

type AuthController struct {
	users    store.UserStore
	secret   string
	lifespan time.Duration
	log      lib.Logger
}

func NewAuthController(users store.UserStore, secret string, lifespan time.Duration, log lib.Logger) *AuthController {
	return &AuthController{users: users, secret: secret, lifespan: lifespan, log: log}
}

// Register handles user registration, checks for duplicates, hashes the
// password, and returns a token
func (ac *AuthController) Register(c *fiber.Ctx) error {

	var userData struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&userData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if userData.Name == "" || userData.Email == "" || userData.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("All fields are required"))
	}

	if len(userData.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Password must be at least 6 characters"))
	}

	if _, err := ac.users.GetByEmail(c.Context(), userData.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("User already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.Password), 11)
	if err != nil {
		ac.log.Error("password hashing failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	newUser := models.User{
		Name:      userData.Name,
		Email:     userData.Email,
		Password:  string(hashedPassword),
		Avatar:    gravatarURL(userData.Email),
		CreatedAt: time.Now().UTC(),
	}

	created, err := ac.users.Create(c.Context(), &newUser)
	if err != nil {
		ac.log.Error("user creation failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	token, err := lib.GenerateJWT(ac.secret, created.Id, ac.lifespan)
	if err != nil {
		ac.log.Error("token generation failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

// Login authenticates a user by email and password and returns a token
func (ac *AuthController) Login(c *fiber.Ctx) error {

	var loginData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&loginData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if loginData.Email == "" || loginData.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email and password are required"))
	}

	user, err := ac.users.GetByEmail(c.Context(), loginData.Email)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid credentials"))
		}
		ac.log.Error("user lookup failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginData.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid credentials"))
	}

	token, err := lib.GenerateJWT(ac.secret, user.Id, ac.lifespan)
	if err != nil {
		ac.log.Error("token generation failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.JSON(fiber.Map{"token": token})
}

// GetCurrentUser returns the currently authenticated user's account data
func (ac *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	user := c.Locals("user")
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Not authenticated"))
	}
	return c.JSON(user)
}

func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
