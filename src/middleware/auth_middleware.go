package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/Backend-Dev-Connect/src/lib"
	"github.com/theleywin/Backend-Dev-Connect/src/store"
)

// ProtectRoute checks for a valid bearer token, loads the account it names,
// and attaches the verified identity to the request context
func ProtectRoute(secret string, users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("No token, authorization denied"))
		}

		// Expected format: "Bearer <token>"
		var token string
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			token = authHeader[7:]
		} else {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid token format"))
		}

		decoded, err := lib.VerifyJWT(secret, token)
		if err != nil || decoded == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
		}

		rawID, ok := decoded["userId"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
		}

		userID, err := primitive.ObjectIDFromHex(rawID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("User not found"))
		}

		user.Password = ""

		c.Locals("user", *user)
		c.Locals("userID", userID)

		return c.Next()
	}
}
