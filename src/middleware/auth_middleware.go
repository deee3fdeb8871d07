package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/Backend-Dev-Folio/src/apperror"
	"github.com/devfolio/Backend-Dev-Folio/src/lib"
	"github.com/devfolio/Backend-Dev-Folio/src/models"
)

// Protect returns a middleware that checks the Bearer token, loads the user
// document and attaches it to the request context under "user".
func Protect(users *mongo.Collection, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperror.Unauthorized("Not authorized - token not provided")
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			return apperror.Unauthorized("Not authorized - invalid token format")
		}

		userID, err := lib.VerifyJWT(token, secret)
		if err != nil {
			return apperror.Unauthorized("Not authorized - invalid token")
		}

		objectID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return apperror.Unauthorized("Not authorized - invalid user id")
		}

		var user models.User
		err = users.FindOne(c.Context(), bson.M{"_id": objectID}).Decode(&user)
		if err != nil {
			return apperror.Unauthorized("Not authorized - user not found")
		}
		if !user.IsActive {
			return apperror.Unauthorized("Not authorized - account deactivated")
		}

		user.Password = ""
		c.Locals("user", user)

		return c.Next()
	}
}
