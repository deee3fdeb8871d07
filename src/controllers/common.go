package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/Backend-Dev-Folio/src/models"
	"github.com/devfolio/Backend-Dev-Folio/src/search"
)

// currentUser reads the user the auth middleware attached to the request.
func currentUser(c *fiber.Ctx) models.User {
	return c.Locals("user").(models.User)
}

// loadPublicProfiles fetches every public profile for the aggregation and
// suggestion endpoints. The projection keeps only the fields the aggregator
// reads.
func loadPublicProfiles(ctx context.Context, profiles *mongo.Collection) ([]models.Profile, error) {
	projection := bson.M{
		"name":     1,
		"userId":   1,
		"skills":   1,
		"projects": 1,
	}

	cursor, err := profiles.Find(ctx, search.PublicProfilesFilter(),
		options.Find().SetProjection(projection).SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Profile
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// findProfiles runs filter with pagination and decodes the page.
func findProfiles(ctx context.Context, profiles *mongo.Collection, filter bson.M, skip, limit int) ([]models.Profile, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := profiles.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Profile
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
