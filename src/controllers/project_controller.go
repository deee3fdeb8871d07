package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/Backend-Dev-Folio/src/apperror"
	"github.com/devfolio/Backend-Dev-Folio/src/cache"
	"github.com/devfolio/Backend-Dev-Folio/src/lib"
	"github.com/devfolio/Backend-Dev-Folio/src/models"
	"github.com/devfolio/Backend-Dev-Folio/src/search"
)

type ProjectController struct {
	profiles *mongo.Collection
	cache    *cache.Redis
}

func NewProjectController(db *mongo.Database, redis *cache.Redis) *ProjectController {
	return &ProjectController{
		profiles: db.Collection("profiles"),
		cache:    redis,
	}
}

// List serves public projects across all public profiles, optionally
// filtered by technology tags (comma-separated).
func (pj *ProjectController) List(c *fiber.Ctx) error {
	page, limit := lib.ParsePageLimit(c, 12, 50)
	technologies := search.SplitCSV(c.Query("technology"))

	filter := search.PublicProfilesFilter()
	if len(technologies) > 0 {
		filter = search.TechnologyFilter(technologies)
	}

	docs, err := findProfiles(c.Context(), pj.profiles, filter, 0, 0)
	if err != nil {
		return apperror.Internal("Error loading projects", err)
	}

	results := make([]projectResult, 0)
	for _, p := range docs {
		var projects []models.Project
		if len(technologies) > 0 {
			projects = search.ProjectsUsingTechnology(p, technologies)
		} else {
			projects = p.PublicProjects()
		}
		for _, project := range projects {
			r := projectResult{Project: project}
			r.Owner.UserId = p.UserId.Hex()
			r.Owner.Name = p.Name
			r.Owner.AvatarURL = p.AvatarURL
			results = append(results, r)
		}
	}

	pagination := lib.NewPagination(int64(len(results)), page, limit)
	start, end := lib.PageSlice(len(results), page, limit)

	return lib.OKList(c, results[start:end], pagination)
}

// Technologies serves the technology-tag histogram over public projects,
// cached until the next profile write.
func (pj *ProjectController) Technologies(c *fiber.Ctx) error {
	const cacheKey = "agg:projects:technologies"

	var cached []search.SkillCount
	if hit, _ := pj.cache.GetJSON(c.Context(), cacheKey, &cached); hit {
		return lib.OK(c, cached)
	}

	docs, err := loadPublicProfiles(c.Context(), pj.profiles)
	if err != nil {
		return apperror.Internal("Error loading profiles", err)
	}

	hist := search.TechnologyHistogram(docs)
	_ = pj.cache.SetJSON(c.Context(), cacheKey, hist, 0)

	return lib.OK(c, hist)
}

// ByUser serves the public projects of one public profile; a private profile
// is reported like a missing one.
func (pj *ProjectController) ByUser(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Params("userId")))
	if err != nil {
		return apperror.BadRequest("Invalid user id")
	}

	var profile models.Profile
	err = pj.profiles.FindOne(c.Context(), bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal("Error loading profile", err)
	}
	if !profile.IsPublic {
		return apperror.NotFound("Profile not found")
	}

	return lib.OK(c, profile.PublicProjects())
}
