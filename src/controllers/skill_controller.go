package controllers

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/Backend-Dev-Folio/src/apperror"
	"github.com/devfolio/Backend-Dev-Folio/src/cache"
	"github.com/devfolio/Backend-Dev-Folio/src/lib"
	"github.com/devfolio/Backend-Dev-Folio/src/search"
)

type SkillController struct {
	profiles *mongo.Collection
	cache    *cache.Redis
}

func NewSkillController(db *mongo.Database, redis *cache.Redis) *SkillController {
	return &SkillController{
		profiles: db.Collection("profiles"),
		cache:    redis,
	}
}

// histogram returns the full skill histogram over public profiles, cached
// until the next profile write.
func (sk *SkillController) histogram(ctx context.Context) ([]search.SkillCount, error) {
	const cacheKey = "agg:skills:histogram"

	var cached []search.SkillCount
	if hit, _ := sk.cache.GetJSON(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	docs, err := loadPublicProfiles(ctx, sk.profiles)
	if err != nil {
		return nil, err
	}

	hist := search.SkillHistogram(docs)
	_ = sk.cache.SetJSON(ctx, cacheKey, hist, 0)

	return hist, nil
}

// List serves the paginated skill histogram.
func (sk *SkillController) List(c *fiber.Ctx) error {
	hist, err := sk.histogram(c.Context())
	if err != nil {
		return apperror.Internal("Error building skill histogram", err)
	}

	page, limit := lib.ParsePageLimit(c, 20, 100)
	pagination := lib.NewPagination(int64(len(hist)), page, limit)
	start, end := lib.PageSlice(len(hist), page, limit)

	return lib.OKList(c, hist[start:end], pagination)
}

// Top serves the ranked top-N skills.
func (sk *SkillController) Top(c *fiber.Ctx) error {
	_, limit := lib.ParsePageLimit(c, 10, 50)

	hist, err := sk.histogram(c.Context())
	if err != nil {
		return apperror.Internal("Error building skill histogram", err)
	}

	return lib.OK(c, search.TopSkills(hist, limit))
}

// GetByName returns one skill's count together with its related skills.
// An unknown skill is a 404.
func (sk *SkillController) GetByName(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return apperror.BadRequest("Skill name is required")
	}

	hist, err := sk.histogram(c.Context())
	if err != nil {
		return apperror.Internal("Error building skill histogram", err)
	}

	skill, found := search.FindSkill(hist, name)
	if !found {
		return apperror.NotFound("Skill not found")
	}

	return lib.OK(c, fiber.Map{
		"skill":   skill.Skill,
		"count":   skill.Count,
		"related": search.RelatedSkills(hist, skill.Skill),
	})
}

// SearchSkills filters the histogram by substring.
func (sk *SkillController) SearchSkills(c *fiber.Ctx) error {
	q, err := url.PathUnescape(c.Params("q"))
	if err != nil || q == "" {
		return apperror.BadRequest("Search query is required")
	}

	hist, err := sk.histogram(c.Context())
	if err != nil {
		return apperror.Internal("Error building skill histogram", err)
	}

	return lib.OK(c, search.FilterHistogram(hist, q))
}

// Categories serves the static category buckets over the live vocabulary.
func (sk *SkillController) Categories(c *fiber.Ctx) error {
	hist, err := sk.histogram(c.Context())
	if err != nil {
		return apperror.Internal("Error building skill histogram", err)
	}

	return lib.OK(c, search.CategoryBuckets(hist))
}
