package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/Backend-Dev-Folio/src/apperror"
	"github.com/devfolio/Backend-Dev-Folio/src/cache"
	"github.com/devfolio/Backend-Dev-Folio/src/lib"
	"github.com/devfolio/Backend-Dev-Folio/src/models"
	"github.com/devfolio/Backend-Dev-Folio/src/search"
)

type SearchController struct {
	profiles *mongo.Collection
	cache    *cache.Redis
}

func NewSearchController(db *mongo.Database, redis *cache.Redis) *SearchController {
	return &SearchController{
		profiles: db.Collection("profiles"),
		cache:    redis,
	}
}

// profileSummary is the list-view projection of a profile: private fields
// stripped, embedded projects reduced to a short public preview.
type profileSummary struct {
	UserId    string           `json:"userId"`
	Name      string           `json:"name"`
	Bio       string           `json:"bio"`
	Location  string           `json:"location"`
	Education string           `json:"education"`
	AvatarURL string           `json:"avatarUrl"`
	Skills    []string         `json:"skills"`
	Projects  []models.Project `json:"projects"`
}

const projectPreviewLimit = 3

func summarize(p models.Profile) profileSummary {
	preview := p.PublicProjects()
	if len(preview) > projectPreviewLimit {
		preview = preview[:projectPreviewLimit]
	}
	return profileSummary{
		UserId:    p.UserId.Hex(),
		Name:      p.Name,
		Bio:       p.Bio,
		Location:  p.Location,
		Education: p.Education,
		AvatarURL: p.AvatarURL,
		Skills:    p.Skills,
		Projects:  preview,
	}
}

// projectResult is one flattened project hit with its owner attached.
type projectResult struct {
	models.Project
	Owner struct {
		UserId    string `json:"userId"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatarUrl"`
	} `json:"owner"`
}

func flattenProjects(profiles []models.Profile, q string) []projectResult {
	results := make([]projectResult, 0)
	for _, p := range profiles {
		for _, project := range search.MatchingPublicProjects(p, q) {
			r := projectResult{Project: project}
			r.Owner.UserId = p.UserId.Hex()
			r.Owner.Name = p.Name
			r.Owner.AvatarURL = p.AvatarURL
			results = append(results, r)
		}
	}
	return results
}

// Search is the unified endpoint; type selects profiles, projects, skills or
// all. A blank query is rejected here (unlike suggestions, which return an
// empty list).
func (sc *SearchController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return apperror.BadRequest("Search query is required")
	}

	searchType := c.Query("type", "all")
	page, limit := lib.ParsePageLimit(c, 10, 50)

	switch searchType {
	case "profiles":
		return sc.searchProfiles(c, q, page, limit)
	case "projects":
		return sc.searchProjects(c, q, page, limit)
	case "skills":
		return sc.searchSkills(c, q, page, limit)
	case "all":
		return sc.searchAll(c, q, limit)
	default:
		return apperror.BadRequest("type must be one of all, profiles, projects, skills")
	}
}

func (sc *SearchController) searchProfiles(c *fiber.Ctx, q string, page, limit int) error {
	filter := search.ProfileTextFilter(q)

	total, err := sc.profiles.CountDocuments(c.Context(), filter)
	if err != nil {
		return apperror.Internal("Error counting profiles", err)
	}

	pagination := lib.NewPagination(total, page, limit)

	docs, err := findProfiles(c.Context(), sc.profiles, filter, pagination.Offset(), limit)
	if err != nil {
		return apperror.Internal("Error searching profiles", err)
	}

	summaries := make([]profileSummary, 0, len(docs))
	for _, p := range docs {
		summaries = append(summaries, summarize(p))
	}

	return lib.OKList(c, summaries, pagination)
}

func (sc *SearchController) searchProjects(c *fiber.Ctx, q string, page, limit int) error {
	// Projects are embedded, so the store narrows to profiles containing a
	// hit and the matching projects are flattened and paginated here.
	docs, err := findProfiles(c.Context(), sc.profiles, search.ProjectTextFilter(q), 0, 0)
	if err != nil {
		return apperror.Internal("Error searching projects", err)
	}

	results := flattenProjects(docs, q)
	pagination := lib.NewPagination(int64(len(results)), page, limit)
	start, end := lib.PageSlice(len(results), page, limit)

	return lib.OKList(c, results[start:end], pagination)
}

func (sc *SearchController) searchSkills(c *fiber.Ctx, q string, page, limit int) error {
	docs, err := loadPublicProfiles(c.Context(), sc.profiles)
	if err != nil {
		return apperror.Internal("Error loading profiles", err)
	}

	matched := search.FilterHistogram(search.SkillHistogram(docs), q)
	pagination := lib.NewPagination(int64(len(matched)), page, limit)
	start, end := lib.PageSlice(len(matched), page, limit)

	return lib.OKList(c, matched[start:end], pagination)
}

func (sc *SearchController) searchAll(c *fiber.Ctx, q string, limit int) error {
	profileFilter := search.ProfileTextFilter(q)
	profileDocs, err := findProfiles(c.Context(), sc.profiles, profileFilter, 0, limit)
	if err != nil {
		return apperror.Internal("Error searching profiles", err)
	}
	summaries := make([]profileSummary, 0, len(profileDocs))
	for _, p := range profileDocs {
		summaries = append(summaries, summarize(p))
	}

	projectDocs, err := findProfiles(c.Context(), sc.profiles, search.ProjectTextFilter(q), 0, 0)
	if err != nil {
		return apperror.Internal("Error searching projects", err)
	}
	projects := flattenProjects(projectDocs, q)
	if len(projects) > limit {
		projects = projects[:limit]
	}

	publicDocs, err := loadPublicProfiles(c.Context(), sc.profiles)
	if err != nil {
		return apperror.Internal("Error loading profiles", err)
	}
	skills := search.FilterHistogram(search.SkillHistogram(publicDocs), q)
	if len(skills) > limit {
		skills = skills[:limit]
	}

	return lib.OK(c, fiber.Map{
		"profiles": summaries,
		"projects": projects,
		"skills":   skills,
	})
}

// Suggestions answers typeahead prefixes. A blank query yields an empty list
// with a 200, by design asymmetric with Search.
func (sc *SearchController) Suggestions(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	_, limit := lib.ParsePageLimit(c, 5, 20)

	if q == "" {
		return lib.OK(c, []search.Suggestion{})
	}

	docs, err := loadPublicProfiles(c.Context(), sc.profiles)
	if err != nil {
		return apperror.Internal("Error loading profiles", err)
	}

	return lib.OK(c, search.Suggestions(docs, q, limit))
}

// Advanced ANDs the structured filters; at least one must be present.
func (sc *SearchController) Advanced(c *fiber.Ctx) error {
	params := search.AdvancedParams{
		Skills:       c.Query("skills"),
		Location:     c.Query("location"),
		Education:    c.Query("education"),
		Technologies: c.Query("technologies"),
	}
	q := strings.TrimSpace(c.Query("q"))

	if params.Empty() && q == "" {
		return apperror.BadRequest("At least one search filter is required")
	}

	filter := search.AdvancedFilter(params)
	if q != "" {
		filter["$or"] = search.ProfileTextFilter(q)["$or"]
	}

	page, limit := lib.ParsePageLimit(c, 20, 100)

	total, err := sc.profiles.CountDocuments(c.Context(), filter)
	if err != nil {
		return apperror.Internal("Error counting profiles", err)
	}

	pagination := lib.NewPagination(total, page, limit)

	docs, err := findProfiles(c.Context(), sc.profiles, filter, pagination.Offset(), limit)
	if err != nil {
		return apperror.Internal("Error searching profiles", err)
	}

	summaries := make([]profileSummary, 0, len(docs))
	for _, p := range docs {
		summaries = append(summaries, summarize(p))
	}

	return lib.OKList(c, summaries, pagination)
}

// TrendingSkills serves the ranked top-N, cached until the next profile
// write.
func (sc *SearchController) TrendingSkills(c *fiber.Ctx) error {
	_, limit := lib.ParsePageLimit(c, 10, 50)

	cacheKey := "agg:trending:" + strconv.Itoa(limit)
	var cached []search.RankedSkill
	if hit, _ := sc.cache.GetJSON(c.Context(), cacheKey, &cached); hit {
		return lib.OK(c, cached)
	}

	docs, err := loadPublicProfiles(c.Context(), sc.profiles)
	if err != nil {
		return apperror.Internal("Error loading profiles", err)
	}

	trending := search.TopSkills(search.SkillHistogram(docs), limit)
	_ = sc.cache.SetJSON(c.Context(), cacheKey, trending, 0)

	return lib.OK(c, trending)
}
