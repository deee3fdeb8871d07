package controllers

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/Backend-Dev-Folio/src/apperror"
	"github.com/devfolio/Backend-Dev-Folio/src/cache"
	"github.com/devfolio/Backend-Dev-Folio/src/lib"
	"github.com/devfolio/Backend-Dev-Folio/src/models"
)

type ProfileController struct {
	profiles  *mongo.Collection
	cache     *cache.Redis
	uploadDir string
}

func NewProfileController(db *mongo.Database, redis *cache.Redis, uploadDir string) *ProfileController {
	return &ProfileController{
		profiles:  db.Collection("profiles"),
		cache:     redis,
		uploadDir: uploadDir,
	}
}

// loadOwn fetches the caller's profile document.
func (pc *ProfileController) loadOwn(c *fiber.Ctx) (*models.Profile, error) {
	user := currentUser(c)

	var profile models.Profile
	err := pc.profiles.FindOne(c.Context(), bson.M{"userId": user.Id}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal("Error loading profile", err)
	}
	return &profile, nil
}

// persist writes the whole mutated aggregate back. Atomicity is scoped to the
// one Profile document; concurrent writers are last-write-wins.
func (pc *ProfileController) persist(c *fiber.Ctx, profile *models.Profile) error {
	profile.UpdatedAt = time.Now()

	_, err := pc.profiles.ReplaceOne(c.Context(), bson.M{"_id": profile.Id}, profile)
	if err != nil {
		return apperror.Internal("Error saving profile", err)
	}

	// Aggregations are derived from profile data, drop their cached views.
	_ = pc.cache.DeleteByPattern(c.Context(), "agg:*")

	return nil
}

// GetOwn returns the caller's own profile, private projects included.
func (pc *ProfileController) GetOwn(c *fiber.Ctx) error {
	profile, err := pc.loadOwn(c)
	if err != nil {
		return err
	}
	return lib.OK(c, profile)
}

// Update applies the allow-listed profile fields sent in the body.
func (pc *ProfileController) Update(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}

	if v := req.Validate(); !v.Empty() {
		return apperror.Validation("Validation failed", v)
	}

	profile, err := pc.loadOwn(c)
	if err != nil {
		return err
	}

	req.Apply(profile)

	if err := pc.persist(c, profile); err != nil {
		return err
	}
	return lib.OKMessage(c, "Profile updated successfully", profile)
}

// AddSkill appends a skill; adding an already present skill (exact match) is
// a no-op and still answers 200.
func (pc *ProfileController) AddSkill(c *fiber.Ctx) error {
	var req models.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}

	if v := req.Validate(); !v.Empty() {
		return apperror.Validation("Validation failed", v)
	}

	profile, err := pc.loadOwn(c)
	if err != nil {
		return err
	}

	if !profile.AddSkill(req.Skill) {
		return lib.OKMessage(c, "Skill already present", profile.Skills)
	}

	if err := pc.persist(c, profile); err != nil {
		return err
	}
	return lib.OKMessage(c, "Skill added successfully", profile.Skills)
}

// RemoveSkill removes by exact string match.
func (pc *ProfileController) RemoveSkill(c *fiber.Ctx) error {
	skill, err := url.PathUnescape(c.Params("skill"))
	if err != nil || skill == "" {
		return apperror.BadRequest("Skill is required")
	}

	profile, err2 := pc.loadOwn(c)
	if err2 != nil {
		return err2
	}

	if !profile.RemoveSkill(skill) {
		return apperror.NotFound("Skill not found")
	}

	if err := pc.persist(c, profile); err != nil {
		return err
	}
	return lib.OKMessage(c, "Skill removed successfully", profile.Skills)
}

// AddProject appends an embedded project with a fresh id.
func (pc *ProfileController) AddProject(c *fiber.Ctx) error {
	var req models.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}

	if v := req.Validate(); !v.Empty() {
		return apperror.Validation("Validation failed", v)
	}

	profile, err := pc.loadOwn(c)
	if err != nil {
		return err
	}

	project := req.ToProject()
	project.Id = uuid.NewString()
	profile.AddProject(project)

	if err := pc.persist(c, profile); err != nil {
		return err
	}
	return lib.Created(c, "Project added successfully", project)
}

// UpdateProject replaces the embedded project with the given id.
func (pc *ProfileController) UpdateProject(c *fiber.Ctx) error {
	projectID := c.Params("id")

	var req models.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}

	if v := req.Validate(); !v.Empty() {
		return apperror.Validation("Validation failed", v)
	}

	profile, err := pc.loadOwn(c)
	if err != nil {
		return err
	}

	if !profile.UpdateProject(projectID, req.ToProject()) {
		return apperror.NotFound("Project not found")
	}

	if err := pc.persist(c, profile); err != nil {
		return err
	}
	return lib.OKMessage(c, "Project updated successfully", profile.Projects)
}

// RemoveProject deletes the embedded project with the given id.
func (pc *ProfileController) RemoveProject(c *fiber.Ctx) error {
	projectID := c.Params("id")

	profile, err := pc.loadOwn(c)
	if err != nil {
		return err
	}

	if !profile.RemoveProject(projectID) {
		return apperror.NotFound("Project not found")
	}

	if err := pc.persist(c, profile); err != nil {
		return err
	}
	return lib.OKMessage(c, "Project removed successfully", profile.Projects)
}

// AddWork appends a work-history entry.
func (pc *ProfileController) AddWork(c *fiber.Ctx) error {
	var req models.WorkExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.BadRequest("Invalid request body")
	}

	if v := req.Validate(); !v.Empty() {
		return apperror.Validation("Validation failed", v)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return apperror.BadRequest("startDate must be YYYY-MM-DD")
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return apperror.BadRequest("endDate must be YYYY-MM-DD")
		}
		endDate = &parsed
	}

	profile, err2 := pc.loadOwn(c)
	if err2 != nil {
		return err2
	}

	profile.AddExperience(models.WorkExperience{
		Id:          uuid.NewString(),
		Company:     req.Company,
		Position:    req.Position,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		IsCurrent:   req.IsCurrent,
		Location:    req.Location,
	})

	if err := pc.persist(c, profile); err != nil {
		return err
	}
	return lib.Created(c, "Work experience added successfully", profile.Experience)
}

// UploadAvatar stores the uploaded image on disk and records its URL. When
// anything fails after the file was written the partial file is removed
// best-effort before the error is returned.
func (pc *ProfileController) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return apperror.BadRequest("avatar file is required")
	}

	profile, err2 := pc.loadOwn(c)
	if err2 != nil {
		return err2
	}

	if err := os.MkdirAll(pc.uploadDir, 0o755); err != nil {
		return apperror.Internal("Error preparing upload directory", err)
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	dest := filepath.Join(pc.uploadDir, name)

	if err := c.SaveFile(file, dest); err != nil {
		_ = os.Remove(dest)
		return apperror.Internal("Error saving avatar", err)
	}

	profile.AvatarURL = "/uploads/" + name
	if err := pc.persist(c, profile); err != nil {
		_ = os.Remove(dest)
		return err
	}

	return lib.OKMessage(c, "Avatar uploaded successfully", fiber.Map{
		"avatarUrl": profile.AvatarURL,
	})
}

// GetPublic serves a third-party view of a profile. A private profile is
// reported exactly like a missing one, and private projects are stripped.
func (pc *ProfileController) GetPublic(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return apperror.BadRequest("Invalid user id")
	}

	var profile models.Profile
	err = pc.profiles.FindOne(c.Context(), bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal("Error loading profile", err)
	}
	if !profile.IsPublic {
		return apperror.NotFound("Profile not found")
	}

	return lib.OK(c, profile.PublicView())
}
