package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the public-facing aggregate for one user: bio, skills, embedded
// projects and work history. Email is copied lowercase from the User at
// registration and is not re-synced afterwards.
type Profile struct {
	Id         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserId     primitive.ObjectID `json:"userId" bson:"userId"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Bio        string             `json:"bio" bson:"bio"`
	Education  string             `json:"education" bson:"education"`
	Location   string             `json:"location" bson:"location"`
	Skills     []string           `json:"skills" bson:"skills"`
	AvatarURL  string             `json:"avatarUrl" bson:"avatarUrl"`
	IsPublic   bool               `json:"isPublic" bson:"isPublic"`
	Projects   []Project          `json:"projects" bson:"projects"`
	Experience []WorkExperience   `json:"experience" bson:"experience"`
	Social     SocialLinks        `json:"socialLinks" bson:"socialLinks"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Project lives inside its Profile document, identified by an id unique
// within the parent's list. Its visibility flag is independent of the
// parent's.
type Project struct {
	Id           string   `json:"id" bson:"id"`
	Title        string   `json:"title" bson:"title"`
	Description  string   `json:"description" bson:"description"`
	URLs         []string `json:"urls" bson:"urls"`
	Technologies []string `json:"technologies" bson:"technologies"`
	ImageURL     string   `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsPublic     bool     `json:"isPublic" bson:"isPublic"`
}

// WorkExperience has no visibility flag of its own, it is shown whenever the
// parent Profile is public.
type WorkExperience struct {
	Id          string     `json:"id" bson:"id"`
	Company     string     `json:"company" bson:"company"`
	Position    string     `json:"position" bson:"position"`
	Description string     `json:"description" bson:"description"`
	StartDate   time.Time  `json:"startDate" bson:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
	IsCurrent   bool       `json:"isCurrent" bson:"isCurrent"`
	Location    string     `json:"location,omitempty" bson:"location,omitempty"`
}

type SocialLinks struct {
	GitHub    string `json:"github" bson:"github"`
	LinkedIn  string `json:"linkedin" bson:"linkedin"`
	Portfolio string `json:"portfolio" bson:"portfolio"`
	Website   string `json:"website" bson:"website"`
}

// AddSkill appends the skill unless the exact string is already present.
// Returns false on the duplicate no-op.
func (p *Profile) AddSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return false
		}
	}
	p.Skills = append(p.Skills, skill)
	return true
}

// RemoveSkill removes by exact string match, reporting whether it was found.
func (p *Profile) RemoveSkill(skill string) bool {
	for i, s := range p.Skills {
		if s == skill {
			p.Skills = append(p.Skills[:i], p.Skills[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Profile) AddProject(project Project) {
	p.Projects = append(p.Projects, project)
}

// UpdateProject replaces the embedded project with the matching id, keeping
// the id itself stable. Returns false when the id is unknown.
func (p *Profile) UpdateProject(id string, updated Project) bool {
	for i := range p.Projects {
		if p.Projects[i].Id == id {
			updated.Id = id
			p.Projects[i] = updated
			return true
		}
	}
	return false
}

func (p *Profile) RemoveProject(id string) bool {
	for i := range p.Projects {
		if p.Projects[i].Id == id {
			p.Projects = append(p.Projects[:i], p.Projects[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Profile) AddExperience(exp WorkExperience) {
	p.Experience = append(p.Experience, exp)
}

// PublicProjects filters the embedded list down to projects a third party may
// see. The parent profile must itself be public for the result to be served.
func (p *Profile) PublicProjects() []Project {
	public := make([]Project, 0, len(p.Projects))
	for _, project := range p.Projects {
		if project.IsPublic {
			public = append(public, project)
		}
	}
	return public
}

// PublicView is the copy served to third-party callers, with non-public
// projects stripped.
func (p Profile) PublicView() Profile {
	p.Projects = p.PublicProjects()
	return p
}
