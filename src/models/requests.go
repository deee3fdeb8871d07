package models

import (
	"github.com/devfolio/Backend-Dev-Folio/src/validation"
)

// Request structs carry one endpoint's input each; Validate returns the
// field-level violations for the 400 envelope.

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required(v, "name", r.Name)
	validation.Required(v, "email", r.Email)
	validation.Required(v, "password", r.Password)
	if !v.Empty() {
		return v
	}
	validation.Email(v, "email", r.Email)
	validation.MinLen(v, "password", r.Password, 6)
	validation.MaxLen(v, "name", r.Name, 100)
	return v
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required(v, "email", r.Email)
	validation.Required(v, "password", r.Password)
	return v
}

// UpdateProfileRequest uses pointers so absent fields are left untouched,
// mirroring the allow-list update the profile endpoint performs.
type UpdateProfileRequest struct {
	Name      *string      `json:"name"`
	Bio       *string      `json:"bio"`
	Education *string      `json:"education"`
	Location  *string      `json:"location"`
	Skills    *[]string    `json:"skills"`
	AvatarURL *string      `json:"avatarUrl"`
	IsPublic  *bool        `json:"isPublic"`
	Social    *SocialLinks `json:"socialLinks"`
}

func (r UpdateProfileRequest) Validate() validation.Violations {
	v := validation.Violations{}
	if r.Name != nil {
		validation.Required(v, "name", *r.Name)
		validation.MaxLen(v, "name", *r.Name, 100)
	}
	if r.Bio != nil {
		validation.MaxLen(v, "bio", *r.Bio, 500)
	}
	if r.Education != nil {
		validation.MaxLen(v, "education", *r.Education, 200)
	}
	if r.Location != nil {
		validation.MaxLen(v, "location", *r.Location, 100)
	}
	if r.Skills != nil {
		validation.EachMaxLen(v, "skills", *r.Skills, 50)
	}
	if r.AvatarURL != nil {
		validation.HTTPURL(v, "avatarUrl", *r.AvatarURL)
	}
	if r.Social != nil {
		validation.HTTPURL(v, "github", r.Social.GitHub)
		validation.HTTPURL(v, "linkedin", r.Social.LinkedIn)
		validation.HTTPURL(v, "portfolio", r.Social.Portfolio)
		validation.HTTPURL(v, "website", r.Social.Website)
	}
	return v
}

// Apply writes the provided fields onto the profile.
func (r UpdateProfileRequest) Apply(p *Profile) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Bio != nil {
		p.Bio = *r.Bio
	}
	if r.Education != nil {
		p.Education = *r.Education
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.Skills != nil {
		p.Skills = *r.Skills
	}
	if r.AvatarURL != nil {
		p.AvatarURL = *r.AvatarURL
	}
	if r.IsPublic != nil {
		p.IsPublic = *r.IsPublic
	}
	if r.Social != nil {
		p.Social = *r.Social
	}
}

type SkillRequest struct {
	Skill string `json:"skill"`
}

func (r SkillRequest) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required(v, "skill", r.Skill)
	validation.MaxLen(v, "skill", r.Skill, 50)
	return v
}

type ProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	URLs         []string `json:"urls"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl"`
	IsPublic     *bool    `json:"isPublic"`
}

func (r ProjectRequest) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required(v, "title", r.Title)
	validation.MaxLen(v, "title", r.Title, 100)
	validation.MaxLen(v, "description", r.Description, 1000)
	validation.EachMaxLen(v, "technologies", r.Technologies, 50)
	for _, u := range r.URLs {
		validation.HTTPURL(v, "urls", u)
	}
	validation.HTTPURL(v, "imageUrl", r.ImageURL)
	return v
}

// ToProject builds the embedded entity; the id is assigned by the caller.
func (r ProjectRequest) ToProject() Project {
	isPublic := true
	if r.IsPublic != nil {
		isPublic = *r.IsPublic
	}
	return Project{
		Title:        r.Title,
		Description:  r.Description,
		URLs:         r.URLs,
		Technologies: r.Technologies,
		ImageURL:     r.ImageURL,
		IsPublic:     isPublic,
	}
}

type WorkExperienceRequest struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	IsCurrent   bool    `json:"isCurrent"`
	Location    string  `json:"location"`
}

func (r WorkExperienceRequest) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required(v, "company", r.Company)
	validation.Required(v, "position", r.Position)
	validation.Required(v, "startDate", r.StartDate)
	validation.MaxLen(v, "description", r.Description, 500)
	return v
}
