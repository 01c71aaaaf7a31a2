package storage

import (
	"context"
	"time"

	"portfolio-backend/internal/models"
)

// Storage is the port every backend implements. It is the sole owner of
// entity state and identifier assignment. Callers validate payloads before
// they get here; the port only fills defaults and enforces id uniqueness.
type Storage interface {
	Projects() ProjectStore
	Experiences() ExperienceStore
	Contacts() ContactStore
	Testimonials() TestimonialStore
	Close()
}

// ProjectStore lists projects featured-first. GetByID and Update report
// absence as (nil, nil); Delete reports it as (false, nil).
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	ListFeatured(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, in models.ProjectInsert) (*models.Project, error)
	Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ExperienceStore lists ongoing positions first, then by start date
// descending.
type ExperienceStore interface {
	List(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id int64) (*models.Experience, error)
	Create(ctx context.Context, in models.ExperienceInsert) (*models.Experience, error)
	Update(ctx context.Context, id int64, patch models.ExperiencePatch) (*models.Experience, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ContactStore lists newest submissions first.
type ContactStore interface {
	List(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id int64) (*models.Contact, error)
	Create(ctx context.Context, in models.ContactInsert) (*models.Contact, error)
	Update(ctx context.Context, id int64, patch models.ContactPatch) (*models.Contact, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TestimonialStore lists newest entries first.
type TestimonialStore interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id int64) (*models.Testimonial, error)
	Create(ctx context.Context, in models.TestimonialInsert) (*models.Testimonial, error)
	Update(ctx context.Context, id int64, patch models.TestimonialPatch) (*models.Testimonial, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// now truncates to microseconds so timestamps survive a postgres round trip
// unchanged and both backends report identical precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func flag01(v int) int {
	if v != 0 {
		return 1
	}
	return 0
}

// Default-value policy lives here, and only here: validation decides
// presence and shape, the functions below decide what omitted optionals
// become. Both backends build records through them.

func projectFromInsert(in models.ProjectInsert) models.Project {
	p := models.Project{
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		Technologies: in.Technologies,
		GithubURL:    in.GithubURL,
		LiveURL:      in.LiveURL,
		Featured:     flag01(in.Featured),
		Category:     in.Category,
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Category == "" {
		p.Category = "full-stack"
	}
	return p
}

func experienceFromInsert(in models.ExperienceInsert) models.Experience {
	e := models.Experience{
		Title:        in.Title,
		Company:      in.Company,
		Description:  in.Description,
		Technologies: in.Technologies,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Current:      flag01(in.Current),
	}
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
	return e
}

func contactFromInsert(in models.ContactInsert) models.Contact {
	return models.Contact{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		ProjectType: in.ProjectType,
		BudgetRange: in.BudgetRange,
		Message:     in.Message,
	}
}

func testimonialFromInsert(in models.TestimonialInsert) models.Testimonial {
	t := models.Testimonial{
		Name:       in.Name,
		Title:      in.Title,
		Company:    in.Company,
		Content:    in.Content,
		Avatar:     in.Avatar,
		FacebookID: in.FacebookID,
		Rating:     5,
	}
	if in.Rating != nil && *in.Rating != 0 {
		t.Rating = *in.Rating
	}
	return t
}

// Patch merging is shared between backends so partial-update semantics can
// never drift. ID and CreatedAt are immutable.

func mergeProject(p *models.Project, patch models.ProjectPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Technologies != nil {
		p.Technologies = patch.Technologies
	}
	if patch.GithubURL != nil {
		p.GithubURL = patch.GithubURL
	}
	if patch.LiveURL != nil {
		p.LiveURL = patch.LiveURL
	}
	if patch.Featured != nil {
		p.Featured = flag01(*patch.Featured)
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
}

func mergeExperience(e *models.Experience, patch models.ExperiencePatch) {
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Company != nil {
		e.Company = *patch.Company
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Technologies != nil {
		e.Technologies = patch.Technologies
	}
	if patch.StartDate != nil {
		e.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = patch.EndDate
	}
	if patch.Current != nil {
		e.Current = flag01(*patch.Current)
	}
}

func mergeContact(c *models.Contact, patch models.ContactPatch) {
	if patch.FirstName != nil {
		c.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		c.LastName = *patch.LastName
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.ProjectType != nil {
		c.ProjectType = patch.ProjectType
	}
	if patch.BudgetRange != nil {
		c.BudgetRange = patch.BudgetRange
	}
	if patch.Message != nil {
		c.Message = *patch.Message
	}
}

func mergeTestimonial(t *models.Testimonial, patch models.TestimonialPatch) {
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Company != nil {
		t.Company = *patch.Company
	}
	if patch.Content != nil {
		t.Content = *patch.Content
	}
	if patch.Avatar != nil {
		t.Avatar = patch.Avatar
	}
	if patch.FacebookID != nil {
		t.FacebookID = patch.FacebookID
	}
	if patch.Rating != nil {
		t.Rating = *patch.Rating
	}
}
