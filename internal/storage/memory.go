package storage

import (
	"context"
	"sort"
	"sync"

	"portfolio-backend/internal/models"
)

// MemoryStorage keeps all entities in process memory. It is safe for
// concurrent use and is the default backend for development.
type MemoryStorage struct {
	projects     *memProjectStore
	experiences  *memExperienceStore
	contacts     *memContactStore
	testimonials *memTestimonialStore
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		projects:     &memProjectStore{items: make(map[int64]models.Project), nextID: 1},
		experiences:  &memExperienceStore{items: make(map[int64]models.Experience), nextID: 1},
		contacts:     &memContactStore{items: make(map[int64]models.Contact), nextID: 1},
		testimonials: &memTestimonialStore{items: make(map[int64]models.Testimonial), nextID: 1},
	}
}

func (s *MemoryStorage) Projects() ProjectStore         { return s.projects }
func (s *MemoryStorage) Experiences() ExperienceStore   { return s.experiences }
func (s *MemoryStorage) Contacts() ContactStore         { return s.contacts }
func (s *MemoryStorage) Testimonials() TestimonialStore { return s.testimonials }
func (s *MemoryStorage) Close()                         {}

// Projects

type memProjectStore struct {
	mu     sync.RWMutex
	items  map[int64]models.Project
	nextID int64
}

func cloneProject(p models.Project) models.Project {
	cp := p
	cp.Technologies = append([]string(nil), p.Technologies...)
	if p.GithubURL != nil {
		v := *p.GithubURL
		cp.GithubURL = &v
	}
	if p.LiveURL != nil {
		v := *p.LiveURL
		cp.LiveURL = &v
	}
	return cp
}

func (s *memProjectStore) List(ctx context.Context) ([]models.Project, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, cloneProject(p))
	}
	// Featured first, insertion order otherwise.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured > out[j].Featured
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *memProjectStore) ListFeatured(ctx context.Context) ([]models.Project, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, 0)
	for _, p := range s.items {
		if p.Featured == 1 {
			out = append(out, cloneProject(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memProjectStore) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := cloneProject(p)
	return &cp, nil
}

func (s *memProjectStore) Create(ctx context.Context, in models.ProjectInsert) (*models.Project, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	p := projectFromInsert(in)
	p.ID = s.nextID
	s.nextID++
	p.CreatedAt = now()
	s.items[p.ID] = cloneProject(p)
	return &p, nil
}

func (s *memProjectStore) Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	p = cloneProject(p)
	mergeProject(&p, patch)
	s.items[id] = cloneProject(p)
	return &p, nil
}

func (s *memProjectStore) Delete(ctx context.Context, id int64) (bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// Experiences

type memExperienceStore struct {
	mu     sync.RWMutex
	items  map[int64]models.Experience
	nextID int64
}

func cloneExperience(e models.Experience) models.Experience {
	cp := e
	cp.Technologies = append([]string(nil), e.Technologies...)
	if e.EndDate != nil {
		v := *e.EndDate
		cp.EndDate = &v
	}
	return cp
}

func (s *memExperienceStore) List(ctx context.Context) ([]models.Experience, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Experience, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, cloneExperience(e))
	}
	// Ongoing first, then most recent start date. YYYY-MM sorts
	// lexicographically.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Current != out[j].Current {
			return out[i].Current > out[j].Current
		}
		if out[i].StartDate != out[j].StartDate {
			return out[i].StartDate > out[j].StartDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *memExperienceStore) GetByID(ctx context.Context, id int64) (*models.Experience, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := cloneExperience(e)
	return &cp, nil
}

func (s *memExperienceStore) Create(ctx context.Context, in models.ExperienceInsert) (*models.Experience, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	e := experienceFromInsert(in)
	e.ID = s.nextID
	s.nextID++
	e.CreatedAt = now()
	s.items[e.ID] = cloneExperience(e)
	return &e, nil
}

func (s *memExperienceStore) Update(ctx context.Context, id int64, patch models.ExperiencePatch) (*models.Experience, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	e = cloneExperience(e)
	mergeExperience(&e, patch)
	s.items[id] = cloneExperience(e)
	return &e, nil
}

func (s *memExperienceStore) Delete(ctx context.Context, id int64) (bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// Contacts

type memContactStore struct {
	mu     sync.RWMutex
	items  map[int64]models.Contact
	nextID int64
}

func cloneContact(c models.Contact) models.Contact {
	cp := c
	if c.ProjectType != nil {
		v := *c.ProjectType
		cp.ProjectType = &v
	}
	if c.BudgetRange != nil {
		v := *c.BudgetRange
		cp.BudgetRange = &v
	}
	return cp
}

func (s *memContactStore) List(ctx context.Context) ([]models.Contact, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Contact, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, cloneContact(c))
	}
	// Newest first; id breaks created_at ties.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memContactStore) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := cloneContact(c)
	return &cp, nil
}

func (s *memContactStore) Create(ctx context.Context, in models.ContactInsert) (*models.Contact, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	c := contactFromInsert(in)
	c.ID = s.nextID
	s.nextID++
	c.CreatedAt = now()
	s.items[c.ID] = cloneContact(c)
	return &c, nil
}

func (s *memContactStore) Update(ctx context.Context, id int64, patch models.ContactPatch) (*models.Contact, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	c = cloneContact(c)
	mergeContact(&c, patch)
	s.items[id] = cloneContact(c)
	return &c, nil
}

func (s *memContactStore) Delete(ctx context.Context, id int64) (bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// Testimonials

type memTestimonialStore struct {
	mu     sync.RWMutex
	items  map[int64]models.Testimonial
	nextID int64
}

func cloneTestimonial(t models.Testimonial) models.Testimonial {
	cp := t
	if t.Avatar != nil {
		v := *t.Avatar
		cp.Avatar = &v
	}
	if t.FacebookID != nil {
		v := *t.FacebookID
		cp.FacebookID = &v
	}
	return cp
}

func (s *memTestimonialStore) List(ctx context.Context) ([]models.Testimonial, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Testimonial, 0, len(s.items))
	for _, t := range s.items {
		out = append(out, cloneTestimonial(t))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memTestimonialStore) GetByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := cloneTestimonial(t)
	return &cp, nil
}

func (s *memTestimonialStore) Create(ctx context.Context, in models.TestimonialInsert) (*models.Testimonial, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	t := testimonialFromInsert(in)
	t.ID = s.nextID
	s.nextID++
	t.CreatedAt = now()
	s.items[t.ID] = cloneTestimonial(t)
	return &t, nil
}

func (s *memTestimonialStore) Update(ctx context.Context, id int64, patch models.TestimonialPatch) (*models.Testimonial, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	t = cloneTestimonial(t)
	mergeTestimonial(&t, patch)
	s.items[id] = cloneTestimonial(t)
	return &t, nil
}

func (s *memTestimonialStore) Delete(ctx context.Context, id int64) (bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}
