package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/models"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// PostgresStorage is the relational backend. It satisfies the same contract
// as MemoryStorage; id monotonicity comes from BIGSERIAL sequences, which
// never hand out a value twice.
type PostgresStorage struct {
	pool         *pgxpool.Pool
	projects     *pgProjectStore
	experiences  *pgExperienceStore
	contacts     *pgContactStore
	testimonials *pgTestimonialStore
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{
		pool:         pool,
		projects:     &pgProjectStore{pool: pool},
		experiences:  &pgExperienceStore{pool: pool},
		contacts:     &pgContactStore{pool: pool},
		testimonials: &pgTestimonialStore{pool: pool},
	}
}

func (s *PostgresStorage) Projects() ProjectStore         { return s.projects }
func (s *PostgresStorage) Experiences() ExperienceStore   { return s.experiences }
func (s *PostgresStorage) Contacts() ContactStore         { return s.contacts }
func (s *PostgresStorage) Testimonials() TestimonialStore { return s.testimonials }

func (s *PostgresStorage) Close() {
	s.pool.Close()
}

// Projects

type pgProjectStore struct {
	pool *pgxpool.Pool
}

const projectColumns = `id, title, description, image, technologies, github_url, live_url, featured, category, created_at`

func scanProject(row interface{ Scan(dest ...any) error }) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Image,
		&p.Technologies,
		&p.GithubURL,
		&p.LiveURL,
		&p.Featured,
		&p.Category,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *pgProjectStore) list(ctx context.Context, query string, args ...any) ([]models.Project, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *pgProjectStore) List(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY featured DESC, id ASC`
	return s.list(ctx, query)
}

func (s *pgProjectStore) ListFeatured(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE featured = 1 ORDER BY id ASC`
	return s.list(ctx, query)
}

func (s *pgProjectStore) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *pgProjectStore) Create(ctx context.Context, in models.ProjectInsert) (*models.Project, error) {
	p := projectFromInsert(in)
	p.CreatedAt = now()

	query := `
		INSERT INTO projects (title, description, image, technologies, github_url, live_url, featured, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := s.pool.QueryRow(ctx, query,
		p.Title,
		p.Description,
		p.Image,
		p.Technologies,
		p.GithubURL,
		p.LiveURL,
		p.Featured,
		p.Category,
		p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *pgProjectStore) Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	mergeProject(existing, patch)

	query := `
		UPDATE projects SET
			title = $2, description = $3, image = $4, technologies = $5,
			github_url = $6, live_url = $7, featured = $8, category = $9
		WHERE id = $1
	`
	_, err = s.pool.Exec(ctx, query,
		id,
		existing.Title,
		existing.Description,
		existing.Image,
		existing.Technologies,
		existing.GithubURL,
		existing.LiveURL,
		existing.Featured,
		existing.Category,
	)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *pgProjectStore) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// Experiences

type pgExperienceStore struct {
	pool *pgxpool.Pool
}

const experienceColumns = `id, title, company, description, technologies, start_date, end_date, current, created_at`

func scanExperience(row interface{ Scan(dest ...any) error }) (*models.Experience, error) {
	var e models.Experience
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Company,
		&e.Description,
		&e.Technologies,
		&e.StartDate,
		&e.EndDate,
		&e.Current,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *pgExperienceStore) List(ctx context.Context) ([]models.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY current DESC, start_date DESC, id ASC`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []models.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, *e)
	}
	return experiences, rows.Err()
}

func (s *pgExperienceStore) GetByID(ctx context.Context, id int64) (*models.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	e, err := scanExperience(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (s *pgExperienceStore) Create(ctx context.Context, in models.ExperienceInsert) (*models.Experience, error) {
	e := experienceFromInsert(in)
	e.CreatedAt = now()

	query := `
		INSERT INTO experiences (title, company, description, technologies, start_date, end_date, current, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := s.pool.QueryRow(ctx, query,
		e.Title,
		e.Company,
		e.Description,
		e.Technologies,
		e.StartDate,
		e.EndDate,
		e.Current,
		e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *pgExperienceStore) Update(ctx context.Context, id int64, patch models.ExperiencePatch) (*models.Experience, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	mergeExperience(existing, patch)

	query := `
		UPDATE experiences SET
			title = $2, company = $3, description = $4, technologies = $5,
			start_date = $6, end_date = $7, current = $8
		WHERE id = $1
	`
	_, err = s.pool.Exec(ctx, query,
		id,
		existing.Title,
		existing.Company,
		existing.Description,
		existing.Technologies,
		existing.StartDate,
		existing.EndDate,
		existing.Current,
	)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *pgExperienceStore) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// Contacts

type pgContactStore struct {
	pool *pgxpool.Pool
}

const contactColumns = `id, first_name, last_name, email, project_type, budget_range, message, created_at`

func scanContact(row interface{ Scan(dest ...any) error }) (*models.Contact, error) {
	var c models.Contact
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.ProjectType,
		&c.BudgetRange,
		&c.Message,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *pgContactStore) List(ctx context.Context) ([]models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC, id DESC`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

func (s *pgContactStore) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	c, err := scanContact(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *pgContactStore) Create(ctx context.Context, in models.ContactInsert) (*models.Contact, error) {
	c := contactFromInsert(in)
	c.CreatedAt = now()

	query := `
		INSERT INTO contacts (first_name, last_name, email, project_type, budget_range, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.pool.QueryRow(ctx, query,
		c.FirstName,
		c.LastName,
		c.Email,
		c.ProjectType,
		c.BudgetRange,
		c.Message,
		c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *pgContactStore) Update(ctx context.Context, id int64, patch models.ContactPatch) (*models.Contact, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	mergeContact(existing, patch)

	query := `
		UPDATE contacts SET
			first_name = $2, last_name = $3, email = $4,
			project_type = $5, budget_range = $6, message = $7
		WHERE id = $1
	`
	_, err = s.pool.Exec(ctx, query,
		id,
		existing.FirstName,
		existing.LastName,
		existing.Email,
		existing.ProjectType,
		existing.BudgetRange,
		existing.Message,
	)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *pgContactStore) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// Testimonials

type pgTestimonialStore struct {
	pool *pgxpool.Pool
}

const testimonialColumns = `id, name, title, company, content, avatar, facebook_id, rating, created_at`

func scanTestimonial(row interface{ Scan(dest ...any) error }) (*models.Testimonial, error) {
	var t models.Testimonial
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Title,
		&t.Company,
		&t.Content,
		&t.Avatar,
		&t.FacebookID,
		&t.Rating,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *pgTestimonialStore) List(ctx context.Context) ([]models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC, id DESC`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := []models.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, *t)
	}
	return testimonials, rows.Err()
}

func (s *pgTestimonialStore) GetByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`
	t, err := scanTestimonial(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (s *pgTestimonialStore) Create(ctx context.Context, in models.TestimonialInsert) (*models.Testimonial, error) {
	t := testimonialFromInsert(in)
	t.CreatedAt = now()

	query := `
		INSERT INTO testimonials (name, title, company, content, avatar, facebook_id, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := s.pool.QueryRow(ctx, query,
		t.Name,
		t.Title,
		t.Company,
		t.Content,
		t.Avatar,
		t.FacebookID,
		t.Rating,
		t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *pgTestimonialStore) Update(ctx context.Context, id int64, patch models.TestimonialPatch) (*models.Testimonial, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	mergeTestimonial(existing, patch)

	query := `
		UPDATE testimonials SET
			name = $2, title = $3, company = $4, content = $5,
			avatar = $6, facebook_id = $7, rating = $8
		WHERE id = $1
	`
	_, err = s.pool.Exec(ctx, query,
		id,
		existing.Name,
		existing.Title,
		existing.Company,
		existing.Content,
		existing.Avatar,
		existing.FacebookID,
		existing.Rating,
	)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *pgTestimonialStore) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
