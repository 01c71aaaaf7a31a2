package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/models"
)

// runStorageContract exercises the full Storage port against whatever
// backend the factory produces. Both backends must pass it unchanged.
func runStorageContract(t *testing.T, newStore func(t *testing.T) Storage) {
	ctx := context.Background()

	validProject := func() models.ProjectInsert {
		return models.ProjectInsert{
			Title:        "X",
			Description:  "Y",
			Image:        "http://i/x.png",
			Technologies: []string{"React"},
			Category:     "frontend",
		}
	}

	t.Run("project create assigns id, createdAt and defaults", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Projects().Create(ctx, validProject())
		require.NoError(t, err)

		assert.Equal(t, int64(1), created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, 0, created.Featured)
		assert.Nil(t, created.GithubURL)
		assert.Nil(t, created.LiveURL)
		assert.Equal(t, "frontend", created.Category)
		assert.Equal(t, []string{"React"}, created.Technologies)
	})

	t.Run("project category defaults to full-stack", func(t *testing.T) {
		s := newStore(t)
		in := validProject()
		in.Category = ""
		created, err := s.Projects().Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "full-stack", created.Category)
	})

	t.Run("featured flag normalizes to 0 or 1", func(t *testing.T) {
		s := newStore(t)
		in := validProject()
		in.Featured = 7
		created, err := s.Projects().Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, 1, created.Featured)
	})

	t.Run("ids are strictly increasing and never reused", func(t *testing.T) {
		s := newStore(t)
		first, err := s.Projects().Create(ctx, validProject())
		require.NoError(t, err)
		second, err := s.Projects().Create(ctx, validProject())
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)

		deleted, err := s.Projects().Delete(ctx, second.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		third, err := s.Projects().Create(ctx, validProject())
		require.NoError(t, err)
		assert.Greater(t, third.ID, second.ID)
	})

	t.Run("concurrent creates never share an id", func(t *testing.T) {
		s := newStore(t)
		const n = 20
		ids := make(chan int64, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p, err := s.Projects().Create(ctx, validProject())
				assert.NoError(t, err)
				ids <- p.ID
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[int64]bool)
		for id := range ids {
			assert.False(t, seen[id], "id %d assigned twice", id)
			seen[id] = true
		}
		assert.Len(t, seen, n)
	})

	t.Run("getById round-trips the created record", func(t *testing.T) {
		s := newStore(t)
		in := validProject()
		in.GithubURL = strPtr("https://github.com/x/y")
		created, err := s.Projects().Create(ctx, in)
		require.NoError(t, err)

		got, err := s.Projects().GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Title, got.Title)
		assert.Equal(t, created.Description, got.Description)
		assert.Equal(t, created.Image, got.Image)
		assert.Equal(t, created.Technologies, got.Technologies)
		require.NotNil(t, got.GithubURL)
		assert.Equal(t, *created.GithubURL, *got.GithubURL)
		assert.Nil(t, got.LiveURL)
		assert.Equal(t, created.Featured, got.Featured)
		assert.Equal(t, created.Category, got.Category)
		assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("getById of an unknown id is not-found, not an error", func(t *testing.T) {
		s := newStore(t)
		got, err := s.Projects().GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update merges fields and preserves id and createdAt", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Projects().Create(ctx, validProject())
		require.NoError(t, err)

		updated, err := s.Projects().Update(ctx, created.ID, models.ProjectPatch{
			Title:    strPtr("Renamed"),
			Featured: intPtr(1),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, created.ID, updated.ID)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, 1, updated.Featured)
		// Untouched fields survive.
		assert.Equal(t, created.Description, updated.Description)
		assert.Equal(t, created.Technologies, updated.Technologies)

		got, err := s.Projects().GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Renamed", got.Title)
	})

	t.Run("update of an unknown id is not-found", func(t *testing.T) {
		s := newStore(t)
		updated, err := s.Projects().Update(ctx, 42, models.ProjectPatch{Title: strPtr("nope")})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Projects().Create(ctx, validProject())
		require.NoError(t, err)

		deleted, err := s.Projects().Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = s.Projects().Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		got, err := s.Projects().GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("listFeatured is exactly the featured subset", func(t *testing.T) {
		s := newStore(t)
		for _, featured := range []int{1, 0, 1, 0, 0} {
			in := validProject()
			in.Featured = featured
			_, err := s.Projects().Create(ctx, in)
			require.NoError(t, err)
		}

		all, err := s.Projects().List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 5)

		featured, err := s.Projects().ListFeatured(ctx)
		require.NoError(t, err)
		require.Len(t, featured, 2)
		for _, p := range featured {
			assert.Equal(t, 1, p.Featured)
		}
	})

	t.Run("projects list featured-first, insertion order otherwise", func(t *testing.T) {
		s := newStore(t)
		var ids []int64
		for _, featured := range []int{0, 1, 0, 1} {
			in := validProject()
			in.Featured = featured
			p, err := s.Projects().Create(ctx, in)
			require.NoError(t, err)
			ids = append(ids, p.ID)
		}

		all, err := s.Projects().List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, []int64{ids[1], ids[3], ids[0], ids[2]}, []int64{all[0].ID, all[1].ID, all[2].ID, all[3].ID})
	})

	t.Run("experiences order ongoing-first then start date descending", func(t *testing.T) {
		s := newStore(t)
		inserts := []models.ExperienceInsert{
			{Title: "B", Company: "c", Description: "d", Technologies: []string{}, StartDate: "2023-06"},
			{Title: "A", Company: "c", Description: "d", Technologies: []string{}, StartDate: "2024-01", Current: 1},
			{Title: "C", Company: "c", Description: "d", Technologies: []string{}, StartDate: "2022-01"},
		}
		for _, in := range inserts {
			_, err := s.Experiences().Create(ctx, in)
			require.NoError(t, err)
		}

		all, err := s.Experiences().List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "2024-01", all[0].StartDate)
		assert.Equal(t, 1, all[0].Current)
		assert.Equal(t, "2023-06", all[1].StartDate)
		assert.Equal(t, "2022-01", all[2].StartDate)
	})

	t.Run("experience defaults", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Experiences().Create(ctx, models.ExperienceInsert{
			Title: "t", Company: "c", Description: "d", Technologies: []string{"Go"}, StartDate: "2024-01",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, created.Current)
		assert.Nil(t, created.EndDate)
	})

	t.Run("contacts list newest first", func(t *testing.T) {
		s := newStore(t)
		for _, name := range []string{"first", "second", "third"} {
			_, err := s.Contacts().Create(ctx, models.ContactInsert{
				FirstName: name, LastName: "l", Email: "a@b.com", Message: "m",
			})
			require.NoError(t, err)
		}

		all, err := s.Contacts().List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "third", all[0].FirstName)
		assert.Equal(t, "second", all[1].FirstName)
		assert.Equal(t, "first", all[2].FirstName)
	})

	t.Run("contact optional fields stay null", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Contacts().Create(ctx, models.ContactInsert{
			FirstName: "f", LastName: "l", Email: "a@b.com", Message: "m",
		})
		require.NoError(t, err)
		assert.Nil(t, created.ProjectType)
		assert.Nil(t, created.BudgetRange)
	})

	t.Run("testimonial rating defaults to 5", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Testimonials().Create(ctx, models.TestimonialInsert{
			Name: "n", Title: "t", Company: "c", Content: "x",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, created.Rating)
		assert.Nil(t, created.Avatar)
		assert.Nil(t, created.FacebookID)
	})

	t.Run("testimonial explicit rating is kept", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Testimonials().Create(ctx, models.TestimonialInsert{
			Name: "n", Title: "t", Company: "c", Content: "x", Rating: intPtr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, 3, created.Rating)
	})

	t.Run("testimonials list newest first", func(t *testing.T) {
		s := newStore(t)
		for _, name := range []string{"first", "second"} {
			_, err := s.Testimonials().Create(ctx, models.TestimonialInsert{
				Name: name, Title: "t", Company: "c", Content: "x",
			})
			require.NoError(t, err)
		}

		all, err := s.Testimonials().List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "second", all[0].Name)
		assert.Equal(t, "first", all[1].Name)
	})

	t.Run("secondary entities support full CRUD", func(t *testing.T) {
		s := newStore(t)

		exp, err := s.Experiences().Create(ctx, models.ExperienceInsert{
			Title: "t", Company: "c", Description: "d", Technologies: []string{"Go"}, StartDate: "2024-01", Current: 1,
		})
		require.NoError(t, err)
		expUpdated, err := s.Experiences().Update(ctx, exp.ID, models.ExperiencePatch{
			EndDate: strPtr("2025-06"),
			Current: intPtr(0),
		})
		require.NoError(t, err)
		require.NotNil(t, expUpdated)
		assert.Equal(t, exp.ID, expUpdated.ID)
		assert.True(t, exp.CreatedAt.Equal(expUpdated.CreatedAt))
		require.NotNil(t, expUpdated.EndDate)
		assert.Equal(t, "2025-06", *expUpdated.EndDate)
		assert.Equal(t, 0, expUpdated.Current)
		deleted, err := s.Experiences().Delete(ctx, exp.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		contact, err := s.Contacts().Create(ctx, models.ContactInsert{
			FirstName: "f", LastName: "l", Email: "a@b.com", Message: "m",
		})
		require.NoError(t, err)
		contactUpdated, err := s.Contacts().Update(ctx, contact.ID, models.ContactPatch{
			Message:     strPtr("edited"),
			ProjectType: strPtr("web-app"),
		})
		require.NoError(t, err)
		require.NotNil(t, contactUpdated)
		assert.Equal(t, "edited", contactUpdated.Message)
		require.NotNil(t, contactUpdated.ProjectType)
		assert.Equal(t, "web-app", *contactUpdated.ProjectType)
		deleted, err = s.Contacts().Delete(ctx, contact.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		testimonial, err := s.Testimonials().Create(ctx, models.TestimonialInsert{
			Name: "n", Title: "t", Company: "c", Content: "x",
		})
		require.NoError(t, err)
		tUpdated, err := s.Testimonials().Update(ctx, testimonial.ID, models.TestimonialPatch{
			Rating: intPtr(4),
		})
		require.NoError(t, err)
		require.NotNil(t, tUpdated)
		assert.Equal(t, 4, tUpdated.Rating)
		deleted, err = s.Testimonials().Delete(ctx, testimonial.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := s.Experiences().GetByID(ctx, exp.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("seed is idempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, Seed(ctx, s))
		projects, err := s.Projects().List(ctx)
		require.NoError(t, err)
		require.Len(t, projects, len(seedProjects))

		require.NoError(t, Seed(ctx, s))
		projects, err = s.Projects().List(ctx)
		require.NoError(t, err)
		assert.Len(t, projects, len(seedProjects))
	})
}

func intPtr(v int) *int { return &v }
