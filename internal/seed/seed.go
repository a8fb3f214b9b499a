package seed

import (
	"fmt"
	"log"

	"quill/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumGroups   int
	NumPosts    int
	NumComments int
	ShouldClean bool
}

// DefaultOptions returns the sizes used by the seed command when none are given.
func DefaultOptions() Options {
	return Options{
		NumUsers:    20,
		NumGroups:   5,
		NumPosts:    120,
		NumComments: 200,
	}
}

// Seed populates the database with demo users, groups, posts, comments and a
// follow mesh.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("seeding: %d users, %d groups, %d posts, %d comments",
		opts.NumUsers, opts.NumGroups, opts.NumPosts, opts.NumComments)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	groups := make([]*models.Group, 0, opts.NumGroups)
	for i := 0; i < opts.NumGroups; i++ {
		group, err := f.CreateGroup()
		if err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}
		groups = append(groups, group)
	}
	log.Printf("created %d groups", len(groups))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rand.Intn(len(users))]
		post, err := f.CreatePost(author, func(p *models.Post) {
			// Roughly half of seeded posts belong to a group.
			if len(groups) > 0 && f.rand.Intn(2) == 0 {
				p.GroupID = &groups[f.rand.Intn(len(groups))].ID
			}
		})
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("created %d posts", len(posts))

	for i := 0; i < opts.NumComments; i++ {
		post := posts[f.rand.Intn(len(posts))]
		author := users[f.rand.Intn(len(users))]
		if _, err := f.CreateComment(post, author); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
	}
	log.Printf("created %d comments", opts.NumComments)

	if err := createFollowMesh(f, users); err != nil {
		return fmt.Errorf("failed to create follow mesh: %w", err)
	}

	log.Println("seeding complete")
	return nil
}

// createFollowMesh gives every user a handful of followed authors.
func createFollowMesh(f *Factory, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	for _, follower := range users {
		n := f.rand.Intn(4) + 1
		for i := 0; i < n; i++ {
			author := users[f.rand.Intn(len(users))]
			if err := f.CreateFollow(follower, author); err != nil {
				return err
			}
		}
	}
	return nil
}

// clearData deletes seeded rows child-first so foreign keys stay satisfied.
func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
