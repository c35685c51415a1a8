package seed

import (
	"fmt"
	"log"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Default community groups created on every seed run.
var groupSeeds = []models.Group{
	{Title: "Technology", Slug: "tech", Description: "Hardware, software, and everything between."},
	{Title: "Travel", Slug: "travel", Description: "Trip reports and destination tips."},
	{Title: "Cooking", Slug: "cooking", Description: "Recipes, techniques, kitchen wins and failures."},
	{Title: "Books", Slug: "books", Description: "What we are reading and why."},
	{Title: "Music", Slug: "music", Description: "New releases, old favorites, live shows."},
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. Postgres only.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, follows, posts, groups, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// Groups ensures the default community groups exist. Safe to run repeatedly.
func Groups(db *gorm.DB) error {
	for _, g := range groupSeeds {
		var group models.Group
		err := db.Where(models.Group{Slug: g.Slug}).
			Attrs(models.Group{Title: g.Title, Description: g.Description}).
			FirstOrCreate(&group).Error
		if err != nil {
			return fmt.Errorf("seeding group %q: %w", g.Slug, err)
		}
	}
	return nil
}

// SeedSocialMesh creates users and wires a follow graph between them.
// Each user follows roughly a fifth of the others.
func (s *Seeder) SeedSocialMesh(numUsers int) ([]*models.User, error) {
	log.Printf("🌱 Creating %d users...", numUsers)

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	log.Println("🕸️  Wiring follow graph...")
	for _, user := range users {
		for _, author := range users {
			if author.ID == user.ID {
				continue
			}
			if s.factory.r.Float32() < 0.2 {
				if err := s.factory.CreateFollow(user, author); err != nil {
					return nil, fmt.Errorf("wiring follow: %w", err)
				}
			}
		}
	}

	log.Printf("✓ %d users created and connected", len(users))
	return users, nil
}

// SeedEngagement creates posts spread across users and groups, then
// sprinkles comments on them.
func (s *Seeder) SeedEngagement(users []*models.User, numPosts int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to post as")
	}

	var groups []*models.Group
	if err := s.db.Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("loading groups: %w", err)
	}

	log.Printf("📝 Creating %d posts...", numPosts)
	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.r.Intn(len(users))]

		var group *models.Group
		if len(groups) > 0 && s.factory.r.Float32() < 0.6 {
			group = groups[s.factory.r.Intn(len(groups))]
		}

		post, err := s.factory.CreatePost(author, group)
		if err != nil {
			return nil, fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, post)

		for c := 0; c < s.factory.r.Intn(4); c++ {
			commenter := users[s.factory.r.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return nil, fmt.Errorf("creating comment: %w", err)
			}
		}

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	log.Printf("✓ %d posts created", len(posts))
	return posts, nil
}
