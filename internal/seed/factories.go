// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"yatube/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashedPassword),
		Bio:      gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateGroup constructs and persists a sample `models.Group`.
func (f *Factory) CreateGroup(overrides ...func(*models.Group)) (*models.Group, error) {
	noun := gofakeit.NounConcrete()
	group := &models.Group{
		Title:       gofakeit.HackerNoun() + " " + noun,
		Slug:        fmt.Sprintf("%s-%d", noun, gofakeit.Number(10, 9999)),
		Description: gofakeit.Sentence(12),
	}

	for _, override := range overrides {
		override(group)
	}

	if err := f.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// CreatePost constructs and persists a sample `models.Post` for the given
// author, optionally inside a group. Created timestamps are spread over
// the last ninety days so listings look lived-in.
func (f *Factory) CreatePost(author *models.User, group *models.Group, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Text:     gofakeit.Paragraph(1, 3, 8, "\n"),
		AuthorID: author.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	if f.r.Float32() < 0.3 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}

	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user.
func (f *Factory) CreateComment(author *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Text:     gofakeit.Sentence(8),
		AuthorID: author.ID,
		PostID:   post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFollow persists a follow edge from user to author. Duplicate
// edges are absorbed by the unique index.
func (f *Factory) CreateFollow(user, author *models.User) error {
	follow := &models.Follow{UserID: user.ID, AuthorID: author.ID}
	err := f.db.Where(models.Follow{UserID: user.ID, AuthorID: author.ID}).
		FirstOrCreate(follow).Error
	return err
}
