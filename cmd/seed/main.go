package main

import (
	"fmt"

	"newsroom/internal/model"
	"newsroom/pkg/config"
	"newsroom/pkg/database"
	"newsroom/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		username string
		password string
		role     string
	}{
		{"alice@test.com", "alice_reader", "password123", "reader"},
		{"bob@test.com", "bob_reader", "password123", "reader"},
		{"carol@test.com", "carol_writes", "password123", "journalist"},
		{"dave@test.com", "dave_writes", "password123", "journalist"},
		{"erin@test.com", "erin_desk", "password123", "editor"},
	}

	usersByName := make(map[string]*model.UserModel, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &model.UserModel{
			Email:    userData.email,
			Username: userData.username,
			Password: string(hashedPassword),
			Role:     userData.role,
			IsActive: true,
		}

		var existing model.UserModel
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			usersByName[user.Username] = &existing
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}
		log.Info("Created user: %s (%s)", user.Username, user.Role)
		usersByName[user.Username] = user
	}

	publisher := &model.PublisherModel{Name: "The Daily Ledger"}
	var existingPublisher model.PublisherModel
	if err := db.Where("name = ?", publisher.Name).First(&existingPublisher).Error; err == nil {
		publisher = &existingPublisher
		log.Info("Publisher %s already exists, skipping", publisher.Name)
	} else {
		if editor, ok := usersByName["erin_desk"]; ok {
			publisher.OwnerID = &editor.ID
		}
		if err := db.Create(publisher).Error; err != nil {
			return fmt.Errorf("failed to create publisher: %w", err)
		}
		log.Info("Created publisher: %s", publisher.Name)
	}

	carol, ok := usersByName["carol_writes"]
	if !ok {
		return fmt.Errorf("seed user carol_writes missing")
	}

	articles := []*model.ArticleModel{
		{Title: "City council passes budget", Content: "The vote was unanimous.", CreatedBy: carol.ID, PublisherID: &publisher.ID, Approved: true},
		{Title: "Harbor bridge inspection delayed", Content: "A draft still in review.", CreatedBy: carol.ID, Approved: false},
	}
	for _, article := range articles {
		var count int64
		db.Model(&model.ArticleModel{}).Where("title = ?", article.Title).Count(&count)
		if count > 0 {
			log.Info("Article %q already exists, skipping", article.Title)
			continue
		}
		if err := db.Create(article).Error; err != nil {
			log.Error("Failed to create article %q: %v", article.Title, err)
			continue
		}
		log.Info("Created article: %s", article.Title)
	}

	if alice, ok := usersByName["alice_reader"]; ok {
		subs := []*model.SubscriptionModel{
			{ReaderID: alice.ID, JournalistID: &carol.ID},
			{ReaderID: alice.ID, PublisherID: &publisher.ID},
		}
		for _, sub := range subs {
			if err := db.Create(sub).Error; err != nil {
				log.Info("Subscription already present, skipping")
				continue
			}
		}
		log.Info("Subscribed alice_reader to carol_writes and %s", publisher.Name)
	}

	return nil
}
