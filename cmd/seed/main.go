package main

import (
	"github.com/SUDHEER176/Bookit/internal/config"
	"github.com/SUDHEER176/Bookit/internal/db"
	"github.com/SUDHEER176/Bookit/internal/logger"

	"github.com/google/uuid"
)

type seedExperience struct {
	Title       string
	Location    string
	Price       int64
	Image       string
	Description string
	Category    string
}

var experiences = []seedExperience{
	{
		Title:       "Kayaking",
		Location:    "Udupi",
		Price:       999,
		Image:       "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&q=80",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included. Helmet and Life jackets along with an expert will accompany in kayaking.",
		Category:    "Water Sports",
	},
	{
		Title:       "Nandi Hills Sunrise",
		Location:    "Bangalore",
		Price:       899,
		Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&q=80",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Category:    "Adventure",
	},
	{
		Title:       "Coffee Trail",
		Location:    "Coorg",
		Price:       1299,
		Image:       "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&q=80",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Category:    "Nature",
	},
	{
		Title:       "Kayaking",
		Location:    "Udupi, Karnataka",
		Price:       999,
		Image:       "https://images.unsplash.com/photo-1502680390469-be75c86b636f?w=800&q=80",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Category:    "Water Sports",
	},
	{
		Title:       "Boat Cruise",
		Location:    "Sunderban",
		Price:       999,
		Image:       "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&q=80",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Category:    "Water Sports",
	},
	{
		Title:       "Bunjee Jumping",
		Location:    "Manali",
		Price:       999,
		Image:       "https://images.unsplash.com/photo-1511895426328-dc8714191300?w=800&q=80",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Category:    "Adventure",
	},
	{
		Title:       "Coffee Trail",
		Location:    "Coorg",
		Price:       1299,
		Image:       "https://images.unsplash.com/photo-1511497584788-876760111969?w=800&q=80",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Category:    "Nature",
	},
	{
		Title:       "Trekking Adventure",
		Location:    "Chikmagalur",
		Price:       1499,
		Image:       "https://images.unsplash.com/photo-1551632811-561732d1e306?w=800&q=80",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included. Experience the thrill of mountain trekking.",
		Category:    "Adventure",
	},
}

func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to open database handle: %v", err)
	}
	defer database.Close()

	if err := database.Ping(); err != nil {
		logger.Fatalf("Database unreachable: %v", err)
	}

	if _, err := database.Exec(`DELETE FROM experiences`); err != nil {
		logger.Fatalf("Failed to clear experiences: %v", err)
	}

	for _, e := range experiences {
		_, err := database.Exec(
			`INSERT INTO experiences (id, title, location, price, image, description, category)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.NewString(), e.Title, e.Location, e.Price, e.Image, e.Description, e.Category,
		)
		if err != nil {
			logger.Fatalf("Failed to seed experience %q: %v", e.Title, err)
		}
	}

	logger.Infof("Seeded %d experiences", len(experiences))
}
