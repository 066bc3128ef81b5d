package catalog

import (
	"strconv"
	"time"
)

// Built-in catalog used by the dev-mode memory repository and as the base
// rows for cmd/seed.

func FixtureProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Premium Dog Food",
			Description: "Balanced food for adult dogs with high quality protein and essential nutrients.",
			Price:       45.99,
			Image:       "https://images.unsplash.com/photo-1589924691995-400dc9ecc119?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryFood,
			Stock:       15,
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "Rubber Fetch Ball",
			Description: "Durable ball for dogs, ideal for games of fetch.",
			Price:       12.50,
			Image:       "https://images.unsplash.com/photo-1576201836106-db1758fd1c97?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryToys,
			Stock:       30,
		},
		{
			ID:          "3",
			Name:        "Adjustable Collar",
			Description: "Adjustable collar for medium and large dogs, tough and long lasting.",
			Price:       18.75,
			Image:       "https://images.unsplash.com/photo-1599839575945-a9e5af0c3fa5?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryAccessories,
			Stock:       20,
		},
		{
			ID:          "4",
			Name:        "Cat Shampoo",
			Description: "Gentle shampoo made for cats, pH balanced with a mild scent.",
			Price:       14.99,
			Image:       "https://images.unsplash.com/photo-1606240639706-dbc2231c7a92?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryHygiene,
			Stock:       25,
		},
		{
			ID:          "5",
			Name:        "Pet Bed",
			Description: "Padded, comfortable bed for dogs and cats, machine washable.",
			Price:       35.50,
			Image:       "https://images.unsplash.com/photo-1567612529009-ded21eb6a100?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryAccessories,
			Stock:       10,
			Featured:    true,
		},
		{
			ID:          "6",
			Name:        "Flea & Tick Drops",
			Description: "Monthly topical treatment against fleas and ticks for dogs and cats.",
			Price:       22.00,
			Image:       "https://images.unsplash.com/photo-1558788353-f76d92427f16?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryMedicine,
			Stock:       40,
		},
		{
			ID:          "7",
			Name:        "Catnip Mouse",
			Description: "Soft plush mouse filled with catnip, a favorite for indoor cats.",
			Price:       6.25,
			Image:       "https://images.unsplash.com/photo-1574158622682-e40e69881006?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryToys,
			Stock:       50,
		},
		{
			ID:          "8",
			Name:        "Grain-Free Cat Food",
			Description: "Grain-free recipe for cats with sensitive digestion.",
			Price:       39.90,
			Image:       "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryFood,
			Stock:       18,
			Featured:    true,
		},
	}
}

func FixtureServices() []Service {
	return []Service{
		{ID: "1", Title: "General checkup", Description: "Full health review for your pet", Icon: "stethoscope", Price: "$35"},
		{ID: "2", Title: "Vaccination", Description: "Essential vaccines for dogs and cats", Icon: "syringe", Price: "$25"},
		{ID: "3", Title: "Deworming", Description: "Treatment against internal and external parasites", Icon: "shield", Price: "$20"},
		{ID: "4", Title: "Surgery", Description: "Surgical procedures for your pet", Icon: "scissors", Price: "From $120"},
		{ID: "5", Title: "Lab tests", Description: "Blood work and other clinical studies", Icon: "flask", Price: "From $40"},
	}
}

func FixtureBlogPosts() []BlogPost {
	return []BlogPost{
		{
			ID:          "1",
			Title:       "Early puppy care",
			Description: "Safety in the first weeks is essential for healthy development...",
			Image:       "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?auto=format&fit=crop&w=800&q=80",
			Category:    "Puppies",
		},
		{
			ID:          "2",
			Title:       "Healthy feeding",
			Description: "Tips for a balanced diet that keeps your pet fit and happy...",
			Image:       "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?auto=format&fit=crop&w=800&q=80",
			Category:    "Nutrition",
		},
		{
			ID:          "3",
			Title:       "Daily exercise",
			Description: "Why regular activity matters for your pet's wellbeing...",
			Image:       "https://images.unsplash.com/photo-1601758174114-e711c0cbaa69?auto=format&fit=crop&w=800&q=80",
			Category:    "Wellbeing",
		},
		{
			ID:          "4",
			Title:       "Warning signs",
			Description: "Learn to recognize when your pet needs urgent veterinary care...",
			Image:       "https://images.unsplash.com/photo-1548199973-03cce0bbc87b?auto=format&fit=crop&w=800&q=80",
			Category:    "Health",
		},
	}
}

var fixtureSlotTimes = []string{"09:00", "10:30", "12:00", "15:30"}

// FixtureSlots generates the clinic's slot grid for the given number of days
// starting at from. Every slot is open except the noon one on the first day,
// so the picker always shows a mix in dev mode.
func FixtureSlots(from time.Time, days int) []Slot {
	out := make([]Slot, 0, days*len(fixtureSlotTimes))
	n := 0
	for d := 0; d < days; d++ {
		date := from.AddDate(0, 0, d).Format("2006-01-02")
		for _, tm := range fixtureSlotTimes {
			n++
			out = append(out, Slot{
				ID:        strconv.Itoa(n),
				Date:      date,
				Time:      tm,
				Available: !(d == 0 && tm == "12:00"),
			})
		}
	}
	return out
}

func ConsultationReasons() []Reason {
	return []Reason{
		{ID: "1", Name: "General checkup"},
		{ID: "2", Name: "Vaccination"},
		{ID: "3", Name: "Deworming"},
		{ID: "4", Name: "Emergency"},
		{ID: "5", Name: "Follow-up"},
		{ID: "6", Name: "Other"},
	}
}

// DeliveryRegions lists the areas the home-visit service covers.
func DeliveryRegions() []string {
	return []string{
		"City center",
		"North side",
		"East side",
		"West hills",
		"Riverside",
	}
}

// NewFixtureRepository wires the built-in catalog into a memory repository,
// with a two week slot calendar starting today.
func NewFixtureRepository() *MemoryRepository {
	return NewMemoryRepository(
		FixtureProducts(),
		FixtureServices(),
		FixtureBlogPosts(),
		FixtureSlots(time.Now(), 14),
	)
}
