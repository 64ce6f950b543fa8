package store

import (
	"log"
	"time"

	"curries-burger-api/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminEmail and DefaultAdminPassword identify the account Seed
// creates when the user collection is empty.
const (
	DefaultAdminEmail    = "admin@curries.com"
	DefaultAdminPassword = "admin"
)

// menuCatalog is the built-in menu, covering every category the storefront
// filters on.
var menuCatalog = []models.MenuItem{
	{ID: "m-001", Name: "Smoky BBQ Burger", Description: "Flame-grilled patty, smoked cheddar, crispy onions, house BBQ sauce", Price: 12.99, Category: "Burgers", Image: "/img/smoky-bbq-burger.jpg", IsChefSpecial: true, Calories: 850},
	{ID: "m-002", Name: "Paneer Tikka Burger", Description: "Charred paneer steak, mint chutney, pickled red onion", Price: 10.49, Category: "Burgers", Image: "/img/paneer-tikka-burger.jpg", IsVeg: true, IsSpicy: true, Calories: 720},
	{ID: "m-003", Name: "Double Stack Classic", Description: "Two patties, American cheese, lettuce, tomato, secret sauce", Price: 14.49, Category: "Burgers", Image: "/img/double-stack.jpg", Calories: 1100},
	{ID: "m-004", Name: "Butter Chicken", Description: "Tandoori chicken simmered in a silky tomato-fenugreek gravy", Price: 15.99, Category: "Curries", Image: "/img/butter-chicken.jpg", IsChefSpecial: true, Calories: 640},
	{ID: "m-005", Name: "Paneer Makhani", Description: "Cottage cheese in rich makhani sauce, finished with cream", Price: 13.99, Category: "Curries", Image: "/img/paneer-makhani.jpg", IsVeg: true, Calories: 580},
	{ID: "m-006", Name: "Lamb Vindaloo", Description: "Fiery Goan curry with slow-braised lamb and vinegar heat", Price: 16.99, Category: "Curries", Image: "/img/lamb-vindaloo.jpg", IsSpicy: true, Calories: 690},
	{ID: "m-007", Name: "Crispy Onion Bhaji", Description: "Shredded onion fritters with tamarind dip", Price: 6.49, Category: "Appetizers", Image: "/img/onion-bhaji.jpg", IsVeg: true, Calories: 380},
	{ID: "m-008", Name: "Chilli Garlic Wings", Description: "Sticky-glazed wings tossed in chilli, garlic and sesame", Price: 8.99, Category: "Appetizers", Image: "/img/chilli-wings.jpg", IsSpicy: true, Calories: 540},
	{ID: "m-009", Name: "Hyderabadi Chicken Biryani", Description: "Dum-cooked basmati layered with saffron and fried onion", Price: 14.99, Category: "Rice", Image: "/img/chicken-biryani.jpg", IsSpicy: true, IsChefSpecial: true, Calories: 760},
	{ID: "m-010", Name: "Jeera Rice", Description: "Basmati tempered with cumin and ghee", Price: 5.99, Category: "Rice", Image: "/img/jeera-rice.jpg", IsVeg: true, Calories: 310},
	{ID: "m-011", Name: "Garlic Butter Naan", Description: "Tandoor-baked naan brushed with garlic butter", Price: 3.99, Category: "Breads", Image: "/img/garlic-naan.jpg", IsVeg: true, Calories: 290},
	{ID: "m-012", Name: "Laccha Paratha", Description: "Flaky layered whole-wheat paratha", Price: 3.49, Category: "Breads", Image: "/img/laccha-paratha.jpg", IsVeg: true, Calories: 320},
	{ID: "m-013", Name: "Kathi Chicken Roll", Description: "Street-style roll with egg-washed paratha and onion salad", Price: 9.49, Category: "Rolls", Image: "/img/kathi-roll.jpg", IsSpicy: true, Calories: 610},
	{ID: "m-014", Name: "Paneer Kathi Roll", Description: "Grilled paneer, peppers and mint chutney in a paratha wrap", Price: 8.99, Category: "Rolls", Image: "/img/paneer-roll.jpg", IsVeg: true, Calories: 560},
	{ID: "m-015", Name: "Mango Lassi", Description: "Alphonso mango blended with churned yogurt", Price: 4.99, Category: "Drinks", Image: "/img/mango-lassi.jpg", IsVeg: true, Calories: 240},
	{ID: "m-016", Name: "Masala Chai", Description: "Spiced tea brewed with ginger and cardamom", Price: 2.99, Category: "Drinks", Image: "/img/masala-chai.jpg", IsVeg: true, Calories: 120},
	{ID: "m-017", Name: "Gulab Jamun Cheesecake", Description: "Baked cheesecake studded with rose-syrup jamuns", Price: 7.49, Category: "Desserts", Image: "/img/jamun-cheesecake.jpg", IsVeg: true, IsChefSpecial: true, Calories: 520},
	{ID: "m-018", Name: "Kulfi Falooda", Description: "Pistachio kulfi over vermicelli, basil seeds and rose milk", Price: 6.49, Category: "Desserts", Image: "/img/kulfi-falooda.jpg", IsVeg: true, Calories: 430},
}

// MenuCatalog returns a copy of the built-in menu.
func MenuCatalog() []models.MenuItem {
	items := make([]models.MenuItem, len(menuCatalog))
	copy(items, menuCatalog)
	return items
}

// Seed populates the menu catalog when the menu collection is absent or
// unreadable, and creates the default administrator when no users exist.
// A deliberately emptied menu is left empty. Safe to run on every startup.
func (s *Store) Seed() error {
	if Read[models.MenuItem](s, CollectionMenu) == nil {
		if err := Write(s, CollectionMenu, MenuCatalog()); err != nil {
			return err
		}
		log.Println("✅ Database seeded: built-in menu catalog installed")
	}

	if _, ok := s.readRaw(CollectionUsers); !ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			ID:           "u-" + uuid.NewString(),
			Name:         "Admin User",
			Email:        DefaultAdminEmail,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			CreatedAt:    time.Now(),
		}
		if err := Write(s, CollectionUsers, []models.User{admin}); err != nil {
			return err
		}
		log.Printf("✅ Database seeded: default admin created (%s)", DefaultAdminEmail)
	}
	return nil
}
