// Package menu holds the authored Noche Buena reference menu. Static data
// joined at computation time against predicted prices; never persisted as a
// fact.
package menu

import (
	"strings"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

// Course names are a fixed enum; the recommender reports them verbatim.
const (
	CourseMains      = "Main Courses"
	CourseVegetables = "Vegetables/Sides"
	CourseRice       = "Rice Dishes"
	CourseDesserts   = "Desserts/Fruits"
)

type dish struct {
	name        string
	ingredients []string
}

var mains = []dish{
	{"Chicken: Roast Whole Chicken", []string{"Whole Chicken, Local", "Garlic, Native/Local", "Salt (Iodized)", "Cooking Oil (Coconut)"}},
	{"Chicken: Chicken Drumsticks Adobo", []string{"Chicken Drumstick, Local", "Garlic, Native/Local", "Red Onion, Local", "Salt (Iodized)", "Cooking Oil (Palm Olein, Jolly Brand)"}},
	{"Chicken: Chicken Thighs in Garlic Sauce", []string{"Chicken Thigh, Local", "Garlic, Native/Local", "White Onion, Imported", "Salt (Iodized)", "Cooking Oil (Coconut)"}},
	{"Chicken: Chicken Leg Quarter Roast", []string{"Chicken Leg Quarter, Local", "Bell Pepper (Red), Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Chicken: Honey Garlic Chicken Wings", []string{"Chicken Wing, Local", "Garlic, Native/Local", "Sugar (Brown)", "Salt (Iodized)", "Cooking Oil (Palm Olein, Jolly)"}},
	{"Chicken: Garlic Butter Whole Chicken", []string{"Whole Chicken, Local", "Garlic, Native/Local", "Cooking Oil (Coconut)", "Salt (Iodized)"}},
	{"Chicken: Chicken Adobo with Bell Pepper", []string{"Chicken Drumstick, Local", "Bell Pepper (Green), Local", "Bell Pepper (Red), Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Chicken: Chicken Thighs in Tomato Sauce", []string{"Chicken Thigh, Local", "Tomato", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Chicken: Roast Chicken with Onion", []string{"Whole Chicken, Local", "Red Onion, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Chicken: Garlic Lemon Chicken", []string{"Chicken Leg Quarter, Local", "Garlic, Native/Local", "Calamansi", "Salt (Iodized)"}},
	{"Pork: Lechon Liempo", []string{"Pork Belly (Liempo), Local", "Garlic, Native/Local", "Salt (Rock)", "Cooking Oil (Coconut)"}},
	{"Pork: Pork Spare Ribs Sweet BBQ", []string{"Pork Spare Ribs, Local", "Garlic, Native/Local", "Sugar (Brown)", "Salt (Iodized)"}},
	{"Pork: Braised Pork Boston Shoulder", []string{"Pork Boston Shoulder, Local", "Tomato", "Red Onion, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Pork: Roast Pork Loin", []string{"Pork Loin, Local", "Garlic, Native/Local", "Red Onion, Local", "Salt (Iodized)"}},
	{"Pork: Kasim Adobo", []string{"Pork Picnic Shoulder, Local (Kasim)", "Garlic, Native/Local", "Red Onion, Local", "Salt (Iodized)"}},
	{"Pork: Roasted Pork Hind Leg", []string{"Pork Hind Leg (Pigue), Local", "Garlic, Native/Local", "Calamansi", "Salt (Iodized)"}},
	{"Pork: Stewed Pork Hind Shank", []string{"Pork Hind Shank, Local", "Tomato", "White Onion, Imported", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Pork: Honey Garlic Pork Loin", []string{"Pork Loin, Local", "Garlic, Native/Local", "Sugar (Brown)", "Salt (Iodized)"}},
	{"Pork: Pork Belly with Bell Pepper", []string{"Pork Belly (Liempo), Local", "Bell Pepper (Green), Local", "Bell Pepper (Red), Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Pork: Braised Kasim with Tomato", []string{"Pork Picnic Shoulder, Local", "Tomato", "Red Onion, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Beef: Beef Brisket Caldereta", []string{"Beef Brisket, Local", "Bell Pepper (Green), Local", "Bell Pepper (Red), Local", "Carrots, Local", "Tomato", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Beef: Beef Short Ribs BBQ", []string{"Beef Short Ribs, Local", "Garlic, Native/Local", "Sugar (Brown)", "Red Onion, Local", "Salt (Iodized)"}},
	{"Beef: Pan-Seared Beef Tenderloin", []string{"Beef Tenderloin, Local", "Garlic, Native/Local", "White Onion, Imported", "Salt (Iodized)"}},
	{"Beef: Grilled Beef Striploin", []string{"Beef Striploin, Local", "Garlic, Native/Local", "Chilli (Red), Local", "Salt (Rock)"}},
	{"Beef: Stewed Beef Tongue", []string{"Beef Tongue, Local", "Garlic, Native/Local", "Red Onion, Local", "Tomato", "Salt (Iodized)"}},
	{"Beef: Nilagang Beef Forequarter", []string{"Beef Forequarter, Local", "Carrots, Local", "White Potato, Local", "Cabbage (Wonder Ball)", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Beef: Beef Rump Steak Garlic", []string{"Beef Rump, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Beef: Beef Flank Stew", []string{"Beef Flank, Local", "Tomato", "White Onion, Imported", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Beef: Beef Loin Roast", []string{"Beef Loin, Local", "Garlic, Native/Local", "Red Onion, Local", "Salt (Iodized)"}},
	{"Beef: Beef Rib Eye with Bell Pepper", []string{"Beef Rib Eye, Local", "Bell Pepper (Green), Local", "Bell Pepper (Red), Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Fish: Roasted Alumahan", []string{"Alumahan (Indian Mackerel)", "Garlic, Native/Local", "Salt (Iodized)", "Cooking Oil (Coconut)"}},
	{"Fish: Daing Bangus", []string{"Bangus, Large", "Garlic, Native/Local", "Salt (Iodized)", "Cooking Oil (Palm Olein, Jolly)"}},
	{"Fish: Sinigang na Bangus", []string{"Bangus, Medium", "Tomato", "Watermelon", "Calamansi", "Salt (Iodized)"}},
	{"Fish: Fried Galunggong", []string{"Galunggong, Local", "Garlic, Native/Local", "Red Onion, Local", "Salt (Iodized)", "Cooking Oil (Coconut)"}},
	{"Fish: Steamed Pampano", []string{"Pampano, Local", "Tomato", "White Onion, Imported", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Fish: Grilled Salmon Belly", []string{"Salmon Belly, Imported", "Garlic, Native/Local", "Calamansi", "Salt (Iodized)"}},
	{"Fish: Sinigang na Salmon Head", []string{"Salmon Head, Imported", "Tomato", "Watermelon", "Calamansi", "Salt (Iodized)"}},
	{"Fish: Baked Tambakol", []string{"Tambakol (Yellow-Fin Tuna) Local", "Garlic, Native/Local", "Red Onion, Local", "Salt (Iodized)"}},
	{"Fish: Pan-Fried Tilapia", []string{"Tilapia", "Garlic, Native/Local", "Salt (Iodized)", "Cooking Oil (Palm)"}},
	{"Fish: Sardines in Tomato Sauce", []string{"Sardines (Tamban)", "Tomato", "Red Onion, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Fish: Pusit Bisaya Adobo", []string{"Squid (Pusit Bisaya), Local", "Garlic, Native/Local", "White Onion, Imported", "Salt (Iodized)"}},
	{"Fish: Roasted Galunggong with Garlic", []string{"Galunggong, Imported", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Fish: Grilled Pampano with Onion", []string{"Pampano, Imported", "Red Onion, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
}

var vegetables = []dish{
	{"Vegetable: Ampalaya Guisado", []string{"Ampalaya", "Garlic, Native/Local", "Red Onion, Local", "Salt (Iodized)", "Cooking Oil (Palm Olein, Jolly Brand)"}},
	{"Vegetable: Eggplant Omelette", []string{"Eggplant", "Chicken Egg (White, Medium)", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Vegetable: Chayote-Carrot Stir Fry", []string{"Chayote", "Carrots, Local", "Garlic, Native/Local", "Salt (Iodized)", "Cooking Oil (Coconut)"}},
	{"Vegetable: Squash Guisado", []string{"Squash", "Red Onion, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Vegetable: Pole Sitao with Garlic", []string{"Pole Sitao", "Garlic, Native/Local", "White Onion, Imported", "Salt (Iodized)"}},
	{"Vegetable: Pechay Baguio Sauteed", []string{"Pechay Baguio", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Vegetable: Native Pechay Sauteed", []string{"Native Pechay", "Tomato", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Vegetable: Cauliflower Buttered", []string{"Cauliflower, Local", "Cooking Oil (Coconut)", "Salt (Iodized)", "Garlic, Native/Local"}},
	{"Vegetable: Broccoli Sauteed", []string{"Broccoli, Local", "Garlic, Native/Local", "Salt (Iodized)", "Cooking Oil (Coconut)"}},
	{"Vegetable: Cabbage & Carrots Stir-Fry", []string{"Cabbage (Rare Ball)", "Carrots, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Vegetable: Lettuce Avocado Salad", []string{"Lettuce (Romaine)", "Avocado", "Tomato", "Calamansi", "Salt (Iodized)"}},
	{"Vegetable: Bell Pepper Medley", []string{"Bell Pepper (Green), Local", "Bell Pepper (Red), Local", "Garlic, Native/Local", "Red Onion, Local", "Salt (Iodized)"}},
	{"Vegetable: Celery-Carrot Stir-Fry", []string{"Celery", "Carrots, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Vegetable: Mashed Potato", []string{"White Potato, Local", "Garlic, Native/Local", "Cooking Oil (Coconut)", "Salt (Iodized)"}},
	{"Vegetable: Steamed Cabbage with Carrots", []string{"Cabbage (Scorpio)", "Carrots, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Vegetable: Garlic Butter Pechay", []string{"Native Pechay", "Garlic, Native/Local", "Cooking Oil (Coconut)", "Salt (Iodized)"}},
}

var riceDishes = []dish{
	{"Rice: Garlic Basmati Rice", []string{"Basmati Rice", "Garlic, Native/Local", "Salt (Iodized)", "Cooking Oil (Coconut)"}},
	{"Rice: Glutinous Rice Puto/Bibingka", []string{"Glutinous Rice", "Sugar (Refined)", "Cooking Oil (Coconut)"}},
	{"Rice: Japonica Fried Rice", []string{"Jasponica/Japonica Rice", "Chicken Egg (White, Medium)", "Garlic, Native/Local", "Red Onion, Local", "Salt (Iodized)", "Cooking Oil (Coconut)"}},
	{"Rice: Steamed White Rice", []string{"Other Special Rice", "Salt (Iodized)"}},
	{"Rice: Well-Milled Rice with Steamed Bangus", []string{"Well Milled", "Bangus, Medium", "Garlic, Native/Local", "Tomato", "Salt (Iodized)"}},
	{"Rice: Premium Rice with Roast Pork", []string{"Premium", "Pork Belly (Liempo), Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Rice: Glutinous Rice with Banana Saba", []string{"Glutinous Rice", "Banana (Saba)", "Sugar (Brown)", "Cooking Oil (Coconut)"}},
	{"Rice: Basmati Garlic Fried Rice with Chicken", []string{"Basmati Rice", "Chicken Thigh, Local", "Garlic, Native/Local", "Red Onion, Local", "Salt (Iodized)"}},
	{"Rice: Steamed Rice with Beef Caldereta", []string{"Other Special Rice", "Beef Brisket, Local", "Bell Pepper (Green), Local", "Bell Pepper (Red), Local", "Garlic, Native/Local", "Salt (Iodized)"}},
	{"Rice: Japonica Rice with Stir-fried Vegetables", []string{"Jasponica/Japonica Rice", "Ampalaya", "Carrots, Local", "Garlic, Native/Local", "Salt (Iodized)"}},
}

var desserts = []dish{
	{"Dessert: Fruit Salad", []string{"Mango (Carabao)", "Avocado", "Banana (Lakatan)", "Banana (Latundan)", "Melon", "Papaya", "Watermelon", "Sugar (Refined)", "Calamansi"}},
	{"Dessert: Avocado Shake", []string{"Avocado", "Sugar (Refined)", "Watermelon"}},
	{"Dessert: Banana Saba Turon", []string{"Banana (Saba)", "Sugar (Brown)", "Cooking Oil (Coconut)"}},
	{"Dessert: Pomelo-Calamansi Fruit Salad", []string{"Pomelo", "Calamansi", "Sugar (Refined)"}},
	{"Dessert: Melon & Watermelon Refreshing Drink", []string{"Melon", "Watermelon", "Sugar (Refined)"}},
	{"Dessert: Banana & Mango Compote", []string{"Banana (Lakatan)", "Mango (Carabao)", "Sugar (Brown)"}},
	{"Dessert: Papaya-Melon Fruit Cups", []string{"Papaya", "Melon", "Sugar (Refined)"}},
	{"Dessert: Watermelon Juice", []string{"Watermelon", "Sugar (Refined)", "Calamansi"}},
	{"Dessert: Tropical Fruit Medley", []string{"Mango (Carabao)", "Banana (Latundan)", "Papaya", "Pomelo", "Sugar (Refined)"}},
	{"Dessert: Avocado-Banana Cream", []string{"Avocado", "Banana (Lakatan)", "Sugar (Refined)"}},
}

// EstimateServingSize derives servings from the course and cut named in the
// dish. Whole animals and big roasting cuts feed five, small cuts three.
func EstimateServingSize(course, dishName string) int {
	lowered := strings.ToLower(dishName)
	switch course {
	case CourseMains:
		for _, word := range []string{"whole", "hind leg", "loin", "brisket"} {
			if strings.Contains(lowered, word) {
				return 5
			}
		}
		for _, word := range []string{"wing", "drumstick", "thigh", "ribs"} {
			if strings.Contains(lowered, word) {
				return 3
			}
		}
		return 4
	case CourseVegetables, CourseRice:
		return 3
	case CourseDesserts:
		return 2
	default:
		return 1
	}
}

// Default returns the built-in menu in its authored traversal order: mains,
// vegetables, rice, desserts. Order matters downstream; recommendation ties
// resolve by it.
func Default() []models.MenuDish {
	courses := []struct {
		name   string
		dishes []dish
	}{
		{CourseMains, mains},
		{CourseVegetables, vegetables},
		{CourseRice, riceDishes},
		{CourseDesserts, desserts},
	}

	var out []models.MenuDish
	for _, course := range courses {
		for _, d := range course.dishes {
			out = append(out, models.MenuDish{
				Category:    course.name,
				Name:        d.name,
				Ingredients: d.ingredients,
				ServingSize: EstimateServingSize(course.name, d.name),
			})
		}
	}
	return out
}
