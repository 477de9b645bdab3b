package menu

import "testing"

func TestEstimateServingSize(t *testing.T) {
	tests := []struct {
		course string
		dish   string
		want   int
	}{
		{CourseMains, "Chicken: Roast Whole Chicken", 5},
		{CourseMains, "Pork: Roasted Pork Hind Leg", 5},
		{CourseMains, "Beef: Beef Loin Roast", 5},
		{CourseMains, "Beef: Beef Brisket Caldereta", 5},
		{CourseMains, "Chicken: Honey Garlic Chicken Wings", 3},
		{CourseMains, "Chicken: Chicken Drumsticks Adobo", 3},
		{CourseMains, "Pork: Pork Spare Ribs Sweet BBQ", 3},
		{CourseMains, "Fish: Steamed Pampano", 4},
		{CourseMains, "Beef: Beef Rib Eye with Bell Pepper", 4},
		{CourseVegetables, "Ensaladang Talong", 3},
		{CourseRice, "Garlic Fried Rice", 3},
		{CourseDesserts, "Dessert: Fruit Salad", 2},
		{"Unknown Course", "Anything", 1},
	}
	for _, tt := range tests {
		if got := EstimateServingSize(tt.course, tt.dish); got != tt.want {
			t.Errorf("EstimateServingSize(%q, %q) = %d, want %d", tt.course, tt.dish, got, tt.want)
		}
	}
}

func TestDefaultMenu(t *testing.T) {
	dishes := Default()
	if len(dishes) < 70 {
		t.Fatalf("menu has %d dishes, expected the full authored menu", len(dishes))
	}

	// Courses appear in authored order: mains, vegetables, rice, desserts.
	order := map[string]int{
		CourseMains:      0,
		CourseVegetables: 1,
		CourseRice:       2,
		CourseDesserts:   3,
	}
	last := 0
	for i, d := range dishes {
		rank, ok := order[d.Category]
		if !ok {
			t.Fatalf("dish %d has unknown course %q", i, d.Category)
		}
		if rank < last {
			t.Fatalf("course order broken at dish %d (%s)", i, d.Name)
		}
		last = rank

		if d.Name == "" || len(d.Ingredients) == 0 {
			t.Errorf("dish %d incomplete: %+v", i, d)
		}
		if d.ServingSize < 1 {
			t.Errorf("dish %q has serving size %d", d.Name, d.ServingSize)
		}
	}
}

func TestDefaultMenuServingSizesConsistent(t *testing.T) {
	for _, d := range Default() {
		if want := EstimateServingSize(d.Category, d.Name); d.ServingSize != want {
			t.Errorf("dish %q serving size %d, want %d", d.Name, d.ServingSize, want)
		}
	}
}
