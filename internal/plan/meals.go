package plan

// MealTypes lists the four daily meal slots in display order.
var MealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

// Meal is one entry in the weekly menu template.
type Meal struct {
	Name     string `yaml:"name" validate:"required"`
	Calories string `yaml:"calories"`
	Desc     string `yaml:"desc"`
}

// WeeklyMenu maps day name -> meal type -> meal. The menu repeats weekly;
// the monthly view re-derives each calendar date's meals from its weekday.
type WeeklyMenu map[string]map[string]Meal

// DefaultMenu is the built-in 7-day x 4-slot meal plan.
func DefaultMenu() WeeklyMenu {
	return WeeklyMenu{
		"Monday": {
			"Breakfast": {Name: "Oatmeal & Berries", Calories: "350 kcal", Desc: "Rolled oats, blueberries, honey"},
			"Lunch":     {Name: "Grilled Chicken Salad", Calories: "450 kcal", Desc: "Chicken breast, greens, avocado"},
			"Dinner":    {Name: "Salmon & Quinoa", Calories: "500 kcal", Desc: "Baked salmon, quinoa, broccoli"},
			"Snack":     {Name: "Greek Yogurt", Calories: "150 kcal", Desc: "Plain yogurt, almonds"},
		},
		"Tuesday": {
			"Breakfast": {Name: "Egg White Omelette", Calories: "300 kcal", Desc: "Egg whites, spinach, tomato"},
			"Lunch":     {Name: "Turkey Wrap", Calories: "400 kcal", Desc: "Turkey, whole wheat wrap, veggies"},
			"Dinner":    {Name: "Chicken Stir Fry", Calories: "480 kcal", Desc: "Chicken, mixed vegetables, rice"},
			"Snack":     {Name: "Apple & Peanut Butter", Calories: "180 kcal", Desc: "Sliced apple, natural PB"},
		},
		"Wednesday": {
			"Breakfast": {Name: "Protein Smoothie", Calories: "320 kcal", Desc: "Banana, protein powder, almond milk"},
			"Lunch":     {Name: "Tuna Bowl", Calories: "420 kcal", Desc: "Tuna, brown rice, cucumber"},
			"Dinner":    {Name: "Lean Beef & Sweet Potato", Calories: "520 kcal", Desc: "Ground beef, sweet potato, greens"},
			"Snack":     {Name: "Mixed Nuts", Calories: "160 kcal", Desc: "Almonds, walnuts, cashews"},
		},
		"Thursday": {
			"Breakfast": {Name: "Avocado Toast", Calories: "340 kcal", Desc: "Whole grain bread, avocado, egg"},
			"Lunch":     {Name: "Quinoa Buddha Bowl", Calories: "440 kcal", Desc: "Quinoa, chickpeas, tahini"},
			"Dinner":    {Name: "Baked Cod & Asparagus", Calories: "460 kcal", Desc: "Cod fillet, asparagus, lemon"},
			"Snack":     {Name: "Protein Bar", Calories: "200 kcal", Desc: "High-protein energy bar"},
		},
		"Friday": {
			"Breakfast": {Name: "Berry Parfait", Calories: "330 kcal", Desc: "Yogurt, granola, mixed berries"},
			"Lunch":     {Name: "Chicken Caesar Salad", Calories: "410 kcal", Desc: "Grilled chicken, romaine, light dressing"},
			"Dinner":    {Name: "Shrimp Pasta", Calories: "490 kcal", Desc: "Whole wheat pasta, shrimp, marinara"},
			"Snack":     {Name: "Cottage Cheese", Calories: "120 kcal", Desc: "Low-fat cottage cheese, berries"},
		},
		"Saturday": {
			"Breakfast": {Name: "Pancakes & Fruit", Calories: "380 kcal", Desc: "Protein pancakes, strawberries"},
			"Lunch":     {Name: "Veggie Burger", Calories: "430 kcal", Desc: "Plant-based patty, whole wheat bun"},
			"Dinner":    {Name: "Steak & Veggies", Calories: "540 kcal", Desc: "Sirloin steak, roasted vegetables"},
			"Snack":     {Name: "Dark Chocolate", Calories: "140 kcal", Desc: "70% dark chocolate squares"},
		},
		"Sunday": {
			"Breakfast": {Name: "French Toast", Calories: "360 kcal", Desc: "Whole wheat bread, cinnamon, maple syrup"},
			"Lunch":     {Name: "Sushi Bowl", Calories: "450 kcal", Desc: "Salmon, rice, edamame, seaweed"},
			"Dinner":    {Name: "Chicken Curry", Calories: "510 kcal", Desc: "Chicken, curry sauce, brown rice"},
			"Snack":     {Name: "Hummus & Veggies", Calories: "130 kcal", Desc: "Hummus, carrots, celery"},
		},
	}
}
