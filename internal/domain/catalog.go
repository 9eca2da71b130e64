package domain

var (
	icedCoffeeSizes = []Variant{
		{Name: "Primera (8oz)", Price: 49},
		{Name: "Segonda (12oz)", Price: 69},
		{Name: "Tresiera (16oz)", Price: 89},
		{Name: "Quarta (22oz)", Price: 109},
	}
	fruitSodaSizes = []Variant{
		{Name: "Primera (8oz)", Price: 29},
		{Name: "Segonda (12oz)", Price: 39},
		{Name: "Tresiera (16oz)", Price: 49},
		{Name: "Quarta (22oz)", Price: 59},
	}
	frappeSizes = []Variant{
		{Name: "Small (12oz)", Price: 109},
		{Name: "Medium (16oz)", Price: 135},
		{Name: "Large (22oz)", Price: 160},
	}
	milkTeaSizes = []Variant{
		{Name: "Small", Price: 35},
		{Name: "Regular", Price: 50},
		{Name: "Large", Price: 70},
	}
	dessertSizes = []Variant{
		{Name: "Small", Price: 40},
		{Name: "Regular", Price: 55},
		{Name: "Large", Price: 85},
	}
	friesSizes = []Variant{
		{Name: "Small", Price: 25},
		{Name: "Medium", Price: 35},
		{Name: "Large", Price: 50},
	}
	porridgeSizes = []Variant{
		{Name: "Small", Price: 15},
		{Name: "Plain", Price: 25},
		{Name: "With Egg", Price: 35},
	}
)

func sized(id, name string, cat Category, sizes []Variant) MenuItem {
	return MenuItem{ID: id, Name: name, Category: cat, Variants: append([]Variant(nil), sizes...)}
}

func fixed(id, name string, cat Category, price float64, description string) MenuItem {
	return MenuItem{ID: id, Name: name, Category: cat, BasePrice: Price(price), Description: description}
}

// DefaultMenu returns the shop's built-in menu. Every call returns fresh
// copies.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		sized("ic-1", "Caramel Macchiato", CategoryIcedCoffee, icedCoffeeSizes),
		sized("ic-2", "Mocha Latte", CategoryIcedCoffee, icedCoffeeSizes),
		sized("ic-3", "Vanilla Latte", CategoryIcedCoffee, icedCoffeeSizes),
		sized("ic-4", "Cappucino Latte", CategoryIcedCoffee, icedCoffeeSizes),
		sized("ic-5", "Vietnamese Coffee", CategoryIcedCoffee, icedCoffeeSizes),
		sized("ic-6", "Dirty Matcha", CategoryIcedCoffee, icedCoffeeSizes),
		sized("ic-7", "Spanish Latte", CategoryIcedCoffee, icedCoffeeSizes),
		sized("ic-8", "Oreo Cream Latte", CategoryIcedCoffee, icedCoffeeSizes),

		sized("fs-1", "Rootbeer", CategoryFruitSoda, fruitSodaSizes),
		sized("fs-2", "Strawberry", CategoryFruitSoda, fruitSodaSizes),
		sized("fs-3", "Apple Green", CategoryFruitSoda, fruitSodaSizes),
		sized("fs-4", "Bubble Gum", CategoryFruitSoda, fruitSodaSizes),
		sized("fs-5", "Blueberry", CategoryFruitSoda, fruitSodaSizes),

		fixed("hc-1", "Americano", CategoryHotCoffee, 49, ""),
		fixed("hc-2", "Latte", CategoryHotCoffee, 49, ""),
		fixed("hc-3", "Cappuccino", CategoryHotCoffee, 49, ""),
		fixed("hc-4", "Caramel Latte", CategoryHotCoffee, 49, ""),
		fixed("hc-5", "Mocha Latte", CategoryHotCoffee, 49, ""),
		fixed("hc-6", "Spanish Latte", CategoryHotCoffee, 49, ""),
		fixed("hc-7", "Matcha Latte", CategoryHotCoffee, 49, ""),
		fixed("hc-8", "Hot Chocolate", CategoryHotCoffee, 49, ""),

		sized("fr-1", "Happy Hearts Signature", CategoryFrappe, frappeSizes),
		sized("fr-2", "Caramel Frappe", CategoryFrappe, frappeSizes),
		sized("fr-3", "Cookies & Cream", CategoryFrappe, frappeSizes),
		sized("fr-4", "Strawberry Frappe", CategoryFrappe, frappeSizes),
		sized("fr-5", "Mocha Frappe", CategoryFrappe, frappeSizes),
		sized("fr-6", "Matcha Frappe", CategoryFrappe, frappeSizes),
		sized("fr-7", "Vanilla Frappe", CategoryFrappe, frappeSizes),
		sized("fr-8", "Choco Frappe", CategoryFrappe, frappeSizes),

		sized("mt-1", "Chocolate", CategoryMilkTea, milkTeaSizes),
		sized("mt-2", "Matcha", CategoryMilkTea, milkTeaSizes),
		sized("mt-3", "Salted Caramel", CategoryMilkTea, milkTeaSizes),
		sized("mt-4", "Cookies n' Cream", CategoryMilkTea, milkTeaSizes),
		sized("mt-5", "Okinawa", CategoryMilkTea, milkTeaSizes),
		sized("mt-6", "Thai Milk Tea", CategoryMilkTea, milkTeaSizes),
		sized("mt-7", "Honey Dew", CategoryMilkTea, milkTeaSizes),

		sized("sn-b1", "Regular Burger", CategorySnacks, []Variant{{Name: "Solo A", Price: 35}, {Name: "Combo 1 (w/ Drink)", Price: 45}}),
		sized("sn-b2", "Cheese Burger", CategorySnacks, []Variant{{Name: "Solo B", Price: 40}, {Name: "Combo 2 (w/ Drink)", Price: 55}}),
		sized("sn-b3", "Ham & Cheese Burger", CategorySnacks, []Variant{{Name: "Solo C", Price: 65}, {Name: "Combo 3 (w/ Drink)", Price: 85}}),
		fixed("sn-b4", "Date Combo", CategorySnacks, 110, "2 Burgers + Drinks"),
		fixed("sn-b5", "Barkada Combo", CategorySnacks, 160, "3 Burgers + Pitcher"),

		fixed("sn-h1", "Regular Hotdog", CategorySnacks, 35, ""),
		fixed("sn-h2", "Classic Hotdog", CategorySnacks, 45, ""),
		fixed("sn-h3", "Hungarian Big Hotdog", CategorySnacks, 69, ""),
		fixed("sn-h4", "Cheesy Overload Hotdog", CategorySnacks, 55, ""),

		fixed("sn-n1", "Solo Nachos", CategorySnacks, 55, "Cheesy & Veggie on top"),
		fixed("sn-n2", "Double Nachos", CategorySnacks, 85, "Cheesy, Veggie & Ground Meat"),
		fixed("sn-n3", "Nachos Overload", CategorySnacks, 130, "French Fries, Cheesy, Veggie & Meat"),

		sized("sn-f1", "French Fries", CategorySnacks, friesSizes),
		fixed("sn-f2", "Cheesy Fries Overload", CategorySnacks, 65, ""),
		fixed("sn-f3", "Cheesy Fries & Ham", CategorySnacks, 75, ""),
		fixed("sn-f4", "Cheesy + Hotdog Overload", CategorySnacks, 95, ""),

		fixed("sn-s1", "Ham & Cheese Sandwich", CategorySnacks, 45, ""),
		fixed("sn-s2", "Tuna Sandwich", CategorySnacks, 55, ""),
		fixed("sn-s3", "Pancit Canton", CategorySnacks, 30, ""),
		fixed("sn-ch1", "Happy Clubhouse Set A", CategorySnacks, 140, "4pcs Sandwiches + Medium Fries"),
		fixed("sn-ch2", "Happy Clubhouse Set B", CategorySnacks, 170, "4pcs Sandwiches + Medium Fries + 3 Ice Tea"),
		fixed("sn-ch3", "Happy Clubhouse Set C", CategorySnacks, 180, "6pcs Sandwiches + Large Fries"),

		sized("ml-1", "Lugaw", CategoryMeals, porridgeSizes),
		sized("ml-2", "Sopas", CategoryMeals, porridgeSizes),
		sized("ml-3", "Happy Ramen", CategoryMeals, []Variant{{Name: "Regular", Price: 65}, {Name: "Overload", Price: 85}}),

		sized("ds-1", "Halo-Halo Overload", CategoryDessert, dessertSizes),
		sized("ds-2", "Mais Con Yelo", CategoryDessert, dessertSizes),
		sized("ds-3", "Saging Con Yelo", CategoryDessert, dessertSizes),
		sized("ds-4", "Manga Con Yelo", CategoryDessert, dessertSizes),
		sized("ds-5", "Crema De Leche", CategoryDessert, dessertSizes),
		sized("ds-6", "Mango Graham", CategoryDessert, []Variant{{Name: "Small", Price: 55}, {Name: "Regular", Price: 80}, {Name: "Large", Price: 120}}),
	}
}
