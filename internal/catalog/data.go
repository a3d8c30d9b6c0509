package catalog

import (
	"github.com/douceurdz/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Collection ids, in the display order of the collection pages.
var (
	traditionalIDs = []int{9, 10, 11}
	festiveIDs     = []int{12, 13, 14}
	frenchIDs      = []int{15, 18, 7}
)

// Traditional returns the traditional cakes collection.
func (c *Catalog) Traditional() []Product {
	return c.Subset(traditionalIDs...)
}

// Festive returns the festive and celebratory cakes collection.
func (c *Catalog) Festive() []Product {
	return c.Subset(festiveIDs...)
}

// French returns the French patisserie collection.
func (c *Catalog) French() []Product {
	return c.Subset(frenchIDs...)
}

// Default builds the fixed storefront catalog. Prices are in DA.
func Default() (*Catalog, error) {
	return New([]Product{
		{
			ID:              1,
			Name:            "Classic Chocolate Dream",
			Price:           decimal.NewFromInt(2000),
			Description:     "Rich chocolate layer cake",
			FullDescription: "Three layers of moist chocolate cake filled with chocolate ganache and covered in chocolate buttercream.",
			Image:           "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500&auto=format",
			Flavors:         []string{"Dark Chocolate", "Milk Chocolate"},
			ServingSize:     "8-10 people",
			Category:        enums.CategoryChocolate,
		},
		{
			ID:              8,
			Name:            "Matcha Green Tea",
			Price:           decimal.NewFromInt(500),
			Description:     "Japanese-inspired green tea cake",
			FullDescription: "Delicate matcha green tea layers with white chocolate ganache and traditional matcha buttercream.",
			Image:           "https://images.unsplash.com/photo-1582716401301-b2407dc7563d?w=500&auto=format",
			Flavors:         []string{"Matcha", "White Chocolate"},
			ServingSize:     "8-10 people",
			Category:        enums.CategoryCream,
		},
		{
			ID:              6,
			Name:            "Lemon Lavender Dream",
			Price:           decimal.NewFromInt(1200),
			Description:     "Refreshing citrus & floral cake",
			FullDescription: "Zesty lemon cake infused with lavender, filled with lemon curd, and topped with lavender buttercream.",
			Image:           "https://images.unsplash.com/photo-1519340333755-56e9c1d04579?w=500&auto=format",
			Flavors:         []string{"Lemon", "Lavender"},
			ServingSize:     "8-10 people",
			Category:        enums.CategorySweet,
		},
		{
			ID:              9,
			Name:            "Traditional Baklava Cake",
			Price:           decimal.NewFromInt(700),
			Description:     "Middle Eastern inspired layered honey nut cake",
			FullDescription: "Delicate layers of phyllo pastry filled with crushed nuts, honey, and aromatic spices. A perfect blend of traditional Middle Eastern flavors in cake form.",
			Image:           "https://falasteenifoodie.com/wp-content/uploads/2024/10/best-baklava-1199x800.jpg",
			Flavors:         []string{"Honey", "Walnuts", "Pistachios", "Cinnamon", "Rose Water"},
			ServingSize:     "12-15 people",
			Category:        enums.CategorySweet,
		},
		{
			ID:              10,
			Name:            "Traditional Makrout",
			Price:           decimal.NewFromInt(600),
			Description:     "Date-filled semolina cookie cake",
			FullDescription: "A luxurious North African inspired cake based on traditional Makrout cookies. Layers of semolina pastry filled with sweet dates and honey, decorated with pistachios.",
			Image:           "https://sweetlycakes.com/wp-content/uploads/2021/05/makrout-16blog-1.jpg",
			Flavors:         []string{"Dates", "Semolina", "Honey", "Pistachios"},
			ServingSize:     "10-12 people",
			Category:        enums.CategorySweet,
		},
		{
			ID:              11,
			Name:            "Traditional Ghribia",
			Price:           decimal.NewFromInt(200),
			Description:     "Algerian hazelnut melt-in-mouth cake",
			FullDescription: "A luxurious Algerian-inspired cake based on traditional Ghribia cookies. Delicate, melt-in-your-mouth texture with ground hazelnuts, powdered sugar, and aromatic vanilla, decorated with whole hazelnuts.",
			Image:           "https://www.amourdecuisine.fr/wp-content/uploads/2014/07/ghribia-aux-noisettes-gateau-algerien-1.jpg",
			Flavors:         []string{"Hazelnut", "Vanilla", "Powdered Sugar", "Butter"},
			ServingSize:     "10-12 people",
			Category:        enums.CategorySweet,
		},
		{
			ID:              12,
			Name:            "Festive Ktayef",
			Price:           decimal.NewFromInt(1100),
			Description:     "Traditional Algerian celebration cake",
			FullDescription: "A luxurious Algerian festive cake made with delicate ktayef pastry, filled with a blend of nuts and sweet syrup. Perfect for special occasions and celebrations.",
			Image:           "https://gourmandiseassia.fr/wp-content/uploads/2019/05/20210718_1207571-1024x1024.jpg",
			Flavors:         []string{"Almonds", "Pistachios", "Honey", "Cinnamon"},
			ServingSize:     "12-15 people",
			Category:        enums.CategorySweet,
		},
		{
			// Price preserved from the source data as-is.
			ID:              13,
			Name:            "Traditional Grioueche",
			Price:           decimal.NewFromInt(1000000),
			Description:     "Crispy honey-dipped festive delight",
			FullDescription: "A beloved traditional festive treat featuring delicate, twisted pastry strands, deep-fried to golden perfection and generously drizzled with honey and sprinkled with sesame seeds. A must-have for celebrations and special occasions.",
			Image:           "https://extra.dz/wp-content/uploads/2020/09/Grioueche-Podif-pour-Site-0610.jpg",
			Flavors:         []string{"Honey", "Sesame", "Vanilla"},
			ServingSize:     "10-12 people",
			Category:        enums.CategorySweet,
		},
		{
			ID:              14,
			Name:            "Celebration Chocolate Cake",
			Price:           decimal.NewFromInt(1900),
			Description:     "Luxurious birthday chocolate cake",
			FullDescription: "A stunning celebration cake perfect for birthdays and special occasions. Multiple layers of rich chocolate sponge filled with chocolate ganache and decorated with chocolate shavings, fresh berries, and elegant golden accents.",
			Image:           "https://www.celebratebigday.com/wp-content/uploads/2021/01/Happy-Birthday-Chocolate-Cake.jpg",
			Flavors:         []string{"Dark Chocolate", "Chocolate Ganache", "Fresh Berries", "Vanilla"},
			ServingSize:     "12-15 people",
			Category:        enums.CategoryChocolate,
		},
		{
			ID:              15,
			Name:            "Classic Mille-feuille",
			Price:           decimal.NewFromInt(300),
			Description:     "French vanilla cream pastry cake",
			FullDescription: "Delicate layers of puff pastry filled with rich vanilla cream patissiere and topped with fondant icing. A classic French dessert transformed into an elegant cake.",
			Image:           "https://images.unsplash.com/photo-1621955511667-e2c316e4575d?w=500&auto=format",
			Flavors:         []string{"Vanilla Bean", "Cream Patissiere", "Fondant"},
			ServingSize:     "8-10 people",
			Category:        enums.CategoryCream,
		},
		{
			ID:              18,
			Name:            "Pain au Chocolat Gâteau",
			Price:           decimal.NewFromInt(50),
			Description:     "French chocolate pastry layer cake",
			FullDescription: "A decadent cake inspired by the classic French pain au chocolat. Layers of buttery croissant-style cake filled with rich dark chocolate ganache and finished with a chocolate glaze.",
			Image:           "https://mongraindesucre.com/wp-content/uploads/2024/07/1720912016_recette-facile-de-pains-au-chocolat-maison-savourez-votre-petit-dejeuner-1024x701.jpg",
			Flavors:         []string{"Dark Chocolate", "Butter Pastry", "Chocolate Ganache"},
			ServingSize:     "10-12 people",
			Category:        enums.CategoryChocolate,
		},
		{
			ID:              7,
			Name:            "Tiramisu Torte",
			Price:           decimal.NewFromInt(100),
			Description:     "French-style coffee and mascarpone cake",
			FullDescription: "A French patisserie take on the classic dessert: delicate layers of coffee-soaked genoise sponge with luxurious mascarpone cream filling, finished with a dusting of premium cocoa powder.",
			Image:           "https://images.unsplash.com/photo-1571115177098-24ec42ed204d?w=500&auto=format",
			Flavors:         []string{"Coffee", "Mascarpone", "Chocolate"},
			ServingSize:     "10-12 people",
			Category:        enums.CategoryCream,
		},
	})
}
