package models

import "strings"

// DemoImages maps each category to the stock image staged for a seller
// listing before the image step runs.
var DemoImages = map[Category]string{
	CategoryElectronics:  "https://images.pexels.com/photos/577769/pexels-photo-577769.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	CategoryClothes:      "https://images.pexels.com/photos/914668/pexels-photo-914668.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	CategoryHomeware:     "https://images.pexels.com/photos/4439901/pexels-photo-4439901.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	CategoryKitchenware:  "https://images.pexels.com/photos/6996085/pexels-photo-6996085.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	CategoryMobilePhones: "https://images.pexels.com/photos/607812/pexels-photo-607812.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	CategorySupplements:  "https://images.pexels.com/photos/4047040/pexels-photo-4047040.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
}

// SeedProducts is the static product catalog shown to customers alongside
// seller listings.
var SeedProducts = []Product{
	{
		ID:          "e1",
		Name:        "Smart LED TV 43\"",
		Category:    CategoryElectronics,
		Price:       32999,
		Image:       "https://images.pexels.com/photos/5721868/pexels-photo-5721868.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Ultra HD Smart LED TV with built-in voice assistant and streaming apps.",
	},
	{
		ID:          "e2",
		Name:        "Wireless Bluetooth Earbuds",
		Category:    CategoryElectronics,
		Price:       2999,
		Image:       "https://images.pexels.com/photos/3780681/pexels-photo-3780681.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "True wireless earbuds with active noise cancellation and long battery life.",
	},
	{
		ID:          "e3",
		Name:        "Professional DSLR Camera",
		Category:    CategoryElectronics,
		Price:       58990,
		Image:       "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "High-resolution DSLR camera with multiple lenses and professional features.",
	},
	{
		ID:          "c1",
		Name:        "Men's Formal Shirt",
		Category:    CategoryClothes,
		Price:       1499,
		Image:       "https://images.pexels.com/photos/297933/pexels-photo-297933.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Premium cotton formal shirt for men in various colors and sizes.",
	},
	{
		ID:          "c2",
		Name:        "Women's Summer Dress",
		Category:    CategoryClothes,
		Price:       1999,
		Image:       "https://images.pexels.com/photos/291762/pexels-photo-291762.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Lightweight and comfortable summer dress for women in floral print.",
	},
	{
		ID:          "c3",
		Name:        "Kids Winter Jacket",
		Category:    CategoryClothes,
		Price:       2499,
		Image:       "https://images.pexels.com/photos/6311641/pexels-photo-6311641.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Warm and comfortable winter jacket for kids with water-resistant material.",
	},
	{
		ID:          "h1",
		Name:        "Decorative Wall Clock",
		Category:    CategoryHomeware,
		Price:       1299,
		Image:       "https://images.pexels.com/photos/1095601/pexels-photo-1095601.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Modern design wall clock for home decor with silent movement.",
	},
	{
		ID:          "h2",
		Name:        "Luxury Bedsheet Set",
		Category:    CategoryHomeware,
		Price:       2999,
		Image:       "https://images.pexels.com/photos/1034584/pexels-photo-1034584.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Premium cotton bedsheet set with pillow covers in various designs.",
	},
	{
		ID:          "h3",
		Name:        "Indoor Plants Set",
		Category:    CategoryHomeware,
		Price:       1499,
		Image:       "https://images.pexels.com/photos/1358900/pexels-photo-1358900.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Set of 3 indoor plants with decorative pots for home decoration.",
	},
	{
		ID:          "k1",
		Name:        "Stainless Steel Cookware Set",
		Category:    CategoryKitchenware,
		Price:       4999,
		Image:       "https://images.pexels.com/photos/4871119/pexels-photo-4871119.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "High-quality stainless steel cookware set with non-stick coating.",
	},
	{
		ID:          "k2",
		Name:        "Electric Hand Mixer",
		Category:    CategoryKitchenware,
		Price:       1899,
		Image:       "https://images.pexels.com/photos/3808865/pexels-photo-3808865.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Powerful electric hand mixer for baking and cooking with multiple speed settings.",
	},
	{
		ID:          "k3",
		Name:        "Wooden Cutting Board",
		Category:    CategoryKitchenware,
		Price:       899,
		Image:       "https://images.pexels.com/photos/5765/wood-kitchen-cutting-tool.jpg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Premium wooden cutting board for kitchen use, easy to clean and maintain.",
	},
	{
		ID:          "m1",
		Name:        "Flagship Smartphone",
		Category:    CategoryMobilePhones,
		Price:       89999,
		Image:       "https://images.pexels.com/photos/47261/pexels-photo-47261.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Latest flagship smartphone with high-performance processor and advanced camera system.",
	},
	{
		ID:          "m2",
		Name:        "Budget Smartphone",
		Category:    CategoryMobilePhones,
		Price:       15999,
		Image:       "https://images.pexels.com/photos/699122/pexels-photo-699122.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Affordable smartphone with great features and long battery life.",
	},
	{
		ID:          "m3",
		Name:        "Tablet Pro",
		Category:    CategoryMobilePhones,
		Price:       45999,
		Image:       "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Professional tablet with large display and powerful performance for work and entertainment.",
	},
	{
		ID:          "s1",
		Name:        "Whey Protein Powder",
		Category:    CategorySupplements,
		Price:       2499,
		Image:       "https://images.pexels.com/photos/1815389/pexels-photo-1815389.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "High-quality whey protein powder for muscle growth and recovery.",
	},
	{
		ID:          "s2",
		Name:        "Multivitamin Tablets",
		Category:    CategorySupplements,
		Price:       899,
		Image:       "https://images.pexels.com/photos/139398/vitamins-tablets-pharmacy-medicine-139398.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Daily multivitamin tablets for overall health and immunity.",
	},
	{
		ID:          "s3",
		Name:        "Omega-3 Fish Oil Capsules",
		Category:    CategorySupplements,
		Price:       1199,
		Image:       "https://images.pexels.com/photos/3683073/pexels-photo-3683073.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description: "Omega-3 fish oil capsules for heart health and brain function.",
	},
}

// SeedProductByID looks up a seed product. The boolean is false on a miss.
func SeedProductByID(id string) (Product, bool) {
	for _, p := range SeedProducts {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// SeedProductsByCategory filters the seed catalog case-insensitively. An
// unknown category yields an empty slice, not an error.
func SeedProductsByCategory(category string) []Product {
	matched := []Product{}
	for _, p := range SeedProducts {
		if strings.EqualFold(string(p.Category), category) {
			matched = append(matched, p)
		}
	}
	return matched
}
