package seed

import (
	"log"

	"gorm.io/gorm"

	"github.com/Darrenmartin378/MidtermLabExam/models"
)

// Products loads the starter catalog. It is a no-op when the products
// table already has rows, so it is safe to run at every boot.
func Products(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			Name:        "MacBook Pro M3",
			Description: "The latest MacBook Pro featuring the M3 chip, 16-inch Retina display, and up to 24 hours of battery life.",
			Price:       2499.99,
			Stock:       15,
			Image:       "https://www.albagame.al/cdn/shop/files/render9_9d6707d5-9af6-499c-b435-33a96d5f6025.png?v=1721380266",
		},
		{
			Name:        "Logitech MX Master 3S",
			Description: "Premium wireless mouse with ultra-fast scrolling, ergonomic design, and customizable buttons.",
			Price:       99.99,
			Stock:       30,
			Image:       "https://gamextreme.ph/cdn/shop/files/6_684e1916-dabc-48a8-81f3-b7d66cf1069f_1024x1024.jpg?v=1721366816",
		},
		{
			Name:        "Sony WH-1000XM5",
			Description: "Industry-leading noise canceling headphones with exceptional sound quality and 30-hour battery life.",
			Price:       399.99,
			Stock:       25,
			Image:       "https://www.sony.com.ph/image/6145c1d32e6ac8e63a46c912dc33c5bb?fmt=pjpeg&wid=220&bgcolor=FFFFFF&bgc=FFFFFF",
		},
		{
			Name:        "Dell XPS 15",
			Description: "Ultra-thin and powerful laptop with InfinityEdge display, Intel Core i9 processor, and NVIDIA graphics.",
			Price:       1899.99,
			Stock:       18,
			Image:       "https://infotekph.com/wp-content/uploads/2023/05/1-3-scaled-e1677767746405.jpg",
		},
		{
			Name:        "Apple iPad Pro",
			Description: "12.9-inch Liquid Retina XDR display, M2 chip, and Apple Pencil support for professional creativity.",
			Price:       1099.99,
			Stock:       20,
			Image:       "https://switch.com.ph/cdn/shop/products/ROSA_iPad_Pro_Cellular_12-9_in_6th_Gen_Space_Gray_PDP_Image_5G_Position-1b.jpg?v=1667032260",
		},
		{
			Name:        "Samsung Galaxy S25 Ultra",
			Description: "Flagship smartphone with 200MP camera, 8K video recording, and advanced AI features.",
			Price:       1299.99,
			Stock:       22,
			Image:       "https://images.samsung.com/ph/smartphones/galaxy-s25-ultra/images/galaxy-s25-ultra-highlights-color-titanium-gray-back-mo.jpg",
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d products", len(products))
	return nil
}
