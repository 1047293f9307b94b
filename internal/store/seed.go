package store

import "shopfront/internal/domain"

func price(v float64) *float64 { return &v }

// SeedProducts is the sample catalog persisted on first run.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Akıllı Telefon X",
			Price:       7999.99,
			OldPrice:    price(8999.99),
			Image:       "https://via.placeholder.com/300x300",
			Images: []string{
				"https://via.placeholder.com/600x600",
				"https://via.placeholder.com/600x600/eee",
				"https://via.placeholder.com/600x600/ddd",
				"https://via.placeholder.com/600x600/ccc",
			},
			Rating:      4.5,
			ReviewCount: 128,
			IsNew:       true,
			IsSale:      true,
			Category:    "Elektronik",
			Brand:       "TechX",
			Description: "Son teknoloji özelliklere sahip akıllı telefon. Yüksek performans, uzun pil ömrü ve profesyonel kamera sistemi ile hayatınızı kolaylaştırır.",
			Specifications: []domain.Specification{
				{Name: "Ekran", Value: "6.5 inç AMOLED"},
				{Name: "İşlemci", Value: "Octa-core 2.8 GHz"},
				{Name: "RAM", Value: "8 GB"},
				{Name: "Depolama", Value: "128 GB"},
				{Name: "Kamera", Value: "48 MP + 12 MP + 8 MP"},
				{Name: "Ön Kamera", Value: "32 MP"},
				{Name: "Batarya", Value: "4500 mAh"},
				{Name: "İşletim Sistemi", Value: "Android 12"},
			},
			Colors: []domain.ColorOption{
				{Name: "Siyah", Code: "#000000"},
				{Name: "Beyaz", Code: "#ffffff"},
				{Name: "Mavi", Code: "#0066cc"},
			},
			Stock: 15,
		},
		{
			ID:          2,
			Name:        "Kablosuz Kulaklık Pro",
			Price:       1299.99,
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.8,
			ReviewCount: 95,
			IsNew:       true,
			Category:    "Elektronik",
			Brand:       "AudioMax",
			Description: "Yüksek ses kalitesi ve uzun pil ömrü sunan kablosuz kulaklık.",
			Stock:       25,
		},
		{
			ID:          3,
			Name:        "Akıllı Saat Ultra",
			Price:       2499.99,
			OldPrice:    price(2999.99),
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.2,
			ReviewCount: 67,
			IsSale:      true,
			Category:    "Elektronik",
			Brand:       "TechX",
			Stock:       18,
		},
		{
			ID:          4,
			Name:        "Dizüstü Bilgisayar Pro",
			Price:       12999.99,
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.7,
			ReviewCount: 42,
			Category:    "Elektronik",
			Brand:       "CompTech",
			Stock:       8,
		},
		{
			ID:          5,
			Name:        "Bluetooth Hoparlör",
			Price:       899.99,
			OldPrice:    price(1199.99),
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.6,
			ReviewCount: 112,
			IsSale:      true,
			Category:    "Elektronik",
			Brand:       "AudioMax",
			Stock:       32,
		},
		{
			ID:          6,
			Name:        "Akıllı Ev Asistanı",
			Price:       1499.99,
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.3,
			ReviewCount: 78,
			IsNew:       true,
			Category:    "Elektronik",
			Brand:       "SmartHome",
			Stock:       20,
		},
		{
			ID:          7,
			Name:        "Oyun Konsolu",
			Price:       5999.99,
			OldPrice:    price(6499.99),
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.9,
			ReviewCount: 203,
			IsSale:      true,
			Category:    "Elektronik",
			Brand:       "GameTech",
			Stock:       12,
		},
		{
			ID:          8,
			Name:        "Kablosuz Şarj Standı",
			Price:       349.99,
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.4,
			ReviewCount: 56,
			Category:    "Elektronik",
			Brand:       "TechX",
			Stock:       45,
		},
		{
			ID:          9,
			Name:        "Akıllı Robot Süpürge",
			Price:       3499.99,
			OldPrice:    price(3999.99),
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.7,
			ReviewCount: 89,
			IsNew:       true,
			IsSale:      true,
			Category:    "Ev & Yaşam",
			Brand:       "SmartHome",
			Stock:       14,
		},
		{
			ID:          10,
			Name:        "Kahve Makinesi",
			Price:       1799.99,
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.5,
			ReviewCount: 72,
			Category:    "Ev & Yaşam",
			Brand:       "HomePlus",
			Stock:       22,
		},
		{
			ID:          11,
			Name:        "Spor Ayakkabı",
			Price:       899.99,
			OldPrice:    price(1299.99),
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.6,
			ReviewCount: 145,
			IsSale:      true,
			Category:    "Spor & Outdoor",
			Brand:       "SportMax",
			Stock:       38,
		},
		{
			ID:          12,
			Name:        "Koşu Bandı",
			Price:       4999.99,
			OldPrice:    price(5499.99),
			Image:       "https://via.placeholder.com/300x300",
			Rating:      4.3,
			ReviewCount: 38,
			IsNew:       true,
			IsSale:      true,
			Category:    "Spor & Outdoor",
			Brand:       "FitLife",
			Stock:       6,
		},
	}
}

// SeedOrders is the sample order history persisted on first run.
func SeedOrders() []domain.Order {
	return []domain.Order{
		{
			ID:            1001,
			CustomerName:  "Ahmet Yılmaz",
			CustomerEmail: "ahmet@example.com",
			Date:          "2023-08-15",
			Status:        domain.StatusCompleted,
			Total:         7999.99,
			Items: []domain.OrderItem{
				{ProductID: 1, Name: "Akıllı Telefon X", Quantity: 1, Price: 7999.99},
			},
			Address:       "Örnek Mahallesi, Örnek Sokak No:1, İstanbul",
			PaymentMethod: "Kredi Kartı",
		},
	}
}

// SeedUsers is the sample account list persisted on first run.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID:        1,
			Name:      "Admin Kullanıcı",
			Email:     "admin@example.com",
			Password:  "admin123",
			Role:      domain.RoleAdmin,
			CreatedAt: "2023-01-01",
		},
		{
			ID:        2,
			Name:      "Ahmet Yılmaz",
			Email:     "ahmet@example.com",
			Password:  "user123",
			Role:      domain.RoleUser,
			CreatedAt: "2023-02-15",
		},
		{
			ID:        3,
			Name:      "Test Admin",
			Email:     "kullanici@ornek.com",
			Password:  "sifre123",
			Role:      domain.RoleAdmin,
			CreatedAt: "2024-01-01",
		},
	}
}
