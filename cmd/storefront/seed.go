package main

import (
	"github.com/shopspring/decimal"

	catalogmodel "storefront/pkg/catalog/domain/model"
	catalogservice "storefront/pkg/catalog/domain/service"
	usermodel "storefront/pkg/user/domain/model"
	userservice "storefront/pkg/user/domain/service"
)

// seed loads the demo catalog and the two demo accounts.
func seed(catalog catalogservice.CatalogService, users userservice.UserService) error {
	drafts := []catalogmodel.Draft{
		{
			Name:        "Wireless Headphones",
			Price:       decimal.NewFromFloat(99.99),
			Category:    "Electronics",
			Description: "High-quality wireless headphones with noise cancellation",
			Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       50,
		},
		{
			Name:        "Smart Watch",
			Price:       decimal.NewFromFloat(199.99),
			Category:    "Electronics",
			Description: "Feature-rich smartwatch with health tracking",
			Image:       "https://images.pexels.com/photos/393047/pexels-photo-393047.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       30,
		},
		{
			Name:        "Laptop Stand",
			Price:       decimal.NewFromFloat(49.99),
			Category:    "Accessories",
			Description: "Ergonomic laptop stand for better posture",
			Image:       "https://images.pexels.com/photos/7974/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=500",
			Stock:       25,
		},
		{
			Name:        "Bluetooth Speaker",
			Price:       decimal.NewFromFloat(79.99),
			Category:    "Electronics",
			Description: "Portable Bluetooth speaker with excellent sound quality",
			Image:       "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       40,
		},
	}

	for _, draft := range drafts {
		if _, err := catalog.Create(draft); err != nil {
			return err
		}
	}

	if _, err := users.Register("admin", "admin@example.com", "admin123", usermodel.RoleAdmin); err != nil {
		return err
	}
	if _, err := users.Register("customer", "customer@example.com", "customer123", usermodel.RoleCustomer); err != nil {
		return err
	}
	return nil
}
