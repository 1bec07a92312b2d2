package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Akashnaii/Breadbox/config"
	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/app/repository"
	"github.com/Akashnaii/Breadbox/internal/db"
	"github.com/Akashnaii/Breadbox/pkg/util"
)

// Seeds the database from an XLSX workbook with two sheets:
//
//	Vendors: name | email | password | phone | address | restaurant_name | restaurant_address
//	Items:   vendor_email | name | description | price | type | available
//
// Seeded vendors are created pre-verified so the demo environment can
// log in without the email round trip. An admin user is created from
// ADMIN_EMAIL / ADMIN_PASSWORD when both are set.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}
	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := repository.NewUserRepository(db.GetDB())
	vendorRepo := repository.NewVendorRepository(db.GetDB())
	restaurantRepo := repository.NewRestaurantRepository(db.GetDB())
	itemRepo := repository.NewItemRepository(db.GetDB())

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		log.Fatal("Failed to open XLSX file:", err)
	}
	defer f.Close()

	vendorsByEmail, err := seedVendors(f, vendorRepo, restaurantRepo)
	if err != nil {
		log.Fatal("Failed to seed vendors:", err)
	}

	itemCount, err := seedItems(f, itemRepo, vendorsByEmail)
	if err != nil {
		log.Fatal("Failed to seed items:", err)
	}

	if err := seedAdmin(userRepo); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	fmt.Printf("Seed completed: %d vendors, %d items\n", len(vendorsByEmail), itemCount)
}

func seedVendors(f *excelize.File, vendorRepo repository.VendorRepository, restaurantRepo repository.RestaurantRepository) (map[string]uint, error) {
	rows, err := f.GetRows("Vendors")
	if err != nil {
		return nil, fmt.Errorf("failed to read Vendors sheet: %w", err)
	}

	vendorsByEmail := make(map[string]uint)
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 5 {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[0])
		email := strings.ToLower(strings.TrimSpace(row[1]))
		password := strings.TrimSpace(row[2])
		phone := strings.TrimSpace(row[3])
		address := strings.TrimSpace(row[4])

		if name == "" || email == "" || password == "" {
			skipped++
			continue
		}
		if phone != "" && !util.IsValidPhoneNumber(phone) {
			fmt.Printf("Skipping vendor %s: invalid phone %q\n", email, phone)
			skipped++
			continue
		}

		if _, err := vendorRepo.FindByEmail(email); err == nil {
			fmt.Printf("Vendor %s already exists, skipping\n", email)
			continue
		}

		hash, err := util.HashPassword(password)
		if err != nil {
			return nil, err
		}

		vendor := &model.Vendor{
			Account: model.Account{
				Name:         name,
				Email:        email,
				PasswordHash: hash,
				PhoneNumber:  phone,
				Address:      address,
				IsVerified:   true,
			},
		}
		if err := vendorRepo.Create(vendor); err != nil {
			return nil, fmt.Errorf("failed to create vendor %s: %w", email, err)
		}
		vendorsByEmail[email] = vendor.ID

		if len(row) >= 7 {
			restaurantName := strings.TrimSpace(row[5])
			restaurantAddress := strings.TrimSpace(row[6])
			if restaurantName != "" {
				restaurant := &model.Restaurant{
					VendorID: vendor.ID,
					Name:     restaurantName,
					Address:  restaurantAddress,
				}
				if err := restaurantRepo.Create(restaurant); err != nil {
					return nil, fmt.Errorf("failed to create restaurant for %s: %w", email, err)
				}
			}
		}
	}

	if skipped > 0 {
		fmt.Printf("Skipped %d vendor rows\n", skipped)
	}
	return vendorsByEmail, nil
}

func seedItems(f *excelize.File, itemRepo repository.ItemRepository, vendorsByEmail map[string]uint) (int, error) {
	rows, err := f.GetRows("Items")
	if err != nil {
		// Items sheet is optional
		return 0, nil
	}

	count := 0
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 5 {
			skipped++
			continue
		}

		vendorEmail := strings.ToLower(strings.TrimSpace(row[0]))
		name := strings.TrimSpace(row[1])
		description := strings.TrimSpace(row[2])
		priceStr := strings.TrimSpace(row[3])
		itemType := model.ItemType(strings.TrimSpace(row[4]))

		vendorID, ok := vendorsByEmail[vendorEmail]
		if !ok {
			fmt.Printf("Skipping item %q: unknown vendor %s\n", name, vendorEmail)
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 || name == "" || !model.ValidItemType(itemType) {
			skipped++
			continue
		}

		available := true
		if len(row) >= 6 {
			if v, err := strconv.ParseBool(strings.TrimSpace(row[5])); err == nil {
				available = v
			}
		}

		item := &model.Item{
			VendorID:    vendorID,
			Name:        name,
			Description: description,
			Price:       price,
			Type:        itemType,
			IsAvailable: available,
		}
		if err := itemRepo.Create(item); err != nil {
			return count, fmt.Errorf("failed to create item %q: %w", name, err)
		}
		count++
	}

	if skipped > 0 {
		fmt.Printf("Skipped %d item rows\n", skipped)
	}
	return count, nil
}

func seedAdmin(userRepo repository.UserRepository) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		fmt.Printf("Admin user %s already exists, skipping\n", email)
		return nil
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Account: model.Account{
			Name:         "Administrator",
			Email:        email,
			PasswordHash: hash,
			IsVerified:   true,
		},
		Role: model.RoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}

	fmt.Printf("Admin user %s created\n", email)
	return nil
}
