package service

import (
	"strings"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	minNameLen        = 2
	maxNameLen        = 100
	maxDescriptionLen = 500
	maxCategoryLen    = 50
	maxSKULen         = 50
	maxCustomerLen    = 100
)

var (
	minPrice = decimal.RequireFromString("0.01")
	validate = validator.New()
)

func validateProductInput(in entities.ProductInput) error {
	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
		return entities.InvalidArgument("product name must be between %d and %d characters", minNameLen, maxNameLen)
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		return entities.InvalidArgument("description must not exceed %d characters", maxDescriptionLen)
	}
	if err := validatePrice(in.Price); err != nil {
		return err
	}
	if in.StockQuantity < 0 {
		return entities.InvalidArgument("stock quantity can not be negative")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return entities.InvalidArgument("category is required")
	}
	if utf8.RuneCountInString(category) > maxCategoryLen {
		return entities.InvalidArgument("category must not exceed %d characters", maxCategoryLen)
	}
	if utf8.RuneCountInString(in.SKU) > maxSKULen {
		return entities.InvalidArgument("SKU must not exceed %d characters", maxSKULen)
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThan(minPrice) {
		return entities.InvalidArgument("price must be at least %s", minPrice)
	}
	if !price.Equal(price.Round(2)) {
		return entities.InvalidArgument("price must have at most 2 decimal places")
	}
	return nil
}

func validateCreateOrder(in entities.CreateOrderInput) error {
	if len(in.Lines) == 0 {
		return entities.EmptyOrder()
	}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return entities.InvalidArgument("customer name is required")
	}
	if utf8.RuneCountInString(name) > maxCustomerLen {
		return entities.InvalidArgument("customer name must not exceed %d characters", maxCustomerLen)
	}
	if err := validate.Var(in.CustomerEmail, "required,email"); err != nil {
		return entities.InvalidArgument("customer email is not valid: %q", in.CustomerEmail)
	}

	for _, l := range in.Lines {
		if strings.TrimSpace(l.ProductID) == "" {
			return entities.InvalidArgument("product id is required for every order line")
		}
		if l.Quantity < 1 {
			return entities.InvalidQuantity(l.ProductID, l.Quantity)
		}
	}
	return nil
}
