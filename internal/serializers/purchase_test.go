package serializers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schmebulock/server/internal/models"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestPurchaseValidatePriceRequired(t *testing.T) {
	s := NewPurchaseSerializer("USD")
	p := &PurchaseWrite{Item: uintPtr(1), Location: uintPtr(2)}

	err := s.Validate(p, nil)
	errs := requireValidationErrors(t, err)

	// Цена обязательна на уровне сериализатора, хотя хранение допускает NULL
	assert.Equal(t, []string{MsgRequired}, errs.Fields["price"])
}

func TestPurchaseValidateInvalidCurrency(t *testing.T) {
	s := NewPurchaseSerializer("USD")
	p := &PurchaseWrite{
		Price:    decPtr("10"),
		Currency: strPtr("XYZ"),
		Item:     uintPtr(1),
		Location: uintPtr(2),
	}

	err := s.Validate(p, nil)
	errs := requireValidationErrors(t, err)

	assert.Equal(t, []string{"'XYZ' is an invalid currency code."}, errs.Fields["currency"])
}

func TestPurchaseValidateTooManyDecimals(t *testing.T) {
	s := NewPurchaseSerializer("USD")
	p := &PurchaseWrite{
		Price:    decPtr("10.12345"),
		Item:     uintPtr(1),
		Location: uintPtr(2),
	}

	err := s.Validate(p, nil)
	errs := requireValidationErrors(t, err)

	// Лишние знаки отклоняются, а не округляются колонкой
	assert.Equal(t, []string{MsgTooManyDecimals}, errs.Fields["price"])
}

func TestPurchaseValidateThreeDecimalsOK(t *testing.T) {
	s := NewPurchaseSerializer("USD")
	p := &PurchaseWrite{
		Price:    decPtr("10.123"),
		Item:     uintPtr(1),
		Location: uintPtr(2),
	}

	require.NoError(t, s.Validate(p, nil))
}

func TestPurchaseValidateOK(t *testing.T) {
	s := NewPurchaseSerializer("USD")
	p := &PurchaseWrite{
		Price:    decPtr("10"),
		Item:     uintPtr(1),
		Location: uintPtr(2),
	}

	require.NoError(t, s.Validate(p, nil))
}

func TestPurchaseApplyDefaultsCurrency(t *testing.T) {
	s := NewPurchaseSerializer("EUR")
	var purchase models.Purchase
	p := &PurchaseWrite{Price: decPtr("10"), Item: uintPtr(1), Location: uintPtr(2)}

	require.NoError(t, s.Apply(p, &purchase))

	require.NotNil(t, purchase.Price)
	assert.Equal(t, "EUR", purchase.PriceCurrency)
	assert.Equal(t, uint(1), purchase.ItemID)
	assert.Equal(t, uint(2), purchase.LocationID)
	assert.Nil(t, purchase.OrderID)
}

func TestPurchaseApplyExplicitCurrency(t *testing.T) {
	s := NewPurchaseSerializer("USD")
	var purchase models.Purchase
	p := &PurchaseWrite{
		Price:    decPtr("99.5"),
		Currency: strPtr("RUB"),
		Item:     uintPtr(1),
		Order:    uintPtr(3),
		Location: uintPtr(2),
	}

	require.NoError(t, s.Apply(p, &purchase))

	assert.Equal(t, "RUB", purchase.PriceCurrency)
	require.NotNil(t, purchase.OrderID)
	assert.Equal(t, uint(3), *purchase.OrderID)
}

func TestPurchaseToWireFixedPrecision(t *testing.T) {
	s := NewPurchaseSerializer("USD")
	purchase := models.Purchase{
		ID:            1,
		Price:         decPtr("10"),
		PriceCurrency: "USD",
		ItemID:        5,
		LocationID:    6,
	}

	wire, err := s.ToWire(&purchase, false)
	require.NoError(t, err)

	// Ровно три знака после запятой: 10 на входе, "10.000" на выходе
	assert.Equal(t, "10.000", wire["price"])
	assert.Equal(t, "USD", wire["currency"])
	assert.Equal(t, uint(5), wire["item"])
	assert.Nil(t, wire["order"])
	assert.Equal(t, uint(6), wire["location"])
}

func samplePurchase() models.Purchase {
	volume := 0.002
	date, _ := time.Parse(DateFormat, "2017-06-17")
	return models.Purchase{
		ID:            1,
		Price:         decPtr("12.5"),
		PriceCurrency: "EUR",
		ItemID:        5,
		Item: &models.Item{
			ID:      5,
			Name:    "Milk",
			BrandID: 3,
			Brand:   &models.Brand{ID: 3, Name: "DairyCo"},
			Volume:  &volume,
			Unit:    "l",
		},
		OrderID: uintPtr(7),
		Order: &models.Order{
			ID:      7,
			Date:    date,
			StoreID: 4,
			Store:   &models.Store{ID: 4, Name: "PriceSmart"},
		},
		LocationID: 6,
		Location: &models.Location{
			ID:         6,
			Address:    "Main St 1",
			DistrictID: 8,
			District: &models.District{
				ID:     8,
				Name:   "Central",
				CityID: 9,
				City: &models.City{
					ID:        9,
					Name:      "San Jose",
					CountryID: 10,
					Country:   &models.Country{ID: 10, Name: "Costa Rica"},
				},
			},
		},
	}
}

func TestPurchaseToWireNestedResolvesChains(t *testing.T) {
	s := NewPurchaseSerializer("USD")
	purchase := samplePurchase()

	wire, err := s.ToWire(&purchase, true)
	require.NoError(t, err)

	assert.Equal(t, "12.500", wire["price"])
	assert.Equal(t, "EUR", wire["currency"])

	item, ok := wire["item"].(Wire)
	require.True(t, ok)
	assert.Equal(t, "Milk", item["name"])
	assert.InDelta(t, 2.0, item["volume"].(float64), 1e-9)
	assert.Equal(t, "l", item["unit"])
	brand := item["brand"].(Wire)
	assert.Equal(t, "DairyCo", brand["name"])

	order, ok := wire["order"].(Wire)
	require.True(t, ok)
	assert.Equal(t, "2017-06-17", order["date"])
	store := order["store"].(Wire)
	assert.Equal(t, "PriceSmart", store["name"])

	location, ok := wire["location"].(Wire)
	require.True(t, ok)
	district := location["district"].(Wire)
	assert.Equal(t, "Central", district["name"])
	city := district["city"].(Wire)
	assert.Equal(t, "San Jose", city["name"])
	country := city["country"].(Wire)
	assert.Equal(t, "Costa Rica", country["name"])
}

func TestPurchaseToWireFlatExposesIdentifiers(t *testing.T) {
	s := NewPurchaseSerializer("USD")
	purchase := samplePurchase()

	wire, err := s.ToWire(&purchase, false)
	require.NoError(t, err)

	// Плоский вид: только идентификаторы, без вложенных объектов
	assert.Equal(t, uint(5), wire["item"])
	assert.Equal(t, uintPtr(7), wire["order"])
	assert.Equal(t, uint(6), wire["location"])
}
