package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"schmebulock/server/internal/utils"
)

// DefaultCurrency — валюта по умолчанию, если в конфигурации не задана другая
const DefaultCurrency = "USD"

// WireDecimalPlaces — фиксированная точность денежных сумм на проводе
const WireDecimalPlaces = 3

// InvalidCurrencyError — код валюты вне распознаваемого набора
type InvalidCurrencyError struct {
	Code string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("'%s' is an invalid currency code.", e.Code)
}

// currencies — поддерживаемые коды валют ISO 4217 с названиями
// (порядок перечисления фиксирован и используется в метаданных как есть)
var currencies = []utils.Pair{
	{Key: "AUD", Value: "Australian Dollar"},
	{Key: "BRL", Value: "Brazilian Real"},
	{Key: "CAD", Value: "Canadian Dollar"},
	{Key: "CHF", Value: "Swiss Franc"},
	{Key: "CNY", Value: "Yuan Renminbi"},
	{Key: "CRC", Value: "Costa Rican Colon"},
	{Key: "CZK", Value: "Czech Koruna"},
	{Key: "DKK", Value: "Danish Krone"},
	{Key: "EUR", Value: "Euro"},
	{Key: "GBP", Value: "Pound Sterling"},
	{Key: "HKD", Value: "Hong Kong Dollar"},
	{Key: "HUF", Value: "Forint"},
	{Key: "IDR", Value: "Rupiah"},
	{Key: "ILS", Value: "New Israeli Sheqel"},
	{Key: "INR", Value: "Indian Rupee"},
	{Key: "JPY", Value: "Yen"},
	{Key: "KRW", Value: "Won"},
	{Key: "MXN", Value: "Mexican Peso"},
	{Key: "MYR", Value: "Malaysian Ringgit"},
	{Key: "NOK", Value: "Norwegian Krone"},
	{Key: "NZD", Value: "New Zealand Dollar"},
	{Key: "PHP", Value: "Philippine Peso"},
	{Key: "PLN", Value: "Zloty"},
	{Key: "RUB", Value: "Russian Ruble"},
	{Key: "SEK", Value: "Swedish Krona"},
	{Key: "SGD", Value: "Singapore Dollar"},
	{Key: "THB", Value: "Baht"},
	{Key: "TRY", Value: "Turkish Lira"},
	{Key: "USD", Value: "US Dollar"},
	{Key: "ZAR", Value: "Rand"},
}

var currencyIndex = buildIndex()

func buildIndex() map[string]string {
	index := make(map[string]string, len(currencies))
	for _, c := range currencies {
		index[c.Key] = c.Value
	}
	return index
}

// Money представляет денежную сумму: decimal-значение и код валюты
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// New создает Money; пустая валюта заменяется валютой по умолчанию
func New(amount decimal.Decimal, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{Amount: amount, Currency: currency}
}

// WireAmount форматирует сумму с фиксированными тремя знаками после запятой
func (m Money) WireAmount() string {
	return m.Amount.StringFixed(WireDecimalPlaces)
}

// ValidateCurrency проверяет, что код валюты входит в распознаваемый набор
func ValidateCurrency(code string) error {
	if _, ok := currencyIndex[code]; !ok {
		return &InvalidCurrencyError{Code: code}
	}
	return nil
}

// IsValid сообщает, распознается ли код валюты
func IsValid(code string) bool {
	_, ok := currencyIndex[code]
	return ok
}

// Label возвращает название валюты по коду
func Label(code string) string {
	return currencyIndex[code]
}

// Choices возвращает полный набор пар (код, название) в порядке перечисления
func Choices() []utils.Choice {
	choices := make([]utils.Choice, 0, len(currencies))
	for _, c := range currencies {
		choices = append(choices, utils.Choice{c.Key, c.Value})
	}
	return choices
}
