package serializers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schmebulock/server/internal/models"
)

func TestOrderValidateRequired(t *testing.T) {
	err := OrderSerializer{}.Validate(&OrderWrite{}, nil)
	errs := requireValidationErrors(t, err)

	assert.Equal(t, []string{MsgRequired}, errs.Fields["date"])
	assert.Equal(t, []string{MsgRequired}, errs.Fields["store"])
}

func TestOrderValidateBadDate(t *testing.T) {
	p := &OrderWrite{Date: strPtr("17.06.2017"), Store: uintPtr(1)}

	err := OrderSerializer{}.Validate(p, nil)
	errs := requireValidationErrors(t, err)

	assert.Equal(t, []string{MsgInvalidDate}, errs.Fields["date"])
}

func TestOrderApplyAndToWire(t *testing.T) {
	var order models.Order
	p := &OrderWrite{Date: strPtr("2017-06-17"), Store: uintPtr(4)}

	require.NoError(t, OrderSerializer{}.Validate(p, nil))
	require.NoError(t, OrderSerializer{}.Apply(p, &order))

	assert.Equal(t, uint(4), order.StoreID)
	assert.Equal(t, time.Date(2017, 6, 17, 0, 0, 0, 0, time.UTC), order.Date)

	order.ID = 7
	order.Store = &models.Store{ID: 4, Name: "PriceSmart"}

	flat, err := OrderSerializer{}.ToWire(&order, false)
	require.NoError(t, err)
	assert.Equal(t, "2017-06-17", flat["date"])
	assert.Equal(t, uint(4), flat["store"])

	nested, err := OrderSerializer{}.ToWire(&order, true)
	require.NoError(t, err)
	store := nested["store"].(Wire)
	assert.Equal(t, "PriceSmart", store["name"])
}
