package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorsEmpty(t *testing.T) {
	errs := NewValidationErrors()

	assert.False(t, errs.HasErrors())
	assert.NoError(t, errs.OrNil())
}

func TestValidationErrorsBody(t *testing.T) {
	errs := NewValidationErrors()
	errs.AddField("volume", MsgVolumeRequired)
	errs.AddField("weight", MsgWeightRequired)
	errs.AddNonField(MsgMutuallyExclusive)

	require.True(t, errs.HasErrors())
	body := errs.Body()

	assert.Equal(t, []string{MsgVolumeRequired}, body["volume"])
	assert.Equal(t, []string{MsgWeightRequired}, body["weight"])
	assert.Equal(t, []string{MsgMutuallyExclusive}, body[NonFieldErrorsKey])
}

func TestValidationErrorsError(t *testing.T) {
	errs := NewValidationErrors()
	errs.AddField("name", MsgRequired)
	errs.AddNonField(MsgMutuallyExclusive)

	assert.Equal(t, "name: This field is required.; "+MsgMutuallyExclusive, errs.Error())
}
