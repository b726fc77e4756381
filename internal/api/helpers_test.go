package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schmebulock/server/internal/models"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestPageParamsDefaults(t *testing.T) {
	c := testContext(t, "/api/v1/brands")

	offset, limit, page := pageParams(c, 100)

	assert.Equal(t, 0, offset)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 1, page)
}

func TestPageParamsSecondPage(t *testing.T) {
	c := testContext(t, "/api/v1/brands?page=3")

	offset, limit, page := pageParams(c, 100)

	assert.Equal(t, 200, offset)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 3, page)
}

func TestPageParamsIgnoresGarbage(t *testing.T) {
	c := testContext(t, "/api/v1/brands?page=abc")

	offset, _, page := pageParams(c, 100)

	assert.Equal(t, 0, offset)
	assert.Equal(t, 1, page)
}

func TestNestedRequested(t *testing.T) {
	// Любое непустое не-ложное значение включает вложенный вид
	assert.True(t, nestedRequested(testContext(t, "/api/v1/items?nested=true")))
	assert.True(t, nestedRequested(testContext(t, "/api/v1/items?nested=True")))
	assert.True(t, nestedRequested(testContext(t, "/api/v1/items?nested=1")))
	assert.True(t, nestedRequested(testContext(t, "/api/v1/items?nested=yes")))

	assert.False(t, nestedRequested(testContext(t, "/api/v1/items")))
	assert.False(t, nestedRequested(testContext(t, "/api/v1/items?nested=")))
	assert.False(t, nestedRequested(testContext(t, "/api/v1/items?nested=0")))
	assert.False(t, nestedRequested(testContext(t, "/api/v1/items?nested=false")))
	assert.False(t, nestedRequested(testContext(t, "/api/v1/items?nested=False")))
}

func TestStampActorCreate(t *testing.T) {
	var audit models.Audit
	actor := uint(7)

	stampActor(&audit, &actor, true)

	require.NotNil(t, audit.CreatedByID)
	assert.Equal(t, uint(7), *audit.CreatedByID)
	require.NotNil(t, audit.ModifiedByID)
	assert.Equal(t, uint(7), *audit.ModifiedByID)
}

func TestStampActorUpdateKeepsCreator(t *testing.T) {
	creator := uint(1)
	audit := models.Audit{CreatedByID: &creator, ModifiedByID: &creator}
	actor := uint(2)

	stampActor(&audit, &actor, false)

	assert.Equal(t, uint(1), *audit.CreatedByID)
	assert.Equal(t, uint(2), *audit.ModifiedByID)
}
