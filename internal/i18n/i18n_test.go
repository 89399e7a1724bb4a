package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	require.NoError(t, Initialize())

	assert.Equal(t, "Item Added", T("en", KeyInventoryCreatedTitle))
	assert.Equal(t, "Bolts has been added to inventory.", T("en", KeyInventoryCreated, "Bolts"))
	assert.Equal(t, "Order ORD-1 status updated to shipped", T("en", KeyOrderStatusUpdated, "ORD-1", "shipped"))
	assert.Equal(t, "已新增品項", T("zh_TW", KeyInventoryCreatedTitle))
}

func TestTranslateFallsBack(t *testing.T) {
	require.NoError(t, Initialize())

	assert.Equal(t, "Product Added", T("fr", KeyProductsCreatedTitle))
	assert.Equal(t, "missing.key", T("en", "missing.key"))
	assert.ElementsMatch(t, []string{"en", "zh_TW"}, GetSupportedLanguages())
}
