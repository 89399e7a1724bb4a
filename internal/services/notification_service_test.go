package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scmdash/scm-backend/internal/i18n"
)

func TestNotificationMessagesFromCatalogue(t *testing.T) {
	svc := NewNotificationService("en", 10)

	n := svc.Success("inventory", i18n.KeyInventoryCreatedTitle, i18n.KeyInventoryCreated, "Bolts")
	assert.Equal(t, LevelSuccess, n.Level)
	assert.Equal(t, "Item Added", n.Title)
	assert.Equal(t, "Bolts has been added to inventory.", n.Message)

	n = svc.Error("inventory", i18n.KeyInventoryFailed, "add")
	assert.Equal(t, "Error", n.Title)
	assert.Equal(t, "Failed to add inventory item. Please try again.", n.Message)
}

func TestNotificationFeedIsBounded(t *testing.T) {
	svc := NewNotificationService("en", 3)
	for i := 0; i < 5; i++ {
		svc.Success("orders", i18n.KeySuccess, i18n.KeyOrderStatusUpdated, fmt.Sprintf("ORD-%d", i), "shipped")
	}

	recent := svc.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "Order ORD-4 status updated to shipped", recent[0].Message)
	assert.Equal(t, "Order ORD-2 status updated to shipped", recent[2].Message)

	assert.Len(t, svc.Recent(1), 1)

	svc.Clear()
	assert.Empty(t, svc.Recent(0))
}
