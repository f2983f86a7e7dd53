package db

import (
	"path/filepath"
	"testing"

	"legal_wizard_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAndMigrate(t *testing.T) {
	DB = nil
	assert.Error(t, AutoMigrate(&models.WizardEvent{}), "migrating before Initialize fails")
	assert.NoError(t, Close())

	path := filepath.Join(t.TempDir(), "nested", "app.db")
	require.NoError(t, Initialize(path, "production"))
	t.Cleanup(func() {
		Close()
		DB = nil
	})

	require.NoError(t, AutoMigrate(&models.WizardEvent{}))
	assert.True(t, DB.Migrator().HasTable("wizard_events"))

	event := models.WizardEvent{SessionID: "s1", Action: models.WizardActionReset, Outcome: models.WizardOutcomeSuccess, FromStep: "PREVIEW", ToStep: "DOCUMENT_SELECT"}
	require.NoError(t, DB.Create(&event).Error)
	assert.NotEmpty(t, event.ID)
}
