package services

import (
	"log"
	"os"
	"testing"

	"legal_wizard_go/services/i18n"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		log.Fatalf("failed to load translations: %v", err)
	}
	os.Exit(m.Run())
}
