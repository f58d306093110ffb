package service

import (
	"github.com/weathercard/backend/internal/domain"
)

// PreferenceStore is re-exported from domain for convenience
type PreferenceStore = domain.PreferenceStore
