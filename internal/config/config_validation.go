// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Every field is optional at
// this stage; the client view enforces what the runtime needs.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// IsPlaceholderAppID reports whether appID is empty or still the shipped
// placeholder (compared case-insensitively).
func IsPlaceholderAppID(appID string) bool {
	appID = strings.TrimSpace(appID)
	return appID == "" || strings.EqualFold(appID, PlaceholderAppID)
}
