// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/layer-quickstart/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, appID, userID string) string {
	var b strings.Builder

	b.WriteString("Application: Layer Quick Start\n")
	for _, line := range info.Lines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("App ID: ")
	b.WriteString(valueOrNA(appID))
	b.WriteString("\n")
	b.WriteString("User: ")
	b.WriteString(valueOrNA(userID))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return models.NotAvailable
	}
	return v
}
