// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity derives the demo user identity and the fixed participant
// list of the quick-start conversation.
//
// The quick-start is meant to run twice at once, on a real machine and on an
// emulated one, so that the two instances talk to each other (and to the web
// dashboard). Each instance picks its user ID from the runtime fingerprint.
package identity

import (
	"os"
	"runtime"
	"strings"
)

const (
	// DeviceUserID is the identity used on a physical machine.
	DeviceUserID = "Device"
	// SimulatorUserID is the identity used on an emulated runtime.
	SimulatorUserID = "Simulator2"
	// DashboardUserID is the identity of the web dashboard participant.
	DashboardUserID = "Dashboard"

	emulatorFingerprintPrefix = "generic"
)

// UserID maps a runtime fingerprint to the demo user ID: fingerprints of
// emulated runtimes start with "generic".
func UserID(fingerprint string) string {
	if strings.HasPrefix(fingerprint, emulatorFingerprintPrefix) {
		return SimulatorUserID
	}
	return DeviceUserID
}

// Participants returns the participants of the quick-start conversation.
// The slice is a fresh copy on every call.
func Participants() []string {
	return []string{DeviceUserID, SimulatorUserID, DashboardUserID}
}

// Fingerprint returns override when set, otherwise a fingerprint built from
// the host name and platform, e.g. "generic-x86/linux/amd64" inside an
// emulator image whose host name starts with "generic".
func Fingerprint(override string) string {
	if override = strings.TrimSpace(override); override != "" {
		return override
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}

	return strings.ToLower(host) + "/" + runtime.GOOS + "/" + runtime.GOARCH
}
