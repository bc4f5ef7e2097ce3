// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Mode identifies one of the generation workflows offered by the client.
// The mode decides which form is shown, which endpoint is called and how the
// response payload is interpreted.
type Mode int

const (
	// ModePassphrase generates a random passphrase.
	ModePassphrase Mode = iota
	// ModeSSHKey generates an OpenSSH key pair.
	ModeSSHKey
	// ModeRSAKey generates a PEM encoded RSA key pair.
	ModeRSAKey
	// ModePGPKey generates an OpenPGP key pair.
	ModePGPKey
)

// Modes lists every mode in tab order.
var Modes = []Mode{ModePassphrase, ModeSSHKey, ModeRSAKey, ModePGPKey}

// String returns the short machine name of the mode, the same token used in
// the endpoint path and on the command line.
func (m Mode) String() string {
	switch m {
	case ModePassphrase:
		return "passphrase"
	case ModeSSHKey:
		return "ssh"
	case ModeRSAKey:
		return "rsa"
	case ModePGPKey:
		return "pgp"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Title returns the human label shown on the mode tab.
func (m Mode) Title() string {
	switch m {
	case ModePassphrase:
		return "Passphrase"
	case ModeSSHKey:
		return "SSH Key"
	case ModeRSAKey:
		return "RSA Key"
	case ModePGPKey:
		return "PGP Key"
	default:
		return m.String()
	}
}

// Endpoint returns the service path that serves the mode.
func (m Mode) Endpoint() string {
	return "/generate/" + m.String()
}

// FailureMessage is shown when the service reports a failure without an
// explanation of its own.
func (m Mode) FailureMessage() string {
	switch m {
	case ModePassphrase:
		return "Failed to generate passphrase"
	case ModeSSHKey:
		return "Failed to generate SSH key"
	case ModeRSAKey:
		return "Failed to generate RSA key"
	case ModePGPKey:
		return "Failed to generate PGP key"
	default:
		return "Generation failed"
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= ModePassphrase && m <= ModePGPKey
}

// ParseMode resolves a mode from its machine name. Matching is case
// insensitive and accepts the "-key" suffix ("ssh-key").
func ParseMode(s string) (Mode, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-key")
	for _, m := range Modes {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
