// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package options holds the static choice tables of the generation forms and
// rebuilds dependent choice lists when a primary selector changes.
//
// The same tables back the request validators, so a value offered by a form
// is always a value the validators accept.
package options

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/keyforge/models"
)

// ErrUnknownPrimary is returned when a primary selection has no entry in the
// dependent table of its mode.
var ErrUnknownPrimary = errors.New("unknown primary selection")

// ErrNoDependent is returned for modes without a primary/dependent pair.
var ErrNoDependent = errors.New("mode has no dependent options")

// Option is a single selectable choice.
type Option struct {
	Value string
	Label string
}

// Dependent is the fully rebuilt content of a dependent select field.
type Dependent struct {
	// Field is the name of the dependent form field.
	Field string
	// Options replaces every previous option of the field.
	Options []Option
	// Default is the value selected after the rebuild.
	Default string
}

// Contains reports whether value is one of the options.
func (d Dependent) Contains(value string) bool {
	for _, o := range d.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// SSH key types.
const (
	SSHKeyTypeRSA     = "rsa"
	SSHKeyTypeECDSA   = "ecdsa"
	SSHKeyTypeEd25519 = "ed25519"
)

// PGP key types.
const (
	PGPKeyTypeRSA = "RSA"
	PGPKeyTypeECC = "ECC"
)

type table struct {
	primaryField   string
	primary        []Option
	primaryDefault string
	dependentField func(primary string) string
	dependent      map[string][]Option
	defaults       map[string]string
}

var (
	sshKeySizes = map[string][]int{
		SSHKeyTypeRSA:     {2048, 4096},
		SSHKeyTypeECDSA:   {256, 384, 521},
		SSHKeyTypeEd25519: {256},
	}
	rsaKeySizes    = []int{3072, 4096}
	pgpKeyLengths  = []int{2048, 3072, 4096}
	pgpCurves      = []string{"curve25519", "p256", "p384", "p521"}
	rsaDefaultSize = 4096
)

var tables = map[models.Mode]table{
	models.ModeSSHKey: {
		primaryField: models.FieldKeyType,
		primary: []Option{
			{Value: SSHKeyTypeRSA, Label: "RSA"},
			{Value: SSHKeyTypeECDSA, Label: "ECDSA"},
			{Value: SSHKeyTypeEd25519, Label: "Ed25519"},
		},
		primaryDefault: SSHKeyTypeRSA,
		dependentField: func(string) string { return models.FieldKeySize },
		dependent: map[string][]Option{
			SSHKeyTypeRSA:     bitOptions(sshKeySizes[SSHKeyTypeRSA]),
			SSHKeyTypeECDSA:   bitOptions(sshKeySizes[SSHKeyTypeECDSA]),
			SSHKeyTypeEd25519: bitOptions(sshKeySizes[SSHKeyTypeEd25519]),
		},
		defaults: map[string]string{
			SSHKeyTypeRSA:     "4096",
			SSHKeyTypeECDSA:   "256",
			SSHKeyTypeEd25519: "256",
		},
	},
	models.ModePGPKey: {
		primaryField: models.FieldKeyType,
		primary: []Option{
			{Value: PGPKeyTypeRSA, Label: "RSA"},
			{Value: PGPKeyTypeECC, Label: "ECC"},
		},
		primaryDefault: PGPKeyTypeRSA,
		dependentField: func(primary string) string {
			if primary == PGPKeyTypeECC {
				return models.FieldCurve
			}
			return models.FieldKeyLength
		},
		dependent: map[string][]Option{
			PGPKeyTypeRSA: bitOptions(pgpKeyLengths),
			PGPKeyTypeECC: {
				{Value: "curve25519", Label: "Curve25519"},
				{Value: "p256", Label: "NIST P-256"},
				{Value: "p384", Label: "NIST P-384"},
				{Value: "p521", Label: "NIST P-521"},
			},
		},
		defaults: map[string]string{
			PGPKeyTypeRSA: "4096",
			PGPKeyTypeECC: "curve25519",
		},
	},
}

// Primary returns the primary selector of mode with its choices and default.
// ok is false for modes without a primary selector.
func Primary(mode models.Mode) (field string, choices []Option, def string, ok bool) {
	t, found := tables[mode]
	if !found {
		return "", nil, "", false
	}
	return t.primaryField, cloneOptions(t.primary), t.primaryDefault, true
}

// DependentFor rebuilds the dependent choice list of mode for the given
// primary selection. The returned list is a fresh slice; callers replace
// their previous options with it.
func DependentFor(mode models.Mode, primary string) (Dependent, error) {
	t, ok := tables[mode]
	if !ok {
		return Dependent{}, fmt.Errorf("%w: %s", ErrNoDependent, mode)
	}

	choices, ok := t.dependent[primary]
	if !ok {
		return Dependent{}, fmt.Errorf("%w: %s %q", ErrUnknownPrimary, mode, primary)
	}

	return Dependent{
		Field:   t.dependentField(primary),
		Options: cloneOptions(choices),
		Default: t.defaults[primary],
	}, nil
}

// Initial returns the dependent list for the default primary selection.
// Forms call it once when they are built.
func Initial(mode models.Mode) (Dependent, error) {
	t, ok := tables[mode]
	if !ok {
		return Dependent{}, fmt.Errorf("%w: %s", ErrNoDependent, mode)
	}
	return DependentFor(mode, t.primaryDefault)
}

// RSAKeySizes returns the key sizes offered by the RSA form.
func RSAKeySizes() []Option { return bitOptions(rsaKeySizes) }

// RSADefaultKeySize is the size preselected by the RSA form.
func RSADefaultKeySize() string { return strconv.Itoa(rsaDefaultSize) }

// SSHKeySizeAllowed reports whether size is valid for the SSH key type.
func SSHKeySizeAllowed(keyType string, size int) bool {
	return containsInt(sshKeySizes[keyType], size)
}

// SSHKeyTypeAllowed reports whether keyType is a known SSH key type.
func SSHKeyTypeAllowed(keyType string) bool {
	_, ok := sshKeySizes[keyType]
	return ok
}

// RSAKeySizeAllowed reports whether size is offered by the RSA form.
func RSAKeySizeAllowed(size int) bool { return containsInt(rsaKeySizes, size) }

// PGPKeyLengthAllowed reports whether length is a valid PGP RSA key length.
func PGPKeyLengthAllowed(length int) bool { return containsInt(pgpKeyLengths, length) }

// PGPCurveAllowed reports whether curve is a valid PGP ECC curve.
func PGPCurveAllowed(curve string) bool {
	for _, c := range pgpCurves {
		if c == curve {
			return true
		}
	}
	return false
}

func bitOptions(sizes []int) []Option {
	out := make([]Option, 0, len(sizes))
	for _, s := range sizes {
		v := strconv.Itoa(s)
		out = append(out, Option{Value: v, Label: v + " bits"})
	}
	return out
}

func cloneOptions(in []Option) []Option {
	return append([]Option(nil), in...)
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
