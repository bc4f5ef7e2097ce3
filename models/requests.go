// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerationRequest is a validated, mode specific request body ready to be
// sent to the generation service.
type GenerationRequest interface {
	Mode() Mode
}

// PassphraseRequest is the body of POST /generate/passphrase.
type PassphraseRequest struct {
	Length         int    `json:"length"`
	IncludeNumbers bool   `json:"includeNumbers"`
	IncludeSpecial bool   `json:"includeSpecial"`
	ExcludeChars   string `json:"excludeChars"`
}

// Mode implements [GenerationRequest].
func (PassphraseRequest) Mode() Mode { return ModePassphrase }

// SSHKeyRequest is the body of POST /generate/ssh.
type SSHKeyRequest struct {
	Comment    string `json:"comment"`
	KeyType    string `json:"keyType"`
	KeySize    int    `json:"keySize"`
	Passphrase string `json:"passphrase,omitempty"`
}

// Mode implements [GenerationRequest].
func (SSHKeyRequest) Mode() Mode { return ModeSSHKey }

// RSAKeyRequest is the body of POST /generate/rsa.
type RSAKeyRequest struct {
	Comment    string `json:"comment"`
	KeySize    int    `json:"keySize"`
	Passphrase string `json:"passphrase,omitempty"`
}

// Mode implements [GenerationRequest].
func (RSAKeyRequest) Mode() Mode { return ModeRSAKey }

// PGPKeyRequest is the body of POST /generate/pgp.
//
// Exactly one of KeyLength (RSA) and Curve (ECC) is set.
type PGPKeyRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Comment    string `json:"comment,omitempty"`
	KeyType    string `json:"keyType"`
	KeyLength  int    `json:"keyLength,omitempty"`
	Curve      string `json:"curve,omitempty"`
	ExpireTime string `json:"expireTime"`
	Passphrase string `json:"passphrase,omitempty"`
}

// Mode implements [GenerationRequest].
func (PGPKeyRequest) Mode() Mode { return ModePGPKey }
