// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
	"golang.org/x/crypto/ssh"
)

var (
	ErrEmptyKey          = errors.New("empty public key")
	ErrUnrecognisedKey   = errors.New("unrecognised public key format")
	ErrUnsupportedPEM    = errors.New("unsupported PEM block")
	ErrEmptyPGPKeyRing   = errors.New("armored block contains no keys")
	ErrUnsupportedCrypto = errors.New("unsupported public key algorithm")
)

const pgpArmorPrefix = "-----BEGIN PGP"

// keyInspector is the private implementation of [KeyInspector].
type keyInspector struct{}

// NewKeyInspector constructs a [KeyInspector].
func NewKeyInspector() KeyInspector {
	return &keyInspector{}
}

// Inspect implements [KeyInspector].
func (k *keyInspector) Inspect(publicKey string) (KeyInfo, error) {
	trimmed := strings.TrimSpace(publicKey)
	switch {
	case trimmed == "":
		return KeyInfo{}, ErrEmptyKey
	case strings.HasPrefix(trimmed, pgpArmorPrefix):
		return inspectOpenPGP(trimmed)
	case strings.HasPrefix(trimmed, "-----BEGIN"):
		return inspectPEM(trimmed)
	default:
		return inspectAuthorizedKey(trimmed)
	}
}

func inspectAuthorizedKey(line string) (KeyInfo, error) {
	pub, comment, _, _, err := ssh.ParseAuthorizedKey([]byte(line))
	if err != nil {
		return KeyInfo{}, fmt.Errorf("%w: %w", ErrUnrecognisedKey, err)
	}

	info := KeyInfo{
		Format:      FormatOpenSSH,
		Algorithm:   pub.Type(),
		Fingerprint: ssh.FingerprintSHA256(pub),
		Comment:     comment,
	}
	if cpk, ok := pub.(ssh.CryptoPublicKey); ok {
		info.Bits = bitLength(cpk.CryptoPublicKey())
	}
	return info, nil
}

func inspectPEM(armored string) (KeyInfo, error) {
	block, _ := pem.Decode([]byte(armored))
	if block == nil {
		return KeyInfo{}, ErrUnrecognisedKey
	}

	var (
		key any
		err error
	)
	switch block.Type {
	case "PUBLIC KEY":
		key, err = x509.ParsePKIXPublicKey(block.Bytes)
	case "RSA PUBLIC KEY":
		key, err = x509.ParsePKCS1PublicKey(block.Bytes)
	default:
		return KeyInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedPEM, block.Type)
	}
	if err != nil {
		return KeyInfo{}, fmt.Errorf("parse %s: %w", block.Type, err)
	}

	sshKey, err := ssh.NewPublicKey(key)
	if err != nil {
		return KeyInfo{}, fmt.Errorf("%w: %w", ErrUnsupportedCrypto, err)
	}

	return KeyInfo{
		Format:      FormatPEM,
		Algorithm:   sshKey.Type(),
		Bits:        bitLength(key),
		Fingerprint: ssh.FingerprintSHA256(sshKey),
	}, nil
}

func inspectOpenPGP(armored string) (KeyInfo, error) {
	entities, err := openpgp.ReadArmoredKeyRing(strings.NewReader(armored))
	if err != nil {
		return KeyInfo{}, fmt.Errorf("%w: %w", ErrUnrecognisedKey, err)
	}
	if len(entities) == 0 || entities[0].PrimaryKey == nil {
		return KeyInfo{}, ErrEmptyPGPKeyRing
	}

	primary := entities[0].PrimaryKey
	info := KeyInfo{
		Format:      FormatOpenPGP,
		Algorithm:   pgpAlgorithmName(primary.PubKeyAlgo),
		Fingerprint: strings.ToUpper(hex.EncodeToString(primary.Fingerprint)),
		KeyID:       primary.KeyIdString(),
	}
	if bits, err := primary.BitLength(); err == nil {
		info.Bits = int(bits)
	}
	for name := range entities[0].Identities {
		info.Comment = name
		break
	}
	return info, nil
}

func bitLength(key any) int {
	switch pk := key.(type) {
	case *rsa.PublicKey:
		return pk.N.BitLen()
	case *ecdsa.PublicKey:
		return pk.Curve.Params().BitSize
	case ed25519.PublicKey:
		return 256
	default:
		return 0
	}
}

func pgpAlgorithmName(algo packet.PublicKeyAlgorithm) string {
	switch algo {
	case packet.PubKeyAlgoRSA, packet.PubKeyAlgoRSAEncryptOnly, packet.PubKeyAlgoRSASignOnly:
		return "RSA"
	case packet.PubKeyAlgoECDSA:
		return "ECDSA"
	case packet.PubKeyAlgoEdDSA:
		return "EdDSA"
	case packet.PubKeyAlgoECDH:
		return "ECDH"
	default:
		return fmt.Sprintf("algorithm %d", algo)
	}
}
