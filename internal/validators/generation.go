// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/keyforge/internal/options"
	"github.com/MKhiriev/keyforge/models"
)

// Passphrase length bounds and default.
const (
	MinPassphraseLength     = 8
	MaxPassphraseLength     = 64
	DefaultPassphraseLength = 16
)

// DefaultExpireTime means "never expires".
const DefaultExpireTime = "0"

const (
	letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var expireTimePattern = regexp.MustCompile(`^[1-9][0-9]*[dwmy]$`)

// GenerationValidator parses and validates generation requests of every
// mode. It implements both [Validator] and [RequestBuilder].
type GenerationValidator struct{}

// NewGenerationValidator constructs a GenerationValidator.
func NewGenerationValidator() *GenerationValidator {
	return &GenerationValidator{}
}

// Build parses form into the request of mode, applying form defaults for
// empty fields and the comment policy of the mode, then validates it.
func (v *GenerationValidator) Build(ctx context.Context, mode models.Mode, form models.FormValues) (models.GenerationRequest, error) {
	var (
		req models.GenerationRequest
		err error
	)

	switch mode {
	case models.ModePassphrase:
		req, err = parsePassphrase(form)
	case models.ModeSSHKey:
		req, err = parseSSHKey(form)
	case models.ModeRSAKey:
		req, err = parseRSAKey(form)
	case models.ModePGPKey:
		req, err = parsePGPKey(form)
	default:
		return nil, ErrUnknownMode
	}
	if err != nil {
		return nil, err
	}

	if err = v.Validate(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate dispatches validation to the checks of the request type. Both
// value and pointer forms of every request are accepted.
//
// Optional fields restrict validation to the named subset; when omitted,
// every field of the request is validated.
func (v *GenerationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PassphraseRequest:
		return v.validatePassphrase(ctx, value, fields...)
	case *models.PassphraseRequest:
		return v.validatePassphrase(ctx, *value, fields...)

	case models.SSHKeyRequest:
		return v.validateSSHKey(ctx, value, fields...)
	case *models.SSHKeyRequest:
		return v.validateSSHKey(ctx, *value, fields...)

	case models.RSAKeyRequest:
		return v.validateRSAKey(ctx, value, fields...)
	case *models.RSAKeyRequest:
		return v.validateRSAKey(ctx, *value, fields...)

	case models.PGPKeyRequest:
		return v.validatePGPKey(ctx, value, fields...)
	case *models.PGPKeyRequest:
		return v.validatePGPKey(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *GenerationValidator) validatePassphrase(_ context.Context, req models.PassphraseRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldLength, models.FieldExcludeChars}
	}

	for _, f := range fields {
		switch f {
		case models.FieldLength:
			if req.Length < MinPassphraseLength || req.Length > MaxPassphraseLength {
				return fieldError(f, ErrInvalidLength)
			}
		case models.FieldExcludeChars:
			if characterPool(req) == "" {
				return fieldError(f, ErrInvalidExcludedChars)
			}
		case models.FieldIncludeNumbers, models.FieldIncludeSpecial:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GenerationValidator) validateSSHKey(_ context.Context, req models.SSHKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldKeyType, models.FieldKeySize, models.FieldComment}
	}

	for _, f := range fields {
		switch f {
		case models.FieldKeyType:
			if !options.SSHKeyTypeAllowed(req.KeyType) {
				return fieldError(f, ErrInvalidKeyType)
			}
		case models.FieldKeySize:
			if !options.SSHKeySizeAllowed(req.KeyType, req.KeySize) {
				return fieldError(f, ErrInvalidKeySize)
			}
		case models.FieldComment:
			if _, err := ValidateComment(req.Comment, CommentPolicyFor(models.ModeSSHKey)); err != nil {
				return err
			}
		case models.FieldPassphrase:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GenerationValidator) validateRSAKey(_ context.Context, req models.RSAKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldKeySize, models.FieldComment}
	}

	for _, f := range fields {
		switch f {
		case models.FieldKeySize:
			if !options.RSAKeySizeAllowed(req.KeySize) {
				return fieldError(f, ErrInvalidKeySize)
			}
		case models.FieldComment:
			if _, err := ValidateComment(req.Comment, CommentPolicyFor(models.ModeRSAKey)); err != nil {
				return err
			}
		case models.FieldPassphrase:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GenerationValidator) validatePGPKey(_ context.Context, req models.PGPKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			models.FieldName, models.FieldEmail, models.FieldComment,
			models.FieldKeyType, models.FieldKeyLength, models.FieldCurve, models.FieldExpireTime,
		}
	}

	for _, f := range fields {
		switch f {
		case models.FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return fieldError(f, ErrEmptyName)
			}
		case models.FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				return fieldError(f, ErrEmptyEmail)
			}
			if !validEmail(req.Email) {
				return fieldError(f, ErrInvalidEmail)
			}
		case models.FieldComment:
			// already sanitized by Build; a raw value must survive sanitizing unchanged
			if req.Comment != "" && Sanitize(req.Comment) != req.Comment {
				return fieldError(f, ErrInvalidComment)
			}
		case models.FieldKeyType:
			if req.KeyType != options.PGPKeyTypeRSA && req.KeyType != options.PGPKeyTypeECC {
				return fieldError(f, ErrInvalidKeyType)
			}
		case models.FieldKeyLength:
			if req.KeyType == options.PGPKeyTypeRSA && !options.PGPKeyLengthAllowed(req.KeyLength) {
				return fieldError(f, ErrInvalidKeyLength)
			}
		case models.FieldCurve:
			if req.KeyType == options.PGPKeyTypeECC && !options.PGPCurveAllowed(req.Curve) {
				return fieldError(f, ErrInvalidCurve)
			}
		case models.FieldExpireTime:
			if req.ExpireTime != DefaultExpireTime && !expireTimePattern.MatchString(req.ExpireTime) {
				return fieldError(f, ErrInvalidExpireTime)
			}
		case models.FieldPassphrase:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func parsePassphrase(form models.FormValues) (models.PassphraseRequest, error) {
	length, err := parseInt(form, models.FieldLength, DefaultPassphraseLength)
	if err != nil {
		return models.PassphraseRequest{}, err
	}
	numbers, err := parseFlag(form, models.FieldIncludeNumbers, true)
	if err != nil {
		return models.PassphraseRequest{}, err
	}
	special, err := parseFlag(form, models.FieldIncludeSpecial, true)
	if err != nil {
		return models.PassphraseRequest{}, err
	}

	return models.PassphraseRequest{
		Length:         length,
		IncludeNumbers: numbers,
		IncludeSpecial: special,
		ExcludeChars:   form.Get(models.FieldExcludeChars),
	}, nil
}

func parseSSHKey(form models.FormValues) (models.SSHKeyRequest, error) {
	keyType := strings.TrimSpace(form.Get(models.FieldKeyType))
	if keyType == "" {
		_, _, keyType, _ = options.Primary(models.ModeSSHKey)
	}

	defaultSize := 0
	if dep, err := options.DependentFor(models.ModeSSHKey, keyType); err == nil {
		defaultSize, _ = strconv.Atoi(dep.Default)
	}
	size, err := parseInt(form, models.FieldKeySize, defaultSize)
	if err != nil {
		return models.SSHKeyRequest{}, err
	}

	comment, err := ValidateComment(form.Get(models.FieldComment), CommentPolicyFor(models.ModeSSHKey))
	if err != nil {
		return models.SSHKeyRequest{}, err
	}

	return models.SSHKeyRequest{
		Comment:    comment,
		KeyType:    keyType,
		KeySize:    size,
		Passphrase: form.Get(models.FieldPassphrase),
	}, nil
}

func parseRSAKey(form models.FormValues) (models.RSAKeyRequest, error) {
	defaultSize, _ := strconv.Atoi(options.RSADefaultKeySize())
	size, err := parseInt(form, models.FieldKeySize, defaultSize)
	if err != nil {
		return models.RSAKeyRequest{}, err
	}

	comment, err := ValidateComment(form.Get(models.FieldComment), CommentPolicyFor(models.ModeRSAKey))
	if err != nil {
		return models.RSAKeyRequest{}, err
	}

	return models.RSAKeyRequest{
		Comment:    comment,
		KeySize:    size,
		Passphrase: form.Get(models.FieldPassphrase),
	}, nil
}

func parsePGPKey(form models.FormValues) (models.PGPKeyRequest, error) {
	comment, err := ValidateComment(form.Get(models.FieldComment), CommentPolicyFor(models.ModePGPKey))
	if err != nil {
		return models.PGPKeyRequest{}, err
	}

	keyType := strings.ToUpper(strings.TrimSpace(form.Get(models.FieldKeyType)))
	if keyType == "" {
		_, _, keyType, _ = options.Primary(models.ModePGPKey)
	}

	req := models.PGPKeyRequest{
		Name:       strings.TrimSpace(form.Get(models.FieldName)),
		Email:      strings.TrimSpace(form.Get(models.FieldEmail)),
		Comment:    comment,
		KeyType:    keyType,
		ExpireTime: strings.TrimSpace(form.Get(models.FieldExpireTime)),
		Passphrase: form.Get(models.FieldPassphrase),
	}
	if req.ExpireTime == "" {
		req.ExpireTime = DefaultExpireTime
	}

	dep, depErr := options.DependentFor(models.ModePGPKey, keyType)
	switch keyType {
	case options.PGPKeyTypeRSA:
		def := 0
		if depErr == nil {
			def, _ = strconv.Atoi(dep.Default)
		}
		if req.KeyLength, err = parseInt(form, models.FieldKeyLength, def); err != nil {
			return models.PGPKeyRequest{}, err
		}
	case options.PGPKeyTypeECC:
		req.Curve = strings.ToLower(strings.TrimSpace(form.Get(models.FieldCurve)))
		if req.Curve == "" && depErr == nil {
			req.Curve = dep.Default
		}
	}

	return req, nil
}

func parseInt(form models.FormValues, field string, def int) (int, error) {
	raw := strings.TrimSpace(form.Get(field))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fieldError(field, ErrInvalidNumber)
	}
	return n, nil
}

func parseFlag(form models.FormValues, field string, def bool) (bool, error) {
	raw := strings.ToLower(strings.TrimSpace(form.Get(field)))
	switch raw {
	case "":
		return def, nil
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fieldError(field, ErrInvalidFlag)
	}
	return b, nil
}

func characterPool(req models.PassphraseRequest) string {
	pool := letters
	if req.IncludeNumbers {
		pool += digits
	}
	if req.IncludeSpecial {
		pool += punctuation
	}
	if req.ExcludeChars == "" {
		return pool
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(req.ExcludeChars, r) {
			return -1
		}
		return r
	}, pool)
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == strings.TrimSpace(s)
}
