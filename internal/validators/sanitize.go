// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/keyforge/models"
)

// MaxCommentLength is the longest comment accepted by the service.
const MaxCommentLength = 64

// CommentPolicy selects how a comment is checked before it is sent.
type CommentPolicy int

const (
	// CommentLenient rewrites the comment with [Sanitize] and only fails
	// when nothing usable is left or the input is too long.
	CommentLenient CommentPolicy = iota
	// CommentStrict never rewrites: whitespace, characters outside the
	// allowed set and over-long input are rejected.
	CommentStrict
)

var disallowedComment = regexp.MustCompile(`[^A-Za-z0-9_.\-]`)

// CommentPolicyFor returns the comment rule of mode. SSH and RSA comments
// end up in key files and directory names verbatim, so they are strict; PGP
// comments are part of the user ID and are sanitized.
func CommentPolicyFor(mode models.Mode) CommentPolicy {
	switch mode {
	case models.ModeSSHKey, models.ModeRSAKey:
		return CommentStrict
	default:
		return CommentLenient
	}
}

// Sanitize replaces whitespace runs with a single underscore, strips every
// character outside [A-Za-z0-9_.-] and truncates to [MaxCommentLength].
// Whitespace is anything [unicode.IsSpace] accepts, the same set the strict
// policy rejects. Leading and trailing whitespace is dropped, so " a b "
// becomes "a_b".
func Sanitize(raw string) string {
	s := strings.Join(strings.Fields(raw), "_")
	s = disallowedComment.ReplaceAllString(s, "")
	if len(s) > MaxCommentLength {
		s = s[:MaxCommentLength]
	}
	return s
}

// ValidateComment checks raw against policy and returns the value to send.
// An empty comment is always valid.
func ValidateComment(raw string, policy CommentPolicy) (string, error) {
	if raw == "" {
		return "", nil
	}

	if policy == CommentStrict {
		if strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
			return "", fieldError(models.FieldComment, ErrCommentHasSpaces)
		}
		if disallowedComment.MatchString(raw) {
			return "", fieldError(models.FieldComment, ErrInvalidComment)
		}
		if len(raw) > MaxCommentLength {
			return "", fieldError(models.FieldComment, ErrCommentTooLong)
		}
		return raw, nil
	}

	if utf8.RuneCountInString(raw) > MaxCommentLength {
		return "", fieldError(models.FieldComment, ErrCommentTooLong)
	}
	sanitized := Sanitize(raw)
	if sanitized == "" {
		return "", fieldError(models.FieldComment, ErrInvalidComment)
	}
	return sanitized, nil
}

// PreviewComment shows what the lenient rule would send for raw, or an
// empty string when raw would be rejected.
func PreviewComment(raw string) string {
	s, err := ValidateComment(raw, CommentLenient)
	if err != nil {
		return ""
	}
	return s
}
