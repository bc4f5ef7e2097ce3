// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/keyforge/models"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "padded words", in: " a b ", want: "a_b"},
		{name: "whitespace run", in: "work\t \nlaptop", want: "work_laptop"},
		{name: "vertical tab", in: "a\vb", want: "a_b"},
		{name: "no-break space", in: "a\u00a0b", want: "a_b"},
		{name: "em space", in: "a\u2003b", want: "a_b"},
		{name: "mixed unicode run", in: "a \u2003\u00a0\tb", want: "a_b"},
		{name: "allowed punctuation kept", in: "user.name-1_x", want: "user.name-1_x"},
		{name: "disallowed stripped", in: "me@host!", want: "mehost"},
		{name: "only disallowed", in: "@#$", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "truncated", in: strings.Repeat("a", 70), want: strings.Repeat("a", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestValidateComment_Lenient(t *testing.T) {
	got, err := ValidateComment(" a b ", CommentLenient)
	require.NoError(t, err)
	assert.Equal(t, "a_b", got)

	got, err = ValidateComment("", CommentLenient)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ValidateComment("@@@", CommentLenient)
	require.ErrorIs(t, err, ErrInvalidComment)

	_, err = ValidateComment(strings.Repeat("b", 65), CommentLenient)
	require.ErrorIs(t, err, ErrCommentTooLong)

	_, err = ValidateComment(" "+strings.Repeat("b", 63)+" ", CommentLenient)
	require.ErrorIs(t, err, ErrCommentTooLong)

	got, err = ValidateComment(strings.Repeat("b", 63)+" ", CommentLenient)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("b", 63), got)
}

func TestValidateComment_UnicodeSpaceAgreesAcrossPolicies(t *testing.T) {
	for _, in := range []string{"a\vb", "a\u00a0b", "a\u2003b"} {
		_, err := ValidateComment(in, CommentStrict)
		require.ErrorIs(t, err, ErrCommentHasSpaces, "%q", in)

		got, err := ValidateComment(in, CommentLenient)
		require.NoError(t, err, "%q", in)
		assert.Equal(t, "a_b", got, "%q", in)
	}
}

func TestValidateComment_Strict(t *testing.T) {
	_, err := ValidateComment(" a b ", CommentStrict)
	require.ErrorIs(t, err, ErrCommentHasSpaces)
	assert.Contains(t, err.Error(), "spaces")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, models.FieldComment, vErr.Field)

	_, err = ValidateComment("me@host", CommentStrict)
	require.ErrorIs(t, err, ErrInvalidComment)

	_, err = ValidateComment(strings.Repeat("c", 65), CommentStrict)
	require.ErrorIs(t, err, ErrCommentTooLong)

	got, err := ValidateComment("deploy-key.prod", CommentStrict)
	require.NoError(t, err)
	assert.Equal(t, "deploy-key.prod", got)
}

func TestCommentPolicyFor(t *testing.T) {
	assert.Equal(t, CommentLenient, CommentPolicyFor(models.ModePGPKey))
	assert.Equal(t, CommentStrict, CommentPolicyFor(models.ModeSSHKey))
	assert.Equal(t, CommentStrict, CommentPolicyFor(models.ModeRSAKey))
}

func TestPreviewComment(t *testing.T) {
	assert.Equal(t, "my_key", PreviewComment("my key"))
	assert.Empty(t, PreviewComment("!!!"))
}
