package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/keyforge/models"
)

func TestFormFromFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want models.FormValues
	}{
		{
			name: "no flags leaves every default",
			args: nil,
			want: models.FormValues{},
		},
		{
			name: "passphrase flags",
			args: []string{"--length", "24", "--numbers=false", "--special", "--exclude", "0O"},
			want: models.FormValues{
				models.FieldLength:         "24",
				models.FieldIncludeNumbers: "false",
				models.FieldIncludeSpecial: "true",
				models.FieldExcludeChars:   "0O",
			},
		},
		{
			name: "pgp flags",
			args: []string{"--name", "Ada", "--email", "ada@example.com", "--key-type", "ECC", "--curve", "ed25519", "--expire", "1y"},
			want: models.FormValues{
				models.FieldName:       "Ada",
				models.FieldEmail:      "ada@example.com",
				models.FieldKeyType:    "ECC",
				models.FieldCurve:      "ed25519",
				models.FieldExpireTime: "1y",
			},
		},
		{
			name: "explicit empty value is kept",
			args: []string{"--comment="},
			want: models.FormValues{models.FieldComment: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
			registerGenerateFlags(fs)
			require.NoError(t, fs.Parse(tt.args))

			form, err := formFromFlags(fs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, form)
		})
	}
}
