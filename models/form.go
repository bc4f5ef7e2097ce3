package models

// FormValues holds the raw, unparsed values of a generation form keyed by
// field name. Checkbox fields carry "true" or "false".
type FormValues map[string]string

// Get returns the value of field or an empty string.
func (f FormValues) Get(field string) string {
	if f == nil {
		return ""
	}
	return f[field]
}

// Clone returns an independent copy of f.
func (f FormValues) Clone() FormValues {
	out := make(FormValues, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Form field names. They match the JSON keys of the corresponding requests.
const (
	FieldLength         = "length"
	FieldIncludeNumbers = "includeNumbers"
	FieldIncludeSpecial = "includeSpecial"
	FieldExcludeChars   = "excludeChars"

	FieldComment    = "comment"
	FieldKeyType    = "keyType"
	FieldKeySize    = "keySize"
	FieldPassphrase = "passphrase"

	FieldName       = "name"
	FieldEmail      = "email"
	FieldKeyLength  = "keyLength"
	FieldCurve      = "curve"
	FieldExpireTime = "expireTime"
)
