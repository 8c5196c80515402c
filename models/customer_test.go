package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCustomerFields(t *testing.T) {
	var tests = []struct {
		name     string
		raw      map[string]string
		expected map[string]string
	}{
		{
			name: "tel1 split into area code and number",
			raw:  map[string]string{"tel1": "1199998888"},
			expected: map[string]string{
				"tel1":     "1199998888",
				"ddd":      "11",
				"telefone": "99998888",
			},
		},
		{
			name: "tel1 with hyphens",
			raw:  map[string]string{"tel1": "11-9999-8888"},
			expected: map[string]string{
				"tel1":     "11-9999-8888",
				"ddd":      "11",
				"telefone": "99998888",
			},
		},
		{
			name: "valid tel1 wins over tel2",
			raw:  map[string]string{"tel1": "11-9999-8888", "tel2": "2177776666"},
			expected: map[string]string{
				"tel1":     "11-9999-8888",
				"tel2":     "2177776666",
				"ddd":      "11",
				"telefone": "99998888",
			},
		},
		{
			name: "tel2 fills in when tel1 too short",
			raw:  map[string]string{"tel1": "9", "tel2": "2177776666"},
			expected: map[string]string{
				"tel1":     "9",
				"tel2":     "2177776666",
				"ddd":      "21",
				"telefone": "77776666",
			},
		},
		{
			name: "tel2 alone is used",
			raw:  map[string]string{"tel2": "2177776666"},
			expected: map[string]string{
				"tel2":     "2177776666",
				"ddd":      "21",
				"telefone": "77776666",
			},
		},
		{
			name: "cep stripped of punctuation and spaces",
			raw:  map[string]string{"cep": "88.130-000, "},
			expected: map[string]string{
				"cep": "88130-000",
			},
		},
		{
			name: "num copied into numero",
			raw:  map[string]string{"num": "42"},
			expected: map[string]string{
				"num":    "42",
				"numero": "42",
			},
		},
		{
			name: "unrecognized keys pass through",
			raw:  map[string]string{"nome": "Maria", "observacao": "entregar à tarde"},
			expected: map[string]string{
				"nome":       "Maria",
				"observacao": "entregar à tarde",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, ParseCustomerFields(tt.raw))
		})
	}
}

func TestCustomerMerge(t *testing.T) {
	t.Run("defaults survive absent keys", func(t *testing.T) {
		c := NewCustomer()
		c.Merge(ParseCustomerFields(map[string]string{"nome": "Maria", "email": "maria@example.com"}))

		require.Equal(t, "Maria", c.Name)
		require.Equal(t, "maria@example.com", c.Email)
		require.Equal(t, ShippingUnspecified, c.ShippingType)
		require.Equal(t, "BRA", c.Country)
		require.Empty(t, c.City)
	})

	t.Run("present keys overwrite defaults", func(t *testing.T) {
		c := NewCustomer()
		c.Merge(map[string]string{"shippingType": "2", "pais": "ARG", "uf": "SC"})

		require.Equal(t, ShippingSedex, c.ShippingType)
		require.Equal(t, "ARG", c.Country)
		require.Equal(t, "SC", c.State)
	})

	t.Run("non-numeric shipping type is ignored", func(t *testing.T) {
		c := NewCustomer()
		c.Merge(map[string]string{"shippingType": "express"})

		require.Equal(t, ShippingUnspecified, c.ShippingType)
	})

	t.Run("second merge keeps earlier fields", func(t *testing.T) {
		c := NewCustomer()
		c.Merge(map[string]string{"nome": "Maria"})
		c.Merge(map[string]string{"cidade": "Palhoça"})

		require.Equal(t, "Maria", c.Name)
		require.Equal(t, "Palhoça", c.City)
	})
}
