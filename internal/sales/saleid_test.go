package sales

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextSaleID(t *testing.T) {
	cases := []struct {
		name string
		last string
		want string
	}{
		{name: "no prior sale", last: "", want: "AS1"},
		{name: "increments numeric part", last: "AS41", want: "AS42"},
		{name: "single digit", last: "AS9", want: "AS10"},
		{name: "corrupt suffix restarts", last: "ASXX", want: "AS1"},
		{name: "prefix only restarts", last: "AS", want: "AS1"},
		{name: "shorter than prefix restarts", last: "A", want: "AS1"},
		{name: "no padding", last: "AS0041", want: "AS42"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NextSaleID(tc.last))
		})
	}
}
