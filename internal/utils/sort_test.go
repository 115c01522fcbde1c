package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLessNatural(t *testing.T) {
	testCases := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "numeric suffix compared as number", a: "Item2", b: "Item10", want: true},
		{name: "numeric suffix reverse", a: "Item10", b: "Item2", want: false},
		{name: "letter part wins over number", a: "Alpha9", b: "Beta1", want: true},
		{name: "equal names", a: "Item1", b: "Item1", want: false},
		{name: "no numeric suffix", a: "Item", b: "Item1", want: true},
		{name: "leading digits skipped", a: "2Item1", b: "2Item10", want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, LessNatural(tc.a, tc.b))
		})
	}
}

func TestSortByKey(t *testing.T) {
	type named struct{ Name string }

	items := []named{
		{Name: "Item10"},
		{Name: "Item2"},
		{Name: "Item1"},
		{Name: "Item21"},
	}

	SortByKey(items, func(n named) string { return n.Name })

	got := make([]string, 0, len(items))
	for _, item := range items {
		got = append(got, item.Name)
	}
	require.Equal(t, []string{"Item1", "Item2", "Item10", "Item21"}, got)
}
