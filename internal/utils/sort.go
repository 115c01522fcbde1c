package utils

import (
	"sort"
	"strconv"
)

// splitNameParts разбивает строку на буквенную и числовую части:
// "Item2" -> ("Item", 2). Строка без буквенной части даёт ("", 0).
func splitNameParts(s string) (string, int) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	j := i
	for j < len(s) && (s[j] < '0' || s[j] > '9') {
		j++
	}
	if i == j {
		return "", 0
	}
	k := j
	for k < len(s) && s[k] >= '0' && s[k] <= '9' {
		k++
	}
	n, err := strconv.Atoi(s[j:k])
	if err != nil {
		n = 0
	}
	return s[i:j], n
}

// LessNatural сравнивает имена естественным порядком: сначала буквенная
// часть лексикографически, затем числовая часть как число, поэтому
// "Item2" идёт раньше "Item10".
func LessNatural(a, b string) bool {
	letterA, numberA := splitNameParts(a)
	letterB, numberB := splitNameParts(b)

	if letterA != letterB {
		return letterA < letterB
	}
	return numberA < numberB
}

// SortByKey устойчиво сортирует срез по строковому ключу естественным порядком.
func SortByKey[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return LessNatural(key(items[i]), key(items[j]))
	})
}
