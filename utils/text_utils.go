package utils

import (
	"strings"
)

// DeduplicateSlice 去重字符串切片，去除首尾空白和空值，保留首次出现的顺序
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

// CompactSlice 去除首尾空白和空值，保留顺序和重复项
func CompactSlice(input []string) []string {
	result := make([]string, 0, len(input))
	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" {
			result = append(result, val)
		}
	}
	return result
}

// Min 返回两个整数中的较小值
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
