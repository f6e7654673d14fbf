package core

import (
	"bufio"
	"os"
	"strings"
)

// defaultCategories is the closed list offered by the UI. Submissions are
// not checked against it; the ledger stores whatever category it is given.
var defaultCategories = []string{
	"Housing",
	"Food",
	"Transportation",
	"Entertainment",
	"Healthcare",
	"Education",
	"Personal",
	"Investments",
	"Salary",
	"Freelancing",
	"Gifts",
	"Other",
}

// DefaultCategories returns a copy of the built-in category list.
func DefaultCategories() []string {
	return append([]string(nil), defaultCategories...)
}

// CategoriesFromFile reads one category per line from path, skipping blanks
// and #-comments. It falls back to the built-in list when the file is
// missing or empty.
func CategoriesFromFile(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return DefaultCategories()
	}
	defer f.Close()

	var out []string
	seen := map[string]struct{}{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	if len(out) == 0 {
		return DefaultCategories()
	}
	return out
}
