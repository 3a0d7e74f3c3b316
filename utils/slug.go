package utils

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// UniqueSlug derives a URL-safe slug from base and probes the given table
// until an unused value is found, suffixing -2, -3, ... on collision.
func UniqueSlug(tx *gorm.DB, table, base string) (string, error) {
	candidate := slug.Make(base)

	for i := 1; ; i++ {
		probe := candidate
		if i > 1 {
			probe = fmt.Sprintf("%s-%d", candidate, i)
		}

		var count int64
		if err := tx.Table(table).Where("slug = ?", probe).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return probe, nil
		}
	}
}
