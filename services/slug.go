package services

import (
	"fmt"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/utils"
)

// UniqueSlug derives a slug from the title and disambiguates collisions with
// a numeric counter, falling back to a random suffix if the counter somehow
// keeps colliding. excludeID lets an update keep its own slug.
func UniqueSlug(title string, excludeID uint32) string {
	base := utils.Slugify(title)
	if base == "" {
		base = "competition"
	}

	slug := base
	for counter := 1; counter <= 50; counter++ {
		if !slugExists(slug, excludeID) {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
	return fmt.Sprintf("%s-%s", base, utils.SlugSuffix())
}

func slugExists(slug string, excludeID uint32) bool {
	var count int64
	q := database.DB.Model(&models.Competition{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	q.Count(&count)
	return count > 0
}
