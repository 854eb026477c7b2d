package geo

import "sort"

// BuildSlugIndex maps each place slug to its position in the sorted
// places array, for O(1) lookup without re-parsing the full file.
func BuildSlugIndex(places []Place) map[string]int {
	idx := make(map[string]int, len(places))
	for i, p := range places {
		idx[p.Slug] = i
	}
	return idx
}

// BuildBookIndex groups place slugs by the book slugs they are cited
// in. A place appears at most once per book even when the source lists
// an association repeatedly.
func BuildBookIndex(places []Place) map[string][]string {
	byBook := make(map[string][]string)
	for _, p := range places {
		for _, book := range p.Books {
			if !containsSlug(byBook[book], p.Slug) {
				byBook[book] = append(byBook[book], p.Slug)
			}
		}
	}
	return byBook
}

// BuildChapterIndex groups place slugs by "bookslug-chapter" keys.
func BuildChapterIndex(places []Place) map[string][]string {
	byChapter := make(map[string][]string)
	for _, p := range places {
		var keys []string
		seen := make(map[string]bool)
		for _, v := range p.Verses {
			key := v.ChapterKey()
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
		for _, key := range keys {
			byChapter[key] = append(byChapter[key], p.Slug)
		}
	}
	return byChapter
}

// BuildVerseIndex groups place slugs by verse ref keys ("genesis-14-18").
func BuildVerseIndex(places []Place) map[string][]string {
	byVerse := make(map[string][]string)
	for _, p := range places {
		for _, v := range p.Verses {
			if !containsSlug(byVerse[v.Ref], p.Slug) {
				byVerse[v.Ref] = append(byVerse[v.Ref], p.Slug)
			}
		}
	}
	return byVerse
}

// BuildTypeIndex groups place slugs by place type. Places without
// coordinates still appear here; only geography-derived tables exclude
// them.
func BuildTypeIndex(places []Place) map[string][]string {
	byType := make(map[string][]string)
	for _, p := range places {
		for _, t := range p.Types {
			byType[t] = append(byType[t], p.Slug)
		}
	}
	return byType
}

// ImageEntry is one normalized image-metadata record.
type ImageEntry struct {
	ID          string  `json:"id"`
	Credit      *string `json:"credit"`
	CreditURL   *string `json:"creditUrl"`
	License     *string `json:"license"`
	Description *string `json:"description"`
	File        *string `json:"file"`
	Placeholder *string `json:"placeholder"`
}

// BuildImages normalizes raw image records into the image-metadata map.
// Multi-valued description/thumbnail blocks keep their first entry in
// sorted-key order so reruns pick the same rendition.
func BuildImages(records []ImageRecord) map[string]ImageEntry {
	images := make(map[string]ImageEntry, len(records))
	for _, img := range records {
		entry := ImageEntry{
			ID:        img.ID,
			Credit:    img.Credit,
			License:   img.License,
			CreditURL: img.CreditURL,
		}
		if entry.CreditURL == nil {
			entry.CreditURL = img.URL
		}
		if key, ok := firstKey(img.Descriptions); ok {
			desc := StripMarkup(img.Descriptions[key])
			entry.Description = &desc
		}
		if key, ok := firstThumbKey(img.Thumbnails); ok {
			entry.File = img.Thumbnails[key].File
		}
		images[img.ID] = entry
	}
	return images
}

func firstKey(m map[string]string) (string, bool) {
	if len(m) == 0 {
		return "", false
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0], true
}

func firstThumbKey(m map[string]ImageThumbnail) (string, bool) {
	if len(m) == 0 {
		return "", false
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0], true
}

func containsSlug(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
