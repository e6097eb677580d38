package scoring

import (
	"mime"
	"strings"
)

// categoryMIMEPrefixes maps category ids to the MIME prefixes their
// content usually carries. The alignment bonus is static and additive;
// it never overrides keyword evidence.
var categoryMIMEPrefixes = map[string][]string{
	"financial":              {"application/pdf", "text/csv", "application/vnd.ms-excel"},
	"entertainment_industry": {"application/pdf", "application/msword"},
	"creative_projects":      {"text/", "audio/"},
	"visual_media":           {"image/", "video/"},
	"personal_documents":     {"application/pdf", "image/"},
	"technical":              {"application/zip", "application/json", "text/"},
}

// mimeAlignment returns the alignment bonus for a category and file
// extension: the full bonus for a configured prefix match, a smaller one
// when only the top-level type agrees.
func mimeAlignment(categoryID, ext string) (float64, string) {
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return 0, ""
	}
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}

	prefixes := categoryMIMEPrefixes[categoryID]
	for _, prefix := range prefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return mimePrefixBonus, mimeType
		}
	}

	topLevel := mimeType
	if i := strings.IndexByte(topLevel, '/'); i >= 0 {
		topLevel = topLevel[:i+1]
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(prefix, topLevel) {
			return mimeTypeBonus, mimeType
		}
	}

	return 0, ""
}
