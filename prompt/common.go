package prompt

import (
	"fmt"

	"github.com/repodocs/repodoc/common"
)

// PartNote tells the model to document only the slice it was shown. Appended
// whenever content was split into more than one chunk.
func PartNote(index, total int) string {
	return fmt.Sprintf("\n\nNOTE: This is part %d of %d of the codebase. Please focus on documenting the code shown in this chunk.", index, total)
}

// Disclaimer is prepended to documentation assembled from multiple chunks.
func Disclaimer(total int) string {
	return fmt.Sprintf("Note: This documentation was generated in %d parts due to the size of the codebase.", total)
}

func languageNote(settings common.Settings) string {
	if settings.Language != "" && settings.Language != "en-US" {
		return fmt.Sprintf("\n\nWrite all documentation in %s.", settings.Language)
	}
	return ""
}
