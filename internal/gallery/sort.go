package gallery

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortByName orders items by name using the Unicode root collation, so case
// only breaks ties between otherwise equal names ("a" < "A" < "b").
// A Collator is not safe for concurrent use, so one is built per call.
func sortByName(items []GalleryItem) {
	c := collate.New(language.Und)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(items[i].Name, items[j].Name) < 0
	})
}
