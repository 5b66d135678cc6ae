package recite_test

import "urecite/recite"

var testBooks = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy", "Joshua",
	"Psalms", "Matthew", "John", "1 John",
}

var testVerses = map[string]string{
	"Genesis 1:1": "In the beginning God created the heaven and the earth.",
	"Genesis 1:2": "And the earth was without form, and void; and darkness was upon the face of the deep.",
	"John 3:16":   "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.",
	"John 11:35":  "Jesus wept.",
	"1 John 4:8":  "He that loveth not knoweth not God; for God is love.",
	"Psalms 23:1": "The LORD is my shepherd; I shall not want.",
}

var testLookup = recite.LookupFunc(func(key recite.VerseKey) (string, bool) {
	text, ok := testVerses[key.String()]
	return text, ok
})
