// Package books defines the fixed 66-book Protestant canon and the
// abbreviation tables used by the raw source corpora. All lookups are
// total functions: an unrecognized code reports ok=false, never panics.
package books

import "sort"

// Testament identifies which testament a book belongs to.
type Testament int

const (
	OldTestament Testament = iota
	NewTestament
)

// Book holds metadata for a single book of the Bible.
type Book struct {
	Name      string    // display name, e.g. "1 Chronicles"
	Slug      string    // URL slug, e.g. "1-chronicles"
	Osis      string    // OSIS code, e.g. "1Chr"
	Sword     string    // primary SWORD/USX abbreviation, e.g. "1CH"
	Order     int       // canonical order, 1-based
	Testament Testament
}

// Canon contains all 66 canonical books in canonical order.
var Canon = []Book{
	{"Genesis", "genesis", "Gen", "GEN", 1, OldTestament},
	{"Exodus", "exodus", "Exod", "EXO", 2, OldTestament},
	{"Leviticus", "leviticus", "Lev", "LEV", 3, OldTestament},
	{"Numbers", "numbers", "Num", "NUM", 4, OldTestament},
	{"Deuteronomy", "deuteronomy", "Deut", "DEU", 5, OldTestament},
	{"Joshua", "joshua", "Josh", "JOS", 6, OldTestament},
	{"Judges", "judges", "Judg", "JDG", 7, OldTestament},
	{"Ruth", "ruth", "Ruth", "RUT", 8, OldTestament},
	{"1 Samuel", "1-samuel", "1Sam", "1SA", 9, OldTestament},
	{"2 Samuel", "2-samuel", "2Sam", "2SA", 10, OldTestament},
	{"1 Kings", "1-kings", "1Kgs", "1KI", 11, OldTestament},
	{"2 Kings", "2-kings", "2Kgs", "2KI", 12, OldTestament},
	{"1 Chronicles", "1-chronicles", "1Chr", "1CH", 13, OldTestament},
	{"2 Chronicles", "2-chronicles", "2Chr", "2CH", 14, OldTestament},
	{"Ezra", "ezra", "Ezra", "EZR", 15, OldTestament},
	{"Nehemiah", "nehemiah", "Neh", "NEH", 16, OldTestament},
	{"Esther", "esther", "Esth", "EST", 17, OldTestament},
	{"Job", "job", "Job", "JOB", 18, OldTestament},
	{"Psalms", "psalms", "Ps", "PSA", 19, OldTestament},
	{"Proverbs", "proverbs", "Prov", "PRO", 20, OldTestament},
	{"Ecclesiastes", "ecclesiastes", "Eccl", "ECC", 21, OldTestament},
	{"Song of Solomon", "song-of-solomon", "Song", "SOL", 22, OldTestament},
	{"Isaiah", "isaiah", "Isa", "ISA", 23, OldTestament},
	{"Jeremiah", "jeremiah", "Jer", "JER", 24, OldTestament},
	{"Lamentations", "lamentations", "Lam", "LAM", 25, OldTestament},
	{"Ezekiel", "ezekiel", "Ezek", "EZE", 26, OldTestament},
	{"Daniel", "daniel", "Dan", "DAN", 27, OldTestament},
	{"Hosea", "hosea", "Hos", "HOS", 28, OldTestament},
	{"Joel", "joel", "Joel", "JOE", 29, OldTestament},
	{"Amos", "amos", "Amos", "AMO", 30, OldTestament},
	{"Obadiah", "obadiah", "Obad", "OBA", 31, OldTestament},
	{"Jonah", "jonah", "Jonah", "JON", 32, OldTestament},
	{"Micah", "micah", "Mic", "MIC", 33, OldTestament},
	{"Nahum", "nahum", "Nah", "NAH", 34, OldTestament},
	{"Habakkuk", "habakkuk", "Hab", "HAB", 35, OldTestament},
	{"Zephaniah", "zephaniah", "Zeph", "ZEP", 36, OldTestament},
	{"Haggai", "haggai", "Hag", "HAG", 37, OldTestament},
	{"Zechariah", "zechariah", "Zech", "ZEC", 38, OldTestament},
	{"Malachi", "malachi", "Mal", "MAL", 39, OldTestament},
	{"Matthew", "matthew", "Matt", "MAT", 40, NewTestament},
	{"Mark", "mark", "Mark", "MAR", 41, NewTestament},
	{"Luke", "luke", "Luke", "LUK", 42, NewTestament},
	{"John", "john", "John", "JOH", 43, NewTestament},
	{"Acts", "acts", "Acts", "ACT", 44, NewTestament},
	{"Romans", "romans", "Rom", "ROM", 45, NewTestament},
	{"1 Corinthians", "1-corinthians", "1Cor", "1CO", 46, NewTestament},
	{"2 Corinthians", "2-corinthians", "2Cor", "2CO", 47, NewTestament},
	{"Galatians", "galatians", "Gal", "GAL", 48, NewTestament},
	{"Ephesians", "ephesians", "Eph", "EPH", 49, NewTestament},
	{"Philippians", "philippians", "Phil", "PHP", 50, NewTestament},
	{"Colossians", "colossians", "Col", "COL", 51, NewTestament},
	{"1 Thessalonians", "1-thessalonians", "1Thess", "1TH", 52, NewTestament},
	{"2 Thessalonians", "2-thessalonians", "2Thess", "2TH", 53, NewTestament},
	{"1 Timothy", "1-timothy", "1Tim", "1TI", 54, NewTestament},
	{"2 Timothy", "2-timothy", "2Tim", "2TI", 55, NewTestament},
	{"Titus", "titus", "Titus", "TIT", 56, NewTestament},
	{"Philemon", "philemon", "Phlm", "PHM", 57, NewTestament},
	{"Hebrews", "hebrews", "Heb", "HEB", 58, NewTestament},
	{"James", "james", "Jas", "JAM", 59, NewTestament},
	{"1 Peter", "1-peter", "1Pet", "1PE", 60, NewTestament},
	{"2 Peter", "2-peter", "2Pet", "2PE", 61, NewTestament},
	{"1 John", "1-john", "1John", "1JO", 62, NewTestament},
	{"2 John", "2-john", "2John", "2JO", 63, NewTestament},
	{"3 John", "3-john", "3John", "3JO", 64, NewTestament},
	{"Jude", "jude", "Jude", "JDE", 65, NewTestament},
	{"Revelation", "revelation", "Rev", "REV", 66, NewTestament},
}

// abbrevAliases maps alternate short codes found in the raw corpora
// (SWORD modules use several variants, USX uses a few others) to the
// primary Sword code in Canon. Codes are matched case-sensitively
// because the corpus mixes case deliberately ("So", "Jude").
var abbrevAliases = map[string]string{
	"MRK":  "MAR",
	"JHN":  "JOH",
	"JAS":  "JAM",
	"EZK":  "EZE",
	"JOL":  "JOE",
	"NAM":  "NAH",
	"So":   "SOL",
	"SNG":  "SOL",
	"Jude": "JDE",
	"JUD":  "JDE",
	"1JN":  "1JO",
	"2JN":  "2JO",
	"3JN":  "3JO",
}

var (
	bySword = make(map[string]*Book)
	byOsis  = make(map[string]*Book)
	bySlug  = make(map[string]*Book)
)

func init() {
	for i := range Canon {
		b := &Canon[i]
		bySword[b.Sword] = b
		byOsis[b.Osis] = b
		bySlug[b.Slug] = b
	}
	for alias, primary := range abbrevAliases {
		bySword[alias] = bySword[primary]
	}
}

// BySword looks up a book by its SWORD/USX abbreviation, including the
// alternate spellings present in the raw data.
func BySword(code string) (*Book, bool) {
	b, ok := bySword[code]
	return b, ok
}

// ByOsis looks up a book by its OSIS code (e.g. "2Kgs").
func ByOsis(code string) (*Book, bool) {
	b, ok := byOsis[code]
	return b, ok
}

// BySlug looks up a book by its URL slug (e.g. "1-chronicles").
func BySlug(slug string) (*Book, bool) {
	b, ok := bySlug[slug]
	return b, ok
}

// SwordCodes returns every recognized SWORD abbreviation, longest first.
// Citation scanning matches against this list so that "1CH" wins over a
// hypothetical shorter prefix.
func SwordCodes() []string {
	codes := make([]string, 0, len(bySword))
	for code := range bySword {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})
	return codes
}
