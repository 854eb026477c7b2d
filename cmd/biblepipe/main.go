// Command biblepipe builds the site's biblical reference data: topical
// entries, name glossaries, geocoded places, and commandment quizzes.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/errors"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/geo"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/names"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/quiz"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/topics"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/archive"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/csvx"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/jsonl"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/logging"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/report"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/store"
)

const version = "0.2.0"

// CLI defines the command-line interface for biblepipe.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format"`

	Build    BuildGroup  `cmd:"" help:"Build processed data files from raw inputs"`
	Pack     PackCmd     `cmd:"" help:"Pack a processed data directory into a tar.xz archive"`
	ExportDB ExportDBCmd `cmd:"" name:"export-db" help:"Export processed data into a SQLite database"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// BuildGroup contains the per-dataset build commands.
type BuildGroup struct {
	Topics  BuildTopicsCmd  `cmd:"" help:"Build topical entries from the raw topics CSV"`
	Names   BuildNamesCmd   `cmd:"" help:"Build the name glossary from the raw names CSV"`
	Places  BuildPlacesCmd  `cmd:"" help:"Build geocoded places from the raw JSONL exports"`
	Quizzes BuildQuizzesCmd `cmd:"" help:"Build commandment quizzes from the commandments CSV"`
	All     BuildAllCmd     `cmd:"" help:"Build every dataset"`
}

// BuildTopicsCmd builds naves-topics.json and naves-index.json.
type BuildTopicsCmd struct {
	CSV string `help:"Raw topics CSV path" default:"data/sword-modules/naves-raw.csv" type:"path"`
	Out string `help:"Output directory" default:"data/processed" type:"path"`
}

func (c *BuildTopicsCmd) Run() error {
	w, err := report.NewWriter(c.Out)
	if err != nil {
		return err
	}
	if err := buildTopics(w, c.CSV); err != nil {
		return err
	}
	_, err = w.WriteManifest()
	return err
}

// BuildNamesCmd builds hitchcock-names.json and hitchcock-index.json.
type BuildNamesCmd struct {
	CSV string `help:"Raw names CSV path" default:"data/sword-modules/hitchcock-raw.csv" type:"path"`
	Out string `help:"Output directory" default:"data/processed" type:"path"`
}

func (c *BuildNamesCmd) Run() error {
	w, err := report.NewWriter(c.Out)
	if err != nil {
		return err
	}
	if err := buildNames(w, c.CSV); err != nil {
		return err
	}
	_, err = w.WriteManifest()
	return err
}

// BuildPlacesCmd builds the geocoded place files.
type BuildPlacesCmd struct {
	Raw string `help:"Directory holding ancient.jsonl, modern.jsonl, image.jsonl" default:"data/geocoding/raw" type:"path"`
	Out string `help:"Output directory" default:"data/processed" type:"path"`
}

func (c *BuildPlacesCmd) Run() error {
	w, err := report.NewWriter(c.Out)
	if err != nil {
		return err
	}
	if err := buildPlaces(w, c.Raw); err != nil {
		return err
	}
	_, err = w.WriteManifest()
	return err
}

// BuildQuizzesCmd builds the commandment quiz files.
type BuildQuizzesCmd struct {
	CSV  string `help:"Commandments CSV path" default:"data/bible-data/BibleData-Commandments.csv" type:"path"`
	Out  string `help:"Output directory" default:"data/processed" type:"path"`
	Seed int64  `help:"Shuffle seed" default:"613"`
}

func (c *BuildQuizzesCmd) Run() error {
	w, err := report.NewWriter(c.Out)
	if err != nil {
		return err
	}
	if err := buildQuizzes(w, c.CSV, c.Seed); err != nil {
		return err
	}
	_, err = w.WriteManifest()
	return err
}

// BuildAllCmd builds every dataset into one output directory with a
// single shared manifest.
type BuildAllCmd struct {
	TopicsCSV       string `help:"Raw topics CSV path" default:"data/sword-modules/naves-raw.csv" type:"path"`
	NamesCSV        string `help:"Raw names CSV path" default:"data/sword-modules/hitchcock-raw.csv" type:"path"`
	GeoRaw          string `help:"Geocoding raw JSONL directory" default:"data/geocoding/raw" type:"path"`
	CommandmentsCSV string `help:"Commandments CSV path" default:"data/bible-data/BibleData-Commandments.csv" type:"path"`
	Out             string `help:"Output directory" default:"data/processed" type:"path"`
	Seed            int64  `help:"Quiz shuffle seed" default:"613"`
}

func (c *BuildAllCmd) Run() error {
	w, err := report.NewWriter(c.Out)
	if err != nil {
		return err
	}
	if err := buildTopics(w, c.TopicsCSV); err != nil {
		return err
	}
	if err := buildNames(w, c.NamesCSV); err != nil {
		return err
	}
	if err := buildPlaces(w, c.GeoRaw); err != nil {
		return err
	}
	if err := buildQuizzes(w, c.CommandmentsCSV, c.Seed); err != nil {
		return err
	}
	m, err := w.WriteManifest()
	if err != nil {
		return err
	}
	fmt.Printf("Build %s: %d files written to %s\n", m.BuildID, len(m.Files), c.Out)
	return nil
}

// PackCmd packs a processed data directory into a tar.xz archive.
type PackCmd struct {
	Dir string `arg:"" help:"Processed data directory" type:"existingdir"`
	Out string `required:"" help:"Output archive path" type:"path"`
}

func (c *PackCmd) Run() error {
	if err := archive.CreateTarXz(c.Dir, c.Out, "data"); err != nil {
		return errors.Wrapf(err, "failed to pack %s", c.Dir)
	}
	info, err := os.Stat(c.Out)
	if err != nil {
		return err
	}
	fmt.Printf("Created: %s (%.2f MB)\n", c.Out, float64(info.Size())/(1024*1024))
	return nil
}

// ExportDBCmd exports processed data files into a SQLite database.
type ExportDBCmd struct {
	Dir string `arg:"" help:"Processed data directory" type:"existingdir"`
	Out string `required:"" help:"Output database path" type:"path"`
}

func (c *ExportDBCmd) Run() error {
	db, err := store.Open(c.Out)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer db.Close()

	if err := store.InitSchema(db); err != nil {
		return err
	}

	var places []geo.Place
	if err := readJSON(filepath.Join(c.Dir, "places.json"), &places); err != nil {
		return err
	}
	var bookIndex, chapterIndex map[string][]string
	if err := readJSON(filepath.Join(c.Dir, "places-by-book.json"), &bookIndex); err != nil {
		return err
	}
	if err := readJSON(filepath.Join(c.Dir, "places-by-chapter.json"), &chapterIndex); err != nil {
		return err
	}
	if err := store.ExportPlaces(db, places, bookIndex, chapterIndex); err != nil {
		return err
	}

	var topicEntries []topics.Topic
	if err := readJSON(filepath.Join(c.Dir, "naves-topics.json"), &topicEntries); err != nil {
		return err
	}
	if err := store.ExportTopics(db, topicEntries); err != nil {
		return err
	}

	var nameEntries []names.Name
	if err := readJSON(filepath.Join(c.Dir, "hitchcock-names.json"), &nameEntries); err != nil {
		return err
	}
	if err := store.ExportNames(db, nameEntries); err != nil {
		return err
	}

	counts, err := store.Counts(db)
	if err != nil {
		return err
	}
	fmt.Printf("Exported: %s\n", c.Out)
	for _, table := range []string{"places", "place_books", "place_chapters", "topics", "names"} {
		fmt.Printf("  %s: %d rows\n", table, counts[table])
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("biblepipe version %s\n", version)
	return nil
}

func buildTopics(w *report.Writer, csvPath string) error {
	log := logging.GetLogger()

	raw, err := readInput(csvPath)
	if err != nil {
		return err
	}

	var rows []topics.Row
	for i, fields := range csvx.Parse(raw) {
		if i == 0 || len(fields) < 3 {
			continue
		}
		rows = append(rows, topics.Row{Section: fields[0], Subject: fields[1], Entry: fields[2]})
	}
	log.Info("parsed topic rows", "rows", len(rows))

	built := topics.Build(rows)
	index := topics.BuildIndex(built)
	log.Info("built topics", "topics", len(built), "verseRefs", index.TotalVerseRefs)

	if err := w.WriteJSON("naves-topics.json", built); err != nil {
		return err
	}
	return w.WriteJSON("naves-index.json", index)
}

func buildNames(w *report.Writer, csvPath string) error {
	raw, err := readInput(csvPath)
	if err != nil {
		return err
	}

	built := names.Build(raw)
	index := names.BuildIndex(built)
	logging.GetLogger().Info("built names", "names", len(built))

	if err := w.WriteJSON("hitchcock-names.json", built); err != nil {
		return err
	}
	return w.WriteJSON("hitchcock-index.json", index)
}

func buildPlaces(w *report.Writer, rawDir string) error {
	log := logging.GetLogger()

	ancients, err := jsonl.ReadFile[geo.AncientRecord](filepath.Join(rawDir, "ancient.jsonl"))
	if err != nil {
		return err
	}
	moderns, err := jsonl.ReadFile[geo.ModernRecord](filepath.Join(rawDir, "modern.jsonl"))
	if err != nil {
		return err
	}
	images, err := jsonl.ReadFile[geo.ImageRecord](filepath.Join(rawDir, "image.jsonl"))
	if err != nil {
		return err
	}
	log.Info("loaded geocoding records",
		"ancient", len(ancients), "modern", len(moderns), "image", len(images))

	places := geo.BuildPlaces(ancients, moderns)
	bookIndex := geo.BuildBookIndex(places)
	chapterIndex := geo.BuildChapterIndex(places)
	verseIndex := geo.BuildVerseIndex(places)
	typeIndex := geo.BuildTypeIndex(places)
	nearby := geo.NearestNeighbors(places, 10)

	log.Info("built places",
		"places", len(places),
		"verseCombos", len(verseIndex),
		"types", len(typeIndex),
		"books", len(bookIndex),
		"chapters", len(chapterIndex),
		"nearbyLists", len(nearby))

	outputs := []struct {
		name string
		data any
	}{
		{"places.json", places},
		{"places-index.json", geo.BuildSlugIndex(places)},
		{"places-by-book.json", bookIndex},
		{"places-by-chapter.json", chapterIndex},
		{"verse-places.json", verseIndex},
		{"place-types.json", typeIndex},
		{"nearby-places.json", nearby},
		{"images.json", geo.BuildImages(images)},
	}
	for _, out := range outputs {
		if err := w.WriteJSON(out.name, out.data); err != nil {
			return err
		}
	}
	return nil
}

func buildQuizzes(w *report.Writer, csvPath string, seed int64) error {
	raw, err := readInput(csvPath)
	if err != nil {
		return err
	}

	cmds := quiz.ParseCommandments(raw)
	logging.GetLogger().Info("parsed commandments", "commandments", len(cmds))

	rng := quiz.NewRand(seed)
	for _, q := range quiz.GenerateAll(rng, cmds) {
		if err := w.WriteJSON(q.Slug+".json", q); err != nil {
			return err
		}
	}
	return nil
}

// readInput loads a required source file. A missing input is fatal to
// the whole build, unlike row-level defects inside it.
func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFound("source file", path)
		}
		return "", errors.NewIO("read", path, err)
	}
	return string(data), nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewIO("read", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.NewParse("JSON", path, err.Error())
	}
	return nil
}

func parseLogLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("biblepipe"),
		kong.Description("Biblical reference data build pipeline"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(parseLogLevel(CLI.LogLevel), format)

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
