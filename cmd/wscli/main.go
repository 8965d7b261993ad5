package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	wordsearch "github.com/hugoTheClown/WordSearchGenerator"
	"github.com/hugoTheClown/WordSearchGenerator/internal/wordlist"
	"github.com/hugoTheClown/WordSearchGenerator/pkg/primitives"
)

// fileConfig holds defaults that can be kept in a TOML file instead of being
// repeated on every invocation. Explicit flags win over the file.
type fileConfig struct {
	Size     int    `toml:"size"`
	Pages    int    `toml:"pages"`
	Alphabet string `toml:"alphabet"`
	Words    string `toml:"words"`
	Phrases  string `toml:"phrases"`
}

func main() {
	wordFile := flag.String("words", "words.txt", "The file to load words from")
	phraseFile := flag.String("phrases", "", "The file to load hidden phrases from (default tajenky.csv if present)")
	phraseIndex := flag.Int("phrase-index", -1, "Which phrase to embed (-1 picks one at random)")
	size := flag.Int("size", 15, "The side length of the grid")
	pages := flag.Int("pages", 10, "How many puzzles to generate")
	noDiagonals := flag.Bool("no-diagonals", false, "Disallow diagonal directions")
	noBackwards := flag.Bool("no-backwards", false, "Disallow backward directions")
	strip := flag.Bool("strip", false, "Strip diacritics from the words")
	alphabetName := flag.String("alphabet", "cz", "Alphabet for filler letters: cz or az")
	seed := flag.Uint64("seed", 0, "Random seed (0 seeds from the clock)")
	showSolution := flag.Bool("solution", false, "Print placements and the hidden phrase after each puzzle")
	configFile := flag.String("config", "", "TOML file with default settings")

	profile := flag.Bool("profile", false, "Profile the generator")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	if *configFile != "" {
		var cfg fileConfig
		if _, err := toml.DecodeFile(*configFile, &cfg); err != nil {
			fmt.Println("Error reading config file:", err)
			os.Exit(1)
		}
		applyConfig(cfg, map[string]any{
			"size":     size,
			"pages":    pages,
			"alphabet": alphabetName,
			"words":    wordFile,
			"phrases":  phraseFile,
		})
	}

	alphabet, err := primitives.Named(*alphabetName)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	words, err := wordlist.ReadFile(*wordFile, *strip)
	if err != nil {
		fmt.Println("Error loading words:", err)
		os.Exit(1)
	}
	if len(words) == 0 {
		fmt.Println("No words found in", *wordFile)
		os.Exit(1)
	}
	fmt.Println("Words:", len(words))

	rng := newRand(*seed)

	phrase := pickPhrase(*phraseFile, *phraseIndex, rng)
	if phrase != "" {
		fmt.Println("Hidden phrase length:", len([]rune(phrase)))
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	gen := wordsearch.CreateGenerator(*size, words, wordsearch.Config{
		AllowDiagonals: !*noDiagonals,
		AllowBackwards: !*noBackwards,
	}, rng)

	for i := range max(1, *pages) {
		page := gen.GeneratePage(alphabet, phrase)

		fmt.Printf("--- Puzzle %d ---\n", i+1)
		fmt.Println(page.Grid.Repr())

		placed := wordsearch.PlacedWords(page.Placements)
		if len(placed) == 0 {
			fmt.Println("Warning: no words placed, try a larger grid or shorter words")
			continue
		}
		sort.Strings(placed)
		fmt.Printf("Placed %d of %d words: %s\n", len(placed), len(words), strings.Join(placed, ", "))

		if *showSolution {
			for _, p := range page.Placements {
				fmt.Printf("  %s at (%d,%d) %s\n", p.Word, p.X, p.Y, p.Dir)
			}
			if page.Phrase != "" {
				fmt.Println("  Hidden phrase:", page.Phrase)
			}
		}
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}

// newRand builds the run's random source. An explicit seed determines both
// PCG words, so repeating a run with the same -seed reproduces the same
// puzzles; seed 0 falls back to the clock.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond())))
	}
	return rand.New(rand.NewPCG(seed, 1024))
}

// applyConfig copies non-zero config values into flags the user did not set
// explicitly on the command line.
func applyConfig(cfg fileConfig, targets map[string]any) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	apply := func(name string, val any) {
		if set[name] {
			return
		}
		switch v := val.(type) {
		case int:
			if v != 0 {
				*targets[name].(*int) = v
			}
		case string:
			if v != "" {
				*targets[name].(*string) = v
			}
		}
	}
	apply("size", cfg.Size)
	apply("pages", cfg.Pages)
	apply("alphabet", cfg.Alphabet)
	apply("words", cfg.Words)
	apply("phrases", cfg.Phrases)
}

// pickPhrase loads the hidden-phrase file and selects one entry. An empty
// result means no phrase: the puzzles get plain random fill. The file is
// optional; only an explicitly named file that fails to load is an error.
func pickPhrase(path string, index int, rng *rand.Rand) string {
	explicit := path != ""
	if !explicit {
		path = "tajenky.csv"
		if _, err := os.Stat(path); err != nil {
			return ""
		}
	}

	phrases, err := wordlist.ReadPhrases(path)
	if err != nil {
		if explicit {
			fmt.Println("Error loading phrases:", err)
			os.Exit(1)
		}
		return ""
	}
	if len(phrases) == 0 {
		return ""
	}

	if index == -1 {
		index = rng.IntN(len(phrases))
	}
	index = max(0, min(index, len(phrases)-1))
	return wordlist.NormalizePhrase(phrases[index])
}
