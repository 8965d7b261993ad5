package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"google.golang.org/api/iterator"

	wordsearch "github.com/hugoTheClown/WordSearchGenerator"
	"github.com/hugoTheClown/WordSearchGenerator/internal/wordlist"
	"github.com/hugoTheClown/WordSearchGenerator/pkg/primitives"
)

type GeneratePuzzleRequest struct {
	Size            int      `json:"size"`
	Pages           int      `json:"pages"`
	Words           []string `json:"words"`
	WordScope       string   `json:"wordScope"`
	Phrase          string   `json:"phrase"`
	Alphabet        string   `json:"alphabet"`
	NoDiagonals     bool     `json:"noDiagonals"`
	NoBackwards     bool     `json:"noBackwards"`
	StripDiacritics bool     `json:"stripDiacritics"`
	Seed            uint64   `json:"seed"`
	IncludeSolution bool     `json:"includeSolution"`
}

type PuzzlePlacement struct {
	Word      string `json:"word"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"`
}

type Puzzle struct {
	Grid       []string          `json:"grid"`
	Words      []string          `json:"words"`
	Phrase     string            `json:"phrase,omitempty"`
	Placements []PuzzlePlacement `json:"placements,omitempty"`
}

type GeneratePuzzleResponse struct {
	Success bool     `json:"success"`
	Puzzles []Puzzle `json:"puzzles"`
	Error   string   `json:"error,omitempty"`
}

func getWords(ctx context.Context, scope string) ([]string, error) {
	client, err := bigquery.NewClient(ctx, "wordsearch-x")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf("SELECT word FROM `wordsearch-x.WordLists.all_words` WHERE scope = %q", scope)
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func execute(ctx context.Context, req GeneratePuzzleRequest) ([]Puzzle, error) {
	if req.Size < 1 {
		return nil, fmt.Errorf("size must be at least 1")
	}
	if req.Pages <= 0 {
		req.Pages = 1
	}
	if req.Pages > 20 {
		return nil, fmt.Errorf("pages must be at most 20")
	}

	alphabet, err := primitives.Named(req.Alphabet)
	if err != nil {
		return nil, err
	}

	raw := req.Words
	if req.WordScope != "" {
		scopeWords, err := getWords(ctx, req.WordScope)
		if err != nil {
			return nil, fmt.Errorf("getWords: %w", err)
		}
		fmt.Printf("Loaded %d words for scope %q\n", len(scopeWords), req.WordScope)
		raw = append(raw, scopeWords...)
	}

	words := wordlist.Parse(strings.Join(raw, "\n"), req.StripDiacritics)
	if len(words) == 0 {
		return nil, fmt.Errorf("no words to place")
	}

	phrase := wordlist.NormalizePhrase(req.Phrase)

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, uint64(req.Size)))

	gen := wordsearch.CreateGenerator(req.Size, words, wordsearch.Config{
		AllowDiagonals: !req.NoDiagonals,
		AllowBackwards: !req.NoBackwards,
	}, rng)

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var puzzles []Puzzle
	for range req.Pages {
		if err := ctx.Err(); err != nil {
			break
		}

		page := gen.GeneratePage(alphabet, phrase)
		puzzle := Puzzle{
			Grid:   page.Grid.Rows(),
			Words:  wordsearch.PlacedWords(page.Placements),
			Phrase: page.Phrase,
		}
		if req.IncludeSolution {
			for _, p := range page.Placements {
				puzzle.Placements = append(puzzle.Placements, PuzzlePlacement{
					Word: p.Word, X: p.X, Y: p.Y, Direction: p.Dir.Label,
				})
			}
		}
		puzzles = append(puzzles, puzzle)
	}

	return puzzles, ctx.Err()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func generatePuzzle(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req GeneratePuzzleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		response := GeneratePuzzleResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	puzzles, err := execute(r.Context(), req)

	response := GeneratePuzzleResponse{
		Success: err == nil,
		Puzzles: puzzles,
	}

	if err != nil {
		response.Error = err.Error()
	} else if len(puzzles) == 0 {
		response.Error = "No puzzles could be generated with the given parameters"
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/generate-puzzle", generatePuzzle)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
