// Command replay runs the extraction engine over a JSONL chat export and
// writes each line back annotated with the parse result. Useful for
// regression-checking lexicon or pattern changes against real history.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"collab-command-engine/internal/lexicon"
	"collab-command-engine/internal/model"
	"collab-command-engine/internal/parser"
	"collab-command-engine/internal/parser/usecase"
	"collab-command-engine/internal/roster"
	"collab-command-engine/pkg/kdate"
	"collab-command-engine/pkg/log"
)

func main() {
	var (
		inputPath   = flag.String("input", "", "JSONL chat export; each line needs a content field, timestamp optional")
		outputPath  = flag.String("output", "-", "annotated JSONL destination, - for stdout")
		rosterPath  = flag.String("roster", "", "JSON roster file: [{\"id\": ..., \"name\": ...}]")
		projectID   = flag.String("project", "", "project id passed through to produced actions")
		timezone    = flag.String("timezone", kdate.DefaultTimezone, "IANA zone for date resolution")
		lexiconPath = flag.String("lexicon", "", "optional YAML lexicon overlay")
		nowFlag     = flag.String("now", "", "RFC3339 reference time for lines without a timestamp")
	)
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "replay: -input is required")
		flag.Usage()
		os.Exit(2)
	}

	logger := log.Init(log.ZapConfig{Level: "info", Mode: "development", Encoding: "console"})
	ctx := context.Background()

	defaultNow := time.Now()
	if *nowFlag != "" {
		var err error
		defaultNow, err = time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			logger.Fatalf(ctx, "invalid -now %q: %v", *nowFlag, err)
		}
	}

	dates, err := kdate.NewResolver(*timezone)
	if err != nil {
		logger.Fatalf(ctx, "invalid -timezone: %v", err)
	}

	lex, err := lexicon.Load(*lexiconPath)
	if err != nil {
		logger.Fatalf(ctx, "load lexicon: %v", err)
	}

	members, err := loadRoster(*rosterPath)
	if err != nil {
		logger.Fatalf(ctx, "load roster: %v", err)
	}

	engine := usecase.New(logger, dates, roster.NewResolver(lex.Honorifics), lex)

	in, err := os.Open(*inputPath)
	if err != nil {
		logger.Fatalf(ctx, "open input: %v", err)
	}
	defer in.Close()

	out := io.Writer(os.Stdout)
	if *outputPath != "-" {
		f, err := os.Create(*outputPath)
		if err != nil {
			logger.Fatalf(ctx, "create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	lines, actions, err := replay(ctx, engine, members, *projectID, defaultNow, in, out)
	if err != nil {
		logger.Fatalf(ctx, "replay: %v", err)
	}
	logger.Infof(ctx, "replayed %d line(s), %d with actions", lines, actions)
}

// replay streams the export line by line, annotating each message with the
// engine's result under a "parse" key. Lines without a content field pass
// through untouched.
func replay(ctx context.Context, engine parser.UseCase, members []model.ChatMember, projectID string, defaultNow time.Time, in io.Reader, out io.Writer) (lines, withActions int, err error) {
	w := bufio.NewWriter(out)
	defer w.Flush()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		lines++

		content := gjson.Get(line, "content").String()
		if content == "" {
			fmt.Fprintln(w, line)
			continue
		}

		now := defaultNow
		if ts := gjson.Get(line, "timestamp").String(); ts != "" {
			if parsed, tsErr := time.Parse(time.RFC3339, ts); tsErr == nil {
				now = parsed
			}
		}

		sender := gjson.Get(line, "sender").String()
		if sender == "" {
			sender = "replay"
		}

		result, parseErr := engine.ParseMessage(ctx, model.Scope{UserID: sender}, parser.ParseInput{
			Content:   content,
			Members:   members,
			ProjectID: projectID,
			Now:       now,
		})
		if errors.Is(parseErr, parser.ErrEmptyContent) {
			fmt.Fprintln(w, line)
			continue
		}
		if parseErr != nil {
			return lines, withActions, fmt.Errorf("line %d: %w", lines, parseErr)
		}
		if result.HasAction {
			withActions++
		}

		raw, mErr := json.Marshal(result)
		if mErr != nil {
			return lines, withActions, fmt.Errorf("line %d: marshal result: %w", lines, mErr)
		}

		annotated, sErr := sjson.SetRaw(line, "parse", string(raw))
		if sErr != nil {
			return lines, withActions, fmt.Errorf("line %d: annotate: %w", lines, sErr)
		}
		fmt.Fprintln(w, annotated)
	}

	return lines, withActions, sc.Err()
}

// loadRoster reads the roster JSON array. An empty path means an empty
// roster; name resolution then never matches.
func loadRoster(path string) ([]model.ChatMember, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(raw)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("roster must be a JSON array")
	}

	var members []model.ChatMember
	for _, entry := range parsed.Array() {
		m := model.ChatMember{
			ID:   entry.Get("id").String(),
			Name: entry.Get("name").String(),
		}
		if m.ID == "" || m.Name == "" {
			return nil, fmt.Errorf("roster entry missing id or name: %s", entry.Raw)
		}
		members = append(members, m)
	}
	return members, nil
}
