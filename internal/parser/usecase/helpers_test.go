package usecase_test

import (
	"context"
	"testing"
	"time"

	"collab-command-engine/internal/lexicon"
	"collab-command-engine/internal/model"
	"collab-command-engine/internal/parser"
	"collab-command-engine/internal/parser/usecase"
	"collab-command-engine/internal/roster"
	"collab-command-engine/pkg/kdate"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// fixtures

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load Asia/Seoul: %v", err)
	}
	return loc
}

// refNow is the fixed reference time used across the tests: Wednesday,
// 2025-01-15, 09:00 KST.
func refNow(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 1, 15, 9, 0, 0, 0, seoul(t))
}

func testRoster() []model.ChatMember {
	return []model.ChatMember{
		{ID: "u1", Name: "박민규"},
		{ID: "u2", Name: "김서연"},
		{ID: "u3", Name: "이준호"},
	}
}

func newEngine(t *testing.T) parser.UseCase {
	t.Helper()

	dates, err := kdate.NewResolver(kdate.DefaultTimezone)
	if err != nil {
		t.Fatalf("kdate.NewResolver: %v", err)
	}

	lex := lexicon.Default()
	names := roster.NewResolver(lex.Honorifics)

	return usecase.New(&mockLogger{}, dates, names, lex)
}

func parse(t *testing.T, content string) parser.ParseOutput {
	t.Helper()

	out, err := newEngine(t).ParseMessage(context.Background(), model.Scope{UserID: "tester"}, parser.ParseInput{
		Content: content,
		Members: testRoster(),
		Now:     refNow(t),
	})
	if err != nil {
		t.Fatalf("ParseMessage(%q): %v", content, err)
	}
	return out
}

func singleAction(t *testing.T, out parser.ParseOutput, kind model.ActionKind) model.ParsedAction {
	t.Helper()

	if !out.HasAction {
		t.Fatal("expected HasAction=true")
	}
	if len(out.Actions) != 1 {
		t.Fatalf("expected exactly 1 action, got %d: %+v", len(out.Actions), out.Actions)
	}
	if out.Actions[0].Kind != kind {
		t.Fatalf("expected action kind %s, got %s", kind, out.Actions[0].Kind)
	}
	return out.Actions[0]
}
