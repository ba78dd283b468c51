package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"collab-command-engine/internal/model"
	"collab-command-engine/internal/parser"
)

func TestParseMessage_EmptyContent(t *testing.T) {
	_, err := newEngine(t).ParseMessage(context.Background(), model.Scope{}, parser.ParseInput{
		Content: "   ",
		Members: testRoster(),
		Now:     refNow(t),
	})
	if !errors.Is(err, parser.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestParseMessage_Guards(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "too short", content: "ㅇㅋ"},
		{name: "past tense report", content: "어제 보고서 제출했어"},
		{name: "past tense with filler", content: "회의 끝났어요ㅎㅎ"},
		{name: "retrospective starter", content: "아까 민규에게 자료 전달 부탁해"},
		{name: "gratitude", content: "수고하셨습니다!"},
		{name: "gratitude mid sentence", content: "덕분에 잘 해결됐어요 내일 3시에 회의"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := parse(t, tt.content)
			if out.HasAction {
				t.Fatalf("expected HasAction=false, got actions %+v", out.Actions)
			}
			if len(out.Actions) != 0 || out.ReplyMessage != "" {
				t.Fatalf("rejected message must carry no payload, got %+v", out)
			}
		})
	}
}

func TestParseMessage_TaskAssigneeRequest(t *testing.T) {
	out := parse(t, "민규에게 보고서 작성 해줘")
	act := singleAction(t, out, model.ActionTask)

	task := act.Task
	if task.Title != "보고서 작성" {
		t.Errorf("title = %q, want %q", task.Title, "보고서 작성")
	}
	if !reflect.DeepEqual(task.AssigneeNames, []string{"민규"}) {
		t.Errorf("assignee names = %v", task.AssigneeNames)
	}
	if !reflect.DeepEqual(task.AssigneeIDs, []string{"u1"}) {
		t.Errorf("assignee ids = %v", task.AssigneeIDs)
	}
	if task.Priority != model.PriorityNormal {
		t.Errorf("priority = %s, want NORMAL", task.Priority)
	}
	if task.DueDate != nil {
		t.Errorf("due date = %v, want none", task.DueDate)
	}
	if act.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", act.Confidence)
	}
	if out.ReplyMessage != "📝 할 일: 보고서 작성 (담당: 민규)" {
		t.Errorf("reply = %q", out.ReplyMessage)
	}
}

func TestParseMessage_TaskDeadline(t *testing.T) {
	out := parse(t, "금요일까지 보고서 제출")
	act := singleAction(t, out, model.ActionTask)

	task := act.Task
	if task.Title != "보고서" {
		t.Errorf("title = %q, want %q", task.Title, "보고서")
	}
	if task.DueDate == nil {
		t.Fatal("expected a due date")
	}
	want := time.Date(2025, 1, 17, 0, 0, 0, 0, seoul(t))
	if !task.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", task.DueDate, want)
	}
	if act.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7 without assignee", act.Confidence)
	}
}

func TestParseMessage_TaskDeadlineYearRollover(t *testing.T) {
	out := parse(t, "1월 10일까지 보고서 제출")
	act := singleAction(t, out, model.ActionTask)

	want := time.Date(2026, 1, 10, 0, 0, 0, 0, seoul(t))
	if act.Task.DueDate == nil || !act.Task.DueDate.Equal(want) {
		t.Fatalf("due date = %v, want rolled over to %v", act.Task.DueDate, want)
	}
}

func TestParseMessage_TaskLabel(t *testing.T) {
	out := parse(t, "할 일: 디자인 시안 검토")
	act := singleAction(t, out, model.ActionTask)

	if act.Task.Title != "디자인 시안 검토" {
		t.Errorf("title = %q", act.Task.Title)
	}
}

func TestParseMessage_TaskPriority(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    model.Priority
		tag     string
	}{
		{name: "urgent", content: "민규에게 배포 스크립트 빨리 수정해줘", want: model.PriorityHigh, tag: "[긴급]"},
		{name: "relaxed", content: "천천히 자료 정리해줘", want: model.PriorityLow, tag: "[여유]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := parse(t, tt.content)
			act := singleAction(t, out, model.ActionTask)
			if act.Task.Priority != tt.want {
				t.Errorf("priority = %s, want %s", act.Task.Priority, tt.want)
			}
			if got := out.ReplyMessage; !strings.Contains(got, tt.tag) {
				t.Errorf("reply %q missing %q", got, tt.tag)
			}
		})
	}
}

func TestParseMessage_ProjectPassthrough(t *testing.T) {
	out, err := newEngine(t).ParseMessage(context.Background(), model.Scope{}, parser.ParseInput{
		Content:   "민규에게 보고서 작성 해줘",
		Members:   testRoster(),
		ProjectID: "proj-7",
		Now:       refNow(t),
	})
	if err != nil {
		t.Fatal(err)
	}
	act := singleAction(t, out, model.ActionTask)
	if act.Task.ProjectID != "proj-7" {
		t.Errorf("project id = %q, want proj-7", act.Task.ProjectID)
	}
}

func TestParseMessage_EventTimeTitle(t *testing.T) {
	out := parse(t, "금요일 3시에 팀 회의")
	act := singleAction(t, out, model.ActionEvent)

	ev := act.Event
	if ev.Title != "팀 회의" {
		t.Errorf("title = %q, want %q", ev.Title, "팀 회의")
	}
	wantStart := time.Date(2025, 1, 17, 15, 0, 0, 0, seoul(t))
	if !ev.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", ev.Start, wantStart)
	}
	if !ev.End.Equal(wantStart.Add(time.Hour)) {
		t.Errorf("end = %v, want start+1h", ev.End)
	}
	if ev.Kind != model.EventMeeting {
		t.Errorf("kind = %s, want MEETING", ev.Kind)
	}
	if out.ReplyMessage != "📅 일정: 팀 회의 (1월 17일 오후 3시)" {
		t.Errorf("reply = %q", out.ReplyMessage)
	}
}

func TestParseMessage_EventInformalMeet(t *testing.T) {
	out := parse(t, "5시에 만나자")
	act := singleAction(t, out, model.ActionEvent)

	wantStart := time.Date(2025, 1, 15, 17, 0, 0, 0, seoul(t))
	if !act.Event.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", act.Event.Start, wantStart)
	}
	if act.Event.Title != "5시에 만나자" {
		t.Errorf("title = %q, want the full message", act.Event.Title)
	}
}

func TestParseMessage_EventDeadlineKind(t *testing.T) {
	out := parse(t, "금요일 3시에 프로젝트 마감 회의")
	act := singleAction(t, out, model.ActionEvent)

	if act.Event.Kind != model.EventDeadline {
		t.Errorf("kind = %s, want DEADLINE", act.Event.Kind)
	}
}

func TestParseMessage_EventAttendeesAndTitleCleaning(t *testing.T) {
	out := parse(t, "내일 2시에 팀 회의 해주세요. 김서연님, 이준호님 포함")
	act := singleAction(t, out, model.ActionEvent)

	ev := act.Event
	if ev.Title != "팀 회의" {
		t.Errorf("title = %q, want %q", ev.Title, "팀 회의")
	}
	if !reflect.DeepEqual(ev.AttendeeIDs, []string{"u2", "u3"}) {
		t.Errorf("attendees = %v, want [u2 u3]", ev.AttendeeIDs)
	}
	wantStart := time.Date(2025, 1, 16, 14, 0, 0, 0, seoul(t))
	if !ev.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", ev.Start, wantStart)
	}
	if out.ReplyMessage != "📅 일정: 팀 회의 (1월 16일 오후 2시) (참석 2명)" {
		t.Errorf("reply = %q", out.ReplyMessage)
	}
}

func TestParseMessage_LocationStandalone(t *testing.T) {
	out := parse(t, "강남역 카페에서 만나자")
	act := singleAction(t, out, model.ActionLocation)

	loc := act.Location
	if loc.Title != "강남역 카페" {
		t.Errorf("title = %q, want %q", loc.Title, "강남역 카페")
	}
	if loc.SearchQuery != "강남역 카페" {
		t.Errorf("search query = %q, want the title", loc.SearchQuery)
	}
	if act.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", act.Confidence)
	}
	if out.ReplyMessage != "📍 장소 공유: 강남역 카페" {
		t.Errorf("reply = %q", out.ReplyMessage)
	}
}

func TestParseMessage_LocationLabelWithAddress(t *testing.T) {
	out := parse(t, "위치: 판교 테크원 타워\n주소: 경기 성남시 분당구 분당내곡로 131")
	act := singleAction(t, out, model.ActionLocation)

	loc := act.Location
	if loc.Title != "판교 테크원 타워" {
		t.Errorf("title = %q", loc.Title)
	}
	if loc.Address != "경기 성남시 분당구 분당내곡로 131" {
		t.Errorf("address = %q", loc.Address)
	}
}

func TestParseMessage_ReconciliationMergesLocation(t *testing.T) {
	out := parse(t, "내일 3시에 회의 잡자. 장소: 강남 오피스")

	if !out.HasAction {
		t.Fatal("expected HasAction=true")
	}
	if len(out.Actions) != 1 {
		t.Fatalf("expected the location to be absorbed, got %d actions: %+v", len(out.Actions), out.Actions)
	}
	ev := out.Actions[0]
	if ev.Kind != model.ActionEvent {
		t.Fatalf("surviving action kind = %s, want event", ev.Kind)
	}
	if ev.Event.Location != "강남 오피스" {
		t.Errorf("event location = %q, want %q", ev.Event.Location, "강남 오피스")
	}
}

// The combined message from the end-to-end examples: an attendee mention,
// an explicit date, an inline venue, a time, and a dangling request word
// that must not spawn a task.
func TestParseMessage_InlineLocationEndToEnd(t *testing.T) {
	out := parse(t, "민규님 2월 16일 강남역 9번출구에서 3시에 회의, 급하게 부탁")
	act := singleAction(t, out, model.ActionEvent)

	ev := act.Event
	if ev.Location != "강남역 9번출구" {
		t.Errorf("location = %q, want %q", ev.Location, "강남역 9번출구")
	}
	if !reflect.DeepEqual(ev.AttendeeIDs, []string{"u1"}) {
		t.Errorf("attendees = %v, want [u1]", ev.AttendeeIDs)
	}
	wantStart := time.Date(2025, 2, 16, 15, 0, 0, 0, seoul(t))
	if !ev.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", ev.Start, wantStart)
	}
	if ev.Kind != model.EventMeeting {
		t.Errorf("kind = %s, want MEETING", ev.Kind)
	}
}

func TestParseMessage_Deterministic(t *testing.T) {
	const content = "민규님 2월 16일 강남역 9번출구에서 3시에 회의, 급하게 부탁"

	first := parse(t, content)
	for i := 0; i < 5; i++ {
		if got := parse(t, content); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged:\n got %+v\nwant %+v", i, got, first)
		}
	}
}
