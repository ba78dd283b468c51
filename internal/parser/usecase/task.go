package usecase

import (
	"regexp"
	"strings"
	"time"

	"collab-command-engine/internal/model"
)

const (
	taskConfidenceAssigned = 0.85
	taskConfidenceDefault  = 0.7
)

var (
	// "<name>(에게|한테) <title> <request verb>"
	taskAssigneeRE = regexp.MustCompile(`^\s*(\S+?)(?:에게|한테)\s+(.+?)\s*(?:해\s*줘|해주세요|해줄래|부탁해요|부탁해|부탁드려요|부탁드립니다|부탁합니다|부탁)\s*[!.~^ㅋㅎ]*$`)

	// "<date-expr>까지 <title> <completion verb>"
	taskDeadlineRE = regexp.MustCompile(`^\s*(.+?)\s*까지\s*(.+?)\s*(?:하기|완성|제출|마감|끝내기|마무리)`)

	// "할 일: <title>" / "TODO: <title>"
	taskLabelRE = regexp.MustCompile(`^\s*(?:할\s*일|TODO|todo|투두)\s*[:：]\s*(.+)$`)

	// "<title> <request verb>" with no assignee clause
	taskTrailingVerbRE = regexp.MustCompile(`^\s*(.+?)\s*(?:해\s*줘|해주세요|해줄래|부탁해요|부탁해|만들어\s*줘|작성해줘|준비해줘|확인해줘|정리해줘|올려줘|보내줘)\s*[!.~^ㅋㅎ]*$`)
)

// matchTask runs the task rules in priority order. After a match, missing
// due date and assignees are filled by full-text scans; neither fallback
// can undo the match itself.
func (uc *implUseCase) matchTask(content string, members []model.ChatMember, projectID string, now time.Time) *model.ParsedAction {
	for _, rule := range uc.taskRules {
		data, ok := rule.match(content, members, now)
		if !ok {
			continue
		}

		if data.DueDate == nil {
			if due, found := uc.dates.ResolveDate(content, now); found {
				data.DueDate = &due
			}
		}

		if len(data.AssigneeIDs) == 0 {
			mentionNames, mentionIDs := uc.names.ExtractMentions(content, members)
			if len(mentionIDs) > 0 {
				data.AssigneeNames = append(data.AssigneeNames, mentionNames...)
				data.AssigneeIDs = mentionIDs
			}
		}

		data.Priority = uc.classifyPriority(content)
		data.ProjectID = projectID

		confidence := taskConfidenceDefault
		if len(data.AssigneeIDs) > 0 {
			confidence = taskConfidenceAssigned
		}

		return &model.ParsedAction{
			Kind:       model.ActionTask,
			Confidence: confidence,
			Task:       &data,
		}
	}
	return nil
}

// taskFromAssigneeRequest handles "<name>에게 <title> 해줘". The single
// leading name is both the raw mention and the resolution input.
func (uc *implUseCase) taskFromAssigneeRequest(content string, members []model.ChatMember, _ time.Time) (model.TaskData, bool) {
	m := taskAssigneeRE.FindStringSubmatch(content)
	if m == nil {
		return model.TaskData{}, false
	}

	name := strings.TrimSpace(m[1])
	ids, _ := uc.names.Resolve([]string{name}, members)

	return model.TaskData{
		Title:         strings.TrimSpace(m[2]),
		AssigneeNames: []string{name},
		AssigneeIDs:   ids,
	}, true
}

// taskFromDeadline handles "<date-expr>까지 <title> 제출" phrasing. No
// assignee is extracted here; the mention fallback may still find one.
func (uc *implUseCase) taskFromDeadline(content string, _ []model.ChatMember, now time.Time) (model.TaskData, bool) {
	m := taskDeadlineRE.FindStringSubmatch(content)
	if m == nil {
		return model.TaskData{}, false
	}

	data := model.TaskData{Title: strings.TrimSpace(m[2])}
	if due, ok := uc.dates.ResolveDate(m[1], now); ok {
		data.DueDate = &due
	}
	return data, true
}

func (uc *implUseCase) taskFromLabel(content string, _ []model.ChatMember, _ time.Time) (model.TaskData, bool) {
	m := taskLabelRE.FindStringSubmatch(content)
	if m == nil {
		return model.TaskData{}, false
	}
	return model.TaskData{Title: strings.TrimSpace(m[1])}, true
}

func (uc *implUseCase) taskFromTrailingVerb(content string, _ []model.ChatMember, _ time.Time) (model.TaskData, bool) {
	m := taskTrailingVerbRE.FindStringSubmatch(content)
	if m == nil {
		return model.TaskData{}, false
	}
	return model.TaskData{Title: strings.TrimSpace(m[1])}, true
}

// classifyPriority scans the whole message for urgency keywords. HIGH wins
// over LOW when both sets somehow match.
func (uc *implUseCase) classifyPriority(text string) model.Priority {
	if containsAny(text, uc.lex.UrgentKeywords) {
		return model.PriorityHigh
	}
	if containsAny(text, uc.lex.RelaxedKeywords) {
		return model.PriorityLow
	}
	return model.PriorityNormal
}
