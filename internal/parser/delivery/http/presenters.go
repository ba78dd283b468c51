package http

import (
	"fmt"
	"time"

	"collab-command-engine/internal/model"
	"collab-command-engine/internal/parser"
	"collab-command-engine/pkg/response"
)

// --- Request DTOs ---

type memberReq struct {
	ID   string `json:"id"   binding:"required"`
	Name string `json:"name" binding:"required"`
}

type parseReq struct {
	Content   string      `json:"content" binding:"required,max=4000"`
	Members   []memberReq `json:"members" binding:"max=500,dive"`
	ProjectID string      `json:"project_id"`
	// Optional RFC3339 reference time; defaults to the server clock.
	Now string `json:"now"`
}

func (r parseReq) validate() error {
	if r.Now != "" {
		if _, err := time.Parse(time.RFC3339, r.Now); err != nil {
			return fmt.Errorf("now must be RFC3339: %w", err)
		}
	}
	return nil
}

func (r parseReq) toInput() parser.ParseInput {
	members := make([]model.ChatMember, len(r.Members))
	for i, m := range r.Members {
		members[i] = model.ChatMember{ID: m.ID, Name: m.Name}
	}

	var now time.Time
	if r.Now != "" {
		now, _ = time.Parse(time.RFC3339, r.Now)
	}

	return parser.ParseInput{
		Content:   r.Content,
		Members:   members,
		ProjectID: r.ProjectID,
		Now:       now,
	}
}

// --- Response DTOs ---

type taskResp struct {
	Title         string         `json:"title"`
	AssigneeNames []string       `json:"assignee_names,omitempty"`
	AssigneeIDs   []string       `json:"assignee_ids,omitempty"`
	DueDate       *response.Date `json:"due_date,omitempty"`
	Priority      string         `json:"priority"`
	ProjectID     string         `json:"project_id,omitempty"`
}

type eventResp struct {
	Title       string            `json:"title"`
	Start       response.DateTime `json:"start"`
	End         response.DateTime `json:"end"`
	Location    string            `json:"location,omitempty"`
	LocationURL string            `json:"location_url,omitempty"`
	AttendeeIDs []string          `json:"attendee_ids,omitempty"`
	Kind        string            `json:"kind"`
	ProjectID   string            `json:"project_id,omitempty"`
}

type locationResp struct {
	Title       string `json:"title"`
	Address     string `json:"address,omitempty"`
	SearchQuery string `json:"search_query"`
}

type actionResp struct {
	Type       string        `json:"type"`
	Confidence float64       `json:"confidence"`
	Task       *taskResp     `json:"task,omitempty"`
	Event      *eventResp    `json:"event,omitempty"`
	Location   *locationResp `json:"location,omitempty"`
}

type parseResp struct {
	HasAction    bool         `json:"has_action"`
	ReplyMessage string       `json:"reply_message,omitempty"`
	Actions      []actionResp `json:"actions"`
}

func newParseResp(out parser.ParseOutput) parseResp {
	actions := make([]actionResp, len(out.Actions))
	for i, a := range out.Actions {
		actions[i] = newActionResp(a)
	}
	return parseResp{
		HasAction:    out.HasAction,
		ReplyMessage: out.ReplyMessage,
		Actions:      actions,
	}
}

func newActionResp(a model.ParsedAction) actionResp {
	resp := actionResp{
		Type:       string(a.Kind),
		Confidence: a.Confidence,
	}

	switch a.Kind {
	case model.ActionTask:
		t := taskResp{
			Title:         a.Task.Title,
			AssigneeNames: a.Task.AssigneeNames,
			AssigneeIDs:   a.Task.AssigneeIDs,
			Priority:      string(a.Task.Priority),
			ProjectID:     a.Task.ProjectID,
		}
		if a.Task.DueDate != nil {
			d := response.Date(*a.Task.DueDate)
			t.DueDate = &d
		}
		resp.Task = &t
	case model.ActionEvent:
		resp.Event = &eventResp{
			Title:       a.Event.Title,
			Start:       response.DateTime(a.Event.Start),
			End:         response.DateTime(a.Event.End),
			Location:    a.Event.Location,
			LocationURL: a.Event.LocationURL,
			AttendeeIDs: a.Event.AttendeeIDs,
			Kind:        string(a.Event.Kind),
			ProjectID:   a.Event.ProjectID,
		}
	case model.ActionLocation:
		resp.Location = &locationResp{
			Title:       a.Location.Title,
			Address:     a.Location.Address,
			SearchQuery: a.Location.SearchQuery,
		}
	}
	return resp
}
