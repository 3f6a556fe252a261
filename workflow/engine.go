// workflow/engine.go
//
// The QC workflow engine is the single authority over an asset's
// workflow columns (status, qc_status, workflow_stage, rework_count,
// linking_active, reviewer fields). It is a pure function over state:
// no I/O, no clock, no store access. Callers persist the returned
// state and log entry.
package workflow

import (
	"fmt"
	"time"

	backoffice_errors "github.com/SAHAYOGESHWARAN/guries-sub010/errors"
	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

// Action is a workflow transition request.
type Action string

const (
	ActionCreate        Action = "create"
	ActionSubmit        Action = "submit"
	ActionApprove       Action = "approve"
	ActionReject        Action = "reject"
	ActionRequestRework Action = "rework"
)

// qcDecisions are the actions that require perform_qc_review.
var qcDecisions = map[Action]bool{
	ActionApprove:       true,
	ActionReject:        true,
	ActionRequestRework: true,
}

// IsQCDecision reports whether the action is a reviewer verdict.
func (a Action) IsQCDecision() bool {
	return qcDecisions[a]
}

// ParseAction maps a request-body action string to an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionSubmit, ActionApprove, ActionReject, ActionRequestRework:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown workflow action: %q", s)
	}
}

// State is the workflow-relevant projection of an asset.
type State struct {
	Status        model.AssetStatus
	QCStatus      model.QCStatus
	WorkflowStage model.WorkflowStage
	ReworkCount   int
	LinkingActive bool
	QCReviewerID  string
	QCReviewedAt  *time.Time
	QCRemarks     string
	QCScore       *int
	Version       int64
}

// StateOf extracts the workflow state from an asset record.
func StateOf(a *model.Asset) State {
	return State{
		Status:        a.Status,
		QCStatus:      a.QCStatus,
		WorkflowStage: a.WorkflowStage,
		ReworkCount:   a.ReworkCount,
		LinkingActive: a.LinkingActive,
		QCReviewerID:  a.QCReviewerID,
		QCReviewedAt:  a.QCReviewedAt,
		QCRemarks:     a.QCRemarks,
		QCScore:       a.QCScore,
		Version:       a.Version,
	}
}

// ApplyTo writes the state back onto an asset record.
func (s State) ApplyTo(a *model.Asset) {
	a.Status = s.Status
	a.QCStatus = s.QCStatus
	a.WorkflowStage = s.WorkflowStage
	a.ReworkCount = s.ReworkCount
	a.LinkingActive = s.LinkingActive
	a.QCReviewerID = s.QCReviewerID
	a.QCReviewedAt = s.QCReviewedAt
	a.QCRemarks = s.QCRemarks
	a.QCScore = s.QCScore
	a.Version = s.Version
}

// InQueue reports whether the state belongs to the pending QC queue.
func (s State) InQueue() bool {
	return s.QCStatus == model.QCStatusPending || s.QCStatus == model.QCStatusRework
}

// Payload carries the caller-supplied inputs of a transition.
type Payload struct {
	UserID    string
	Remarks   string
	Score     *int
	Timestamp time.Time
}

// Initial returns the state of a freshly created asset.
func Initial() State {
	return State{
		Status:        model.StatusDraft,
		QCStatus:      model.QCStatusPending,
		WorkflowStage: model.StageAdd,
	}
}

// Apply validates and executes one transition. On success it returns
// the new state and the log entry to append; the input state is never
// mutated. Re-entrant Approve/Reject calls re-apply their effect
// (idempotent overwrite) rather than failing. linking_active is
// recomputed on every decision so that linking_active holds exactly
// when the most recent decision was an approval.
func Apply(state State, action Action, p Payload) (State, model.WorkflowLogEntry, error) {
	next := state

	switch action {
	case ActionCreate:
		next = Initial()

	case ActionSubmit:
		// A rejected asset stays out of the pipeline until a reviewer
		// reopens it via rework. Resubmitting an approved asset pulls
		// it back into the queue and clears its link visibility.
		if state.QCStatus == model.QCStatusRejected {
			return state, model.WorkflowLogEntry{}, fmt.Errorf("cannot submit a rejected asset: %w", backoffice_errors.ErrInvalidTransition)
		}
		if state.QCStatus == model.QCStatusApproved {
			next.QCStatus = model.QCStatusPending
		}
		next.Status = model.StatusPendingQC
		next.WorkflowStage = model.StageQC
		next.LinkingActive = false

	case ActionApprove:
		next.QCStatus = model.QCStatusApproved
		next.WorkflowStage = model.StageApprove
		next.Status = model.StatusPublished
		next.LinkingActive = true
		next.setReview(p)

	case ActionReject:
		next.QCStatus = model.QCStatusRejected
		next.WorkflowStage = model.StageQC
		next.Status = model.StatusRejected
		next.LinkingActive = false
		next.setReview(p)

	case ActionRequestRework:
		next.QCStatus = model.QCStatusRework
		next.WorkflowStage = model.StageQC
		next.Status = model.StatusReworkRequested
		next.ReworkCount = state.ReworkCount + 1
		next.LinkingActive = false
		next.setReview(p)

	default:
		return state, model.WorkflowLogEntry{}, fmt.Errorf("unknown workflow action: %q", action)
	}

	next.Version = state.Version + 1

	entry := model.WorkflowLogEntry{
		Action:        logAction(action),
		Timestamp:     p.Timestamp,
		UserID:        p.UserID,
		Status:        next.Status,
		WorkflowStage: next.WorkflowStage,
		Remarks:       p.Remarks,
	}
	return next, entry, nil
}

func (s *State) setReview(p Payload) {
	s.QCReviewerID = p.UserID
	t := p.Timestamp
	s.QCReviewedAt = &t
	s.QCRemarks = p.Remarks
	s.QCScore = p.Score
}

// logAction maps an action to its audit verb.
func logAction(a Action) string {
	switch a {
	case ActionCreate:
		return "created"
	case ActionSubmit:
		return "submitted"
	case ActionApprove:
		return "approved"
	case ActionReject:
		return "rejected"
	case ActionRequestRework:
		return "rework_requested"
	}
	return string(a)
}
