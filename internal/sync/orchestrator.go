package sync

import (
	"context"
	"fmt"
	"time"

	"golfsync/internal/clickup"
	"golfsync/internal/domain"
	"golfsync/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request inbound sync trigger from the enrichment pipeline
type Request struct {
	CourseID   int64  `json:"course_id"`
	CourseName string `json:"course_name"`
	StateCode  string `json:"state_code"`
}

// Results per-stage outcomes of one sync invocation
type Results struct {
	CourseTask   *clickup.UpsertResult  `json:"course_task"`
	ContactTasks []clickup.UpsertResult `json:"contact_tasks"`
	OutreachTask *clickup.UpsertResult  `json:"outreach_task"`
	Errors       []string               `json:"errors"`
}

// Report aggregate result of one sync invocation.
// Success means the course task synced, at least one contact synced and
// the outreach stage produced a result (protected counts). A report can
// be successful and still partial when some stage recorded an error.
type Report struct {
	Success  bool    `json:"success"`
	CourseID int64   `json:"course_id"`
	SyncID   string  `json:"sync_id"`
	Results  Results `json:"results"`
}

// Partial reports whether any stage recorded an error
func (r *Report) Partial() bool {
	return len(r.Results.Errors) > 0
}

// Orchestrator runs the three-stage Course -> Contacts -> Outreach sync.
// Stages execute strictly sequentially within one invocation; each is
// independently caught so a stage failure never aborts the stages after
// it. There is no cross-invocation locking: two concurrent syncs of the
// same course fall back to ClickUp's own last-write-wins semantics.
type Orchestrator struct {
	courses  repository.CoursesRepository
	contacts repository.ContactsRepository
	outreach repository.OutreachRepository
	tasks    clickup.Upserter
	fields   clickup.FieldMap
	logger   *zap.Logger
	now      func() time.Time
}

// NewOrchestrator creates the sync orchestrator
func NewOrchestrator(
	courses repository.CoursesRepository,
	contacts repository.ContactsRepository,
	outreach repository.OutreachRepository,
	tasks clickup.Upserter,
	fields clickup.FieldMap,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		courses:  courses,
		contacts: contacts,
		outreach: outreach,
		tasks:    tasks,
		fields:   fields,
		logger:   logger,
		now:      time.Now,
	}
}

// SyncCourse reconciles one course and its contacts and outreach
// activity against ClickUp.
//
// A missing course row or a failed contacts query is fatal and returns
// an error before any stage runs. Everything after that point is
// collected into the report: per-stage errors are recorded and the
// remaining stages still execute.
func (o *Orchestrator) SyncCourse(ctx context.Context, req Request) (*Report, error) {
	syncID := uuid.NewString()
	log := o.logger.With(
		zap.String("sync_id", syncID),
		zap.Int64("course_id", req.CourseID),
		zap.String("course_name", req.CourseName),
	)
	log.Info("ClickUp sync requested")

	course, err := o.courses.GetCourse(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("load course: %w", err)
	}
	contacts, err := o.contacts.ListByCourse(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}

	stateCode := req.StateCode
	if stateCode == "" {
		stateCode = course.StateCode
	}

	report := &Report{
		CourseID: req.CourseID,
		SyncID:   syncID,
		Results:  Results{ContactTasks: []clickup.UpsertResult{}, Errors: []string{}},
	}

	// Stage 1: course task
	courseResult, err := o.syncCourseStage(ctx, course, stateCode)
	if err != nil {
		report.Results.Errors = append(report.Results.Errors, fmt.Sprintf("Golf Course task failed: %v", err))
		log.Error("Course stage failed", zap.Error(err))
	} else {
		report.Results.CourseTask = courseResult
		log.Info("Course task synced",
			zap.String("task_id", courseResult.TaskID),
			zap.String("action", string(courseResult.Action)),
		)
	}

	courseTaskID := ""
	if report.Results.CourseTask != nil {
		courseTaskID = report.Results.CourseTask.TaskID
	}

	// Stage 2: contact tasks, sequential to keep ordering deterministic
	// for the primary-contact convention
	contactTaskIDs := make([]string, 0, len(contacts))
	for i, contact := range contacts {
		result, err := o.syncContactStage(ctx, contact, stateCode, courseTaskID)
		if err != nil {
			report.Results.Errors = append(report.Results.Errors,
				fmt.Sprintf("Contact %s task failed: %v", contact.ContactName, err))
			log.Error("Contact stage failed",
				zap.String("contact_name", contact.ContactName),
				zap.Error(err),
			)
			continue
		}
		report.Results.ContactTasks = append(report.Results.ContactTasks, *result)
		contactTaskIDs = append(contactTaskIDs, result.TaskID)
		log.Info("Contact task synced",
			zap.Int("position", i+1),
			zap.Int("total", len(contacts)),
			zap.String("contact_name", contact.ContactName),
			zap.String("task_id", result.TaskID),
			zap.String("action", string(result.Action)),
		)
	}

	// Stage 3: outreach task, gated by the protection guard
	outreachResult, err := o.syncOutreachStage(ctx, course, contacts, stateCode, courseTaskID, contactTaskIDs, log)
	if err != nil {
		report.Results.Errors = append(report.Results.Errors, fmt.Sprintf("Outreach Activity task failed: %v", err))
		log.Error("Outreach stage failed", zap.Error(err))
	} else {
		report.Results.OutreachTask = outreachResult
	}

	report.Success = report.Results.CourseTask != nil &&
		len(report.Results.ContactTasks) > 0 &&
		report.Results.OutreachTask != nil

	log.Info("ClickUp sync complete",
		zap.Bool("success", report.Success),
		zap.Int("contact_tasks", len(report.Results.ContactTasks)),
		zap.Int("errors", len(report.Results.Errors)),
	)

	return report, nil
}

// syncCourseStage projects and upserts the course task, then persists
// the returned task id. A persistence failure fails the stage: a task
// id ClickUp knows but the domain store lost would break idempotency on
// the next run.
func (o *Orchestrator) syncCourseStage(ctx context.Context, course *domain.Course, stateCode string) (*clickup.UpsertResult, error) {
	payload := ProjectCourse(course, stateCode, o.fields)
	result, err := o.tasks.UpsertTask(ctx, payload, strPtrOr(course.ClickUpTaskID, ""), o.fields.CoursesListID)
	if err != nil {
		return nil, err
	}
	if err := o.courses.SetClickUpTask(ctx, course.ID, result.TaskID, o.now()); err != nil {
		return nil, fmt.Errorf("persist task id: %w", err)
	}
	return &result, nil
}

func (o *Orchestrator) syncContactStage(ctx context.Context, contact *domain.Contact, stateCode, courseTaskID string) (*clickup.UpsertResult, error) {
	payload := ProjectContact(contact, stateCode, courseTaskID, o.now(), o.fields)
	result, err := o.tasks.UpsertTask(ctx, payload, strPtrOr(contact.ClickUpTaskID, ""), o.fields.ContactsListID)
	if err != nil {
		return nil, err
	}
	if err := o.contacts.SetClickUpTask(ctx, contact.ContactID, result.TaskID, o.now()); err != nil {
		return nil, fmt.Errorf("persist task id: %w", err)
	}
	return &result, nil
}

// syncOutreachStage runs the protection guard, then projects and
// upserts the outreach task and its domain row.
//
// The projection uses the full contact list and whatever course task id
// stage 1 produced, regardless of individual contact failures.
func (o *Orchestrator) syncOutreachStage(
	ctx context.Context,
	course *domain.Course,
	contacts []*domain.Contact,
	stateCode, courseTaskID string,
	contactTaskIDs []string,
	log *zap.Logger,
) (*clickup.UpsertResult, error) {
	if len(contacts) == 0 {
		return nil, fmt.Errorf("precondition failed: course %d has no contacts", course.ID)
	}

	existing, err := o.outreach.GetByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	if shouldProtect(existing) {
		log.Warn("Protection activated: outreach task belongs to an active sales workflow, skipping",
			zap.String("existing_task_id", *existing.ClickUpTaskID),
			zap.String("status", existing.Status),
		)
		return &clickup.UpsertResult{TaskID: *existing.ClickUpTaskID, Action: clickup.ActionProtected}, nil
	}

	payload := ProjectOutreach(course, contacts, stateCode, courseTaskID, contactTaskIDs, o.fields)

	knownTaskID := ""
	if existing != nil {
		knownTaskID = strPtrOr(existing.ClickUpTaskID, "")
	}
	result, err := o.tasks.UpsertTask(ctx, payload, knownTaskID, o.fields.OutreachListID)
	if err != nil {
		return nil, err
	}

	outreachType := "general"
	if opps := courseOpportunities(course); len(opps.Ranked) > 0 {
		outreachType = opps.Ranked[0].Name
	}
	syncedAt := o.now()
	activity := &domain.OutreachActivity{
		GolfCourseID:      course.ID,
		ClickUpTaskID:     &result.TaskID,
		ClickUpSyncedAt:   &syncedAt,
		ClickUpSyncStatus: domain.SyncStatusSynced,
		OutreachType:      outreachType,
		Status:            "scheduled",
		Region:            course.Region,
		StateCode:         stateCode,
	}
	if _, err := o.outreach.Upsert(ctx, activity); err != nil {
		return nil, fmt.Errorf("persist outreach activity: %w", err)
	}

	log.Info("Outreach task synced",
		zap.String("task_id", result.TaskID),
		zap.String("action", string(result.Action)),
	)
	return &result, nil
}

// shouldProtect reports whether the outreach row is claimed by a human
// sales workflow: a row exists and already carries a ClickUp task id.
// Re-running enrichment must never silently reset such a task.
func shouldProtect(existing *domain.OutreachActivity) bool {
	return existing != nil && existing.ClickUpTaskID != nil && *existing.ClickUpTaskID != ""
}
