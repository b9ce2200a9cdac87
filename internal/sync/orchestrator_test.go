package sync

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golfsync/internal/clickup"
	"golfsync/internal/domain"
	"golfsync/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- fakes ----

type fakeCourses struct {
	course   *domain.Course
	getErr   error
	setErr   error
	setCalls []string
}

func (f *fakeCourses) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.course, nil
}

func (f *fakeCourses) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	return []*domain.Course{f.course}, nil
}

func (f *fakeCourses) SetClickUpTask(ctx context.Context, id int64, taskID string, syncedAt time.Time) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setCalls = append(f.setCalls, taskID)
	return nil
}

type fakeContacts struct {
	list     []*domain.Contact
	listErr  error
	setCalls map[int64]string
}

func (f *fakeContacts) ListByCourse(ctx context.Context, courseID int64) ([]*domain.Contact, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeContacts) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	return f.list, nil
}

func (f *fakeContacts) SetClickUpTask(ctx context.Context, contactID int64, taskID string, syncedAt time.Time) error {
	if f.setCalls == nil {
		f.setCalls = map[int64]string{}
	}
	f.setCalls[contactID] = taskID
	return nil
}

type fakeOutreach struct {
	existing  *domain.OutreachActivity
	getErr    error
	upsertErr error
	upserted  []*domain.OutreachActivity
}

func (f *fakeOutreach) GetByCourse(ctx context.Context, courseID int64) (*domain.OutreachActivity, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

func (f *fakeOutreach) Upsert(ctx context.Context, a *domain.OutreachActivity) (int64, error) {
	if f.upsertErr != nil {
		return 0, f.upsertErr
	}
	f.upserted = append(f.upserted, a)
	return 5, nil
}

type upsertCall struct {
	payload clickup.TaskPayload
	knownID string
	listID  string
}

type fakeUpserter struct {
	calls     []upsertCall
	nextID    int
	failNames map[string]error
	failLists map[string]error
}

func (f *fakeUpserter) UpsertTask(ctx context.Context, payload clickup.TaskPayload, knownTaskID string, listID string) (clickup.UpsertResult, error) {
	f.calls = append(f.calls, upsertCall{payload: payload, knownID: knownTaskID, listID: listID})
	if err, ok := f.failNames[payload.Name]; ok {
		return clickup.UpsertResult{}, err
	}
	if err, ok := f.failLists[listID]; ok {
		return clickup.UpsertResult{}, err
	}
	if knownTaskID != "" {
		return clickup.UpsertResult{TaskID: knownTaskID, Action: clickup.ActionUpdated}, nil
	}
	f.nextID++
	return clickup.UpsertResult{TaskID: fmt.Sprintf("task-%d", f.nextID), Action: clickup.ActionCreated}, nil
}

func (f *fakeUpserter) callsForList(listID string) []upsertCall {
	var out []upsertCall
	for _, c := range f.calls {
		if c.listID == listID {
			out = append(out, c)
		}
	}
	return out
}

func newTestOrchestrator(courses *fakeCourses, contacts *fakeContacts, outreach *fakeOutreach, tasks *fakeUpserter) *Orchestrator {
	return NewOrchestrator(courses, contacts, outreach, tasks, clickup.DefaultFieldMap(), zap.NewNop())
}

func syncRequest() Request {
	return Request{CourseID: 42, CourseName: "Pine Valley", StateCode: "VA"}
}

// ---- scenarios ----

func TestSyncCourse_FirstSync_AllCreated(t *testing.T) {
	fm := clickup.DefaultFieldMap()
	courses := &fakeCourses{course: testCourse()}
	contacts := &fakeContacts{list: testContacts()}
	outreach := &fakeOutreach{}
	tasks := &fakeUpserter{}
	o := newTestOrchestrator(courses, contacts, outreach, tasks)

	report, err := o.SyncCourse(context.Background(), syncRequest())

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.False(t, report.Partial())
	assert.NotEmpty(t, report.SyncID)

	require.NotNil(t, report.Results.CourseTask)
	assert.Equal(t, clickup.ActionCreated, report.Results.CourseTask.Action)
	require.Len(t, report.Results.ContactTasks, 2)
	assert.Equal(t, clickup.ActionCreated, report.Results.ContactTasks[0].Action)
	assert.Equal(t, clickup.ActionCreated, report.Results.ContactTasks[1].Action)
	require.NotNil(t, report.Results.OutreachTask)
	assert.Equal(t, clickup.ActionCreated, report.Results.OutreachTask.Action)

	// task ids persisted back into the domain store
	assert.Equal(t, []string{report.Results.CourseTask.TaskID}, courses.setCalls)
	assert.Len(t, contacts.setCalls, 2)
	require.Len(t, outreach.upserted, 1)
	assert.Equal(t, report.Results.OutreachTask.TaskID, *outreach.upserted[0].ClickUpTaskID)
	assert.Equal(t, "range_balls", outreach.upserted[0].OutreachType)
	assert.Equal(t, "scheduled", outreach.upserted[0].Status)

	// outreach description aggregates both contacts, first is primary
	outreachCalls := tasks.callsForList(fm.OutreachListID)
	require.Len(t, outreachCalls, 1)
	desc := outreachCalls[0].payload.Description
	assert.Contains(t, desc, "Ann Smith - General Manager ⭐ PRIMARY")
	assert.Contains(t, desc, "Bob Jones - Superintendent")

	// contacts back-reference the course task
	contactCalls := tasks.callsForList(fm.ContactsListID)
	require.Len(t, contactCalls, 2)
	for _, call := range contactCalls {
		assert.Contains(t, call.payload.CustomFields, clickup.CustomField{
			ID:    fm.ContactCourseLinkField,
			Value: []string{report.Results.CourseTask.TaskID},
		})
	}
}

func TestSyncCourse_ExistingTaskIDs_Updated(t *testing.T) {
	course := testCourse()
	course.ClickUpTaskID = strPtr("course-task-1")
	list := testContacts()
	list[0].ClickUpTaskID = strPtr("ct-1")

	courses := &fakeCourses{course: course}
	contacts := &fakeContacts{list: list}
	outreach := &fakeOutreach{}
	tasks := &fakeUpserter{}
	o := newTestOrchestrator(courses, contacts, outreach, tasks)

	report, err := o.SyncCourse(context.Background(), syncRequest())

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, clickup.ActionUpdated, report.Results.CourseTask.Action)
	assert.Equal(t, "course-task-1", report.Results.CourseTask.TaskID)
	assert.Equal(t, clickup.ActionUpdated, report.Results.ContactTasks[0].Action)
	assert.Equal(t, clickup.ActionCreated, report.Results.ContactTasks[1].Action)
}

func TestSyncCourse_ProtectedOutreach(t *testing.T) {
	fm := clickup.DefaultFieldMap()
	existingTask := "out-task-7"
	courses := &fakeCourses{course: testCourse()}
	contacts := &fakeContacts{list: testContacts()}
	outreach := &fakeOutreach{existing: &domain.OutreachActivity{
		ActivityID:    5,
		GolfCourseID:  42,
		ClickUpTaskID: &existingTask,
		Status:        "contacted",
	}}
	tasks := &fakeUpserter{}
	o := newTestOrchestrator(courses, contacts, outreach, tasks)

	report, err := o.SyncCourse(context.Background(), syncRequest())

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.False(t, report.Partial())

	require.NotNil(t, report.Results.OutreachTask)
	assert.Equal(t, clickup.ActionProtected, report.Results.OutreachTask.Action)
	assert.Equal(t, "out-task-7", report.Results.OutreachTask.TaskID)

	// protection means no projection, no upsert, no row rewrite
	assert.Empty(t, tasks.callsForList(fm.OutreachListID))
	assert.Empty(t, outreach.upserted)
}

func TestSyncCourse_OutreachRowWithoutTaskID_NotProtected(t *testing.T) {
	courses := &fakeCourses{course: testCourse()}
	contacts := &fakeContacts{list: testContacts()}
	outreach := &fakeOutreach{existing: &domain.OutreachActivity{
		ActivityID:   5,
		GolfCourseID: 42,
	}}
	tasks := &fakeUpserter{}
	o := newTestOrchestrator(courses, contacts, outreach, tasks)

	report, err := o.SyncCourse(context.Background(), syncRequest())

	require.NoError(t, err)
	assert.Equal(t, clickup.ActionCreated, report.Results.OutreachTask.Action)
	assert.Len(t, outreach.upserted, 1)
}

func TestSyncCourse_ZeroContacts_PreconditionRecorded(t *testing.T) {
	courses := &fakeCourses{course: testCourse()}
	contacts := &fakeContacts{list: nil}
	outreach := &fakeOutreach{}
	tasks := &fakeUpserter{}
	o := newTestOrchestrator(courses, contacts, outreach, tasks)

	report, err := o.SyncCourse(context.Background(), syncRequest())

	require.NoError(t, err)
	assert.False(t, report.Success)
	assert.True(t, report.Partial())

	// course still synced, outreach never reached
	require.NotNil(t, report.Results.CourseTask)
	assert.Nil(t, report.Results.OutreachTask)
	assert.Empty(t, outreach.upserted)
	require.Len(t, report.Results.Errors, 1)
	assert.Contains(t, report.Results.Errors[0], "no contacts")
}

func TestSyncCourse_CourseMissing_Fatal(t *testing.T) {
	courses := &fakeCourses{getErr: fmt.Errorf("course 42: %w", repository.ErrNotFound)}
	o := newTestOrchestrator(courses, &fakeContacts{}, &fakeOutreach{}, &fakeUpserter{})

	report, err := o.SyncCourse(context.Background(), syncRequest())

	assert.Nil(t, report)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSyncCourse_CourseStageFails_RestContinues(t *testing.T) {
	fm := clickup.DefaultFieldMap()
	courses := &fakeCourses{course: testCourse()}
	contacts := &fakeContacts{list: testContacts()}
	outreach := &fakeOutreach{}
	tasks := &fakeUpserter{failLists: map[string]error{fm.CoursesListID: errors.New("rate limited")}}
	o := newTestOrchestrator(courses, contacts, outreach, tasks)

	report, err := o.SyncCourse(context.Background(), syncRequest())

	require.NoError(t, err)
	assert.False(t, report.Success)
	assert.True(t, report.Partial())
	assert.Nil(t, report.Results.CourseTask)
	assert.Len(t, report.Results.ContactTasks, 2)
	require.NotNil(t, report.Results.OutreachTask)

	// contacts carry an empty course back-reference
	for _, call := range tasks.callsForList(fm.ContactsListID) {
		assert.Contains(t, call.payload.CustomFields, clickup.CustomField{
			ID:    fm.ContactCourseLinkField,
			Value: []string{},
		})
	}

	require.Len(t, report.Results.Errors, 1)
	assert.Contains(t, report.Results.Errors[0], "Golf Course task failed")
}

func TestSyncCourse_OneContactFails_OthersSync(t *testing.T) {
	fm := clickup.DefaultFieldMap()
	courses := &fakeCourses{course: testCourse()}
	contacts := &fakeContacts{list: testContacts()}
	outreach := &fakeOutreach{}
	tasks := &fakeUpserter{failNames: map[string]error{
		"👤 Ann Smith - General Manager": errors.New("validation error"),
	}}
	o := newTestOrchestrator(courses, contacts, outreach, tasks)

	report, err := o.SyncCourse(context.Background(), syncRequest())

	require.NoError(t, err)
	// one contact is enough for overall success; error still recorded
	assert.True(t, report.Success)
	assert.True(t, report.Partial())
	require.Len(t, report.Results.ContactTasks, 1)
	require.Len(t, report.Results.Errors, 1)
	assert.Contains(t, report.Results.Errors[0], "Contact Ann Smith task failed")

	// outreach links only the contact that synced
	outreachCalls := tasks.callsForList(fm.OutreachListID)
	require.Len(t, outreachCalls, 1)
	var contactsLink any
	for _, f := range outreachCalls[0].payload.CustomFields {
		if f.ID == fm.OutreachContactsLinkField {
			contactsLink = f.Value
		}
	}
	assert.Equal(t, []string{report.Results.ContactTasks[0].TaskID}, contactsLink)

	// but the description still includes every contact
	assert.Contains(t, outreachCalls[0].payload.Description, "Ann Smith")
	assert.Contains(t, outreachCalls[0].payload.Description, "Bob Jones")
}

func TestSyncCourse_OutreachUpsertFails_Recorded(t *testing.T) {
	fm := clickup.DefaultFieldMap()
	courses := &fakeCourses{course: testCourse()}
	contacts := &fakeContacts{list: testContacts()}
	outreach := &fakeOutreach{}
	tasks := &fakeUpserter{failLists: map[string]error{fm.OutreachListID: errors.New("boom")}}
	o := newTestOrchestrator(courses, contacts, outreach, tasks)

	report, err := o.SyncCourse(context.Background(), syncRequest())

	require.NoError(t, err)
	assert.False(t, report.Success)
	assert.Nil(t, report.Results.OutreachTask)
	require.Len(t, report.Results.Errors, 1)
	assert.Contains(t, report.Results.Errors[0], "Outreach Activity task failed")
}

func TestShouldProtect(t *testing.T) {
	taskID := "t1"
	empty := ""
	assert.False(t, shouldProtect(nil))
	assert.False(t, shouldProtect(&domain.OutreachActivity{}))
	assert.False(t, shouldProtect(&domain.OutreachActivity{ClickUpTaskID: &empty}))
	assert.True(t, shouldProtect(&domain.OutreachActivity{ClickUpTaskID: &taskID}))
}
