package mqtt

import (
	"context"
	"testing"
	"time"

	"golfsync/internal/store"
	syncsvc "golfsync/internal/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSyncer struct {
	report *syncsvc.Report
	err    error
	got    *syncsvc.Request
}

func (f *fakeSyncer) SyncCourse(ctx context.Context, req syncsvc.Request) (*syncsvc.Report, error) {
	f.got = &req
	return f.report, f.err
}

type fakeKV struct {
	data map[string]string
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", store.ErrMiss
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	return nil, nil
}

func TestHandleMessage_TriggersSyncAndCachesReport(t *testing.T) {
	syncer := &fakeSyncer{report: &syncsvc.Report{Success: true, CourseID: 42, SyncID: "sync-1"}}
	kv := &fakeKV{data: map[string]string{}}
	trigger := NewTrigger(nil, "golf-enrichment/complete", syncer, kv, zap.NewNop())

	err := trigger.handleMessage("golf-enrichment/complete",
		[]byte(`{"course_id":42,"course_name":"Pine Valley","state_code":"VA"}`))

	require.NoError(t, err)
	require.NotNil(t, syncer.got)
	assert.Equal(t, int64(42), syncer.got.CourseID)
	assert.Equal(t, "VA", syncer.got.StateCode)
	assert.Contains(t, kv.data[store.ReportKey(42)], `"sync_id":"sync-1"`)
}

func TestHandleMessage_RejectsBadPayloads(t *testing.T) {
	syncer := &fakeSyncer{}
	trigger := NewTrigger(nil, "golf-enrichment/complete", syncer, &fakeKV{data: map[string]string{}}, zap.NewNop())

	assert.Error(t, trigger.handleMessage("t", []byte(`not json`)))
	assert.Error(t, trigger.handleMessage("t", []byte(`{}`)))
	assert.Nil(t, syncer.got)
}
