package records

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/pkg/logging"
)

func newTestStore(t *testing.T) *CSVStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "appointments.csv")
	return NewCSVStore(path, logging.New("error"))
}

func sampleAppointment() Appointment {
	return Appointment{
		FirstName:  "Maya",
		LastName:   "Kulkarni",
		Sex:        "Female",
		Mobile:     "+1 619 555 0111",
		DOB:        "12/04/1990",
		Email:      "maya@example.com",
		Department: "Andrology",
		Doctor:     "Dr. Arun Menon",
		Date:       "15/03/2025",
		TimeSlot:   "11:00 AM",
		Reason:     "Initial consultation",
		Summary:    "Appointment booked via chatbot",
		CreatedAt:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestAppendCreatesHeader(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, sampleAppointment().Record()))

	raw, err := os.ReadFile(store.path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0],
		"first_name,last_name,sex,mobile,dob,email,partner_included,partner_first,partner_last,department,doctor,date,time_slot,reason,summary,created_at"))
}

func TestAppendThenListRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	appt := sampleAppointment()
	require.NoError(t, store.Append(ctx, appt.Record()))

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	got := AppointmentFromRecord(rows[0])
	assert.Equal(t, appt.FirstName, got.FirstName)
	assert.Equal(t, appt.Doctor, got.Doctor)
	assert.False(t, got.PartnerIncluded)
	assert.True(t, appt.CreatedAt.Equal(got.CreatedAt))
}

func TestHeterogeneousRowsShareFile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, sampleAppointment().Record()))
	cb := Callback{
		Name:       "Ravi",
		Phone:      "+1 619 555 0222",
		Email:      "ravi@example.com",
		Preference: "Phone Call",
		Type:       "expert_callback",
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, store.Append(ctx, cb.Record()))

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Callback row leaves appointment-only cells empty and vice versa.
	assert.Empty(t, rows[1]["first_name"])
	assert.Equal(t, "Ravi", rows[1]["name"])
	assert.Equal(t, "expert_callback", rows[1]["type"])
	assert.Empty(t, rows[0]["name"])
}

func TestListAllMissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	rows, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAppendUnwritableDirReturnsStorageError(t *testing.T) {
	store := NewCSVStore(filepath.Join(t.TempDir(), "missing", "deep", "a.csv"), logging.New("error"))

	err := store.Append(context.Background(), sampleAppointment().Record())
	require.Error(t, err)
	var serr *StorageError
	assert.ErrorAs(t, err, &serr)
}

func TestConcurrentAppendsDoNotCorrupt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Append(ctx, sampleAppointment().Record()))
		}()
	}
	wg.Wait()

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 20)
}
