package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/clinic"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/records"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/pkg/logging"
)

type fakeStore struct {
	appended []records.Record
	err      error
}

func (f *fakeStore) Append(_ context.Context, rec records.Record) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, rec)
	return nil
}

type fakeForwarder struct {
	submitted []records.Appointment
	err       error
}

func (f *fakeForwarder) Submit(_ context.Context, appt records.Appointment) error {
	if f.err != nil {
		return f.err
	}
	f.submitted = append(f.submitted, appt)
	return nil
}

type fakeProvider struct {
	text string
	err  error
}

func (f *fakeProvider) Generate(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func reviewSession(t *testing.T) *Session {
	t.Helper()
	m := NewMachine(clinic.StaticDirectory{})
	s := newBookingSession()
	for _, input := range noPartnerInputs {
		require.NoError(t, m.SubmitStep(s, input))
	}
	require.True(t, s.AtReview())
	return s
}

func TestFinalizeAppendsAndResets(t *testing.T) {
	store := &fakeStore{}
	fwd := &fakeForwarder{}
	prov := &fakeProvider{text: "See you soon, Maya!"}
	fin := NewFinalizer(store, fwd, prov, nil, logging.New("error"))

	s := reviewSession(t)
	msg, err := fin.Finalize(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, "See you soon, Maya!", msg)
	require.Len(t, store.appended, 1)
	assert.Equal(t, "Maya", store.appended[0]["first_name"])
	assert.Equal(t, "false", store.appended[0]["partner_included"])
	assert.Equal(t, "Appointment booked via chatbot", store.appended[0]["summary"])
	assert.NotEmpty(t, store.appended[0]["created_at"])

	require.Len(t, fwd.submitted, 1)
	assert.Equal(t, "Dr. Arun Menon", fwd.submitted[0].Doctor)

	// Session is back at the main menu with nothing left in it.
	assert.False(t, s.AtReview())
	assert.Empty(t, s.Answers)
}

func TestFinalizeTwiceAppendsOnce(t *testing.T) {
	store := &fakeStore{}
	fin := NewFinalizer(store, &fakeForwarder{}, &fakeProvider{text: "ok"}, nil, logging.New("error"))

	s := reviewSession(t)
	_, err := fin.Finalize(context.Background(), s)
	require.NoError(t, err)

	msg, err := fin.Finalize(context.Background(), s)
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.Len(t, store.appended, 1)
}

func TestFinalizeForwarderFailureStillCompletes(t *testing.T) {
	store := &fakeStore{}
	fwd := &fakeForwarder{err: errors.New("timeout")}
	fin := NewFinalizer(store, fwd, &fakeProvider{text: "ok"}, nil, logging.New("error"))

	s := reviewSession(t)
	msg, err := fin.Finalize(context.Background(), s)

	require.NoError(t, err)
	assert.Equal(t, "ok", msg)
	assert.Len(t, store.appended, 1)
	assert.False(t, s.AtReview())
}

func TestFinalizeProviderFailureUsesFallback(t *testing.T) {
	fin := NewFinalizer(&fakeStore{}, nil, &fakeProvider{err: errors.New("quota")}, nil, logging.New("error"))

	s := reviewSession(t)
	msg, err := fin.Finalize(context.Background(), s)

	require.NoError(t, err)
	assert.Contains(t, msg, "Thank you Maya!")
	assert.Contains(t, msg, "Dr. Arun Menon")
	assert.Contains(t, msg, "15/03/2025")
	assert.Contains(t, msg, "11:00 AM")
}

func TestFinalizeStoreFailureAbortsBeforeReset(t *testing.T) {
	store := &fakeStore{err: &records.StorageError{Op: "append", Err: errors.New("disk full")}}
	fin := NewFinalizer(store, nil, nil, nil, logging.New("error"))

	s := reviewSession(t)
	_, err := fin.Finalize(context.Background(), s)

	require.Error(t, err)
	var serr *records.StorageError
	assert.ErrorAs(t, err, &serr)
	// Not reset: the user can retry confirming.
	assert.True(t, s.AtReview())
	assert.NotEmpty(t, s.Answers)
}

func TestFinalizeOutsideBookingIsNoop(t *testing.T) {
	store := &fakeStore{}
	fin := NewFinalizer(store, nil, nil, nil, logging.New("error"))

	s := NewSession("sess-2") // main menu, never entered booking
	msg, err := fin.Finalize(context.Background(), s)

	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.Empty(t, store.appended)
}
