package repository

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/trackflow/internal/db"
	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupScheduleRepo(t *testing.T) *SQLiteScheduleRepo {
	t.Helper()
	return NewSQLiteScheduleRepo(testutil.NewTestDB(t))
}

func sampleState() ScheduleState {
	main := testutil.NewTestTrack("Main Track", testutil.WithDescription("Main conference track"))
	side := testutil.NewTestTrack("Workshops", testutil.WithTrackHours("10:00", "16:00"))

	keynote := testutil.NewTestColumn(main.ID, "Keynote",
		testutil.WithColumnHours("09:00", "10:30"),
		testutil.WithSubColumns(
			testutil.NewTestSubColumn("Welcome", 15, testutil.WithSpeaker("Chair")),
			testutil.NewTestSubColumn("Talk", 60,
				testutil.WithNotes("bring slides"),
				testutil.WithChildren(
					testutil.NewTestSubColumn("Part 1", 30,
						testutil.WithChildren(testutil.NewTestSubColumn("Demo", 10)),
					),
					testutil.NewTestSubColumn("Part 2", 30),
				),
			),
		),
	)
	lunch := testutil.NewTestColumn(main.ID, "Lunch",
		testutil.WithColumnHours("12:00", "13:00"),
		testutil.WithColumnType(domain.ColumnLunch),
	)
	lab := testutil.NewTestColumn(side.ID, "Lab", testutil.WithColumnType(domain.ColumnOther))

	return ScheduleState{
		Tracks:      []domain.Track{main, side},
		Columns:     []domain.Column{keynote, lunch, lab},
		SelectedID:  side.ID,
		Initialized: true,
	}
}

func TestScheduleRepo_LoadEmpty(t *testing.T) {
	repo := setupScheduleRepo(t)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, got.Initialized)
	assert.Empty(t, got.Tracks)
	assert.Empty(t, got.Columns)
	assert.Empty(t, got.SelectedID)
}

func TestScheduleRepo_RoundTrip(t *testing.T) {
	repo := setupScheduleRepo(t)
	ctx := context.Background()
	want := sampleState()

	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestScheduleRepo_RoundTripKeepsSiblingOrder(t *testing.T) {
	repo := setupScheduleRepo(t)
	ctx := context.Background()

	var subs []domain.SubColumn
	for _, title := range []string{"e", "d", "c", "b", "a"} {
		subs = append(subs, testutil.NewTestSubColumn(title, 5))
	}
	tr := testutil.NewTestTrack("T")
	col := testutil.NewTestColumn(tr.ID, "C", testutil.WithSubColumns(subs...))
	require.NoError(t, repo.Save(ctx, ScheduleState{Tracks: []domain.Track{tr}, Columns: []domain.Column{col}}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Columns, 1)
	var titles []string
	for _, s := range got.Columns[0].SubColumns {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, titles)
}

func TestScheduleRepo_SaveReplacesPreviousState(t *testing.T) {
	repo := setupScheduleRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, sampleState()))

	only := testutil.NewTestTrack("Only")
	require.NoError(t, repo.Save(ctx, ScheduleState{Tracks: []domain.Track{only}}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Track{only}, got.Tracks)
	assert.Empty(t, got.Columns)
	assert.Empty(t, got.SelectedID)
	assert.True(t, got.Initialized)
}

func TestScheduleRepo_EmptyColumnLoadsWithEmptySlice(t *testing.T) {
	repo := setupScheduleRepo(t)
	ctx := context.Background()
	tr := testutil.NewTestTrack("T")
	require.NoError(t, repo.Save(ctx, ScheduleState{
		Tracks:  []domain.Track{tr},
		Columns: []domain.Column{testutil.NewTestColumn(tr.ID, "Empty")},
	}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Columns, 1)
	assert.NotNil(t, got.Columns[0].SubColumns)
	assert.Empty(t, got.Columns[0].SubColumns)
}

func TestScheduleRepo_ColumnForUnknownTrackIsKept(t *testing.T) {
	repo := setupScheduleRepo(t)
	ctx := context.Background()
	orphan := testutil.NewTestColumn("no-such-track", "Orphan")
	require.NoError(t, repo.Save(ctx, ScheduleState{Columns: []domain.Column{orphan}}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Columns, 1)
	assert.Equal(t, "no-such-track", got.Columns[0].TrackID)
}

func TestScheduleRepo_GetTrack(t *testing.T) {
	repo := setupScheduleRepo(t)
	ctx := context.Background()
	state := sampleState()
	require.NoError(t, repo.Save(ctx, state))

	got, err := repo.GetTrack(ctx, state.Tracks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, state.Tracks[0], *got)

	_, err = repo.GetTrack(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_DuplicateIDFailsSave(t *testing.T) {
	repo := setupScheduleRepo(t)
	tr := testutil.NewTestTrack("A")
	err := repo.Save(context.Background(), ScheduleState{Tracks: []domain.Track{tr, tr}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting track")
}

func TestScheduleRepo_FailedSaveRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	first := sampleState()
	require.NoError(t, NewSQLiteScheduleRepo(database).Save(ctx, first))

	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 6, Err: boom}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteScheduleRepo(tx).Save(ctx, ScheduleState{
			Tracks: []domain.Track{testutil.NewTestTrack("X"), testutil.NewTestTrack("Y")},
		})
	})
	require.ErrorIs(t, err, boom)

	got, err := NewSQLiteScheduleRepo(database).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestScheduleRepo_ConcurrentSavesStayConsistent(t *testing.T) {
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "schedule.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	uow := db.NewSQLiteUnitOfWork(database)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state := sampleState()
			// Lock contention surfaces as an error; consistency is what matters.
			_ = uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				return NewSQLiteScheduleRepo(tx).Save(ctx, state)
			})
		}()
	}
	wg.Wait()

	got, err := NewSQLiteScheduleRepo(database).Load(ctx)
	require.NoError(t, err)
	if got.Initialized {
		assert.Len(t, got.Tracks, 2)
		assert.Len(t, got.Columns, 3)
	}
}
