package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/offscreen/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "offscreen.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_InitCreatesDefaultSettings(t *testing.T) {
	store := newTestSQLiteStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings.DefaultTargetMinutes != 120 {
		t.Errorf("DefaultTargetMinutes = %d, want 120", settings.DefaultTargetMinutes)
	}
	if settings.DefaultComparison != models.ComparisonYesterday {
		t.Errorf("DefaultComparison = %s, want yesterday", settings.DefaultComparison)
	}
	if settings.Timezone != "Local" {
		t.Errorf("Timezone = %s, want Local", settings.Timezone)
	}
}

func TestSQLiteStore_LoadWithoutInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	store := NewSQLiteStore(path)
	if err := store.Load(); err == nil {
		t.Error("Load() should fail when storage was never initialized")
	}
}

func TestSQLiteStore_SaveSettingsRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	want := models.Settings{
		DefaultTargetMinutes: 90,
		DefaultComparison:    models.ComparisonBest,
		Timezone:             "Asia/Tokyo",
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got != want {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func TestSQLiteStore_GetOrCreateUserIsIdempotent(t *testing.T) {
	store := newTestSQLiteStore(t)

	first, err := store.GetOrCreateUser("principal-a")
	if err != nil {
		t.Fatalf("GetOrCreateUser() failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("GetOrCreateUser() returned empty id")
	}

	second, err := store.GetOrCreateUser("principal-a")
	if err != nil {
		t.Fatalf("GetOrCreateUser() second call failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("GetOrCreateUser() created a second user: %s != %s", second.ID, first.ID)
	}

	other, err := store.GetOrCreateUser("principal-b")
	if err != nil {
		t.Fatalf("GetOrCreateUser() failed: %v", err)
	}
	if other.ID == first.ID {
		t.Error("different principals must map to different users")
	}
}

func TestSQLiteStore_GetUsageNotFound(t *testing.T) {
	store := newTestSQLiteStore(t)

	_, err := store.GetUsage("nobody", "2025-06-15")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUsage() error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_UpsertUsageLastWriteWins(t *testing.T) {
	store := newTestSQLiteStore(t)
	user, _ := store.GetOrCreateUser("p")

	rec := models.UsageRecord{
		UserID:         user.ID,
		Date:           "2025-06-15",
		ActualMinutes:  90,
		TargetMinutes:  60,
		ReducedMinutes: -30,
		ReductionRate:  -0.5,
	}
	if err := store.UpsertUsage(rec); err != nil {
		t.Fatalf("UpsertUsage() failed: %v", err)
	}

	rec.ActualMinutes = 45
	rec.ReducedMinutes = 15
	rec.ReductionRate = 0.25
	if err := store.UpsertUsage(rec); err != nil {
		t.Fatalf("UpsertUsage() second call failed: %v", err)
	}

	got, err := store.GetUsage(user.ID, "2025-06-15")
	if err != nil {
		t.Fatalf("GetUsage() failed: %v", err)
	}
	if got.ActualMinutes != 45 || got.ReducedMinutes != 15 || got.ReductionRate != 0.25 {
		t.Errorf("second save did not overwrite: %+v", got)
	}

	// Still exactly one row for the (user, date) pair.
	records, err := store.ListUsage(user.ID, "2025-06-15", "2025-06-15")
	if err != nil {
		t.Fatalf("ListUsage() failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(records))
	}
}

func TestSQLiteStore_ListUsageInclusiveBoundsAscending(t *testing.T) {
	store := newTestSQLiteStore(t)
	user, _ := store.GetOrCreateUser("p")

	for _, date := range []string{"2025-06-10", "2025-06-12", "2025-06-14", "2025-06-16"} {
		if err := store.UpsertUsage(models.UsageRecord{UserID: user.ID, Date: date, ActualMinutes: 60, TargetMinutes: 90}); err != nil {
			t.Fatalf("UpsertUsage(%s) failed: %v", date, err)
		}
	}

	records, err := store.ListUsage(user.ID, "2025-06-10", "2025-06-14")
	if err != nil {
		t.Fatalf("ListUsage() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	if records[0].Date != "2025-06-10" || records[2].Date != "2025-06-14" {
		t.Errorf("bounds not inclusive or not ascending: %s..%s", records[0].Date, records[2].Date)
	}
}

func TestSQLiteStore_ListUsageThroughDescending(t *testing.T) {
	store := newTestSQLiteStore(t)
	user, _ := store.GetOrCreateUser("p")

	for _, date := range []string{"2025-06-10", "2025-06-11", "2025-06-12"} {
		if err := store.UpsertUsage(models.UsageRecord{UserID: user.ID, Date: date, ActualMinutes: 60, TargetMinutes: 90}); err != nil {
			t.Fatalf("UpsertUsage(%s) failed: %v", date, err)
		}
	}

	records, err := store.ListUsageThrough(user.ID, "2025-06-11")
	if err != nil {
		t.Fatalf("ListUsageThrough() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Date != "2025-06-11" || records[1].Date != "2025-06-10" {
		t.Errorf("records not descending: %s, %s", records[0].Date, records[1].Date)
	}
}

func TestSQLiteStore_GetBestUsage(t *testing.T) {
	store := newTestSQLiteStore(t)
	user, _ := store.GetOrCreateUser("p")

	for date, actual := range map[string]int{
		"2025-06-10": 80,
		"2025-06-11": 30,
		"2025-06-12": 50,
		"2025-06-15": 5, // on the boundary, must be excluded
	} {
		if err := store.UpsertUsage(models.UsageRecord{UserID: user.ID, Date: date, ActualMinutes: actual, TargetMinutes: 90}); err != nil {
			t.Fatalf("UpsertUsage(%s) failed: %v", date, err)
		}
	}

	best, err := store.GetBestUsage(user.ID, "2025-06-15")
	if err != nil {
		t.Fatalf("GetBestUsage() failed: %v", err)
	}
	if best.Date != "2025-06-11" || best.ActualMinutes != 30 {
		t.Errorf("GetBestUsage() = %s/%d, want 2025-06-11/30", best.Date, best.ActualMinutes)
	}
}

func TestSQLiteStore_GetBestUsageNoHistory(t *testing.T) {
	store := newTestSQLiteStore(t)
	user, _ := store.GetOrCreateUser("p")

	_, err := store.GetBestUsage(user.ID, "2025-06-15")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBestUsage() error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_UsersAreIsolated(t *testing.T) {
	store := newTestSQLiteStore(t)
	alice, _ := store.GetOrCreateUser("alice")
	bob, _ := store.GetOrCreateUser("bob")

	if err := store.UpsertUsage(models.UsageRecord{UserID: alice.ID, Date: "2025-06-15", ActualMinutes: 30, TargetMinutes: 60}); err != nil {
		t.Fatalf("UpsertUsage() failed: %v", err)
	}

	_, err := store.GetUsage(bob.ID, "2025-06-15")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected bob to have no record, got err = %v", err)
	}
}
