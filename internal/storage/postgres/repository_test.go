//go:build integration

package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"crashph/internal/domain"
	"crashph/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS admins (
			id uuid PRIMARY KEY,
			username text NOT NULL,
			email text NOT NULL UNIQUE,
			contact_no text NOT NULL DEFAULT '',
			password_hash text NOT NULL
		);

		CREATE TABLE IF NOT EXISTS citizens (
			id uuid PRIMARY KEY,
			first_name text NOT NULL,
			last_name text NOT NULL,
			contact_no text NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS police_offices (
			id uuid PRIMARY KEY,
			office_name text NOT NULL,
			email text NOT NULL UNIQUE,
			password_hash text NOT NULL,
			head_officer text NOT NULL,
			contact_number text NOT NULL,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			created_by uuid NOT NULL REFERENCES admins (id),
			is_system boolean NOT NULL DEFAULT false,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS reports (
			id uuid PRIMARY KEY,
			category text NOT NULL,
			description text NOT NULL,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			status text NOT NULL,
			remarks text NOT NULL DEFAULT '',
			reporter_id uuid REFERENCES citizens (id),
			assigned_office_id uuid REFERENCES police_offices (id),
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS messages (
			id uuid PRIMARY KEY,
			report_id uuid NOT NULL REFERENCES reports (id) ON DELETE CASCADE,
			sender_id uuid NOT NULL,
			sender_kind text NOT NULL,
			receiver_id uuid NOT NULL,
			body text NOT NULL,
			created_at timestamptz NOT NULL
		);
	`)
	return err
}

func newRepoLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE messages, reports, police_offices, citizens, admins CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func seedAdmin(t *testing.T, email string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := testPool.Exec(context.Background(),
		`INSERT INTO admins (id, username, email, contact_no, password_hash) VALUES ($1, $2, $3, '', 'hash')`,
		id, "admin-"+id.String()[:8], email)
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return id
}

func seedCitizen(t *testing.T, first, last string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := testPool.Exec(context.Background(),
		`INSERT INTO citizens (id, first_name, last_name) VALUES ($1, $2, $3)`,
		id, first, last)
	if err != nil {
		t.Fatalf("seed citizen: %v", err)
	}
	return id
}

func seedOffice(t *testing.T, repo *OfficeRepo, name, email string, createdBy uuid.UUID, createdAt time.Time) *domain.PoliceOffice {
	t.Helper()
	office := &domain.PoliceOffice{
		OfficeName:    name,
		Email:         email,
		PasswordHash:  "hash",
		HeadOfficer:   "PCpt Reyes",
		ContactNumber: "+63-2-555-0101",
		Lat:           14.5547,
		Lng:           121.0244,
		CreatedBy:     createdBy,
		CreatedAt:     createdAt,
	}
	if err := repo.Create(context.Background(), office); err != nil {
		t.Fatalf("seed office %q: %v", name, err)
	}
	return office
}

// --- AdminRepo ---

func TestAdminRepo_GetByEmail(t *testing.T) {
	truncateAll(t)

	repo := NewAdminRepo(testPool, newRepoLogger())

	id := seedAdmin(t, "admin@crashph.ph")

	got, err := repo.GetByEmail(context.Background(), "admin@crashph.ph")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != id {
		t.Fatalf("expected id=%s got=%s", id, got.ID)
	}

	_, err = repo.GetByEmail(context.Background(), "nobody@crashph.ph")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

// --- OfficeRepo ---

func TestOfficeRepo_CreateGet_RoundTrip(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, newRepoLogger())
	adminID := seedAdmin(t, "admin@crashph.ph")

	office := seedOffice(t, repo, "Makati Station 1", "station1@crashph.ph", adminID, time.Time{})

	if office.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if office.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}

	got, err := repo.Get(context.Background(), office.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.OfficeName != office.OfficeName || got.Email != office.Email {
		t.Fatalf("round-trip mismatch: got=%+v want=%+v", got, office)
	}
	if got.Lat != office.Lat || got.Lng != office.Lng {
		t.Fatalf("lat/lng mismatch got=(%v,%v) want=(%v,%v)", got.Lat, got.Lng, office.Lat, office.Lng)
	}
	if got.CreatedBy != adminID {
		t.Fatalf("expected created_by=%s got=%s", adminID, got.CreatedBy)
	}
}

func TestOfficeRepo_List_ExcludesSystemOffice(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, newRepoLogger())
	adminID := seedAdmin(t, "admin@crashph.ph")

	system := &domain.PoliceOffice{
		OfficeName:    "Default Office",
		Email:         "system@crashph.ph",
		PasswordHash:  "hash",
		HeadOfficer:   "-",
		ContactNumber: "-",
		CreatedBy:     adminID,
		IsSystem:      true,
	}
	if err := repo.Create(context.Background(), system); err != nil {
		t.Fatalf("Create system office: %v", err)
	}

	first := seedOffice(t, repo, "Makati Station 1", "station1@crashph.ph", adminID,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	second := seedOffice(t, repo, "Makati Station 2", "station2@crashph.ph", adminID,
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 offices got=%d", len(list))
	}
	// Ordered by creation, system account hidden.
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestOfficeRepo_EmailTaken_AcrossAdminsAndOffices(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, newRepoLogger())
	adminID := seedAdmin(t, "admin@crashph.ph")
	office := seedOffice(t, repo, "Makati Station 1", "station1@crashph.ph", adminID, time.Time{})

	// Admin emails count against office registration.
	taken, err := repo.EmailTaken(context.Background(), "admin@crashph.ph", uuid.Nil)
	if err != nil {
		t.Fatalf("EmailTaken: %v", err)
	}
	if !taken {
		t.Fatalf("expected admin email to be taken")
	}

	taken, err = repo.EmailTaken(context.Background(), "station1@crashph.ph", uuid.Nil)
	if err != nil {
		t.Fatalf("EmailTaken: %v", err)
	}
	if !taken {
		t.Fatalf("expected office email to be taken")
	}

	// An office keeping its own email is not a collision.
	taken, err = repo.EmailTaken(context.Background(), "station1@crashph.ph", office.ID)
	if err != nil {
		t.Fatalf("EmailTaken: %v", err)
	}
	if taken {
		t.Fatalf("own email must not count as taken")
	}

	taken, err = repo.EmailTaken(context.Background(), "fresh@crashph.ph", uuid.Nil)
	if err != nil {
		t.Fatalf("EmailTaken: %v", err)
	}
	if taken {
		t.Fatalf("unused email reported as taken")
	}
}

func TestOfficeRepo_Update_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, newRepoLogger())

	err := repo.Update(context.Background(), &domain.PoliceOffice{
		ID:         uuid.New(),
		OfficeName: "Ghost Station",
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestOfficeRepo_Delete_SystemOfficeProtected(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, newRepoLogger())
	adminID := seedAdmin(t, "admin@crashph.ph")

	system := &domain.PoliceOffice{
		OfficeName:    "Default Office",
		Email:         "system@crashph.ph",
		PasswordHash:  "hash",
		HeadOfficer:   "-",
		ContactNumber: "-",
		CreatedBy:     adminID,
		IsSystem:      true,
	}
	if err := repo.Create(context.Background(), system); err != nil {
		t.Fatalf("Create system office: %v", err)
	}

	if err := repo.Delete(context.Background(), system.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("system office must not be deletable, got: %v", err)
	}

	regular := seedOffice(t, repo, "Makati Station 1", "station1@crashph.ph", adminID, time.Time{})
	if err := repo.Delete(context.Background(), regular.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(context.Background(), regular.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestOfficeRepo_ListLocations_OrderedByCreation(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, newRepoLogger())
	adminID := seedAdmin(t, "admin@crashph.ph")

	second := seedOffice(t, repo, "Makati Station 2", "station2@crashph.ph", adminID,
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	first := seedOffice(t, repo, "Makati Station 1", "station1@crashph.ph", adminID,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	locations, err := repo.ListLocations(context.Background())
	if err != nil {
		t.Fatalf("ListLocations: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations got=%d", len(locations))
	}
	if locations[0].ID != first.ID || locations[1].ID != second.ID {
		t.Fatalf("expected creation order, got: %+v", locations)
	}
}

// --- ReportRepo ---

func TestReportRepo_Create_SetsDefaults(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, newRepoLogger())

	rep := &domain.Report{
		Category:    "collision",
		Description: "Two-vehicle collision along EDSA",
		Lat:         14.60,
		Lng:         120.98,
	}
	if err := repo.Create(context.Background(), rep); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rep.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if rep.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}
	if rep.Status != domain.ReportPending {
		t.Fatalf("expected status=%s got=%s", domain.ReportPending, rep.Status)
	}

	got, err := repo.Get(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Category != rep.Category || got.Lat != rep.Lat || got.Lng != rep.Lng {
		t.Fatalf("round-trip mismatch: got=%+v want=%+v", got, rep)
	}
	if got.ReporterID != nil || got.AssignedOfficeID != nil {
		t.Fatalf("expected anonymous unassigned report, got: %+v", got)
	}
}

func TestReportRepo_ListActive_ExcludesTerminal_DescOrder(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, newRepoLogger())
	officeRepo := NewOfficeRepo(testPool, newRepoLogger())

	adminID := seedAdmin(t, "admin@crashph.ph")
	office := seedOffice(t, officeRepo, "Makati Station 1", "station1@crashph.ph", adminID, time.Time{})
	citizenID := seedCitizen(t, "Juan", "Dela Cruz")

	mkReport := func(status domain.ReportStatus, createdAt time.Time, reporter, officeID *uuid.UUID) *domain.Report {
		rep := &domain.Report{
			Category:         "collision",
			Description:      "x",
			Lat:              14.60,
			Lng:              120.98,
			Status:           status,
			ReporterID:       reporter,
			AssignedOfficeID: officeID,
			CreatedAt:        createdAt,
		}
		if err := repo.Create(context.Background(), rep); err != nil {
			t.Fatalf("Create report: %v", err)
		}
		return rep
	}

	older := mkReport(domain.ReportPending, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil)
	newer := mkReport(domain.ReportAssigned, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), &citizenID, &office.ID)
	mkReport(domain.ReportResolved, time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), nil, nil)
	mkReport(domain.ReportCanceled, time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC), nil, nil)

	views, total, err := repo.ListActive(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total=2 got=%d", total)
	}
	if len(views) != 2 {
		t.Fatalf("expected len=2 got=%d", len(views))
	}

	// Newest first.
	if views[0].ID != newer.ID.String() || views[1].ID != older.ID.String() {
		t.Fatalf("unexpected order: %+v", views)
	}

	// Joined names: real ones where present, sentinel otherwise.
	if views[0].AssignedOfficeName != "Makati Station 1" {
		t.Fatalf("expected office name joined, got %q", views[0].AssignedOfficeName)
	}
	if views[0].ReporterFullName != "Juan Dela Cruz" {
		t.Fatalf("expected reporter full name, got %q", views[0].ReporterFullName)
	}
	if views[1].ReporterFullName != "N/A" {
		t.Fatalf("expected N/A for anonymous report, got %q", views[1].ReporterFullName)
	}
}

func TestReportRepo_ListActive_Pagination(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, newRepoLogger())

	for i := 0; i < 3; i++ {
		rep := &domain.Report{
			Category:    "collision",
			Description: "x",
			Lat:         14.60,
			Lng:         120.98,
			CreatedAt:   time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
		}
		if err := repo.Create(context.Background(), rep); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page1, total, err := repo.ListActive(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("ListActive page1: %v", err)
	}
	if total != 3 || len(page1) != 2 {
		t.Fatalf("expected total=3 len=2, got total=%d len=%d", total, len(page1))
	}

	page2, total2, err := repo.ListActive(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("ListActive page2: %v", err)
	}
	if total2 != 3 || len(page2) != 1 {
		t.Fatalf("expected total=3 len=1, got total=%d len=%d", total2, len(page2))
	}
}

func TestReportRepo_UpdateStatus_RemarksCoalesce(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, newRepoLogger())

	rep := &domain.Report{
		Category:    "collision",
		Description: "x",
		Lat:         14.60,
		Lng:         120.98,
	}
	if err := repo.Create(context.Background(), rep); err != nil {
		t.Fatalf("Create: %v", err)
	}

	remarks := "responder dispatched"
	if err := repo.UpdateStatus(context.Background(), rep.ID, domain.ReportInProgress, &remarks); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := repo.Get(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.ReportInProgress || got.Remarks != remarks {
		t.Fatalf("unexpected row after update: %+v", got)
	}

	// Nil remarks keep the previous text.
	if err := repo.UpdateStatus(context.Background(), rep.ID, domain.ReportResolved, nil); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, err = repo.Get(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.ReportResolved || got.Remarks != remarks {
		t.Fatalf("expected remarks preserved, got: %+v", got)
	}

	// Category, description and coordinates never move on this path.
	if got.Category != rep.Category || got.Description != rep.Description || got.Lat != rep.Lat {
		t.Fatalf("immutable fields changed: %+v", got)
	}
}

func TestReportRepo_UpdateStatus_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, newRepoLogger())

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.ReportResolved, nil)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

// --- MessageRepo ---

func TestMessageRepo_CreateList_AscendingOrder(t *testing.T) {
	truncateAll(t)

	reportRepo := NewReportRepo(testPool, newRepoLogger())
	repo := NewMessageRepo(testPool, newRepoLogger())

	rep := &domain.Report{
		Category:    "collision",
		Description: "x",
		Lat:         14.60,
		Lng:         120.98,
	}
	if err := reportRepo.Create(context.Background(), rep); err != nil {
		t.Fatalf("Create report: %v", err)
	}

	citizen := uuid.New()
	police := uuid.New()

	second := &domain.Message{
		ReportID:   rep.ID,
		SenderID:   police,
		SenderKind: domain.SenderPolice,
		ReceiverID: citizen,
		Body:       "On our way.",
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 2, 0, time.UTC),
	}
	first := &domain.Message{
		ReportID:   rep.ID,
		SenderID:   citizen,
		SenderKind: domain.SenderCitizen,
		ReceiverID: police,
		Body:       "Is someone on the way?",
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC),
	}
	for _, m := range []*domain.Message{second, first} {
		if err := repo.Create(context.Background(), m); err != nil {
			t.Fatalf("Create message: %v", err)
		}
	}

	thread, err := repo.ListByReport(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("ListByReport: %v", err)
	}
	if len(thread) != 2 {
		t.Fatalf("expected 2 messages got=%d", len(thread))
	}
	// Oldest first.
	if thread[0].ID != first.ID || thread[1].ID != second.ID {
		t.Fatalf("unexpected order: %+v", thread)
	}
	if thread[0].SenderKind != domain.SenderCitizen {
		t.Fatalf("expected citizen sender first, got %q", thread[0].SenderKind)
	}
}

func TestMessageRepo_Create_MissingReport_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewMessageRepo(testPool, newRepoLogger())

	msg := &domain.Message{
		ReportID:   uuid.New(),
		SenderID:   uuid.New(),
		SenderKind: domain.SenderCitizen,
		ReceiverID: uuid.New(),
		Body:       "hello?",
	}

	err := repo.Create(context.Background(), msg)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on FK violation, got: %v", err)
	}

	var count int
	if err := testPool.QueryRow(context.Background(), `SELECT COUNT(*) FROM messages`).Scan(&count); err != nil {
		t.Fatalf("count messages: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows after rejected insert, got %d", count)
	}
}

func TestMessageRepo_ListByReport_EmptyThread(t *testing.T) {
	truncateAll(t)

	reportRepo := NewReportRepo(testPool, newRepoLogger())
	repo := NewMessageRepo(testPool, newRepoLogger())

	rep := &domain.Report{
		Category:    "collision",
		Description: "x",
		Lat:         14.60,
		Lng:         120.98,
	}
	if err := reportRepo.Create(context.Background(), rep); err != nil {
		t.Fatalf("Create report: %v", err)
	}

	thread, err := repo.ListByReport(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("ListByReport: %v", err)
	}
	if len(thread) != 0 {
		t.Fatalf("expected empty thread, got %d messages", len(thread))
	}
}
