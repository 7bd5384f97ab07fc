package profiles

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"growthplan-backend/plan/model"
)

func TestPGRepoCreateStoresPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Record{
		ID:     "profile-1",
		UserID: "user-1",
		Profile: model.UserProfile{
			Name:     "Анна",
			City:     "moscow",
			WorkMode: model.WorkModeSalonOnly,
		},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(rec.ID, rec.UserID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRestoresProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	profile := model.UserProfile{
		Name:         "Ольга",
		City:         "spb",
		WorkMode:     model.WorkModeHybrid,
		EnergyVector: model.EnergyExit,
		SalonPrice:   1800,
		PrivatePrice: 2500,
	}
	payload, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}

	rows := sqlmock.NewRows([]string{"id", "user_id", "payload", "created_at"}).
		AddRow("profile-1", "user-1", payload, time.Now().UTC())

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs("user-1", "profile-1").
		WillReturnRows(rows)

	rec, err := repo.GetByID(context.Background(), "user-1", "profile-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rec.Profile.Name != "Ольга" || rec.Profile.WorkMode != model.WorkModeHybrid {
		t.Fatalf("profile not restored: %+v", rec.Profile)
	}
	if rec.Profile.SalonPrice != 1800 || rec.Profile.PrivatePrice != 2500 {
		t.Fatalf("prices not restored: %+v", rec.Profile)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
