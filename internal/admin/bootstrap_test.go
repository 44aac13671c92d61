package admin

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/farshadmz/storefront-backend/pkg/config"
	"github.com/farshadmz/storefront-backend/pkg/db"
	"github.com/farshadmz/storefront-backend/pkg/db/models"
	"github.com/farshadmz/storefront-backend/pkg/logger"
	"github.com/farshadmz/storefront-backend/pkg/security"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestClient(t *testing.T) *db.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:admin_%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	client := db.NewFromConn(conn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestLogger() *logger.Logger {
	return logger.New(logger.Options{
		ServiceName: "admin-test",
		Level:       zerolog.Disabled,
		Output:      &bytes.Buffer{},
	})
}

func fastPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func newBootstrapper(client *db.Client, admin config.AdminBootstrapConfig) *Bootstrapper {
	return NewBootstrapper(client, newTestLogger(), admin, fastPasswordConfig())
}

func countUsers(t *testing.T, client *db.Client) int64 {
	t.Helper()
	var count int64
	if err := client.DB().Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	return count
}

func TestEnsureAdminCreatesAccount(t *testing.T) {
	client := newTestClient(t)
	b := newBootstrapper(client, config.AdminBootstrapConfig{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "s3cret",
	})

	outcome, err := b.EnsureAdmin(context.Background())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if outcome != OutcomeCreated {
		t.Fatalf("outcome = %s, want %s", outcome, OutcomeCreated)
	}

	var user models.User
	if err := client.DB().First(&user, "username = ?", "admin").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if !user.IsStaff || !user.IsSuperuser {
		t.Fatalf("account not privileged: staff=%v super=%v", user.IsStaff, user.IsSuperuser)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	ok, err := security.VerifyPassword("s3cret", user.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	cfg := config.AdminBootstrapConfig{Username: "admin", Email: "admin@example.com", Password: "s3cret"}

	if _, err := newBootstrapper(client, cfg).EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	outcome, err := newBootstrapper(client, cfg).EnsureAdmin(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if outcome != OutcomeAlreadyAdmin {
		t.Fatalf("second run outcome = %s, want %s", outcome, OutcomeAlreadyAdmin)
	}
	if count := countUsers(t, client); count != 1 {
		t.Fatalf("user count = %d, want 1", count)
	}
}

func TestEnsureAdminSkipsWithoutPassword(t *testing.T) {
	client := newTestClient(t)
	b := newBootstrapper(client, config.AdminBootstrapConfig{Username: "admin", Password: "   "})

	outcome, err := b.EnsureAdmin(context.Background())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if outcome != OutcomeSkippedNoPassword {
		t.Fatalf("outcome = %s, want %s", outcome, OutcomeSkippedNoPassword)
	}
	if count := countUsers(t, client); count != 0 {
		t.Fatalf("skip run created %d accounts", count)
	}
}

func TestEnsureAdminPromotesExistingAccount(t *testing.T) {
	client := newTestClient(t)
	existing := models.User{
		Username:     "admin",
		Email:        "old@example.com",
		PasswordHash: "$argon2id$v=19$m=8,t=1,p=1$c2FsdHNhbHQ$aGFzaGhhc2hoYXNoaGFzaA",
	}
	if err := client.DB().Create(&existing).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	b := newBootstrapper(client, config.AdminBootstrapConfig{Username: "admin", Email: "new@example.com", Password: "s3cret"})
	outcome, err := b.EnsureAdmin(context.Background())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if outcome != OutcomeUpgraded {
		t.Fatalf("outcome = %s, want %s", outcome, OutcomeUpgraded)
	}

	var user models.User
	if err := client.DB().First(&user, "username = ?", "admin").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if !user.IsStaff || !user.IsSuperuser {
		t.Fatal("existing account was not promoted")
	}
	if user.PasswordHash == existing.PasswordHash {
		t.Fatal("promotion must reset the password to the configured one")
	}
	if ok, err := security.VerifyPassword("s3cret", user.PasswordHash); err != nil || !ok {
		t.Fatalf("promoted account hash does not verify: ok=%v err=%v", ok, err)
	}
	if user.Email != "new@example.com" {
		t.Fatalf("email not updated: %q", user.Email)
	}
	if count := countUsers(t, client); count != 1 {
		t.Fatalf("user count = %d, want 1", count)
	}
}

func TestEnsureAdminNoOpWhenAnySuperuserExists(t *testing.T) {
	client := newTestClient(t)
	other := models.User{
		Username:     "founder",
		Email:        "founder@example.com",
		PasswordHash: "$argon2id$v=19$m=8,t=1,p=1$c2FsdHNhbHQ$aGFzaGhhc2hoYXNoaGFzaA",
		IsStaff:      true,
		IsSuperuser:  true,
	}
	if err := client.DB().Create(&other).Error; err != nil {
		t.Fatalf("seed superuser: %v", err)
	}

	b := newBootstrapper(client, config.AdminBootstrapConfig{Username: "admin", Password: "s3cret"})
	outcome, err := b.EnsureAdmin(context.Background())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if outcome != OutcomeAlreadyAdmin {
		t.Fatalf("outcome = %s, want %s", outcome, OutcomeAlreadyAdmin)
	}
	if count := countUsers(t, client); count != 1 {
		t.Fatalf("expected no new accounts, got %d users", count)
	}
}

func TestEnsureAdminRejectsEmptyUsername(t *testing.T) {
	client := newTestClient(t)
	b := newBootstrapper(client, config.AdminBootstrapConfig{Username: " ", Password: "s3cret"})

	if _, err := b.EnsureAdmin(context.Background()); err == nil {
		t.Fatal("expected error for empty username")
	}
}
