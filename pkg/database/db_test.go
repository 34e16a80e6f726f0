package database

import (
	"os"
	"testing"
	"time"

	"github.com/mkrugly/nr-frequency/pkg/logger"
	"github.com/mkrugly/nr-frequency/pkg/resolver"
)

func TestNewDB(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_nr_frequency.db"
	defer func() { _ = os.Remove(dbPath) }()

	cfg := Config{Path: dbPath}
	db, err := NewDB(cfg, log)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if db.db == nil {
		t.Error("Expected non-nil database connection")
	}
}

func TestNewDB_DefaultPath(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	defer func() { _ = os.Remove("nr-frequency.db") }()

	cfg := Config{}
	db, err := NewDB(cfg, log)
	if err != nil {
		t.Fatalf("Failed to create database with default path: %v", err)
	}
	defer func() { _ = db.Close() }()

	if db.db == nil {
		t.Error("Expected non-nil database connection")
	}
}

func TestDB_StoredPlans(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_stored_plans.db"
	defer func() { _ = os.Remove(dbPath) }()

	cfg := Config{Path: dbPath}
	db, err := NewDB(cfg, log)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer func() { _ = db.Close() }()

	n, err := db.StoredPlans()
	if err != nil {
		t.Fatalf("StoredPlans failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected empty store, got %d plans", n)
	}

	repo := NewCellPlanRepository(db.GetDB())
	if err := repo.Create(&CellPlan{Name: "macro1", Band: 77}); err != nil {
		t.Fatalf("Failed to create cell plan: %v", err)
	}

	n, err = db.StoredPlans()
	if err != nil {
		t.Fatalf("StoredPlans failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 stored plan, got %d", n)
	}
}

func TestCellPlan_BeforeCreate(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_cell_plan_create.db"
	defer func() { _ = os.Remove(dbPath) }()

	cfg := Config{Path: dbPath}
	db, err := NewDB(cfg, log)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Create plan without timestamp
	plan := &CellPlan{
		Name:        "macro1",
		Band:        77,
		Duplex:      "TDD",
		FcChannelDL: 3750000,
		Gscn:        8006,
	}

	repo := NewCellPlanRepository(db.GetDB())
	err = repo.Create(plan)
	if err != nil {
		t.Fatalf("Failed to create cell plan: %v", err)
	}

	if plan.ID == 0 {
		t.Error("Expected non-zero ID after creation")
	}
	if plan.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set by hook")
	}
}

func TestCellPlanRepository_GetRecent(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_plans_get_recent.db"
	defer func() { _ = os.Remove(dbPath) }()

	cfg := Config{Path: dbPath}
	db, err := NewDB(cfg, log)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewCellPlanRepository(db.GetDB())

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		plan := &CellPlan{
			Name:      "cell",
			Band:      77 + i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(plan); err != nil {
			t.Fatalf("Failed to create cell plan %d: %v", i, err)
		}
	}

	plans, err := repo.GetRecent(3)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("Expected 3 plans, got %d", len(plans))
	}
	if plans[0].Band != 81 {
		t.Errorf("Expected newest plan first (band 81), got band %d", plans[0].Band)
	}
}

func TestCellPlanRepository_GetByBand(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_plans_by_band.db"
	defer func() { _ = os.Remove(dbPath) }()

	cfg := Config{Path: dbPath}
	db, err := NewDB(cfg, log)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewCellPlanRepository(db.GetDB())
	for _, band := range []int{77, 78, 77} {
		if err := repo.Create(&CellPlan{Name: "cell", Band: band}); err != nil {
			t.Fatalf("Failed to create cell plan: %v", err)
		}
	}

	plans, err := repo.GetByBand(77, 10)
	if err != nil {
		t.Fatalf("GetByBand failed: %v", err)
	}
	if len(plans) != 2 {
		t.Errorf("Expected 2 plans for band 77, got %d", len(plans))
	}
}

func TestCellPlanRepository_GetRecentPaginated(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_plans_paginated.db"
	defer func() { _ = os.Remove(dbPath) }()

	cfg := Config{Path: dbPath}
	db, err := NewDB(cfg, log)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewCellPlanRepository(db.GetDB())
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		plan := &CellPlan{
			Name:      "cell",
			Band:      1 + i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(plan); err != nil {
			t.Fatalf("Failed to create cell plan %d: %v", i, err)
		}
	}

	plans, total, err := repo.GetRecentPaginated(1, 3)
	if err != nil {
		t.Fatalf("GetRecentPaginated failed: %v", err)
	}
	if total != 7 {
		t.Errorf("Expected total 7, got %d", total)
	}
	if len(plans) != 3 {
		t.Fatalf("Expected 3 plans on page 1, got %d", len(plans))
	}
	if plans[0].Band != 7 {
		t.Errorf("Expected newest plan first (band 7), got band %d", plans[0].Band)
	}

	plans, total, err = repo.GetRecentPaginated(3, 3)
	if err != nil {
		t.Fatalf("GetRecentPaginated page 3 failed: %v", err)
	}
	if total != 7 {
		t.Errorf("Expected total 7 on page 3, got %d", total)
	}
	if len(plans) != 1 {
		t.Fatalf("Expected 1 plan on last page, got %d", len(plans))
	}
	if plans[0].Band != 1 {
		t.Errorf("Expected oldest plan last (band 1), got band %d", plans[0].Band)
	}
}

func TestCellPlanRepository_GetByName(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_plans_by_name.db"
	defer func() { _ = os.Remove(dbPath) }()

	cfg := Config{Path: dbPath}
	db, err := NewDB(cfg, log)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewCellPlanRepository(db.GetDB())
	for _, name := range []string{"macro1", "macro2", "macro1"} {
		if err := repo.Create(&CellPlan{Name: name, Band: 77}); err != nil {
			t.Fatalf("Failed to create cell plan: %v", err)
		}
	}

	plans, err := repo.GetByName("macro1", 10)
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if len(plans) != 2 {
		t.Errorf("Expected 2 plans for macro1, got %d", len(plans))
	}
	for _, p := range plans {
		if p.Name != "macro1" {
			t.Errorf("Expected only macro1 plans, got %s", p.Name)
		}
	}
}

func TestCellPlanRepository_DeleteOlderThan(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_plans_delete_older.db"
	defer func() { _ = os.Remove(dbPath) }()

	cfg := Config{Path: dbPath}
	db, err := NewDB(cfg, log)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewCellPlanRepository(db.GetDB())
	now := time.Now()
	ages := []time.Duration{-72 * time.Hour, -48 * time.Hour, -time.Hour}
	for i, age := range ages {
		plan := &CellPlan{Name: "cell", Band: 1 + i, CreatedAt: now.Add(age)}
		if err := repo.Create(plan); err != nil {
			t.Fatalf("Failed to create cell plan %d: %v", i, err)
		}
	}

	deleted, err := repo.DeleteOlderThan(now.Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("DeleteOlderThan failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Expected 2 plans deleted, got %d", deleted)
	}

	remaining, err := repo.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("Expected 1 plan remaining, got %d", len(remaining))
	}
	if remaining[0].Band != 3 {
		t.Errorf("Expected the fresh plan to survive (band 3), got band %d", remaining[0].Band)
	}
}

func TestNewCellPlan_RoundTrip(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	res, err := resolver.New(log).Resolve(resolver.Input{
		Band:       77,
		Bw:         50,
		ScsCarrier: 30,
		ScsCommon:  30,
		ScsSSB:     30,
		FcChannel:  3750000,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	plan, err := NewCellPlan("macro1", res)
	if err != nil {
		t.Fatalf("NewCellPlan failed: %v", err)
	}
	if plan.Band != 77 || plan.Duplex != "TDD" {
		t.Errorf("Expected band 77 TDD, got band %d %s", plan.Band, plan.Duplex)
	}
	if plan.Gscn != res.Gscn {
		t.Errorf("Expected gscn %d, got %d", res.Gscn, plan.Gscn)
	}

	back, err := plan.Resolved()
	if err != nil {
		t.Fatalf("Resolved failed: %v", err)
	}
	if back.FcChannelDL != res.FcChannelDL {
		t.Errorf("Expected fc_channel_dl %d after round trip, got %d", res.FcChannelDL, back.FcChannelDL)
	}
	if back.ArfcnSSB != res.ArfcnSSB {
		t.Errorf("Expected arfcn_ssb %d after round trip, got %d", res.ArfcnSSB, back.ArfcnSSB)
	}
}
