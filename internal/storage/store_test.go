package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/quadsim/internal/engine"
	"github.com/san-kum/quadsim/internal/robot"
)

func testResult() *engine.Result {
	return &engine.Result{
		FinalPose:   robot.Vec3{X: 1.0, Y: 0.5},
		Steps:       100,
		Scans:       10,
		Arrived:     false,
		EnergyTotal: 42.5,
		History: []robot.Vec3{
			{X: 0.1, Y: 0.05},
			{X: 0.2, Y: 0.1},
		},
		Metrics: map[string]float64{
			"distance_to_goal": 12.3,
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("walk", 0.1, 42, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Name != "walk" {
		t.Errorf("expected name 'walk', got '%s'", meta.Name)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Scans != 10 {
		t.Errorf("expected 10 scans, got %d", meta.Scans)
	}
	if meta.Metrics["distance_to_goal"] != 12.3 {
		t.Errorf("expected metric 12.3, got %f", meta.Metrics["distance_to_goal"])
	}

	history, err := st.LoadHistory(runID)
	if err != nil {
		t.Fatalf("load history failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(history))
	}
	if history[1].X != 0.2 {
		t.Errorf("expected X 0.2, got %f", history[1].X)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("walk", 0.1, 42, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("walk", 0.1, 42, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "history.csv")); os.IsNotExist(err) {
		t.Error("history.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("walk", 0.1, 42, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	history, err := st.LoadHistory(runID)
	if err != nil {
		t.Fatalf("load history failed: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, history); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("exported JSON invalid: %v", err)
	}
	if data.Steps != 100 {
		t.Errorf("expected 100 steps, got %d", data.Steps)
	}
	if len(data.History) != 2 {
		t.Errorf("expected 2 history rows, got %d", len(data.History))
	}
}
