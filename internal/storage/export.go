package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/quadsim/internal/robot"
)

type ExportData struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Dt          float64            `json:"dt"`
	Steps       int                `json:"steps"`
	Scans       int                `json:"scans"`
	Arrived     bool               `json:"arrived"`
	EnergyTotal float64            `json:"energy_total"`
	History     [][3]float64       `json:"history"`
	Metrics     map[string]float64 `json:"metrics"`
}

func buildExport(meta *RunMetadata, history []robot.Vec3) ExportData {
	data := ExportData{
		ID:          meta.ID,
		Name:        meta.Name,
		Dt:          meta.Dt,
		Steps:       meta.Steps,
		Scans:       meta.Scans,
		Arrived:     meta.Arrived,
		EnergyTotal: meta.EnergyTotal,
		History:     make([][3]float64, len(history)),
		Metrics:     meta.Metrics,
	}
	for i, p := range history {
		data.History[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return data
}

func ExportJSON(w io.Writer, meta *RunMetadata, history []robot.Vec3) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExport(meta, history))
}

func ExportJSONStdout(meta *RunMetadata, history []robot.Vec3) error {
	return ExportJSON(os.Stdout, meta, history)
}
