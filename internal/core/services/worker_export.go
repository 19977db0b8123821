package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

const exportSheetName = "Ouvriers"

var exportHeader = []any{
	"Nom", "CIN", "Téléphone", "Sexe", "Âge", "Année de naissance",
	"Ferme", "Chambre", "Dortoir", "Date d'entrée", "Date de sortie",
	"Motif de sortie", "Statut",
}

// Column widths follow the layout of the printed register the export replaces.
var exportColWidths = []float64{20, 12, 15, 8, 6, 12, 20, 10, 15, 12, 12, 20, 8}

// ExportWorkers renders the visible workers as an xlsx spreadsheet.
func (s *workerService) ExportWorkers(ctx context.Context, requester *domain.User, params dto.ListWorkersParams) (string, []byte, error) {
	workers, err := s.ListWorkers(ctx, requester, params)
	if err != nil {
		return "", nil, err
	}

	fermeNames, err := s.fermeNames(ctx)
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", exportSheetName)

	if err := f.SetSheetRow(exportSheetName, "A1", &exportHeader); err != nil {
		return "", nil, apperrors.NewInternalServerError("failed to write export header")
	}
	for i, width := range exportColWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(exportSheetName, col, col, width)
	}

	for i, worker := range workers {
		fermeName := fermeNames[worker.SiteID]
		if fermeName == "" {
			fermeName = worker.SiteID
		}
		row := []any{
			worker.FullName,
			worker.NationalID,
			worker.Phone,
			exportGender(worker.Gender),
			worker.Age,
			worker.BirthYear,
			fermeName,
			worker.RoomNumber,
			worker.DormitoryLabel,
			worker.EntryDate.Format("02/01/2006"),
			exportDate(worker.ExitDate),
			string(worker.ExitReason),
			exportStatus(worker.Status),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return "", nil, apperrors.NewInternalServerError("failed to write export row")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.LogError(ctx, err, "Failed to render worker export")
		return "", nil, apperrors.NewInternalServerError("failed to render export")
	}

	filename := fmt.Sprintf("ouvriers_%s.xlsx", time.Now().Format("2006-01-02"))
	s.LogInfo(ctx, "Worker export generated",
		slog.String("filename", filename),
		slog.Int("workers", len(workers)))
	return filename, buf.Bytes(), nil
}

func (s *workerService) fermeNames(ctx context.Context) (map[string]string, error) {
	sites, err := s.siteRepo.ListSites(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(sites))
	for _, site := range sites {
		names[site.SiteID] = site.Name
	}
	return names, nil
}

func exportGender(g domain.WorkerGender) string {
	if g == domain.Woman {
		return "Femme"
	}
	return "Homme"
}

func exportStatus(status domain.WorkerStatus) string {
	if status == domain.StatusActive {
		return "Actif"
	}
	return "Inactif"
}

func exportDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
