package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/legalsuite/case-service/internal/domain"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

func TestGetLawyerReportMissingLawyer(t *testing.T) {
	lawyers := newFakeLawyerRepo()
	lawsuits := newFakeLawsuitRepo()
	svc := NewReportService(lawyers, lawsuits)

	_, err := svc.GetLawyerReport(context.Background(), uuid.NewString())
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestGetLawyerReportCaseload(t *testing.T) {
	lawyers := newFakeLawyerRepo()
	lawsuitRepo := newFakeLawsuitRepo()
	lawsuitSvc := NewLawsuitService(LawsuitDependencies{LawsuitRepo: lawsuitRepo, LawyerRepo: lawyers})
	reportSvc := NewReportService(lawyers, lawsuitRepo)

	lawyer := activeLawyer(t, lawyers, "Juan Pérez")
	lawsuit := pendingLawsuit(t, lawsuitSvc, "DEM-001")
	pendingLawsuit(t, lawsuitSvc, "DEM-002") // stays unassigned, must not appear

	if _, err := lawsuitSvc.AssignLawyer(context.Background(), lawsuit.ID, lawyer.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	report, err := reportSvc.GetLawyerReport(context.Background(), lawyer.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.Lawyer.ID != lawyer.ID || report.Lawyer.Name != "Juan Pérez" {
		t.Fatalf("unexpected lawyer identity: %+v", report.Lawyer)
	}
	if len(report.Lawsuits) != 1 {
		t.Fatalf("expected one lawsuit, got %d", len(report.Lawsuits))
	}
	got := report.Lawsuits[0]
	if got.ID != lawsuit.ID || got.CaseNumber != "DEM-001" || got.Status != domain.LawsuitStatusAssigned {
		t.Fatalf("unexpected caseload entry: %+v", got)
	}
}
