package validation

import (
	"strings"
	"testing"

	"github.com/legalsuite/case-service/internal/api/dto"
	"github.com/legalsuite/case-service/internal/domain"
)

func TestStructCollectsAllViolations(t *testing.T) {
	bad := "bad"
	req := dto.CreateLawsuitRequest{
		CaseNumber: "AB", // too short
		Plaintiff:  "",   // missing
		Defendant:  "Acme Corp",
		CaseType:   "maritime", // not in the enum
		Status:     domain.LawsuitStatusPending,
		LawyerID:   &bad, // not a uuid
	}

	violations := Struct(req)
	if len(violations) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(violations), violations)
	}

	joined := strings.Join(violations, "; ")
	for _, want := range []string{
		"case_number must be at least 3 characters",
		"plaintiff is required",
		"case_type must be one of: civil, criminal, labor, commercial",
		"lawyer_id must be a valid identifier",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing violation %q in %v", want, violations)
		}
	}
}

func TestStructValidPayload(t *testing.T) {
	req := dto.CreateLawsuitRequest{
		CaseNumber: "DEM-2025-001",
		Plaintiff:  "Carlos Ruiz",
		Defendant:  "Acme Corp",
		CaseType:   domain.CaseTypeCivil,
		Status:     domain.LawsuitStatusPending,
	}
	if violations := Struct(req); violations != nil {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestStructReportsWireFieldNames(t *testing.T) {
	req := dto.LoginRequest{Username: "ab", Password: "123"}
	violations := Struct(req)
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %v", violations)
	}
	for _, v := range violations {
		if strings.Contains(v, "Username") || strings.Contains(v, "Password") {
			t.Fatalf("violation must use the json field name: %q", v)
		}
	}
}
