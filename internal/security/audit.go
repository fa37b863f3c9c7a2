// Package security wraps the gitleaks detector for work tree audits.
package security

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/semgroup"
	"github.com/zricethezav/gitleaks/v8/detect"
	"github.com/zricethezav/gitleaks/v8/report"
	"github.com/zricethezav/gitleaks/v8/sources"
)

// Auditor detects committed-looking secrets in repository work trees.
type Auditor struct {
	detector *detect.Detector
}

// AuditResult contains the findings of one work tree scan.
type AuditResult struct {
	// ScannedPath is the absolute path that was scanned
	ScannedPath string `json:"scanned_path"`

	// HasLeaks is true when at least one finding was reported
	HasLeaks bool `json:"has_leaks"`

	// Findings holds one entry per detected secret
	Findings []Finding `json:"findings"`
}

// Finding represents a detected secret.
type Finding struct {
	RuleID      string `json:"rule_id"`
	Description string `json:"description"`
	File        string `json:"file"`
	Line        int    `json:"line"`
	Secret      string `json:"secret"`
	Match       string `json:"match"`
}

// NewAuditor creates an auditor with the default gitleaks rules running a
// single detection worker. With redact set, reported secrets are masked
// to 80 percent.
func NewAuditor(redact bool) (*Auditor, error) {
	detector, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load gitleaks config: %w", err)
	}

	detector.Sema = semgroup.NewGroup(context.Background(), 1)
	if redact {
		detector.Redact = 80
	}

	return &Auditor{detector: detector}, nil
}

// ScanWorkTree scans the files under path. A .gitleaksignore at the
// repository root is honored when present.
func (a *Auditor) ScanWorkTree(ctx context.Context, path string) (*AuditResult, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	ignorePath := filepath.Join(absPath, ".gitleaksignore")
	if _, err := os.Stat(ignorePath); err == nil {
		if err := a.detector.AddGitleaksIgnore(ignorePath); err != nil {
			return nil, fmt.Errorf("failed to load .gitleaksignore: %w", err)
		}
	}

	source := &sources.Files{
		Path:   absPath,
		Config: &a.detector.Config,
		Sema:   a.detector.Sema,
	}

	findings, err := a.detector.DetectSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	return buildResult(findings, absPath), nil
}

func buildResult(findings []report.Finding, path string) *AuditResult {
	result := &AuditResult{
		ScannedPath: path,
		HasLeaks:    len(findings) > 0,
		Findings:    make([]Finding, 0, len(findings)),
	}

	for _, f := range findings {
		result.Findings = append(result.Findings, Finding{
			RuleID:      f.RuleID,
			Description: f.Description,
			File:        f.File,
			Line:        f.StartLine,
			Secret:      f.Secret,
			Match:       f.Match,
		})
	}

	return result
}

// FormatFindings formats findings for display.
func FormatFindings(findings []Finding) string {
	if len(findings) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d potential secret(s):\n\n", len(findings)))

	for i, f := range findings {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, f.Description))
		sb.WriteString(fmt.Sprintf("     Rule: %s\n", f.RuleID))
		sb.WriteString(fmt.Sprintf("     File: %s:%d\n", f.File, f.Line))
		sb.WriteString(fmt.Sprintf("     Secret: %s\n", f.Secret))
		sb.WriteString("\n")
	}

	return sb.String()
}
