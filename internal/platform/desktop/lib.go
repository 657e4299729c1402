package desktop

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/port"
)

// DesktopLib drives the analyzer against local files.
type DesktopLib struct {
	analyzer port.AnalyzerService
	auditor  port.AuditService
	config   *Config
}

func NewDesktopLib(analyzer port.AnalyzerService, auditor port.AuditService, cfg *Config) *DesktopLib {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	return &DesktopLib{
		analyzer: analyzer,
		auditor:  auditor,
		config:   cfg,
	}
}

func (d *DesktopLib) Assess(password string) domain.Report {
	return d.analyzer.Assess(password)
}

func (d *DesktopLib) Generate(criteria domain.GenerationCriteria) domain.GeneratedPassword {
	return d.analyzer.GenerateStrongPassword(criteria)
}

// AuditFile audits one password per line of path. The returned string is the
// saved report location, empty when results are not saved.
func (d *DesktopLib) AuditFile(ctx context.Context, path string) (*domain.AuditReport, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open password file: %w", err)
	}
	defer f.Close()

	passwords, err := ReadPasswords(f)
	if err != nil {
		return nil, "", err
	}

	report, err := d.auditor.Audit(ctx, passwords)
	if err != nil {
		return nil, "", err
	}

	if !d.config.SaveResults {
		return report, "", nil
	}
	saved, err := d.saveReport(report)
	if err != nil {
		return report, "", err
	}
	return report, saved, nil
}

// ReadPasswords returns the non-empty lines of r.
func ReadPasswords(r io.Reader) ([]string, error) {
	var passwords []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line != "" {
			passwords = append(passwords, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read password file: %w", err)
	}
	return passwords, nil
}

func (d *DesktopLib) saveReport(report *domain.AuditReport) (string, error) {
	if err := os.MkdirAll(d.config.ResultsPath, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(d.config.ResultsPath, "audit-"+report.ID+".json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write audit report: %w", err)
	}
	return path, nil
}
