package conversion

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// MolWURCS converts SMILES strings by shelling out to the MolWURCS jar.
type MolWURCS struct {
	javaBin string
	jarPath string
	obs     Observer
	log     logging.Logger
}

var _ SMILESConverter = (*MolWURCS)(nil)

// NewMolWURCS constructs the converter. An empty jar path yields a converter
// that reports ConversionUnavailable for every call. obs may be nil.
func NewMolWURCS(cfg config.ConversionConfig, obs Observer, log logging.Logger) *MolWURCS {
	javaBin := cfg.JavaBin
	if javaBin == "" {
		javaBin = "java"
	}
	return &MolWURCS{
		javaBin: javaBin,
		jarPath: cfg.MolWURCSJar,
		obs:     obs,
		log:     log.Named("molwurcs"),
	}
}

// SMILESToWURCS runs MolWURCS and returns its trimmed stdout.
func (m *MolWURCS) SMILESToWURCS(ctx context.Context, smiles string) (string, error) {
	if m.jarPath == "" {
		return "", apperrors.New(apperrors.ErrCodeConversionUnavailable, "MolWURCS jar not configured")
	}

	cmd := exec.CommandContext(ctx, m.javaBin, "-jar", m.jarPath, "--in", "smi", "--out", "wurcs", smiles)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		m.log.Warn("MolWURCS invocation failed",
			logging.Err(err),
			logging.String("stderr", strings.TrimSpace(stderr.String())),
		)
		observe(m.obs, "molwurcs", "error")
		return "", apperrors.Wrap(err, apperrors.ErrCodeConversionUnavailable, "running MolWURCS")
	}

	wurcs := strings.TrimSpace(stdout.String())
	if wurcs == "" {
		observe(m.obs, "molwurcs", "rejected")
		return "", apperrors.New(apperrors.ErrCodeConversionRejected, "MolWURCS produced no output")
	}
	observe(m.obs, "molwurcs", "ok")
	return wurcs, nil
}
