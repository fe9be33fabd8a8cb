package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("app:\n  name: demo\n"))
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.App.Name)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "admin/reports", cfg.Reports.LinkBase())
	assert.Equal(t, 50, cfg.Reports.PageSize)
	assert.Equal(t, []string{"CMS_ACCESS_LeftAndMain", "CMS_ACCESS_ReportAdmin"}, cfg.Reports.RequiredPermissions)
}

func TestParse_Reports(t *testing.T) {
	cfg, err := Parse([]byte(`
app:
  name: demo
reports:
  url_segment: audit
  admin_base: cms
  page_size: 20
  excluded_reports: [reports.EmptyPagesReport]
  recent_days: 14
`))
	require.NoError(t, err)
	assert.Equal(t, "cms/audit", cfg.Reports.LinkBase())
	assert.Equal(t, []string{"reports.EmptyPagesReport"}, cfg.Reports.ExcludedReports)
	assert.Equal(t, 14, cfg.Reports.RecentDays)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("database:\n  driver: oracle\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("reports:\n  url_segment: a/b\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("app: [\n"))
	assert.Error(t, err)
}

func TestLoadConfig_Example(t *testing.T) {
	cfg, err := LoadConfig("../../config/config.yml")
	require.NoError(t, err)

	assert.Equal(t, "yqhp-reports", cfg.App.Name)
	assert.Equal(t, 200, cfg.Database.SlowThreshold)
	assert.Equal(t, "admin/reports", cfg.Reports.LinkBase())
	assert.Same(t, cfg, GetConfig())
}
