package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/story-atlas/pkg/models/api"
	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/models/store"
	"github.com/de-tools/story-atlas/pkg/services/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const superstoreCSV = "Order ID,Order Date,Ship Date,Customer ID,Segment,Region,Category,Sub-Category,Sales,Discount,Profit\n" +
	"CA-1,1/5/2017,1/9/2017,AB-1,Consumer,West,Furniture,Chairs,300,0.1,30\n" +
	"CA-2,3/5/2017,3/9/2017,CD-2,Corporate,East,Technology,Phones,700,0.3,-20\n"

type fixture struct {
	dir string
	out *bytes.Buffer
	cli *CLI
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	registry, err := loader.NewDefaultRegistry(loader.S3FactoryOptions{})
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "superstore.csv"), []byte(superstoreCSV), 0o600))

	var out bytes.Buffer
	return &fixture{
		dir: dir,
		out: &out,
		cli: NewCLI(Options{Registry: registry, Output: &out}),
	}
}

func (f *fixture) run(args ...string) error {
	f.cli.SetArgs(args)
	return f.cli.Execute()
}

func TestCLI_RenderOutline(t *testing.T) {
	f := setupFixture(t)

	err := f.run("render", "--source", filepath.Join(f.dir, "superstore.csv"), "--format", "outline")

	require.NoError(t, err)
	out := f.out.String()
	assert.Contains(t, out, "0. Supermarket Performance Overview")
	assert.Contains(t, out, "Total Sales: $1,000")
	assert.Contains(t, out, "Top Category by Sales: Technology")
	assert.Contains(t, out, "Best Month for Sales: March 2017")
}

func TestCLI_RenderTable(t *testing.T) {
	f := setupFixture(t)

	err := f.run("render", "--source", filepath.Join(f.dir, "superstore.csv"))

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "=== Sales Over Time ===")
	assert.Contains(t, f.out.String(), "Chart: Monthly Sales Trend [line]")
}

func TestCLI_RenderMissingSource(t *testing.T) {
	f := setupFixture(t)

	err := f.run("render", "--source", filepath.Join(f.dir, "absent.csv"), "--format", "outline")

	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "0. Data not loaded.")
	assert.Contains(t, f.out.String(), "3. Data not loaded.")
}

func TestCLI_RenderUnknownFormat(t *testing.T) {
	f := setupFixture(t)

	err := f.run("render", "--source", filepath.Join(f.dir, "superstore.csv"), "--format", "html")

	assert.EqualError(t, err, `unsupported format "html"`)
}

func TestCLI_Export(t *testing.T) {
	f := setupFixture(t)
	outPath := filepath.Join(f.dir, "story.json")

	err := f.run("export", "--source", filepath.Join(f.dir, "superstore.csv"), "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var story api.Story
	require.NoError(t, json.Unmarshal(data, &story))
	assert.Equal(t, 2, story.RecordCount)
	assert.Len(t, story.Scenes, 4)
}

func TestCLI_Drivers(t *testing.T) {
	f := setupFixture(t)

	require.NoError(t, f.run("drivers"))

	assert.Equal(t, "Supported drivers:\ncsv\nduckdb\ns3\nxlsx\n", f.out.String())
}

func TestCLI_Profiles(t *testing.T) {
	f := setupFixture(t)
	profiles := filepath.Join(f.dir, ".storyatlas")
	content := "[local]\npath = " + filepath.Join(f.dir, "superstore.csv") + "\n\n[archive]\npath = s3://exports/2016.csv\n"
	require.NoError(t, os.WriteFile(profiles, []byte(content), 0o600))

	require.NoError(t, f.run("profiles", "--profiles", profiles))
	assert.Contains(t, f.out.String(), "local\tcsv\t")
	assert.Contains(t, f.out.String(), "archive\ts3\ts3://exports/2016.csv")

	f.out.Reset()
	require.NoError(t, f.run("render", "--profiles", profiles, "--profile", "local", "--format", "outline"))
	assert.Contains(t, f.out.String(), "Total Sales: $1,000")
}

func TestCLI_RenderAppliesSettingsFile(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.yaml")
	content := "source:\n  path: s3://exports/superstore.csv\n  aws_profile: prod\nlog:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(settingsPath, []byte(content), 0o600))

	var requested []domain.SourceProfile
	registry := loader.NewRegistry()
	require.NoError(t, registry.Register(loader.DriverS3, func(_ context.Context, profile domain.SourceProfile) (loader.Source, error) {
		requested = append(requested, profile)
		return loader.SourceFunc(func(context.Context) ([]store.TransactionRow, error) {
			return nil, store.ErrSourceUnavailable
		}), nil
	}))

	var out, logs bytes.Buffer
	cli := NewCLI(Options{Registry: registry, Output: &out, ErrOutput: &logs})
	cli.SetArgs([]string{"render", "--config", settingsPath, "--format", "outline"})

	require.NoError(t, cli.Execute())

	require.Len(t, requested, 1)
	assert.Equal(t, "prod", requested[0].AWSProfile)
	assert.Equal(t, "s3://exports/superstore.csv", requested[0].Path)
	assert.Contains(t, logs.String(), `"level":"debug"`)
	assert.Contains(t, logs.String(), `"message":"story composed"`)
	assert.Contains(t, out.String(), "0. Data not loaded.")
}

func TestCLI_RenderInvalidLogSettings(t *testing.T) {
	f := setupFixture(t)
	settingsPath := filepath.Join(f.dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("log:\n  format: xml\n"), 0o600))

	err := f.run("render", "--config", settingsPath, "--source", filepath.Join(f.dir, "superstore.csv"))

	assert.EqualError(t, err, `invalid log format "xml"`)
}
