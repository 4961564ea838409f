package inventory

import (
	"testing"
	"time"

	"stock-sync/core/archive"
	"stock-sync/core/database"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var officialHeader = []any{"SKU", "Vendor", "Option1 Value", "Inventory", "Track Inventory", "Tags"}

// workbook builds an .xlsx in memory from rows.
func workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func junoOfficial(t *testing.T) []byte {
	return workbook(t,
		officialHeader,
		[]any{"C9", "Juno", "預購", 2, "No", ""},
		[]any{"C8", "Juno", "預購", 5, "Yes", ""},
		[]any{"C9", "Other Label", "現貨", 4, "Yes", ""},
		[]any{"C7", "Juno", "預購", 1, "No", "即將發行"},
		[]any{"Z1", "Light in the Attic", "預購", 9, "No", ""},
	)
}

func junoFeed(t *testing.T) []byte {
	return workbook(t,
		[]any{"Cat No", "Stock"},
		[]any{"C9", 17},
		[]any{"C7", 3},
	)
}

type fixture struct {
	fs      afero.Fs
	archive *archive.Archive
	ledger  *Ledger
	service *Service
}

func newFixture(t *testing.T, withDB bool) *fixture {
	t.Helper()
	fs := afero.NewMemMapFs()
	arc := &archive.Archive{
		Uploads: archive.NewLocalStore(fs, "uploaded_files"),
		Records: archive.NewLocalStore(fs, "records"),
	}
	logger := zap.NewNop()

	var ledger *Ledger
	if withDB {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		ledger = NewLedger(db)
		require.NoError(t, ledger.Migrate())
	} else {
		ledger = NewLedger(nil)
	}

	sweeper := archive.NewSweeper(7*24*time.Hour, logger, arc.Stores()...)
	svc := NewService(arc, sweeper, ledger, logger)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 7, 5, 2, 0, time.Local) }
	ids := []string{"11111111-aaaa-bbbb-cccc-000000000001", "22222222-aaaa-bbbb-cccc-000000000002"}
	svc.newID = func() string {
		id := ids[0]
		ids = append(ids[1:], id)
		return id
	}

	return &fixture{fs: fs, archive: arc, ledger: ledger, service: svc}
}

func (f *fixture) files(t *testing.T) []string {
	t.Helper()
	var keys []string
	for _, s := range f.archive.Stores() {
		entries, err := s.List(t.Context())
		require.NoError(t, err)
		for _, e := range entries {
			keys = append(keys, s.Root()+"/"+e.Key)
		}
	}
	return keys
}
