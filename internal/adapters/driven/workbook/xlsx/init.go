package xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"
)

// InitWorkbook creates an empty output workbook: one empty tab per
// indicator plus the projection_log tab with its header. An existing
// workbook is left untouched.
func InitWorkbook(path string, indicatorIDs []string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	ids := append([]string(nil), indicatorIDs...)
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := f.NewSheet(id); err != nil {
			return fmt.Errorf("create tab %s: %w", id, err)
		}
	}
	if err := writeLogSheet(f, nil); err != nil {
		return fmt.Errorf("create %s tab: %w", logSheet, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook %s: %w", path, err)
	}
	return nil
}
